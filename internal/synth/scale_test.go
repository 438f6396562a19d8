package synth

import "testing"

func TestPlanRejectsNegativeScale(t *testing.T) {
	if _, err := Plan(-1); err == nil {
		t.Fatal("expected an error for a negative scale factor")
	}
	if _, err := Plan(-100); err == nil {
		t.Fatal("expected an error for a negative scale factor")
	}
}

func TestPlanTestModeBounds(t *testing.T) {
	counts, err := Plan(TestScale)
	if err != nil {
		t.Fatalf("Plan(0) failed: %v", err)
	}
	for table, n := range counts {
		if n < 1 || n > 10 {
			t.Errorf("test mode count for %s is %d, want 1..10", table, n)
		}
	}
	for _, spec := range Tables {
		if _, ok := counts[spec.Name]; !ok {
			t.Errorf("no planned count for %s", spec.Name)
		}
	}
}

func TestPlanMonotonicInScale(t *testing.T) {
	scales := []int{0, 1, 2, 5, 10, 100}
	prev, err := Plan(scales[0])
	if err != nil {
		t.Fatalf("Plan(%d) failed: %v", scales[0], err)
	}
	for _, scale := range scales[1:] {
		counts, err := Plan(scale)
		if err != nil {
			t.Fatalf("Plan(%d) failed: %v", scale, err)
		}
		for table, n := range counts {
			if n < prev[table] {
				t.Errorf("count for %s shrank from %d to %d at scale %d",
					table, prev[table], n, scale)
			}
		}
		prev = counts
	}
}

func TestCalendarDateMapping(t *testing.T) {
	cal := calendarFor(TestScale)
	first := cal.date(1)
	if got := first.Format(isoDate); got != "2023-01-01" {
		t.Errorf("first test-mode date = %s, want 2023-01-01", got)
	}
	if cal.days != 7 {
		t.Errorf("test-mode calendar spans %d days, want 7", cal.days)
	}

	full := calendarFor(1)
	if full.days != 1461 {
		t.Errorf("full calendar spans %d days, want 1461", full.days)
	}
	last := full.date(full.days)
	if got := last.Format(isoDate); got != "2023-12-31" {
		t.Errorf("last full-calendar date = %s, want 2023-12-31", got)
	}
}
