package synth

import (
	"math/rand"
	"testing"
)

func TestKeyPoolSampleStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := newKeyPool("item", 5)
	for i := 0; i < 1000; i++ {
		k := p.Sample(rng)
		if k < 1 || k > 5 {
			t.Fatalf("sampled key %d outside 1..5", k)
		}
	}
}

func TestKeyPoolClamp(t *testing.T) {
	p := newKeyPool("date_dim", 7)
	cases := []struct{ in, want int64 }{
		{-3, 1}, {0, 1}, {1, 1}, {4, 4}, {7, 7}, {8, 7}, {400, 7},
	}
	for _, c := range cases {
		if got := p.Clamp(c.in); got != c.want {
			t.Errorf("Clamp(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestPoolRequestedBeforeGeneration(t *testing.T) {
	r := &run{
		rng:   rand.New(rand.NewSource(1)),
		pools: map[string]*KeyPool{},
	}
	if _, err := r.sample("customer"); err == nil {
		t.Fatal("expected an error sampling a missing pool")
	}

	r.pools["customer"] = newKeyPool("customer", 0)
	if _, err := r.sample("customer"); err == nil {
		t.Fatal("expected an error sampling an empty pool")
	}
}

func TestSampleNullable(t *testing.T) {
	r := &run{
		rng:   rand.New(rand.NewSource(7)),
		pools: map[string]*KeyPool{"promotion": newKeyPool("promotion", 3)},
	}

	sawNull, sawValue := false, false
	for i := 0; i < 200; i++ {
		v, err := r.sampleNullable("promotion", 0.5)
		if err != nil {
			t.Fatalf("sampleNullable failed: %v", err)
		}
		if v == "" {
			sawNull = true
			continue
		}
		sawValue = true
		if v != "1" && v != "2" && v != "3" {
			t.Fatalf("sampled key %q outside the pool", v)
		}
	}
	if !sawNull || !sawValue {
		t.Errorf("expected both null and non-null draws, got null=%v value=%v", sawNull, sawValue)
	}
}
