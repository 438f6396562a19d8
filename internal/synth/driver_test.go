package synth

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func generateTest(t *testing.T, scale int, seed int64) (*Manifest, string) {
	t.Helper()
	dir := t.TempDir()
	m, err := Generate(Options{Scale: scale, OutputDir: dir, Seed: seed})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return m, dir
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	trimmed := strings.TrimSuffix(string(data), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// fields drops the empty element after the trailing delimiter.
func fields(line string) []string {
	parts := strings.Split(line, "|")
	return parts[:len(parts)-1]
}

func keySet(t *testing.T, dir, table string) map[string]bool {
	t.Helper()
	keys := make(map[string]bool)
	for _, line := range readLines(t, filepath.Join(dir, table+".dat")) {
		keys[fields(line)[0]] = true
	}
	return keys
}

func TestGenerateTestMode(t *testing.T) {
	m, dir := generateTest(t, TestScale, 0)

	entries, err := filepath.Glob(filepath.Join(dir, "*.dat"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) < 10 || len(entries) > 15 {
		t.Errorf("test mode produced %d .dat files, want 10..15", len(entries))
	}
	if len(m.Files) != len(entries) {
		t.Errorf("manifest lists %d files, directory has %d", len(m.Files), len(entries))
	}

	counts, err := Plan(TestScale)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range m.Files {
		if f.Rows > 10 {
			t.Errorf("%s has %d rows, test mode allows at most 10", f.Table, f.Rows)
		}
		if f.Rows != counts[f.Table] {
			t.Errorf("%s has %d rows, plan says %d", f.Table, f.Rows, counts[f.Table])
		}
		st, err := os.Stat(f.Path)
		if err != nil {
			t.Errorf("manifest path missing: %v", err)
			continue
		}
		if st.Size() != f.Bytes {
			t.Errorf("%s manifest bytes %d, on disk %d", f.Table, f.Bytes, st.Size())
		}
	}
}

func TestGenerateRowShape(t *testing.T) {
	_, dir := generateTest(t, TestScale, 0)

	for _, spec := range runTables(TestScale) {
		lines := readLines(t, filepath.Join(dir, spec.Name+".dat"))
		for i, line := range lines {
			if !strings.HasSuffix(line, "|") {
				t.Fatalf("%s line %d lacks the trailing delimiter: %q", spec.Name, i+1, line)
			}
			if got := len(fields(line)); got != spec.FieldCount() {
				t.Errorf("%s line %d has %d fields, want %d", spec.Name, i+1, got, spec.FieldCount())
			}
		}
	}
}

func TestCustomerFile(t *testing.T) {
	_, dir := generateTest(t, TestScale, 0)

	lines := readLines(t, filepath.Join(dir, "customer.dat"))
	if len(lines) == 0 || len(lines) > 10 {
		t.Fatalf("customer.dat has %d lines, want 1..10", len(lines))
	}
	for i, line := range lines {
		if !strings.HasSuffix(line, "|") {
			t.Errorf("customer.dat line %d does not end with the delimiter", i+1)
		}
		if got := len(fields(line)); got < 18 {
			t.Errorf("customer.dat line %d has %d fields, want at least 18", i+1, got)
		}
	}
}

// fkColumn names one foreign-key column of a generated table.
type fkColumn struct {
	col      int
	ref      string
	nullable bool
}

var fkColumns = map[string][]fkColumn{
	"household_demographics": {
		{col: 1, ref: "income_band"},
	},
	"promotion": {
		{col: 2, ref: "date_dim"},
		{col: 3, ref: "date_dim"},
		{col: 4, ref: "item", nullable: true},
	},
	"customer": {
		{col: 2, ref: "customer_demographics"},
		{col: 3, ref: "household_demographics"},
		{col: 4, ref: "customer_address"},
		{col: 5, ref: "date_dim"},
		{col: 6, ref: "date_dim"},
		{col: 17, ref: "date_dim"},
	},
	"web_site": {
		{col: 5, ref: "date_dim"},
		{col: 6, ref: "date_dim", nullable: true},
	},
	"call_center": {
		{col: 4, ref: "date_dim", nullable: true},
		{col: 5, ref: "date_dim"},
	},
	"web_page": {
		{col: 4, ref: "date_dim"},
		{col: 5, ref: "date_dim"},
		{col: 7, ref: "customer", nullable: true},
	},
	"catalog_page": {
		{col: 2, ref: "date_dim"},
		{col: 3, ref: "date_dim"},
	},
	"store_sales": {
		{col: 0, ref: "date_dim"},
		{col: 1, ref: "time_dim"},
		{col: 2, ref: "item"},
		{col: 3, ref: "customer"},
		{col: 4, ref: "customer_demographics"},
		{col: 5, ref: "household_demographics"},
		{col: 6, ref: "customer_address"},
		{col: 7, ref: "store"},
		{col: 8, ref: "promotion", nullable: true},
	},
	"store_returns": {
		{col: 0, ref: "date_dim"},
		{col: 1, ref: "time_dim"},
		{col: 2, ref: "item"},
		{col: 3, ref: "customer"},
		{col: 4, ref: "customer_demographics"},
		{col: 5, ref: "household_demographics"},
		{col: 6, ref: "customer_address"},
		{col: 7, ref: "store"},
		{col: 8, ref: "reason"},
	},
	"catalog_sales": {
		{col: 0, ref: "date_dim"},
		{col: 1, ref: "time_dim", nullable: true},
		{col: 2, ref: "date_dim"},
		{col: 3, ref: "customer"},
		{col: 4, ref: "customer_demographics"},
		{col: 5, ref: "household_demographics"},
		{col: 6, ref: "customer_address"},
		{col: 7, ref: "customer"},
		{col: 8, ref: "customer_demographics"},
		{col: 9, ref: "household_demographics"},
		{col: 10, ref: "customer_address"},
		{col: 11, ref: "call_center"},
		{col: 12, ref: "catalog_page"},
		{col: 13, ref: "ship_mode"},
		{col: 14, ref: "warehouse"},
		{col: 15, ref: "item"},
		{col: 16, ref: "promotion", nullable: true},
	},
	"catalog_returns": {
		{col: 0, ref: "date_dim"},
		{col: 1, ref: "time_dim", nullable: true},
		{col: 2, ref: "item"},
		{col: 3, ref: "customer"},
		{col: 4, ref: "customer_demographics"},
		{col: 5, ref: "household_demographics"},
		{col: 6, ref: "customer_address"},
		{col: 7, ref: "customer"},
		{col: 8, ref: "customer_demographics"},
		{col: 9, ref: "household_demographics"},
		{col: 10, ref: "customer_address"},
		{col: 11, ref: "call_center"},
		{col: 12, ref: "catalog_page"},
		{col: 13, ref: "ship_mode"},
		{col: 14, ref: "warehouse"},
		{col: 15, ref: "reason"},
	},
	"web_sales": {
		{col: 0, ref: "date_dim"},
		{col: 1, ref: "time_dim"},
		{col: 2, ref: "date_dim"},
		{col: 3, ref: "item"},
		{col: 4, ref: "customer"},
		{col: 5, ref: "customer_demographics"},
		{col: 6, ref: "household_demographics"},
		{col: 7, ref: "customer_address"},
		{col: 8, ref: "customer"},
		{col: 9, ref: "customer_demographics"},
		{col: 10, ref: "household_demographics"},
		{col: 11, ref: "customer_address"},
		{col: 12, ref: "web_page"},
		{col: 13, ref: "web_site"},
		{col: 14, ref: "ship_mode"},
		{col: 15, ref: "warehouse"},
		{col: 16, ref: "promotion", nullable: true},
	},
	"web_returns": {
		{col: 0, ref: "date_dim"},
		{col: 1, ref: "time_dim"},
		{col: 2, ref: "item"},
		{col: 3, ref: "customer"},
		{col: 4, ref: "customer_demographics"},
		{col: 5, ref: "household_demographics"},
		{col: 6, ref: "customer_address"},
		{col: 7, ref: "customer"},
		{col: 8, ref: "customer_demographics"},
		{col: 9, ref: "household_demographics"},
		{col: 10, ref: "customer_address"},
		{col: 11, ref: "web_page"},
		{col: 12, ref: "reason"},
	},
	"inventory": {
		{col: 0, ref: "date_dim"},
		{col: 1, ref: "item"},
		{col: 2, ref: "warehouse"},
	},
}

// checkReferentialIntegrity verifies every foreign-key column of every file
// generated at the given scale against the emitted dimension key sets.
func checkReferentialIntegrity(t *testing.T, scale int, dir string) {
	t.Helper()

	dims := make(map[string]map[string]bool)
	for _, spec := range runTables(scale) {
		if spec.Dimension {
			dims[spec.Name] = keySet(t, dir, spec.Name)
		}
	}

	for _, spec := range runTables(scale) {
		cols, ok := fkColumns[spec.Name]
		if !ok {
			continue
		}
		lines := readLines(t, filepath.Join(dir, spec.Name+".dat"))
		if len(lines) == 0 {
			t.Fatalf("%s.dat is empty", spec.Name)
		}
		for i, line := range lines {
			row := fields(line)
			for _, fk := range cols {
				v := row[fk.col]
				if v == "" {
					if !fk.nullable {
						t.Errorf("%s line %d column %d is null but not nullable", spec.Name, i+1, fk.col)
					}
					continue
				}
				if !dims[fk.ref][v] {
					t.Errorf("%s line %d column %d references %s key %s which was never generated",
						spec.Name, i+1, fk.col, fk.ref, v)
				}
			}
		}
	}
}

func TestReferentialIntegrity(t *testing.T) {
	_, dir := generateTest(t, TestScale, 0)
	checkReferentialIntegrity(t, TestScale, dir)
}

// The full table set, including the catalog channel and the returns facts,
// only appears at scale >= 1; the invariant has to hold there too.
func TestReferentialIntegrityFullScale(t *testing.T) {
	if testing.Short() {
		t.Skip("full-scale generation")
	}
	_, dir := generateTest(t, 1, 0)
	checkReferentialIntegrity(t, 1, dir)

	for _, spec := range runTables(1) {
		if _, ok := fkColumns[spec.Name]; !ok && len(spec.Refs) > 0 {
			t.Errorf("%s declares refs but has no foreign-key coverage", spec.Name)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	m1, dir1 := generateTest(t, TestScale, 42)
	m2, _ := generateTest(t, TestScale, 42)

	if len(m1.Files) != len(m2.Files) {
		t.Fatalf("runs produced %d and %d files", len(m1.Files), len(m2.Files))
	}
	for i, f := range m1.Files {
		a, err := os.ReadFile(f.Path)
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(m2.Files[i].Path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between two runs with the same seed", f.Table)
		}
	}

	_, dir3 := generateTest(t, TestScale, 43)
	a, _ := os.ReadFile(filepath.Join(dir1, "store_sales.dat"))
	c, _ := os.ReadFile(filepath.Join(dir3, "store_sales.dat"))
	if bytes.Equal(a, c) {
		t.Error("store_sales is identical under different seeds")
	}
}

func TestGenerateRejectsNegativeScale(t *testing.T) {
	if _, err := Generate(Options{Scale: -2, OutputDir: t.TempDir()}); err == nil {
		t.Fatal("expected an error for a negative scale")
	}
}

func TestCreateSyntheticData(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	if !CreateSyntheticData(TestScale, dir) {
		t.Fatal("CreateSyntheticData returned false for a valid request")
	}
	entries, err := filepath.Glob(filepath.Join(dir, "*.dat"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatal("no .dat files were written")
	}
}

func TestCreateSyntheticDataUncreatableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(blocker, "out")
	if CreateSyntheticData(TestScale, out) {
		t.Fatal("CreateSyntheticData succeeded with an uncreatable output directory")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output directory should not exist, stat err = %v", err)
	}
}
