package loader

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rhkp/tpcds-util/internal/config"
	"github.com/rhkp/tpcds-util/internal/database"
	"github.com/rhkp/tpcds-util/internal/synth"
)

func TestParseRow(t *testing.T) {
	row, err := parseRow("1|abc||2.50|", 4)
	if err != nil {
		t.Fatalf("parseRow failed: %v", err)
	}
	if row[0] != "1" || row[1] != "abc" || row[3] != "2.50" {
		t.Errorf("unexpected values: %v", row)
	}
	if row[2] != nil {
		t.Errorf("empty field should load as NULL, got %v", row[2])
	}

	if _, err := parseRow("1|2", 2); err == nil {
		t.Error("expected an error for a missing trailing delimiter")
	}
	if _, err := parseRow("1|2|", 3); err == nil {
		t.Error("expected an error for a short row")
	}
}

func TestLoadGeneratedData(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()

	manifest, err := synth.Generate(synth.Options{Scale: synth.TestScale, OutputDir: dataDir})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	cfg := &config.Config{Database: config.Database{
		Provider: "sqlite3",
		Name:     filepath.Join(t.TempDir(), "tpcds.db"),
	}}
	mgr, err := database.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer mgr.Close()

	if err := mgr.CreateSchema(ctx); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	l := New(mgr)
	l.BatchSize = 3 // force several batches even on tiny files
	res, err := l.LoadDir(ctx, dataDir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if res.Tables != len(manifest.Files) {
		t.Errorf("loaded %d tables, generated %d", res.Tables, len(manifest.Files))
	}
	if res.Rows != manifest.TotalRows() {
		t.Errorf("loaded %d rows, generated %d", res.Rows, manifest.TotalRows())
	}

	want := make(map[string]int64)
	for _, f := range manifest.Files {
		want[f.Table] = f.Rows
	}
	for _, c := range mgr.TableCounts(ctx) {
		if n, ok := want[c.Table]; ok && c.Rows != n {
			t.Errorf("%s has %d rows in the database, file had %d", c.Table, c.Rows, n)
		}
	}

	if err := l.Truncate(ctx); err != nil {
		t.Fatalf("Truncate failed: %v", err)
	}
	for _, c := range mgr.TableCounts(ctx) {
		if c.Rows != 0 {
			t.Errorf("%s not empty after truncate: %d rows", c.Table, c.Rows)
		}
	}
}
