package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rhkp/tpcds-util/internal/config"
	"github.com/rhkp/tpcds-util/internal/synth"
)

func openSQLite(t *testing.T) *Manager {
	t.Helper()
	cfg := &config.Config{Database: config.Database{
		Provider: "sqlite3",
		Name:     filepath.Join(t.TempDir(), "tpcds.db"),
	}}
	m, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestSchemaLifecycle(t *testing.T) {
	m := openSQLite(t)
	ctx := context.Background()

	if err := m.CreateSchema(ctx); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	counts := m.TableCounts(ctx)
	if len(counts) != len(synth.Tables) {
		t.Fatalf("got %d table counts, want %d", len(counts), len(synth.Tables))
	}
	for _, c := range counts {
		if c.Rows != 0 {
			t.Errorf("fresh table %s reports %d rows", c.Table, c.Rows)
		}
	}

	if err := m.DropSchema(ctx); err != nil {
		t.Fatalf("DropSchema failed: %v", err)
	}
	for _, c := range m.TableCounts(ctx) {
		if c.Rows != -1 {
			t.Errorf("dropped table %s still countable", c.Table)
		}
	}
}

func TestServerVersion(t *testing.T) {
	m := openSQLite(t)
	version, err := m.ServerVersion(context.Background())
	if err != nil {
		t.Fatalf("ServerVersion failed: %v", err)
	}
	if version == "" {
		t.Error("empty server version")
	}
}
