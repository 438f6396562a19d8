package dsdgen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeStub(t *testing.T, dir, name, script string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestLocateConfiguredPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts need a POSIX shell")
	}
	dir := t.TempDir()
	writeStub(t, dir, "dsdgen", "#!/bin/sh\nexit 0\n")

	kit, err := Locate(dir)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if kit.Path != dir {
		t.Errorf("kit path = %s, want %s", kit.Path, dir)
	}
}

func TestLocateMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if _, err := Locate(filepath.Join(t.TempDir(), "nowhere")); err == nil {
		t.Fatal("expected an error when dsdgen is nowhere to be found")
	}
}

func TestGenerateDataVerifiesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts need a POSIX shell")
	}
	dir := t.TempDir()
	// A stub that succeeds without writing anything must still fail the run.
	writeStub(t, dir, "dsdgen", "#!/bin/sh\nexit 0\n")
	kit := &Kit{Path: dir}

	out := filepath.Join(t.TempDir(), "data")
	if err := kit.GenerateData(context.Background(), 1, out); err == nil {
		t.Fatal("expected an error when no .dat files appear")
	}
}

func TestGenerateDataRejectsTestScale(t *testing.T) {
	kit := &Kit{Path: t.TempDir()}
	if err := kit.GenerateData(context.Background(), 0, t.TempDir()); err == nil {
		t.Fatal("expected an error for scale 0")
	}
}
