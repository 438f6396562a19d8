package synth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriterFormat(t *testing.T) {
	dir := t.TempDir()
	w, err := newFileWriter(dir, "reason")
	if err != nil {
		t.Fatalf("newFileWriter failed: %v", err)
	}
	rows := [][]string{
		{"1", "RSON000000000001", "Defective item"},
		{"2", "RSON000000000002", ""},
	}
	for _, row := range rows {
		if err := w.WriteRow(row); err != nil {
			t.Fatalf("WriteRow failed: %v", err)
		}
	}
	info, err := w.Close()
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "reason.dat"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "1|RSON000000000001|Defective item|\n2|RSON000000000002||\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", string(data), want)
	}
	if info.Rows != 2 {
		t.Errorf("reported rows = %d, want 2", info.Rows)
	}
	if info.Bytes != int64(len(want)) {
		t.Errorf("reported bytes = %d, want %d", info.Bytes, len(want))
	}
	if info.Table != "reason" {
		t.Errorf("reported table = %q, want reason", info.Table)
	}
}

func TestFileWriterEmptyTable(t *testing.T) {
	dir := t.TempDir()
	w, err := newFileWriter(dir, "inventory")
	if err != nil {
		t.Fatalf("newFileWriter failed: %v", err)
	}
	info, err := w.Close()
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if info.Rows != 0 || info.Bytes != 0 {
		t.Errorf("empty table reported rows=%d bytes=%d, want 0 and 0", info.Rows, info.Bytes)
	}
	if _, err := os.Stat(info.Path); err != nil {
		t.Errorf("empty table file missing: %v", err)
	}
}

func TestFileWriterUncreatableDir(t *testing.T) {
	if _, err := newFileWriter(filepath.Join(t.TempDir(), "missing"), "item"); err == nil {
		t.Fatal("expected an error writing into a missing directory")
	}
}
