package synth

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fileWriter streams rows for one table into <dir>/<table>.dat. Rows are
// pipe-delimited with a trailing delimiter and no header, NULL rendered as
// the empty string between delimiters.
type fileWriter struct {
	table string
	path  string
	f     *os.File
	buf   *bufio.Writer
	rows  int64
}

func newFileWriter(dir, table string) (*fileWriter, error) {
	path := filepath.Join(dir, table+".dat")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &fileWriter{
		table: table,
		path:  path,
		f:     f,
		buf:   bufio.NewWriterSize(f, 1<<16),
	}, nil
}

func (w *fileWriter) WriteRow(fields []string) error {
	if _, err := w.buf.WriteString(strings.Join(fields, "|")); err != nil {
		return fmt.Errorf("writing %s: %w", w.path, err)
	}
	if _, err := w.buf.WriteString("|\n"); err != nil {
		return fmt.Errorf("writing %s: %w", w.path, err)
	}
	w.rows++
	return nil
}

// Close flushes and reports the finished file. A table planned at zero rows
// still yields its (empty) file.
func (w *fileWriter) Close() (FileInfo, error) {
	if err := w.buf.Flush(); err != nil {
		w.f.Close()
		return FileInfo{}, fmt.Errorf("flushing %s: %w", w.path, err)
	}
	if err := w.f.Close(); err != nil {
		return FileInfo{}, fmt.Errorf("closing %s: %w", w.path, err)
	}
	st, err := os.Stat(w.path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("stat %s: %w", w.path, err)
	}
	return FileInfo{
		Table: w.table,
		Path:  w.path,
		Rows:  w.rows,
		Bytes: st.Size(),
	}, nil
}
