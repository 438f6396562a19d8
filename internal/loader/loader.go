// Package loader bulk-inserts generated flat files into the benchmark
// schema. Files load in the same dependency order they were generated in, so
// a database with enforced foreign keys accepts them as-is.
package loader

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/rhkp/tpcds-util/internal/database"
	"github.com/rhkp/tpcds-util/internal/synth"
)

// defaultBatchSize keeps multi-row inserts under common placeholder limits
// even for the widest table.
const defaultBatchSize = 500

type Loader struct {
	mgr       *database.Manager
	BatchSize int
	Progress  bool
}

func New(mgr *database.Manager) *Loader {
	return &Loader{mgr: mgr, BatchSize: defaultBatchSize}
}

// Result reports what one load pass inserted.
type Result struct {
	Tables int
	Rows   int64
}

// LoadDir loads every <table>.dat file found in dir. Tables without a file
// are skipped, so a test-mode directory loads cleanly into the full schema.
func (l *Loader) LoadDir(ctx context.Context, dir string) (*Result, error) {
	res := &Result{}
	for _, spec := range synth.Tables {
		path := filepath.Join(dir, spec.Name+".dat")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		n, err := l.loadFile(ctx, spec, path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", spec.Name, err)
		}
		res.Tables++
		res.Rows += n
	}
	return res, nil
}

func (l *Loader) loadFile(ctx context.Context, spec synth.TableSpec, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var reader = bufio.NewReaderSize(f, 1<<16)
	var bar *progressbar.ProgressBar
	if l.Progress {
		st, err := f.Stat()
		if err != nil {
			return 0, err
		}
		bar = progressbar.DefaultBytes(st.Size(), spec.Name)
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<20)

	batchSize := l.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var total int64
	batch := make([][]interface{}, 0, batchSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if bar != nil {
			bar.Add(len(line) + 1)
		}
		row, err := parseRow(line, spec.FieldCount())
		if err != nil {
			return total, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		batch = append(batch, row)
		if len(batch) >= batchSize {
			if err := l.insertBatch(ctx, spec, batch); err != nil {
				return total, err
			}
			total += int64(len(batch))
			batch = batch[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return total, err
	}
	if len(batch) > 0 {
		if err := l.insertBatch(ctx, spec, batch); err != nil {
			return total, err
		}
		total += int64(len(batch))
	}
	if bar != nil {
		bar.Finish()
	}
	return total, nil
}

// parseRow splits one flat-file line. The trailing delimiter contributes an
// empty final element which is discarded; remaining empty fields become SQL
// NULL.
func parseRow(line string, want int) ([]interface{}, error) {
	if !strings.HasSuffix(line, "|") {
		return nil, fmt.Errorf("missing trailing delimiter")
	}
	parts := strings.Split(line, "|")
	parts = parts[:len(parts)-1]
	if len(parts) != want {
		return nil, fmt.Errorf("has %d fields, want %d", len(parts), want)
	}
	row := make([]interface{}, len(parts))
	for i, p := range parts {
		if p == "" {
			row[i] = nil
		} else {
			row[i] = p
		}
	}
	return row, nil
}

func (l *Loader) insertBatch(ctx context.Context, spec synth.TableSpec, batch [][]interface{}) error {
	ins := l.mgr.Builder().Insert(spec.Name).Columns(spec.Columns...)
	for _, row := range batch {
		ins = ins.Values(row...)
	}
	if _, err := ins.RunWith(l.mgr.DB()).ExecContext(ctx); err != nil {
		return fmt.Errorf("insert into %s: %w", spec.Name, err)
	}
	return nil
}

// Truncate empties every benchmark table, facts first.
func (l *Loader) Truncate(ctx context.Context) error {
	tables := synth.Tables
	for i := len(tables) - 1; i >= 0; i-- {
		del := l.mgr.Builder().Delete(tables[i].Name)
		if _, err := del.RunWith(l.mgr.DB()).ExecContext(ctx); err != nil {
			return fmt.Errorf("truncating %s: %w", tables[i].Name, err)
		}
	}
	return nil
}
