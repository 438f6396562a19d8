// Package database manages connections to the target warehouse and owns the
// benchmark schema lifecycle. One embedded DDL script serves PostgreSQL,
// MySQL and SQLite; provider differences are limited to the driver name, the
// DSN shape and the placeholder format.
package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/rhkp/tpcds-util/internal/config"
	"github.com/rhkp/tpcds-util/internal/synth"
)

//go:embed ddl/tpcds.sql
var schemaSQL string

type Manager struct {
	db  *sql.DB
	cfg *config.Config
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg *config.Config) (*Manager, error) {
	db, err := sql.Open(cfg.DriverName(), cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Database.Provider, err)
	}
	return &Manager{db: db, cfg: cfg}, nil
}

func (m *Manager) Close() error { return m.db.Close() }

// DB exposes the underlying pool for bulk operations.
func (m *Manager) DB() *sql.DB { return m.db }

// Builder returns a statement builder with the provider's placeholder format.
func (m *Manager) Builder() sq.StatementBuilderType {
	if m.cfg.DriverName() == "pgx" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// ServerVersion reports the server version string for `db info`.
func (m *Manager) ServerVersion(ctx context.Context) (string, error) {
	var query string
	switch m.cfg.DriverName() {
	case "mysql":
		query = "SELECT VERSION()"
	case "sqlite3":
		query = "SELECT sqlite_version()"
	default:
		query = "SELECT version()"
	}
	var version string
	if err := m.db.QueryRowContext(ctx, query).Scan(&version); err != nil {
		return "", fmt.Errorf("failed to query server version: %w", err)
	}
	return version, nil
}

// CreateSchema runs the embedded DDL statement by statement. Existing tables
// make this fail; drop first for a clean slate.
func (m *Manager) CreateSchema(ctx context.Context) error {
	for _, stmt := range SplitStatements(schemaSQL) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute DDL: %w", err)
		}
	}
	return nil
}

// DropSchema removes all benchmark tables, facts before the dimensions they
// reference.
func (m *Manager) DropSchema(ctx context.Context) error {
	tables := synth.Tables
	for i := len(tables) - 1; i >= 0; i-- {
		stmt := "DROP TABLE IF EXISTS " + tables[i].Name
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to drop %s: %w", tables[i].Name, err)
		}
	}
	return nil
}

// TableCount pairs a table with its current row count; -1 marks a table that
// could not be counted (usually because it does not exist yet).
type TableCount struct {
	Table string
	Rows  int64
}

// TableCounts reports row counts for every benchmark table, in schema order.
func (m *Manager) TableCounts(ctx context.Context) []TableCount {
	counts := make([]TableCount, 0, len(synth.Tables))
	for _, spec := range synth.Tables {
		var n int64
		err := m.Builder().
			Select("COUNT(*)").
			From(spec.Name).
			RunWith(m.db).
			QueryRowContext(ctx).
			Scan(&n)
		if err != nil {
			n = -1
		}
		counts = append(counts, TableCount{Table: spec.Name, Rows: n})
	}
	return counts
}
