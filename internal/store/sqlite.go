package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverCGO  = "sqlite3" // github.com/mattn/go-sqlite3
	DriverPure = "sqlite"  // modernc.org/sqlite
)

// DefaultMaxOpenConns bounds the connection pool.
const DefaultMaxOpenConns = 5

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Options configures Open.
type Options struct {
	Driver       string
	Path         string
	MaxOpenConns int
	Logger       *log.Logger
}

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
	now    func() time.Time
}

// NewSQLiteStore opens a store at dbPath with default options.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	return Open(context.Background(), Options{Path: dbPath})
}

// Open connects to the database described by opts and applies pending migrations.
func Open(ctx context.Context, opts Options) (*SQLiteStore, error) {
	if opts.Driver == "" {
		opts.Driver = DriverCGO
	}
	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = DefaultMaxOpenConns
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	dsn, err := dataSourceName(opts.Driver, opts.Path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(opts.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if opts.Path == ":memory:" {
		opts.MaxOpenConns = 1
	}
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxOpenConns)

	s := &SQLiteStore{db: db, logger: opts.Logger, now: time.Now}
	if err := runMigrations(ctx, db, opts.Logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	opts.Logger.Debug("store opened", "driver", opts.Driver, "path", opts.Path, "max_conns", opts.MaxOpenConns)
	return s, nil
}

func dataSourceName(driver, path string) (string, error) {
	switch driver {
	case DriverCGO:
		return path + "?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate", nil
	case DriverPure:
		return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// withTx runs fn in a transaction and commits if fn returns nil.
func (s *SQLiteStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// requireRow turns a zero-row write into ErrNotFound.
func requireRow(result sql.Result, entity string, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
	}
	return nil
}

func notFound(err error, entity string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

type timeColumn struct {
	dst *time.Time
}

// scanTime reads a TEXT timestamp written by formatTime or by an RFC 3339 writer.
func scanTime(dst *time.Time) sql.Scanner {
	return timeColumn{dst: dst}
}

func (c timeColumn) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case time.Time:
		*c.dst = v
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into time", src)
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	*c.dst = t
	return nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}
