package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// Database is the local SQLite store. User state lives in the kv table as
// JSON blobs; UI preferences live in settings.
type Database struct {
	DB     *sql.DB
	dbFile string

	mu     sync.RWMutex
	closed bool
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, &OpError{Op: "open", Resource: "database", Err: err}
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &OpError{Op: "ping", Resource: "database", Err: err}
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Path returns the database file path.
func (d *Database) Path() string { return d.dbFile }

// Close releases the connection. Further calls return ErrClosed.
func (d *Database) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	return d.DB.Close()
}

func (d *Database) checkOpen() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}
	return nil
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "create", Resource: "schema", Err: fmt.Errorf("%w: %s", err, query)}
		}
	}
	return nil
}

// migrate upgrades files written before kv tracked updated_at. Fresh
// databases already carry the column, so the ALTER fails as a duplicate.
func (d *Database) migrate(ctx context.Context) error {
	migrations := []string{
		"ALTER TABLE kv ADD COLUMN updated_at DATETIME",
	}
	for _, m := range migrations {
		if _, err := d.DB.ExecContext(ctx, m); err != nil && !isIgnorableMigrationErr(err) {
			return &OpError{Op: "migrate", Resource: "schema", Err: err}
		}
	}
	return nil
}

func isIgnorableMigrationErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}

// WithTx runs fn in a transaction, rolling back when it returns an error.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
