package database

import (
	"context"
	"database/sql"
	"errors"
)

// Load returns the blob stored under key. ok is false when the key is absent.
func (d *Database) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := d.checkOpen(); err != nil {
		return nil, false, wrapKeyErr("load", key, err)
	}
	var value []byte
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrapKeyErr("load", key, err)
	}
	return value, true, nil
}

// Save stores blob under key, replacing any previous value.
func (d *Database) Save(ctx context.Context, key string, blob []byte) error {
	if err := d.checkOpen(); err != nil {
		return wrapKeyErr("save", key, err)
	}
	if blob == nil {
		blob = []byte{}
	}
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, blob)
	return wrapKeyErr("save", key, err)
}

// SaveAll stores every entry in one transaction. Either all keys are
// written or none are.
func (d *Database) SaveAll(ctx context.Context, entries map[string][]byte) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for key, blob := range entries {
			if blob == nil {
				blob = []byte{}
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
				key, blob); err != nil {
				return wrapKeyErr("save", key, err)
			}
		}
		return nil
	})
}

// Delete removes keys in one transaction. Absent keys are not an error.
func (d *Database) Delete(ctx context.Context, keys ...string) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
				return wrapKeyErr("delete", key, err)
			}
		}
		return nil
	})
}
