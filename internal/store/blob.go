package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Blobs live outside ent. Each region is one JSON document that is read
// and replaced whole.
func createBlobTable(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		name TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create blob table: %w", err)
	}
	return nil
}

// blobRepo implements BlobRepo over the blobs table.
type blobRepo struct {
	db *sql.DB
}

func (r *blobRepo) Get(ctx context.Context, name string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read blob %q: %w", name, err)
	}
	return value, nil
}

func (r *blobRepo) Set(ctx context.Context, name string, data []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blobs (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		name, data, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("write blob %q: %w", name, err)
	}
	return nil
}
