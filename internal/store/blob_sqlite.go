package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteBlob keeps the blob as one row of a key/value table. Every call opens
// and closes the database so the CLI and a running TUI can share the file.
type SQLiteBlob struct {
	Path string
	Key  string
}

const blobSchema = `CREATE TABLE IF NOT EXISTS blobs (
	key      TEXT PRIMARY KEY,
	value    TEXT NOT NULL,
	saved_ms INTEGER NOT NULL
)`

// dsn enables WAL and a busy timeout through modernc's _pragma parameters.
func (b SQLiteBlob) dsn() string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(NORMAL)")
	return "file:" + filepath.ToSlash(b.Path) + "?" + q.Encode()
}

func (b SQLiteBlob) withDB(ctx context.Context, fn func(*sql.DB) error) error {
	if err := os.MkdirAll(filepath.Dir(b.Path), 0o755); err != nil {
		return err
	}
	db, err := sql.Open("sqlite", b.dsn())
	if err != nil {
		return fmt.Errorf("open %s: %w", b.Path, err)
	}
	defer db.Close()
	if _, err := db.ExecContext(ctx, blobSchema); err != nil {
		return fmt.Errorf("init %s: %w", b.Path, err)
	}
	return fn(db)
}

func (b SQLiteBlob) Load(ctx context.Context) ([]byte, error) {
	var out []byte
	err := b.withDB(ctx, func(db *sql.DB) error {
		var v string
		err := db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, b.Key).Scan(&v)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil
		case err != nil:
			return err
		}
		out = []byte(v)
		return nil
	})
	return out, err
}

func (b SQLiteBlob) Save(ctx context.Context, blob []byte) error {
	return b.withDB(ctx, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx,
			`INSERT INTO blobs(key, value, saved_ms) VALUES(?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, saved_ms = excluded.saved_ms`,
			b.Key, string(blob), time.Now().UnixMilli())
		return err
	})
}
