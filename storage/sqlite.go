package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLite stores keys as rows of a single table in a SQLite database.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
	// migratedFrom is the kv schema version found on open.
	migratedFrom uint
}

// OpenSQLite opens, creating it if needed, the database at dbPath and
// migrates its kv table to KVSchemaVersion.
func OpenSQLite(dbPath string, log zerolog.Logger) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	from, err := migrateKV(dbPath, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db, now: time.Now, migratedFrom: from}, nil
}

// MigratedFrom returns the kv schema version the database had when opened,
// 0 when it was created.
func (s *SQLite) MigratedFrom() uint { return s.migratedFrom }

func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLite) Probe() bool {
	if err := s.Write(ProbeKey, ProbeKey); err != nil {
		return false
	}
	return s.Remove(ProbeKey) == nil
}

func (s *SQLite) Read(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Write(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}
