package storage

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Backend is a storage that holds resources until closed.
type Backend interface {
	Probe() bool
	Read(key string) (string, bool, error)
	Write(key, value string) error
	Remove(key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	MemoryBackend = "memory"
	DirBackend    = "dir"
	SQLiteBackend = "sqlite"
)

// Backends lists the names accepted by Open.
var Backends = []string{MemoryBackend, DirBackend, SQLiteBackend}

// SQLiteFile is the database file name used when Open is given a directory.
const SQLiteFile = "moneytracker.db"

// Open returns the backend called name. path is the directory for "dir",
// and the directory holding SQLiteFile for "sqlite". It is ignored for
// "memory". log reports schema migrations.
func Open(name, path string, log zerolog.Logger) (Backend, error) {
	switch name {
	case MemoryBackend:
		return NewMemory(), nil
	case DirBackend:
		return NewDir(path), nil
	case SQLiteBackend:
		return OpenSQLite(filepath.Join(path, SQLiteFile), log)
	default:
		return nil, fmt.Errorf("%w %q, want one of %v", ErrUnknownBackend, name, Backends)
	}
}

func (m *Memory) Close() error { return nil }

func (d *Dir) Close() error { return nil }
