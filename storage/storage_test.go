package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// backends returns one fresh instance of every persistent and in-memory
// backend.
func backends(t *testing.T) map[string]Backend {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return map[string]Backend{
		"memory": NewMemory(),
		"dir":    NewDir(filepath.Join(t.TempDir(), "data")),
		"sqlite": db,
	}
}

func TestBackends(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if !b.Probe() {
				t.Fatalf("Probe() = false")
			}
			if _, ok, err := b.Read(ProbeKey); ok || err != nil {
				t.Errorf("probe key left behind: ok=%v err=%v", ok, err)
			}

			if _, ok, err := b.Read("moneytracker/snapshot"); ok || err != nil {
				t.Fatalf("Read(missing) = ok %v, err %v", ok, err)
			}
			if err := b.Write("moneytracker/snapshot", `{"a":1}`); err != nil {
				t.Fatal(err)
			}
			if err := b.Write("moneytracker/snapshot", `{"a":2}`); err != nil {
				t.Fatal(err)
			}
			got, ok, err := b.Read("moneytracker/snapshot")
			if err != nil || !ok {
				t.Fatalf("Read() = ok %v, err %v", ok, err)
			}
			if want := `{"a":2}`; got != want {
				t.Errorf("Read() = %q, want %q", got, want)
			}

			if err := b.Remove("moneytracker/snapshot"); err != nil {
				t.Fatal(err)
			}
			if err := b.Remove("moneytracker/snapshot"); err != nil {
				t.Errorf("Remove(missing) error = %v", err)
			}
			if _, ok, _ := b.Read("moneytracker/snapshot"); ok {
				t.Errorf("key still present after Remove")
			}
		})
	}
}

func TestUnavailable(t *testing.T) {
	u := Unavailable()
	if u.Probe() {
		t.Errorf("Probe() = true, want false")
	}
	if err := u.Write("k", "v"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Write() error = %v, want ErrUnavailable", err)
	}
	if _, _, err := u.Read("k"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Read() error = %v, want ErrUnavailable", err)
	}
}

func TestDirEscapesKeys(t *testing.T) {
	root := t.TempDir()
	d := NewDir(root)
	if err := d.Write("moneytracker/snapshot", "x"); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "moneytracker%2Fsnapshot" {
		t.Errorf("directory holds %v, want a single escaped file", entries)
	}
}

func TestDirProbeFailsOnAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if NewDir(file).Probe() {
		t.Errorf("Probe() = true on a regular file")
	}
}

func TestSQLitePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mt.db")
	var logs bytes.Buffer
	db, err := OpenSQLite(path, zerolog.New(&logs))
	if err != nil {
		t.Fatal(err)
	}
	if got := db.MigratedFrom(); got != 0 {
		t.Errorf("MigratedFrom() = %d on a new database, want 0", got)
	}
	if !strings.Contains(logs.String(), `"message":"kv schema migrated"`) {
		t.Errorf("migration not logged: %s", logs.String())
	}
	if err := db.Write("k", "v"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	// Reopening finds the current version and migrates nothing.
	logs.Reset()
	db, err = OpenSQLite(path, zerolog.New(&logs))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if got := db.MigratedFrom(); got != KVSchemaVersion {
		t.Errorf("MigratedFrom() = %d on reopen, want %d", got, KVSchemaVersion)
	}
	if strings.Contains(logs.String(), "kv schema migrated") {
		t.Errorf("reopen migrated again: %s", logs.String())
	}
	if got, ok, err := db.Read("k"); err != nil || !ok || got != "v" {
		t.Errorf("Read() = %q, %v, %v; want v", got, ok, err)
	}
}

func TestSQLiteRefusesNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mt.db")
	db, err := OpenSQLite(path, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	newer := int64(KVSchemaVersion) + 1
	if _, err := db.db.Exec("UPDATE "+kvMigrationsTable+" SET version = ?", newer); err != nil {
		t.Fatal(err)
	}
	db.Close()

	if _, err := OpenSQLite(path, zerolog.Nop()); !errors.Is(err, ErrSchema) {
		t.Errorf("OpenSQLite() error = %v, want ErrSchema", err)
	}
}

func TestOpen(t *testing.T) {
	for _, name := range Backends {
		b, err := Open(name, t.TempDir(), zerolog.Nop())
		if err != nil {
			t.Errorf("Open(%q) error = %v", name, err)
			continue
		}
		if !b.Probe() {
			t.Errorf("Open(%q).Probe() = false", name)
		}
		b.Close()
	}
	if _, err := Open("cloud", "", zerolog.Nop()); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(cloud) error = %v, want ErrUnknownBackend", err)
	}
}
