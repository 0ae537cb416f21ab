package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// KVSchemaVersion is the version of the kv table this binary reads and writes.
const KVSchemaVersion uint = 1

// kvMigrationsTable records the applied kv schema version.
const kvMigrationsTable = "kv_migrations"

// ErrSchema is returned when the kv table cannot be brought to KVSchemaVersion.
var ErrSchema = errors.New("unsupported kv schema")

// migrateKV brings the kv table of the database at dbPath to KVSchemaVersion
// and returns the version it was at before, 0 for a new database.
//
// migrate closes the database it is given, so it works on its own connection.
func migrateKV(dbPath string, log zerolog.Logger) (uint, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("open %s for migration: %w", dbPath, err)
	}
	defer conn.Close()

	driver, err := sqlite.WithInstance(conn, &sqlite.Config{MigrationsTable: kvMigrationsTable})
	if err != nil {
		return 0, fmt.Errorf("kv migration driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return 0, fmt.Errorf("kv migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return 0, fmt.Errorf("kv migration: %w", err)
	}
	defer m.Close()

	from, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return 0, fmt.Errorf("reading kv schema version: %w", err)
	case dirty:
		return from, fmt.Errorf("%w: version %d was left half applied", ErrSchema, from)
	case from > KVSchemaVersion:
		return from, fmt.Errorf("%w: version %d is newer than %d, upgrade mt", ErrSchema, from, KVSchemaVersion)
	case from == KVSchemaVersion:
		log.Debug().Str("db", dbPath).Uint("version", from).Msg("kv schema up to date")
		return from, nil
	}

	if err := m.Migrate(KVSchemaVersion); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, fmt.Errorf("migrating kv schema from %d to %d: %w", from, KVSchemaVersion, err)
	}
	log.Info().Str("db", dbPath).Uint("from", from).Uint("to", KVSchemaVersion).Msg("kv schema migrated")
	return from, nil
}
