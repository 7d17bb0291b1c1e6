package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationStatus reports the schema version before and after RunMigrations.
type MigrationStatus struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// RunMigrations applies every pending migration. It uses its own connection
// because closing the migrate instance closes the database it was given.
func RunMigrations(connStr string) (*MigrationStatus, error) {
	migrateDB, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := postgres.WithInstance(migrateDB, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	status := &MigrationStatus{}
	status.PreMigrationVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("read version: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	status.PostMigrationVersion, _, err = m.Version()
	if err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	return status, nil
}
