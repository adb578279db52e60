package database

import (
	"embed"
	"errors"
	"fmt"
	"net/url"

	"clinic-admin/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrationURL builds the pgx5:// URL understood by golang-migrate
func MigrationURL(cfg config.DBConfig) string {
	u := url.URL{
		Scheme: "pgx5",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Path:   "/" + cfg.Name,
	}
	q := u.Query()
	q.Set("sslmode", cfg.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

type Migrator struct {
	m   *migrate.Migrate
	log *logrus.Logger
}

func NewMigrator(cfg config.DBConfig, log *logrus.Logger) (*Migrator, error) {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, MigrationURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize migrator: %w", err)
	}

	return &Migrator{m: m, log: log}, nil
}

// Up applies every pending migration. An already current schema is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	mg.logVersion()
	return nil
}

// Down rolls back the given number of migrations.
func (mg *Migrator) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	mg.logVersion()
	return nil
}

func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (mg *Migrator) Close() {
	srcErr, dbErr := mg.m.Close()
	if srcErr != nil || dbErr != nil {
		mg.log.Warnf("Failed to close migrator: source=%v database=%v", srcErr, dbErr)
	}
}

func (mg *Migrator) logVersion() {
	version, dirty, err := mg.Version()
	if err != nil {
		mg.log.Warnf("Failed to read schema version: %+v", err)
		return
	}
	mg.log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Database schema is up to date")
}
