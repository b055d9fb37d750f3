// Package migration применяет встроенные миграции через golang-migrate.
// Используется утилитой развёртывания и тестами; сервис отчётов схему не трогает.
package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/ougirez/regstat/internal/pkg/constants"
	"github.com/ougirez/regstat/internal/pkg/logger"
	"github.com/ougirez/regstat/migrations"
	_ "modernc.org/sqlite"
)

type Runner struct {
	m *migrate.Migrate
}

func New(driver, dsn string) (*Runner, error) {
	src, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return nil, fmt.Errorf("open %s migrations: %w", driver, err)
	}

	var m *migrate.Migrate
	switch driver {
	case constants.DriverPostgres:
		m, err = migrate.NewWithSourceInstance("iofs", src, toPgx5DSN(dsn))
	case constants.DriverSQLite:
		m, err = newSQLite(src, dsn)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}

	m.Log = migrateLogger{}
	return &Runner{m: m}, nil
}

func newSQLite(src source.Driver, dsn string) (*migrate.Migrate, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return migrate.NewWithInstance("iofs", src, "sqlite", driver)
}

func (r *Runner) Up() error {
	if err := r.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func (r *Runner) Down() error {
	if err := r.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Version возвращает 0 для пустой базы.
func (r *Runner) Version() (uint, bool, error) {
	v, dirty, err := r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (r *Runner) Close() error {
	srcErr, dbErr := r.m.Close()
	return errors.Join(srcErr, dbErr)
}

// toPgx5DSN переводит postgres:// в схему pgx5://, которую ждёт golang-migrate.
func toPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...any) {
	logger.Debugf(context.Background(), "migrate: "+strings.TrimSpace(format), v...)
}

func (migrateLogger) Verbose() bool {
	return false
}
