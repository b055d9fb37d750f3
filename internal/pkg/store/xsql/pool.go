package xsql

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/regstat/internal/pkg/store/dbx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// Pool: database/sql поверх modernc sqlite.
type Pool struct {
	db *sql.DB
}

var _ dbx.Pool = (*Pool)(nil)

func New(dsn string, maxConns int) (*Pool, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}

	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}

	return &Pool{db: db}, nil
}

func (p *Pool) Selectx(ctx context.Context, sqlizer sq.Sqlizer, scan func(dbx.Row) error) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}

	return rows.Err()
}

func (p *Pool) Getx(ctx context.Context, sqlizer sq.Sqlizer, dest ...any) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	return p.db.QueryRowContext(ctx, query, args...).Scan(dest...)
}

func (p *Pool) Placeholder() sq.PlaceholderFormat {
	return sq.Question
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Pool) Close() {
	_ = p.db.Close()
}

// DB отдаёт исходный *sql.DB для миграций и тестовых фикстур.
func (p *Pool) DB() *sql.DB {
	return p.db
}
