package xpgx

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ougirez/regstat/internal/pkg/store/dbx"
)

const (
	maxConnLifetime = time.Hour
	maxConnIdleTime = 10 * time.Minute
	connectTimeout  = 5 * time.Second
)

type Pool struct {
	pool *pgxpool.Pool
}

var _ dbx.Pool = (*Pool)(nil)

// New создаёт пул без проверки соединения, проверка через Ping.
func New(ctx context.Context, dsn string, maxConns int) (*Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	if maxConns > 0 {
		cfg.MaxConns = int32(maxConns)
	}
	cfg.MaxConnLifetime = maxConnLifetime
	cfg.MaxConnIdleTime = maxConnIdleTime
	cfg.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	return &Pool{pool: pool}, nil
}

func (p *Pool) Selectx(ctx context.Context, sqlizer sq.Sqlizer, scan func(dbx.Row) error) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	rows, err := p.pool.Query(ctx, query, args...)
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

	return p.pool.QueryRow(ctx, query, args...).Scan(dest...)
}

func (p *Pool) Placeholder() sq.PlaceholderFormat {
	return sq.Dollar
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Pool) Close() {
	p.pool.Close()
}
