// Package dbx описывает минимальный контракт пула, общий для pgx и database/sql.
package dbx

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// Row is satisfied by both pgx.Rows and *sql.Rows.
type Row interface {
	Scan(dest ...any) error
}

type Pool interface {
	// Selectx runs the query and calls scan once per row.
	Selectx(ctx context.Context, sqlizer sq.Sqlizer, scan func(Row) error) error
	// Getx scans exactly one row into dest. No rows yields the driver's no-rows error.
	Getx(ctx context.Context, sqlizer sq.Sqlizer, dest ...any) error
	Placeholder() sq.PlaceholderFormat
	Ping(ctx context.Context) error
	Close()
}
