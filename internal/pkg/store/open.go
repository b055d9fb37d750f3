package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/regstat/internal/pkg/constants"
	"github.com/ougirez/regstat/internal/pkg/logger"
	"github.com/ougirez/regstat/internal/pkg/store/xpgx"
	"github.com/ougirez/regstat/internal/pkg/store/xsql"
)

const defaultRetryInterval = time.Second

type OpenOpts struct {
	Driver        string
	DSN           string
	MaxConns      int
	Attempts      int
	RetryInterval time.Duration
}

// Open создаёт пул для драйвера и ждёт, пока база ответит на Ping.
func Open(ctx context.Context, opts OpenOpts) (Pool, error) {
	var (
		pool Pool
		err  error
	)

	switch opts.Driver {
	case constants.DriverPostgres:
		pool, err = xpgx.New(ctx, opts.DSN, opts.MaxConns)
	case constants.DriverSQLite:
		pool, err = xsql.New(opts.DSN, opts.MaxConns)
	default:
		return nil, fmt.Errorf("unsupported driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	interval := opts.RetryInterval
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	attempts := opts.Attempts
	if attempts < 1 {
		attempts = 1
	}

	attempt := 0
	err = backoff.Retry(
		func() error {
			attempt++
			pingErr := pool.Ping(ctx)
			if pingErr != nil {
				logger.Warnf(ctx, "ping %s, attempt %d/%d: %s", opts.Driver, attempt, attempts, pingErr.Error())
			}
			return pingErr
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), uint64(attempts-1)),
			ctx,
		),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %w", constants.ErrStoreUnavailable, err)
	}

	return pool, nil
}
