package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Options tunes the client-state pool. Zero fields take the defaults below.
type Options struct {
	DSN         string
	AppName     string
	MaxConns    int32
	IdleTimeout time.Duration
	PingTimeout time.Duration
}

const (
	defaultMaxConns    = 8
	defaultIdleTimeout = 5 * time.Minute
	defaultPingTimeout = 5 * time.Second
	maxConnLifetime    = 30 * time.Minute
)

// Connect opens the pool and fails unless the database answers a ping.
func Connect(ctx context.Context, opts Options) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(opts)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout(opts))
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func poolConfig(opts Options) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(opts.DSN)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = defaultMaxConns
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	cfg.MaxConnIdleTime = defaultIdleTimeout
	if opts.IdleTimeout > 0 {
		cfg.MaxConnIdleTime = opts.IdleTimeout
	}
	cfg.MaxConnLifetime = maxConnLifetime
	// Shows up in pg_stat_activity next to the backend's own connections.
	if opts.AppName != "" {
		cfg.ConnConfig.RuntimeParams["application_name"] = opts.AppName
	}
	return cfg, nil
}

func pingTimeout(opts Options) time.Duration {
	if opts.PingTimeout > 0 {
		return opts.PingTimeout
	}
	return defaultPingTimeout
}
