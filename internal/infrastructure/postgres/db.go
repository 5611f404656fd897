package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	cfg.MaxConns = 25
	cfg.MinConns = 5
	cfg.MaxConnLifetime = 1 * time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	cfg.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, nil
}

// Connector hands out a single process-lifetime pool. Concurrent first
// callers share one in-flight dial; later callers get the cached result,
// including a cached error.
type Connector struct {
	databaseURL string

	once sync.Once
	pool *pgxpool.Pool
	err  error

	dial func(ctx context.Context, databaseURL string) (*pgxpool.Pool, error)
}

func NewConnector(databaseURL string) *Connector {
	return &Connector{databaseURL: databaseURL, dial: NewPool}
}

func (c *Connector) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	c.once.Do(func() {
		c.pool, c.err = c.dial(ctx, c.databaseURL)
	})
	return c.pool, c.err
}

func (c *Connector) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}
