// Package repository реализует хранилище команд, пользователей, задач и колонок на PostgreSQL.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return &Postgres{Pool: pool}, nil
}

// ConnectStrategy открывает подключение к БД.
type ConnectStrategy func(ctx context.Context, dsn string) (*Postgres, error)

// Retrier повторяет подключение, пока БД поднимается вместе с сервисом.
type Retrier struct {
	attempts int
	delay    time.Duration
	connect  ConnectStrategy
}

// NewRetrier создаёт Retrier. attempts — число попыток, не меньше одной.
func NewRetrier(attempts int, delay time.Duration, connect ConnectStrategy) *Retrier {
	if attempts < 1 {
		attempts = 1
	}
	return &Retrier{attempts: attempts, delay: delay, connect: connect}
}

// Connect вызывает стратегию подключения до первого успеха или исчерпания попыток.
func (r *Retrier) Connect(ctx context.Context, dsn string) (*Postgres, error) {
	var lastErr error
	for i := 0; i < r.attempts; i++ {
		db, err := r.connect(ctx, dsn)
		if err == nil {
			return db, nil
		}
		lastErr = err

		if i == r.attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.delay):
		}
	}
	return nil, fmt.Errorf("connect after %d attempts: %w", r.attempts, lastErr)
}
