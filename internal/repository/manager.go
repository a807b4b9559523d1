package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды PostgreSQL, при которых транзакцию можно безопасно повторить.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

const defaultTxAttempts = 3

type txKey struct{}

// TransactionManager открывает транзакции для сервисов и кладёт их в контекст.
type TransactionManager struct {
	db       *Postgres
	opts     pgx.TxOptions
	attempts int
}

// NewTransactionManager создаёт менеджер с уровнем изоляции READ COMMITTED.
func NewTransactionManager(db *Postgres) *TransactionManager {
	return &TransactionManager{
		db:       db,
		opts:     pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		attempts: defaultTxAttempts,
	}
}

// RunInTransaction выполняет fn внутри транзакции. Вложенный вызов переиспользует
// уже открытую транзакцию. Конфликт сериализации или взаимоблокировка повторяются
// целиком, не больше attempts раз.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	var err error
	for i := 0; i < tm.attempts; i++ {
		err = tm.runOnce(ctx, fn)
		if !isRetryable(err) {
			return err
		}
	}
	return fmt.Errorf("transaction retried %d times: %w", tm.attempts, err)
}

func (tm *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := tm.db.Pool.BeginTx(ctx, tm.opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}

// DBTX — общее подмножество *pgxpool.Pool и pgx.Tx, которым пользуются репозитории.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// GetQueryExecutor возвращает транзакцию из контекста или пул, если транзакции нет.
func (p *Postgres) GetQueryExecutor(ctx context.Context) DBTX {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return p.Pool
}
