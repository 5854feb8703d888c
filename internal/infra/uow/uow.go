package uow

import (
	"context"

	"coupon-service/internal/infra/db"
	"coupon-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUoW runs use-case callbacks inside pgx transactions.
type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) *PostgresUoW {
	return &PostgresUoW{pool: pool}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	_, err := shared.WithDefaultRetry(ctx, u.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(ctx, tx)
	})
	return err
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	_, err := shared.RunInReadOnlyTx(ctx, u.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(ctx, tx)
	})
	return err
}
