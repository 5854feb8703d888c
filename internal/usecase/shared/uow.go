package shared

import (
	"context"

	"coupon-service/internal/infra/db"
)

// UnitOfWork scopes repository calls to a single database transaction. Each
// use case borrows one connection and returns it on any exit path.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// WithinReadOnly: read-only transaction for consistent multi-statement reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
