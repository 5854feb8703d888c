package commands

import (
	"context"

	"coupon-service/internal/domain/coupon"
	"coupon-service/internal/infra/db"

	"github.com/google/uuid"
)

// CouponRepository is the write-side persistence port. Implementations
// signal failures through infra.RepositoryError kinds.
type CouponRepository interface {
	Save(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*coupon.Coupon, error)
	ExistsByCode(ctx context.Context, tx db.DBTX, code string) (bool, error)
}
