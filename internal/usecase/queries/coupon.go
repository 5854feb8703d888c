package queries

import (
	"context"

	"coupon-service/internal/domain/coupon"
	"coupon-service/internal/infra"
	"coupon-service/internal/infra/db"
	"coupon-service/internal/pkg/errs"
	"coupon-service/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
)

// CouponReadStore is the read-side persistence port.
type CouponReadStore interface {
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*coupon.Coupon, error)
	FindAll(ctx context.Context, tx db.DBTX, page, size int) (*shared.CouponPage, error)
}

type CouponQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	List(ctx context.Context, page, size int) (*shared.CouponPage, error)
}

type couponQueriesImpl struct {
	uow   shared.UnitOfWork
	store CouponReadStore
}

func NewCouponQueries(uow shared.UnitOfWork, store CouponReadStore) CouponQueries {
	return &couponQueriesImpl{uow: uow, store: store}
}

func (uc *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	var found *coupon.Coupon

	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		c, derr := uc.store.FindByID(ctx, tx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(errs.Newf("Coupon not found with id: %s", id), errs.ErrCouponNotFound)
			}
			return derr
		}
		found = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List pages through every coupon ever created, deleted ones included.
func (uc *couponQueriesImpl) List(ctx context.Context, page, size int) (*shared.CouponPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	var result *shared.CouponPage

	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		p, derr := uc.store.FindAll(ctx, tx, page, size)
		if derr != nil {
			return derr
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
