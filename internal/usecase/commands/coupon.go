package commands

import (
	"context"
	"time"

	"coupon-service/internal/domain/coupon"
	"coupon-service/internal/infra"
	"coupon-service/internal/infra/db"
	"coupon-service/internal/pkg/clock"
	"coupon-service/internal/pkg/errs"
	"coupon-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCouponInput struct {
	Code           string
	Description    string
	DiscountValue  decimal.Decimal
	ExpirationDate time.Time
	Published      bool
	Redeemed       bool
}

type CouponCommands interface {
	Create(ctx context.Context, input CreateCouponInput) (*coupon.Coupon, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	repo  CouponRepository
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, repo CouponRepository, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, repo: repo, clock: clk}
}

func (uc *couponCommandsImpl) Create(ctx context.Context, input CreateCouponInput) (*coupon.Coupon, error) {
	var created *coupon.Coupon

	err := uc.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		// Uniqueness is probed on the canonical form before the aggregate
		// re-validates the raw inputs.
		exists, derr := uc.repo.ExistsByCode(ctx, tx, coupon.CanonicalCode(input.Code))
		if derr != nil {
			return derr
		}
		if exists {
			return duplicateCodeError()
		}

		agg, derr := coupon.New(
			uc.clock,
			input.Code,
			input.Description,
			input.DiscountValue,
			input.ExpirationDate,
			input.Published,
			input.Redeemed,
		)
		if derr != nil {
			return derr
		}

		if derr = uc.repo.Save(ctx, tx, agg); derr != nil {
			// The pre-check is advisory; a concurrent create that wins the
			// race surfaces here through the unique index.
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return duplicateCodeError()
			}
			return derr
		}

		created = agg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *couponCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		agg, derr := uc.repo.FindByID(ctx, tx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return notFoundError(id)
			}
			return derr
		}

		if derr = agg.Delete(); derr != nil {
			return derr
		}

		return uc.repo.Save(ctx, tx, agg)
	})
}

func duplicateCodeError() error {
	return errs.Mark(errs.New("A coupon with this code already exists"), errs.ErrInvalidCoupon)
}

func notFoundError(id uuid.UUID) error {
	return errs.Mark(errs.Newf("Coupon not found with id: %s", id), errs.ErrCouponNotFound)
}
