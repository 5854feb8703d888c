package repository

import (
	"context"
	"errors"
	"time"

	"coupon-service/internal/domain/coupon"
	"coupon-service/internal/infra"
	"coupon-service/internal/infra/db"
	"coupon-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const uniqueViolationCode = "23505"

// CouponRepository persists the aggregate as a flat row in the coupons
// table. Reads hydrate through the trusting reconstruct path; validation
// happened at write time.
type CouponRepository struct{}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{}
}

func (r *CouponRepository) Save(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error {
	// Soft delete is the only mutation after creation, so the update arm
	// only touches status.
	_, err := tx.Exec(ctx, `
		INSERT INTO coupons (id, code, description, discount_value, expiration_date, published, redeemed, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status`,
		c.ID(),
		c.Code().String(),
		c.Description().String(),
		c.Discount().Value(),
		c.ExpirationDate().Value(),
		c.Published(),
		c.Redeemed(),
		c.Status().String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to save coupon", err)
	}
	return nil
}

func (r *CouponRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*coupon.Coupon, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, code, description, discount_value, expiration_date, published, redeemed, status
		FROM coupons
		WHERE id = $1`,
		id,
	)

	c, err := scanCoupon(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by id", err)
	}
	return c, nil
}

func (r *CouponRepository) ExistsByCode(ctx context.Context, tx db.DBTX, code string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM coupons WHERE code = $1)`,
		code,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check coupon code existence", err)
	}
	return exists, nil
}

func (r *CouponRepository) FindAll(ctx context.Context, tx db.DBTX, page, size int) (*shared.CouponPage, error) {
	var total int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM coupons`).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count coupons", err)
	}

	rows, err := tx.Query(ctx, `
		SELECT id, code, description, discount_value, expiration_date, published, redeemed, status
		FROM coupons
		ORDER BY code
		LIMIT $1 OFFSET $2`,
		size, page*size,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	content := make([]*coupon.Coupon, 0, size)
	for rows.Next() {
		c, scanErr := scanCoupon(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", scanErr)
		}
		content = append(content, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon rows", err)
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return &shared.CouponPage{
		Content:       content,
		Number:        page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func scanCoupon(row pgx.Row) (*coupon.Coupon, error) {
	var (
		id             uuid.UUID
		code           string
		description    string
		discountValue  decimal.Decimal
		expirationDate time.Time
		published      bool
		redeemed       bool
		status         string
	)

	if err := row.Scan(&id, &code, &description, &discountValue, &expirationDate, &published, &redeemed, &status); err != nil {
		return nil, err
	}

	return coupon.Reconstruct(id, code, description, discountValue, expirationDate, published, redeemed, status)
}
