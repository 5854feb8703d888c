//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// CreateTestCoupon inserts a coupon row directly, bypassing the API. The
// code must already be canonical (6 uppercase alphanumerics).
func CreateTestCoupon(t *testing.T, db DBLike, code, status string, expiration time.Time) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO coupons (id, code, description, discount_value, expiration_date, published, redeemed, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		couponID, code, "Seeded coupon "+code, decimal.NewFromFloat(10.50), expiration, true, false, status)
	require.NoError(t, err)

	return couponID
}

// CouponStatus reads the persisted status of one row.
func CouponStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM coupons WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

// CountCoupons returns the total row count, deleted rows included.
func CountCoupons(t *testing.T, db DBLike) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM coupons").Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB truncates the coupon table between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), "TRUNCATE TABLE coupons")
	return err
}
