//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"coupon-service/internal/domain/coupon"
	"coupon-service/internal/pkg/clock"
	"coupon-service/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 15:00 UTC is 12:00 wall clock in Sao Paulo (UTC-3, no DST since 2019).
var frozenNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

// naive Sao Paulo wall clock matching frozenNow
var frozenNowLocal = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestCanonicalCode(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "already canonical", raw: "ABC123", expected: "ABC123"},
		{name: "lower case", raw: "abc123", expected: "ABC123"},
		{name: "punctuation stripped", raw: "A-BC12-3", expected: "ABC123"},
		{name: "mixed noise", raw: " ab..c_1+2@3 ", expected: "ABC123"},
		{name: "empty", raw: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, coupon.CanonicalCode(tc.raw))
		})
	}
}

func TestNewCode(t *testing.T) {
	testCases := []struct {
		name       string
		raw        string
		expected   string
		errIs      error
		errMessage string
	}{
		{name: "exactly six alphanumerics", raw: "ABC123", expected: "ABC123"},
		{name: "six alphanumerics with punctuation", raw: "A-BC12-3", expected: "ABC123"},
		{name: "lower case upper cased", raw: "abc123", expected: "ABC123"},
		{
			name:       "empty is required",
			raw:        "",
			errIs:      errs.ErrInvalidCoupon,
			errMessage: "Coupon code is required",
		},
		{
			name:       "whitespace only is required",
			raw:        "   ",
			errIs:      errs.ErrInvalidCoupon,
			errMessage: "Coupon code is required",
		},
		{
			name:       "five alphanumerics after stripping",
			raw:        "AB-C12",
			errIs:      errs.ErrInvalidCoupon,
			errMessage: "Coupon code must have exactly 6 alphanumeric characters (after removing special characters)",
		},
		{
			name:       "seven alphanumerics after stripping",
			raw:        "ABC1234",
			errIs:      errs.ErrInvalidCoupon,
			errMessage: "Coupon code must have exactly 6 alphanumeric characters (after removing special characters)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := coupon.NewCode(tc.raw)
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.errMessage, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, code.String())
		})
	}
}

func TestNewDescription(t *testing.T) {
	t.Run("stored verbatim", func(t *testing.T) {
		d, err := coupon.NewDescription("  Desconto de primavera  ")
		require.NoError(t, err)
		assert.Equal(t, "  Desconto de primavera  ", d.String())
	})

	t.Run("empty is required", func(t *testing.T) {
		_, err := coupon.NewDescription("")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidCoupon)
		assert.Equal(t, "Description is required", err.Error())
	})

	t.Run("whitespace only is required", func(t *testing.T) {
		_, err := coupon.NewDescription(" \t\n ")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidCoupon)
	})
}

func TestNewDiscount(t *testing.T) {
	testCases := []struct {
		name  string
		value decimal.Decimal
		errIs error
	}{
		{name: "exactly minimum", value: decimal.NewFromFloat(0.5)},
		{name: "above minimum", value: decimal.NewFromFloat(10.50)},
		{name: "just below minimum", value: decimal.NewFromFloat(0.49), errIs: errs.ErrInvalidCoupon},
		{name: "zero", value: decimal.Zero, errIs: errs.ErrInvalidCoupon},
		{name: "negative", value: decimal.NewFromFloat(-1), errIs: errs.ErrInvalidCoupon},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := coupon.NewDiscount(tc.value)
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, "Discount value must be at least 0.5", err.Error())
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.value.Equal(d.Value()))
		})
	}
}

func TestNewExpirationDate(t *testing.T) {
	clk := clock.NewMockClock(frozenNow)

	testCases := []struct {
		name       string
		value      time.Time
		errIs      error
		errMessage string
	}{
		{name: "in the future", value: frozenNowLocal.Add(30 * 24 * time.Hour)},
		{name: "equal to now", value: frozenNowLocal},
		{
			name:       "one second in the past",
			value:      frozenNowLocal.Add(-time.Second),
			errIs:      errs.ErrExpirationDate,
			errMessage: "Expiration date cannot be in the past",
		},
		{
			name:       "one day in the past",
			value:      frozenNowLocal.Add(-24 * time.Hour),
			errIs:      errs.ErrExpirationDate,
			errMessage: "Expiration date cannot be in the past",
		},
		{
			name:       "zero is required",
			value:      time.Time{},
			errIs:      errs.ErrExpirationDate,
			errMessage: "Expiration date is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := coupon.NewExpirationDate(clk, tc.value)
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.errMessage, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, e.Value())
		})
	}
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected coupon.Status
		wantErr  bool
	}{
		{name: "active", raw: "ACTIVE", expected: coupon.StatusActive},
		{name: "inactive", raw: "INACTIVE", expected: coupon.StatusInactive},
		{name: "deleted", raw: "DELETED", expected: coupon.StatusDeleted},
		{name: "case insensitive", raw: "active", expected: coupon.StatusActive},
		{name: "unknown", raw: "EXPIRED", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := coupon.ParseStatus(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidStatus)
				assert.Contains(t, err.Error(), "Invalid coupon status")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}
}

func TestReconstructSkipsValidation(t *testing.T) {
	// rows written under older rules must still load
	code := coupon.ReconstructCode("OLD")
	assert.Equal(t, "OLD", code.String())

	desc := coupon.ReconstructDescription("")
	assert.Equal(t, "", desc.String())

	discount := coupon.ReconstructDiscount(decimal.NewFromFloat(0.1))
	assert.True(t, decimal.NewFromFloat(0.1).Equal(discount.Value()))

	past := frozenNowLocal.Add(-365 * 24 * time.Hour)
	exp := coupon.ReconstructExpirationDate(past)
	assert.Equal(t, past, exp.Value())
}
