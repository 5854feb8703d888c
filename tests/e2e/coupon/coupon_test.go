//go:build e2e

package coupon_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"coupon-service/internal/handler/dto/response"
	"coupon-service/internal/pkg/localtime"
	"coupon-service/tests/common/dbtest"
	"coupon-service/tests/common/httptest"
	"coupon-service/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const couponsURL = "/api/v1/coupons"

type CouponSuite struct {
	e2e.SharedSuite
}

func TestCouponSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CouponSuite))
}

func futureExpiration() string {
	return time.Now().AddDate(0, 1, 0).Format(localtime.Layout)
}

func createRequestBody(code string) map[string]any {
	return map[string]any{
		"code":           code,
		"description":    "Desconto de primavera",
		"discountValue":  10.5,
		"expirationDate": futureExpiration(),
		"published":      true,
		"redeemed":       false,
	}
}

// =============================================================================
// TestCreateCoupon
// =============================================================================

func (s *CouponSuite) TestCreateCoupon() {
	s.Run("Normal case: create persists a canonicalized coupon", func() {
		t := s.T()

		body := createRequestBody("ABC-123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, body)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.CouponResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		expected := response.CouponResponse{
			Code:        "ABC123",
			Description: "Desconto de primavera",
			Published:   true,
			Redeemed:    false,
			Status:      "ACTIVE",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.CouponResponse{}, "ID", "DiscountValue", "ExpirationDate"),
		}
		if diff := cmp.Diff(expected, created, opts...); diff != "" {
			t.Errorf("Coupon response mismatch (-want +got):\n%s", diff)
		}
		require.True(t, created.DiscountValue.Equal(decimal.NewFromFloat(10.5)))
		require.NotEqual(t, uuid.Nil, created.ID)

		// The row is readable through the API again
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL+"/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, dw.Code)
	})

	s.Run("Error case: duplicate canonical code is rejected", func() {
		t := s.T()

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, createRequestBody("SA-ME01"))
		require.Equal(t, http.StatusCreated, first.Code)

		// Different raw spelling, same canonical code
		second := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, createRequestBody("same-01"))
		require.Equal(t, http.StatusBadRequest, second.Code)

		body := httptest.DecodeBody(t, second)
		require.Equal(t, "Bad Request", body["error"])
		require.Equal(t, "A coupon with this code already exists", body["message"])
		require.Equal(t, int64(1), dbtest.CountCoupons(t, s.DB))
	})

	s.Run("Error case: past expiration date is rejected", func() {
		t := s.T()

		body := createRequestBody("PAST01")
		body["expirationDate"] = "2020-01-01T00:00:00"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, body)
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := httptest.DecodeBody(t, w)
		require.Equal(t, "Expiration date cannot be in the past", resp["message"])
		require.Equal(t, int64(0), dbtest.CountCoupons(t, s.DB))
	})

	s.Run("Error case: unknown attribute is rejected with the field name", func() {
		t := s.T()

		body := createRequestBody("EXTRA1")
		body["discount"] = 99

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, body)
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := httptest.DecodeBody(t, w)
		require.Equal(t, "Unrecognized field", resp["error"])
		require.Equal(t, "Atributo 'discount' não reconhecido ou não permitido na requisição", resp["message"])
	})
}

// =============================================================================
// TestDeleteCoupon
// =============================================================================

func (s *CouponSuite) TestDeleteCoupon() {
	s.Run("Normal case: delete flips status instead of removing the row", func() {
		t := s.T()

		id := dbtest.CreateTestCoupon(t, s.DB, "DEL001", "ACTIVE", time.Now().AddDate(0, 1, 0))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, couponsURL+"/"+id.String(), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		require.Equal(t, "DELETED", dbtest.CouponStatus(t, s.DB, id))
		require.Equal(t, int64(1), dbtest.CountCoupons(t, s.DB))
	})

	s.Run("Error case: second delete returns 409", func() {
		t := s.T()

		id := dbtest.CreateTestCoupon(t, s.DB, "DEL002", "ACTIVE", time.Now().AddDate(0, 1, 0))

		first := httptest.PerformRequest(t, s.Router, http.MethodDelete, couponsURL+"/"+id.String(), nil)
		require.Equal(t, http.StatusNoContent, first.Code)

		second := httptest.PerformRequest(t, s.Router, http.MethodDelete, couponsURL+"/"+id.String(), nil)
		require.Equal(t, http.StatusConflict, second.Code)

		body := httptest.DecodeBody(t, second)
		require.Equal(t, "Conflict", body["error"])
		require.Equal(t, "Coupon with id "+id.String()+" is already deleted", body["message"])
	})

	s.Run("Error case: unknown id returns 404", func() {
		t := s.T()

		id := uuid.New()
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, couponsURL+"/"+id.String(), nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		body := httptest.DecodeBody(t, w)
		require.Equal(t, "Not Found", body["error"])
		require.Equal(t, "Coupon not found with id: "+id.String(), body["message"])
	})
}

// =============================================================================
// TestListCoupons
// =============================================================================

func (s *CouponSuite) TestListCoupons() {
	s.Run("Normal case: listing includes deleted coupons", func() {
		t := s.T()

		exp := time.Now().AddDate(0, 1, 0)
		dbtest.CreateTestCoupon(t, s.DB, "LIST01", "ACTIVE", exp)
		dbtest.CreateTestCoupon(t, s.DB, "LIST02", "DELETED", exp)
		dbtest.CreateTestCoupon(t, s.DB, "LIST03", "INACTIVE", exp)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := httptest.DecodeBody(t, w)
		content := body["content"].([]any)
		require.Len(t, content, 3)

		page := body["page"].(map[string]any)
		require.Equal(t, float64(20), page["size"])
		require.Equal(t, float64(0), page["number"])
		require.Equal(t, float64(3), page["totalElements"])
		require.Equal(t, float64(1), page["totalPages"])
	})

	s.Run("Normal case: pagination splits the listing", func() {
		t := s.T()

		exp := time.Now().AddDate(0, 1, 0)
		for _, code := range []string{"PAGE01", "PAGE02", "PAGE03", "PAGE04", "PAGE05"} {
			dbtest.CreateTestCoupon(t, s.DB, code, "ACTIVE", exp)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL+"?page=1&size=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := httptest.DecodeBody(t, w)
		content := body["content"].([]any)
		require.Len(t, content, 2)

		page := body["page"].(map[string]any)
		require.Equal(t, float64(2), page["size"])
		require.Equal(t, float64(1), page["number"])
		require.Equal(t, float64(5), page["totalElements"])
		require.Equal(t, float64(3), page["totalPages"])
	})
}
