package shared

import (
	"coupon-service/internal/domain/coupon"
)

// CouponPage is one page of the full coupon listing, deleted rows included.
// Number is zero-based.
type CouponPage struct {
	Content       []*coupon.Coupon
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
}
