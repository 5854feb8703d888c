package errs

import "errors"

// Domain-specific sentinel errors. Concrete messages are created at the
// raise site and tagged with Mark; the HTTP boundary dispatches on these.
var (
	// Coupon validation errors
	ErrInvalidCoupon  = errors.New("invalid coupon")
	ErrExpirationDate = errors.New("invalid expiration date")

	// Coupon lookup / lifecycle errors
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrCouponAlreadyDeleted = errors.New("coupon already deleted")

	// Persisted status string does not match the enum
	ErrInvalidStatus = errors.New("invalid coupon status")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
