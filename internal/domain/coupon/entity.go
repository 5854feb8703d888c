package coupon

import (
	"time"

	"coupon-service/internal/pkg/clock"
	"coupon-service/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Coupon is the aggregate root. Apart from status, no field changes after
// construction; status only ever moves to DELETED.
type Coupon struct {
	id             uuid.UUID
	code           Code
	description    Description
	discount       Discount
	expirationDate ExpirationDate
	published      bool
	redeemed       bool
	status         Status
}

// New validates every raw input through the value-object constructors and
// allocates a fresh id. The first violation short-circuits.
func New(
	clk clock.Clock,
	rawCode string,
	rawDescription string,
	discountValue decimal.Decimal,
	expiration time.Time,
	published bool,
	redeemed bool,
) (*Coupon, error) {
	code, err := NewCode(rawCode)
	if err != nil {
		return nil, err
	}
	description, err := NewDescription(rawDescription)
	if err != nil {
		return nil, err
	}
	discount, err := NewDiscount(discountValue)
	if err != nil {
		return nil, err
	}
	expirationDate, err := NewExpirationDate(clk, expiration)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:             uuid.New(),
		code:           code,
		description:    description,
		discount:       discount,
		expirationDate: expirationDate,
		published:      published,
		redeemed:       redeemed,
		status:         StatusActive,
	}, nil
}

// Reconstruct hydrates an aggregate from a stored row without validation.
// Only the status string can fail, with ErrInvalidStatus.
func Reconstruct(
	id uuid.UUID,
	code string,
	description string,
	discountValue decimal.Decimal,
	expiration time.Time,
	published bool,
	redeemed bool,
	rawStatus string,
) (*Coupon, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:             id,
		code:           ReconstructCode(code),
		description:    ReconstructDescription(description),
		discount:       ReconstructDiscount(discountValue),
		expirationDate: ReconstructExpirationDate(expiration),
		published:      published,
		redeemed:       redeemed,
		status:         status,
	}, nil
}

// Delete transitions the coupon to DELETED. Deleting twice is a conflict,
// not a logic bug.
func (c *Coupon) Delete() error {
	if c.status == StatusDeleted {
		return errs.Mark(
			errs.Newf("Coupon with id %s is already deleted", c.id),
			errs.ErrCouponAlreadyDeleted,
		)
	}
	c.status = StatusDeleted
	return nil
}

func (c *Coupon) ID() uuid.UUID                  { return c.id }
func (c *Coupon) Code() Code                     { return c.code }
func (c *Coupon) Description() Description       { return c.description }
func (c *Coupon) Discount() Discount             { return c.discount }
func (c *Coupon) ExpirationDate() ExpirationDate { return c.expirationDate }
func (c *Coupon) Published() bool                { return c.published }
func (c *Coupon) Redeemed() bool                 { return c.redeemed }
func (c *Coupon) Status() Status                 { return c.status }
