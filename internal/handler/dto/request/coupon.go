package request

import (
	"regexp"
	"strings"

	"coupon-service/internal/pkg/localtime"
	"coupon-service/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

var minDiscountValue = decimal.NewFromFloat(0.5)

var unknownFieldPattern = regexp.MustCompile(`json: unknown field "([^"]+)"`)

// CreateCouponRequest carries the create payload. Fields are pointers so
// absent and present-but-invalid can be told apart.
type CreateCouponRequest struct {
	Code           *string                  `json:"code"`
	Description    *string                  `json:"description"`
	DiscountValue  *decimal.Decimal         `json:"discountValue"`
	ExpirationDate *localtime.LocalDateTime `json:"expirationDate"`
	Published      bool                     `json:"published"`
	Redeemed       bool                     `json:"redeemed"`
}

// Validate enforces request shape before the domain is reached. Messages
// are collected in field order and joined by the handler.
func (r CreateCouponRequest) Validate() []string {
	var msgs []string

	if r.Code == nil || strings.TrimSpace(*r.Code) == "" {
		msgs = append(msgs, "Code is required")
	}
	if r.Description == nil || strings.TrimSpace(*r.Description) == "" {
		msgs = append(msgs, "Description is required")
	}
	switch {
	case r.DiscountValue == nil:
		msgs = append(msgs, "Discount value is required")
	case r.DiscountValue.LessThan(minDiscountValue):
		msgs = append(msgs, "Discount value must be at least 0.5")
	}
	if r.ExpirationDate == nil {
		msgs = append(msgs, "Expiration date is required")
	}

	return msgs
}

// ToInput assumes Validate passed.
func (r CreateCouponRequest) ToInput() commands.CreateCouponInput {
	return commands.CreateCouponInput{
		Code:           *r.Code,
		Description:    *r.Description,
		DiscountValue:  *r.DiscountValue,
		ExpirationDate: r.ExpirationDate.Time,
		Published:      r.Published,
		Redeemed:       r.Redeemed,
	}
}

// UnknownFieldName extracts the offending property from the decoder error
// raised under DisallowUnknownFields.
func UnknownFieldName(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	m := unknownFieldPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return "", false
	}
	return m[1], true
}
