package coupon

import (
	"regexp"
	"strings"
	"time"

	"coupon-service/internal/pkg/clock"
	"coupon-service/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const codeLength = 6

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

var minDiscount = decimal.NewFromFloat(0.5)

// Expiration is compared against wall-clock time in Sao Paulo.
var saoPauloZone = loadSaoPauloZone()

func loadSaoPauloZone() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// UTC-3, Brazil abolished DST in 2019
		return time.FixedZone("America/Sao_Paulo", -3*60*60)
	}
	return loc
}

// CanonicalCode strips everything outside [A-Za-z0-9] and upper-cases the
// rest. Codes are stored and compared in this form.
func CanonicalCode(raw string) string {
	return strings.ToUpper(nonAlphanumeric.ReplaceAllString(raw, ""))
}

type Code struct {
	value string
}

func NewCode(raw string) (Code, error) {
	if strings.TrimSpace(raw) == "" {
		return Code{}, errs.Mark(errs.New("Coupon code is required"), errs.ErrInvalidCoupon)
	}

	cleaned := CanonicalCode(raw)
	if len(cleaned) != codeLength {
		return Code{}, errs.Mark(
			errs.Newf("Coupon code must have exactly %d alphanumeric characters (after removing special characters)", codeLength),
			errs.ErrInvalidCoupon,
		)
	}

	return Code{value: cleaned}, nil
}

// ReconstructCode trusts the stored value; rows written under older rules
// must still load.
func ReconstructCode(value string) Code {
	return Code{value: value}
}

func (c Code) String() string {
	return c.value
}

type Description struct {
	value string
}

func NewDescription(raw string) (Description, error) {
	if strings.TrimSpace(raw) == "" {
		return Description{}, errs.Mark(errs.New("Description is required"), errs.ErrInvalidCoupon)
	}
	return Description{value: raw}, nil
}

func ReconstructDescription(value string) Description {
	return Description{value: value}
}

func (d Description) String() string {
	return d.value
}

type Discount struct {
	value decimal.Decimal
}

func NewDiscount(raw decimal.Decimal) (Discount, error) {
	if raw.LessThan(minDiscount) {
		return Discount{}, errs.Mark(errs.New("Discount value must be at least 0.5"), errs.ErrInvalidCoupon)
	}
	return Discount{value: raw}, nil
}

func ReconstructDiscount(value decimal.Decimal) Discount {
	return Discount{value: value}
}

func (d Discount) Value() decimal.Decimal {
	return d.value
}

// ExpirationDate is a naive local date-time in the Sao Paulo zone.
type ExpirationDate struct {
	value time.Time
}

func NewExpirationDate(clk clock.Clock, raw time.Time) (ExpirationDate, error) {
	if raw.IsZero() {
		return ExpirationDate{}, errs.Mark(errs.New("Expiration date is required"), errs.ErrExpirationDate)
	}

	if raw.Before(nowInSaoPaulo(clk)) {
		return ExpirationDate{}, errs.Mark(errs.New("Expiration date cannot be in the past"), errs.ErrExpirationDate)
	}

	return ExpirationDate{value: raw}, nil
}

func ReconstructExpirationDate(value time.Time) ExpirationDate {
	return ExpirationDate{value: value}
}

func (e ExpirationDate) Value() time.Time {
	return e.value
}

// nowInSaoPaulo returns the current Sao Paulo wall-clock time as a naive
// value (UTC location placeholder), comparable with wire timestamps.
func nowInSaoPaulo(clk clock.Clock) time.Time {
	now := clk.Now().In(saoPauloZone)
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
}
