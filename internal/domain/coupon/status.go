package coupon

import (
	"strings"

	"coupon-service/internal/pkg/errs"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusDeleted  Status = "DELETED"
)

// ParseStatus maps a persisted status name onto the enum. Matching is
// case-insensitive, mirroring how older rows were written.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToUpper(raw) {
	case string(StatusActive):
		return StatusActive, nil
	case string(StatusInactive):
		return StatusInactive, nil
	case string(StatusDeleted):
		return StatusDeleted, nil
	default:
		return "", errs.Mark(errs.Newf("Invalid coupon status: %s", raw), errs.ErrInvalidStatus)
	}
}

func (s Status) String() string {
	return string(s)
}
