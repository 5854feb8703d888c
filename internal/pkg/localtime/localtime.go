// Package localtime carries zone-less wall-clock timestamps on the wire
// using the yyyy-MM-ddTHH:mm:ss pattern (no zone suffix, no millis).
package localtime

import (
	"encoding/json"
	"time"

	"coupon-service/internal/pkg/errs"
)

const Layout = "2006-01-02T15:04:05"

// LocalDateTime is a naive date-time. The wrapped time.Time always has the
// UTC location as a placeholder; only the wall-clock fields are meaningful.
type LocalDateTime struct {
	time.Time
}

func New(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t}
}

// Parse reads a wire string in Layout form.
func Parse(s string) (LocalDateTime, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return LocalDateTime{}, errs.Wrap(err, "invalid date-time format, expected yyyy-MM-ddTHH:mm:ss")
	}
	return LocalDateTime{Time: t}, nil
}

func (t LocalDateTime) String() string {
	return t.Format(Layout)
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(Layout))
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
