//go:build unit

package localtime_test

import (
	"encoding/json"
	"testing"
	"time"

	"coupon-service/internal/pkg/localtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("accepts the wire layout", func(t *testing.T) {
		got, err := localtime.Parse("2026-04-10T12:30:45")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 4, 10, 12, 30, 45, 0, time.UTC), got.Time)
	})

	t.Run("rejects zone suffixes and date-only strings", func(t *testing.T) {
		for _, raw := range []string{
			"2026-04-10T12:30:45Z",
			"2026-04-10T12:30:45-03:00",
			"2026-04-10",
			"10/04/2026 12:30:45",
			"",
		} {
			_, err := localtime.Parse(raw)
			assert.Error(t, err, "input %q", raw)
		}
	})
}

func TestString(t *testing.T) {
	v := localtime.New(time.Date(2026, 4, 10, 12, 30, 45, 0, time.UTC))
	assert.Equal(t, "2026-04-10T12:30:45", v.String())
}

func TestJSONRoundTrip(t *testing.T) {
	t.Run("marshals without zone suffix", func(t *testing.T) {
		v := localtime.New(time.Date(2026, 4, 10, 12, 30, 45, 0, time.UTC))
		data, err := json.Marshal(v)
		require.NoError(t, err)
		assert.Equal(t, `"2026-04-10T12:30:45"`, string(data))
	})

	t.Run("unmarshals from the wire layout", func(t *testing.T) {
		var v localtime.LocalDateTime
		require.NoError(t, json.Unmarshal([]byte(`"2026-04-10T12:30:45"`), &v))
		assert.Equal(t, time.Date(2026, 4, 10, 12, 30, 45, 0, time.UTC), v.Time)
	})

	t.Run("rejects non-string tokens", func(t *testing.T) {
		var v localtime.LocalDateTime
		assert.Error(t, json.Unmarshal([]byte(`1712752245`), &v))
	})

	t.Run("rejects malformed date-times", func(t *testing.T) {
		var v localtime.LocalDateTime
		err := json.Unmarshal([]byte(`"2026-13-40T99:00:00"`), &v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date-time format")
	})
}
