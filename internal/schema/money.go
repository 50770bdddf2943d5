package schema

import (
	"math"
	"time"
)

// ToCents converts a decimal currency amount from the wire into integer
// minor units. The remote sends floats; truncation (not rounding) matches
// its own accounting, so 149.999 maps to 14999.
func ToCents(value float64) int64 {
	return int64(math.Floor(value * 100))
}

const dateOnlyLayout = "2006-01-02"

// parseDate accepts the two date shapes the remote emits: RFC 3339
// timestamps and bare calendar dates.
func parseDate(field, raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		return t, nil
	}
	return time.Time{}, failScalar(field, "date", raw)
}

func serializeDate(t time.Time) string {
	return t.Format(time.RFC3339)
}
