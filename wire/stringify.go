package wire

import (
	"strconv"
	"time"
)

// Parameter values use fixed, locale-independent textual conversion.

// FromInt renders an integer in base 10.
func FromInt(v int) string { return strconv.Itoa(v) }

// FromInt64 renders a 64-bit integer in base 10.
func FromInt64(v int64) string { return strconv.FormatInt(v, 10) }

// FromBool renders a boolean as "true" or "false".
func FromBool(v bool) string { return strconv.FormatBool(v) }

// FromTime renders a timestamp as ISO 8601 in UTC with second precision.
func FromTime(t time.Time) string { return t.UTC().Format("2006-01-02T15:04:05Z") }
