package dataset

import (
	"math"
	"strings"
	"time"

	"github.com/go-gota/gota/series"
)

// IsMissing reports whether the element holds no value.
func IsMissing(el series.Element) bool {
	if el == nil || el.IsNA() {
		return true
	}
	if el.Type() == series.Float && math.IsNaN(el.Float()) {
		return true
	}
	return false
}

// IsZero reports whether a present element is numerically zero. A false
// boolean, including the "False" spelling pandas writes to CSV, counts as zero.
func IsZero(el series.Element) bool {
	if IsMissing(el) {
		return false
	}
	if el.Type() == series.String {
		return strings.EqualFold(strings.TrimSpace(el.String()), "false")
	}
	return el.Float() == 0
}

// IntValue returns the element as an integer when it holds a whole number.
func IntValue(el series.Element) (int, bool) {
	if IsMissing(el) {
		return 0, false
	}
	f := el.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// StringValue returns the element text, or false when missing.
func StringValue(el series.Element) (string, bool) {
	if IsMissing(el) {
		return "", false
	}
	return el.String(), true
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04",
	"02.01.2006",
}

// ParseTime reads the timestamp formats found in the date columns. Values
// without an offset are taken as UTC.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TimeValue parses the element as a timestamp.
func TimeValue(el series.Element) (time.Time, bool) {
	s, ok := StringValue(el)
	if !ok {
		return time.Time{}, false
	}
	return ParseTime(s)
}
