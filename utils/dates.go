package utils

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the display format stored on order lines, e.g. 05-Mar-2024.
const DateLayout = "02-Jan-2006"

// excelEpochOffset is the serial day number of 1970-01-01 in the 1900 date system.
const excelEpochOffset = 25569

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	DateLayout,
	"2-Jan-2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"02-January-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	time.RFC1123,
	time.RFC1123Z,
}

// ParseDate accepts a spreadsheet cell and returns the date it denotes.
// Numbers are 1900-system serial dates, strings are calendar dates and
// time.Time passes through. Anything else, or an empty value, is no date.
func ParseDate(v any) (time.Time, bool) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case float64:
		return SerialToTime(x)
	case int:
		return SerialToTime(float64(x))
	case int64:
		return SerialToTime(float64(x))
	case string:
		return parseDateString(x)
	case time.Time:
		if x.IsZero() {
			return time.Time{}, false
		}
		return x.UTC(), true
	default:
		return time.Time{}, false
	}
}

// SerialToTime converts a spreadsheet serial date to UTC.
// A zero serial counts as an empty cell.
func SerialToTime(serial float64) (time.Time, bool) {
	if serial == 0 || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}
	ms := (serial - excelEpochOffset) * 86400 * 1000
	return time.UnixMilli(int64(ms)).UTC(), true
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatDate renders t as DD-MMM-YYYY. The zero time renders as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatCellDate parses a cell and formats it, yielding "" when it is not a date.
func FormatCellDate(v any) string {
	t, ok := ParseDate(v)
	if !ok {
		return ""
	}
	return FormatDate(t)
}

// ShiftCellDate parses a cell, adds days and formats the result.
func ShiftCellDate(v any, days int) string {
	t, ok := ParseDate(v)
	if !ok {
		return ""
	}
	return FormatDate(t.AddDate(0, 0, days))
}
