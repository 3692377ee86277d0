package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"serial", 45292.0, "01-Jan-2024"},
		{"serial with time of day", 45356.75, "05-Mar-2024"},
		{"int serial", 45356, "05-Mar-2024"},
		{"iso date", "2024-03-05", "05-Mar-2024"},
		{"iso datetime", "2024-03-05T10:30:00Z", "05-Mar-2024"},
		{"display format", "05-Mar-2024", "05-Mar-2024"},
		{"us format", "03/05/2024", "05-Mar-2024"},
		{"long month", "March 5, 2024", "05-Mar-2024"},
		{"padded string", "  2024-03-05 ", "05-Mar-2024"},
		{"native time", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "05-Mar-2024"},
		{"nil", nil, ""},
		{"empty", "", ""},
		{"zero serial", 0.0, ""},
		{"garbage", "not a date", ""},
		{"bool", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCellDate(tt.in); got != tt.want {
				t.Fatalf("FormatCellDate(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShiftCellDate(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"01-Jan-2024", "01-Feb-2024"},
		{"29-Jan-2024", "29-Feb-2024"},
		{"29-Jan-2023", "01-Mar-2023"},
		{"15-Dec-2023", "15-Jan-2024"},
		{45292.0, "01-Feb-2024"},
		{"", ""},
		{"n/a", ""},
	}
	for _, tt := range tests {
		if got := ShiftCellDate(tt.in, 31); got != tt.want {
			t.Errorf("ShiftCellDate(%v, 31) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 2, 29, 17, 45, 12, 0, time.UTC),
		time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 4, 23, 59, 59, 0, time.UTC),
	}
	for _, d := range dates {
		formatted := FormatDate(d)
		parsed, ok := ParseDate(formatted)
		if !ok {
			t.Fatalf("ParseDate(%q) failed", formatted)
		}
		if parsed.Year() != d.Year() || parsed.Month() != d.Month() || parsed.Day() != d.Day() {
			t.Fatalf("round trip of %v gave %v", d, parsed)
		}
	}
}

func TestFormatDateZero(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "" {
		t.Fatalf("FormatDate(zero) = %q", got)
	}
}
