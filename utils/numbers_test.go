package utils

import (
	"math"
	"testing"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{12.5, 12.5},
		{" 42 ", 42},
		{"1e3", 1000},
		{"", 0},
		{"abc", 0},
		{"1,234", 0},
		{nil, 0},
		{true, 1},
		{false, 0},
		{math.NaN(), 0},
		{7, 7},
	}
	for _, tt := range tests {
		if got := ToNumber(tt.in); got != tt.want {
			t.Errorf("ToNumber(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStringOr(t *testing.T) {
	tests := []struct {
		in   any
		def  string
		want string
	}{
		{nil, "0", "0"},
		{"", "0", "0"},
		{0.0, "0", "0"},
		{"RM", "0", "RM"},
		{" ", "0", " "},
		{12.0, "", "12"},
		{4500123.0, "", "4500123"},
		{0.25, "", "0.25"},
	}
	for _, tt := range tests {
		if got := StringOr(tt.in, tt.def); got != tt.want {
			t.Errorf("StringOr(%#v, %q) = %q, want %q", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(33.335, 2); got != 33.34 {
		t.Errorf("Round(33.335, 2) = %v", got)
	}
	if got := Round(-1.005, 2); got != -1.01 {
		t.Errorf("Round(-1.005, 2) = %v", got)
	}
}
