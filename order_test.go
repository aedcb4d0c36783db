package casteljau

import (
	"encoding/json"
	"math"
	"testing"
)

func TestClampOrder(t *testing.T) {
	for _, tt := range []struct {
		in, want int
	}{
		{-1, 1}, {0, 1}, {1, 1}, {50, 50}, {100, 100}, {101, 100},
	} {
		if got := ClampOrder(tt.in); got != tt.want {
			t.Errorf("ClampOrder(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseOrder(t *testing.T) {
	for _, tt := range []struct {
		in   any
		want int
		ok   bool
	}{
		{"3", 3, true},
		{" 12 ", 12, true},
		{"7.9", 7, true},
		{"0", 1, true},
		{"-4", 1, true},
		{"1000", 100, true},
		{"1e9", 100, true},
		{"Inf", 100, true},
		{"-Inf", 1, true},
		{5, 5, true},
		{int64(250), 100, true},
		{2.5, 2, true},
		{json.Number("42"), 42, true},
		{"1e400", 100, true},
		{"-1e400", 1, true},
		{"1e-400", 1, true},
		{json.Number("1e400"), 100, true},
		{json.Number("-1e400"), 1, true},
		{math.Inf(-1), 1, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{math.NaN(), 0, false},
		{nil, 0, false},
		{true, 0, false},
		{[]int{1}, 0, false},
	} {
		got, ok := ParseOrder(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseOrder(%#v) = (%d, %t), want (%d, %t)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClampT(t *testing.T) {
	for _, tt := range []struct {
		in, want float64
		ok       bool
	}{
		{0.5, 0.5, true},
		{-1, 0, true},
		{2, 1, true},
		{math.Inf(1), 1, true},
		{math.NaN(), 0, false},
	} {
		got, ok := ClampT(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ClampT(%v) = (%v, %t), want (%v, %t)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
