package casteljau

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Bounds and defaults for the curve order, the number of control points minus
// one. The upper bound limits the quadratic cost of evaluation.
const (
	MinOrder     = 1
	MaxOrder     = 100
	DefaultOrder = 3
)

// DefaultT is the parameter the construction is shown at initially.
const DefaultT = 0.5

// ClampOrder clamps n to [MinOrder, MaxOrder].
func ClampOrder(n int) int {
	return min(max(n, MinOrder), MaxOrder)
}

// ParseOrder interprets v, typically the raw value of an input field, as a
// curve order. Numbers and numeric strings are truncated towards zero and
// clamped to [MinOrder, MaxOrder]. It reports false for values that aren't
// numbers at all, including NaN and empty strings; callers should ignore
// those and keep the current order.
func ParseOrder(v any) (int, bool) {
	switch x := v.(type) {
	case nil, bool:
		// cast treats these as 0 and 1.
		return 0, false
	case string:
		x = strings.TrimSpace(x)
		if x == "" {
			return 0, false
		}
		if f, ok := overflow(x); ok {
			return truncOrder(f), true
		}
		v = x
	case json.Number:
		if f, ok := overflow(string(x)); ok {
			return truncOrder(f), true
		}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return truncOrder(f), true
}

// overflow reports whether s is a number too large or too small for a
// float64, returning the ±Inf or zero it rounds to. cast rejects those.
func overflow(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return f, true
	}
	return 0, false
}

func truncOrder(f float64) int {
	return int(min(max(math.Trunc(f), MinOrder), MaxOrder))
}

// ClampT clamps t to [0, 1]. It reports false for NaN.
func ClampT(t float64) (float64, bool) {
	if math.IsNaN(t) {
		return 0, false
	}
	return min(max(t, 0), 1), true
}
