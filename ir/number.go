package ir

import "math"

// floatTolerance is how close a double must be to its float32 rounding to
// be stored as a Float. Peer implementations use the same constant.
const floatTolerance = 0.00001

const (
	minInt64F = -9223372036854775808.0
	maxInt64F = 9223372036854775808.0
)

// integral reports whether f is a whole number representable as an int64.
func integral(f float64) (int64, bool) {
	if f != math.Trunc(f) {
		return 0, false
	}
	if f < minInt64F || f >= maxInt64F {
		return 0, false
	}
	return int64(f), true
}
