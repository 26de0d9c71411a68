// Package mathx provides overflow-safe integer arithmetic for capacity and
// byte-size calculations. Every element-count to byte-size conversion in the
// container goes through these helpers so that address-space overflow is caught
// in exactly one place.
package mathx

import "math"

// Add adds a and b, returning ok = false when the result would overflow int.
func Add(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Mul multiplies a and b, returning ok = false when the result would overflow
// int. This is essential for count * elementSize calculations.
func Mul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
		return a * b, true
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
		return a * b, true
	}
	// Mixed signs - check against MinInt
	if a > 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	} else {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}
