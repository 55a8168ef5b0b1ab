// Package numeric holds small integer helpers.
package numeric

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Pow returns base raised to exp. Overflow wraps like ordinary integer
// multiplication. It panics if exp is negative.
func Pow[T constraints.Integer](base T, exp int) T {
	if exp < 0 {
		panic("numeric: negative exponent")
	}
	result := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// RandomInt returns a uniformly distributed integer in [from, to].
// It panics unless to is greater than from.
func RandomInt(from, to int) int {
	if to <= from {
		panic("numeric: 'to' is not greater than 'from'")
	}
	return from + rand.IntN(to-from+1)
}

// BoolToInt returns 1 for true and 0 for false.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
