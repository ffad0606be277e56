// Package numbers provides small generic numeric helpers shared by the
// container packages.
package numbers

import (
	"math"

	"github.com/Invicton-Labs/go-deque/constraints"
)

// Min returns the smallest of the given values.
func Min[T constraints.Ordered](val1 T, vals ...T) T {
	m := val1
	for _, v := range vals {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest of the given values.
func Max[T constraints.Ordered](val1 T, vals ...T) T {
	m := val1
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}

// Abs is a generic function for finding the absolute value
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return v * -1
	}
	return v
}

// IntSqrt returns the floor of the square root of v, or 0 for negative
// inputs. The float result is corrected so that exact squares and their
// neighbors are never off by one.
func IntSqrt[T constraints.Signed](v T) T {
	if v <= 0 {
		return 0
	}
	r := T(math.Sqrt(float64(v)))
	for r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}
