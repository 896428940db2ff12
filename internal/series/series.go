// Package series provides the length checks and reductions shared by the
// propagation and fitting packages.
package series

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// ErrLengthMismatch is returned when paired sequences differ in length.
var ErrLengthMismatch = errors.New("series: paired sequences differ in length")

// CheckLengths verifies that every slice has the same length as the first.
func CheckLengths(first []float64, rest ...[]float64) error {
	for i, s := range rest {
		if len(s) != len(first) {
			return fmt.Errorf("%w: sequence %d has %d elements, want %d",
				ErrLengthMismatch, i+1, len(s), len(first))
		}
	}

	return nil
}

// Products returns a new slice holding a[i]*b[i]. The slices must have equal
// length.
func Products(a, b []float64) []float64 {
	out := make([]float64, len(a))
	if len(a) == 0 {
		return out
	}

	vecmath.MulBlock(out, a, b)

	return out
}

// Squares returns a new slice holding x[i]*x[i].
func Squares(x []float64) []float64 {
	return Products(x, x)
}

// Sum returns the sum of x. Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	return vecmath.Sum(x)
}

// Dot returns sum(a[i]*b[i]). Callers check lengths first.
func Dot(a, b []float64) float64 {
	return vecmath.DotProduct(a, b)
}

// Quadrature combines the terms as sqrt(sum(t^2)).
func Quadrature(terms []float64) float64 {
	return math.Sqrt(vecmath.DotProduct(terms, terms))
}

// AllFinite reports whether no element of x is NaN or infinite.
func AllFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// AllEqual reports whether every element of x equals x[0].
func AllEqual(x []float64) bool {
	for _, v := range x {
		if v != x[0] {
			return false
		}
	}

	return true
}

// Centered returns a new slice holding x[i] - mean.
func Centered(x []float64, mean float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	floats.AddConst(-mean, out)

	return out
}
