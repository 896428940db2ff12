package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-uncertainty/internal/series"
)

// LeastSquares fits y = m*x + c by ordinary least squares.
//
// The parameter errors are derived from the residual variance
// σ² = Σ(y - m*x - c)² / (N-2), so at least three points are required.
// It returns ErrDegenerateFit for fewer points or when all x are equal, and
// ErrDomain for NaN or infinite coordinates.
func LeastSquares(x, y []float64, opts ...Option) (Line, error) {
	if err := series.CheckLengths(x, y); err != nil {
		return Line{}, err
	}

	if err := checkFinite(x, y); err != nil {
		return Line{}, err
	}

	cfg := ApplyOptions(opts...)

	n := len(x)
	if minN := cfg.minPoints(3); n < minN {
		return Line{}, fmt.Errorf("%w: %d points, need at least %d", ErrDegenerateFit, n, minN)
	}

	nf := float64(n)
	sumX := series.Sum(x)
	sumY := series.Sum(y)
	sumXX := series.Dot(x, x)
	sumXY := series.Dot(x, y)

	if series.AllEqual(x) {
		return Line{}, fmt.Errorf("%w: all x values are equal", ErrDegenerateFit)
	}

	// Δ = N*Sxx - Sx² = N*Σ(x - x̄)², taken from centred values so a large
	// common offset in x does not cancel it away.
	d := series.Centered(x, sumX/nf)

	delta := nf * series.Dot(d, d)
	if !(delta > 0) || math.IsInf(delta, 0) {
		return Line{}, fmt.Errorf("%w: x spread %g is not usable", ErrDegenerateFit, delta)
	}

	m := (nf*sumXY - sumX*sumY) / delta
	c := (sumXX*sumY - sumX*sumXY) / delta

	// r = y - m*x - c
	r := make([]float64, n)
	floats.AddScaledTo(r, y, -m, x)
	floats.AddConst(-c, r)

	sigma := math.Sqrt(series.Dot(r, r) / (nf - 2))

	return Line{
		Slope:        m,
		SlopeErr:     sigma * math.Sqrt(nf/delta),
		Intercept:    c,
		InterceptErr: sigma * math.Sqrt(sumXX/delta),
		N:            n,
	}, nil
}

func checkFinite(coords ...[]float64) error {
	for i, c := range coords {
		if !series.AllFinite(c) {
			return fmt.Errorf("%w: sequence %d holds a NaN or infinite value", ErrDomain, i)
		}
	}

	return nil
}
