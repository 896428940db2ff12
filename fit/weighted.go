package fit

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-uncertainty/internal/series"
)

// WeightedLeastSquares fits y = m*x + c with weights w = 1/yerr².
//
// With sums Sw, Swx, Swy, Swxy and Swxx the parameters are
//
//	Δ = Sw*Swxx - Swx²
//	m = (Sw*Swxy - Swx*Swy) / Δ       merr = sqrt(Sw/Δ)
//	c = (Swxx*Swy - Swx*Swxy) / Δ     cerr = sqrt(Swxx/Δ)
//
// By default Swy is accumulated as Σw·x, which reproduces the historical
// results of this routine. WithCorrectedWeightedSums accumulates Σw·y,
// the textbook weighted fit.
//
// Every yerr must be positive and x, y finite, otherwise ErrDomain is
// returned. It returns ErrDegenerateFit for fewer than two points or when
// all x are equal.
func WeightedLeastSquares(x, y, yerr []float64, opts ...Option) (Line, error) {
	if err := series.CheckLengths(x, y, yerr); err != nil {
		return Line{}, err
	}

	if err := checkFinite(x, y); err != nil {
		return Line{}, err
	}

	cfg := ApplyOptions(opts...)

	n := len(x)
	if minN := cfg.minPoints(2); n < minN {
		return Line{}, fmt.Errorf("%w: %d points, need at least %d", ErrDegenerateFit, n, minN)
	}

	w := series.Squares(yerr)
	for i, v := range w {
		if yerr[i] <= 0 || math.IsNaN(yerr[i]) || math.IsInf(yerr[i], 0) {
			return Line{}, fmt.Errorf("%w: uncertainty %g at point %d gives no usable weight", ErrDomain, yerr[i], i)
		}

		w[i] = 1 / v
		if math.IsInf(w[i], 0) {
			return Line{}, fmt.Errorf("%w: uncertainty %g at point %d is too small to weight", ErrDomain, yerr[i], i)
		}
	}

	wx := series.Products(w, x)

	sumW := series.Sum(w)
	sumWX := series.Sum(wx)
	sumWXY := series.Dot(wx, y)
	sumWXX := series.Dot(wx, x)

	sumWY := sumWX
	if cfg.CorrectedWeightedSums {
		sumWY = series.Dot(w, y)
	}

	if series.AllEqual(x) {
		return Line{}, fmt.Errorf("%w: all x values are equal", ErrDegenerateFit)
	}

	// Δ = Sw*Swxx - Swx² = Sw*Σw(x - x̄w)² with x̄w the weighted mean.
	d := series.Centered(x, sumWX/sumW)

	delta := sumW * series.Dot(series.Products(w, d), d)
	if !(delta > 0) || math.IsInf(delta, 0) {
		return Line{}, fmt.Errorf("%w: x spread %g is not usable", ErrDegenerateFit, delta)
	}

	return Line{
		Slope:        (sumW*sumWXY - sumWX*sumWY) / delta,
		SlopeErr:     math.Sqrt(sumW / delta),
		Intercept:    (sumWXX*sumWY - sumWX*sumWXY) / delta,
		InterceptErr: math.Sqrt(sumWXX / delta),
		N:            n,
	}, nil
}
