package fit

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-uncertainty/internal/series"
)

// ChiSquare returns Σ(o-e)²/e over the paired observed and expected values.
// A zero expected value returns ErrDomain.
func ChiSquare(observed, expected []float64) (float64, error) {
	if err := series.CheckLengths(observed, expected); err != nil {
		return 0, err
	}

	for i, e := range expected {
		if e == 0 {
			return 0, fmt.Errorf("%w: expected value %d is zero", ErrDomain, i)
		}
	}

	return stat.ChiSquare(observed, expected), nil
}

// ReducedChiSquare divides chi2 by the degrees of freedom n - params.
func ReducedChiSquare(chi2 float64, n, params int) (float64, error) {
	dof := n - params
	if dof <= 0 {
		return 0, fmt.Errorf("%w: %d points leave no degrees of freedom for %d parameters",
			ErrDegenerateFit, n, params)
	}

	return chi2 / float64(dof), nil
}

// Residuals returns expected[i] - observed[i] for every pair, in order.
// The sign follows the "fit minus data" convention.
func Residuals(observed, expected []float64) ([]float64, error) {
	if err := series.CheckLengths(observed, expected); err != nil {
		return nil, err
	}

	return floats.SubTo(make([]float64, len(observed)), expected, observed), nil
}

// RSquared returns the coefficient of determination 1 - SSres/SStot of the
// expected values against the observed ones.
func RSquared(observed, expected []float64) (float64, error) {
	if err := series.CheckLengths(observed, expected); err != nil {
		return 0, err
	}

	if len(observed) == 0 {
		return 0, fmt.Errorf("%w: no points", ErrDegenerateFit)
	}

	mean := stat.Mean(observed, nil)

	var ssTot, ssRes float64

	for i, o := range observed {
		d := o - mean
		ssTot += d * d

		r := o - expected[i]
		ssRes += r * r
	}

	if ssTot == 0 {
		return 0, fmt.Errorf("%w: observed values have no spread", ErrDegenerateFit)
	}

	return 1 - ssRes/ssTot, nil
}
