// Package fit provides straight-line least-squares fitting with parameter
// uncertainties, together with the goodness-of-fit helpers used to judge
// such fits against laboratory data.
//
//   - LeastSquares: ordinary least squares, errors from the residual scatter
//   - WeightedLeastSquares: per-point y uncertainties as 1/err² weights
//   - ChiSquare, ReducedChiSquare: Σ(o-e)²/e and its per-degree-of-freedom form
//   - Residuals: expected minus observed, point by point
//   - RSquared: coefficient of determination
//
// # Usage
//
//	line, err := fit.WeightedLeastSquares(x, y, yerr)
//	if err != nil {
//	    return err
//	}
//	best := line.Predict(x)
//	chi2, _ := fit.ChiSquare(y, best)
//	fmt.Println(line, chi2)
package fit
