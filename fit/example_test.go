package fit_test

import (
	"fmt"

	"github.com/cwbudde/algo-uncertainty/fit"
)

func ExampleLeastSquares() {
	line, _ := fit.LeastSquares([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4})
	fmt.Printf("m=%.2f c=%.2f\n", line.Slope, line.Intercept)

	// Output:
	// m=1.00 c=0.00
}

func ExampleWeightedLeastSquares() {
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 2, 3, 4}
	yerr := []float64{.2, .3, .4, .5}

	line, _ := fit.WeightedLeastSquares(x, y, yerr)
	chi2, _ := fit.ChiSquare(y, line.Predict(x))
	fmt.Printf("m=%.3f±%.3f c=%.3f±%.3f chi2=%.1f\n",
		line.Slope, line.SlopeErr, line.Intercept, line.InterceptErr, chi2)

	// Output:
	// m=1.000±0.149 c=0.000±0.302 chi2=0.0
}

func ExampleResiduals() {
	res, _ := fit.Residuals([]float64{1, 2, 3}, []float64{1.5, 2, 2.5})
	fmt.Println(res)

	// Output:
	// [0.5 0 -0.5]
}
