package fit

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Line is the result of a straight-line fit y = Slope*x + Intercept.
type Line struct {
	Slope        float64
	SlopeErr     float64
	Intercept    float64
	InterceptErr float64
	N            int // number of points fitted
}

// Eval returns the fitted y at x.
func (l Line) Eval(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Predict returns the fitted y for every x.
func (l Line) Predict(xs []float64) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}

	vecmath.ScaleBlock(out, xs, l.Slope)
	floats.AddConst(l.Intercept, out)

	return out
}

// String formats the parameters as "m: <slope> +/- <err>, c: <intercept> +/- <err>".
func (l Line) String() string {
	return fmt.Sprintf("m: %g +/- %g, c: %g +/- %g", l.Slope, l.SlopeErr, l.Intercept, l.InterceptErr)
}
