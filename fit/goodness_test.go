package fit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChiSquare(t *testing.T) {
	y := []float64{1.5, 2, 7.25, 9}
	chi2, err := ChiSquare(y, y)
	require.NoError(t, err)
	assert.Zero(t, chi2)

	chi2, err = ChiSquare([]float64{1, 2, 3}, []float64{2, 2, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, chi2, tolerance)

	chi2, err = ChiSquare(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, chi2)
}

func TestChiSquare_Errors(t *testing.T) {
	_, err := ChiSquare([]float64{1, 2}, []float64{1})
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = ChiSquare([]float64{1, 0}, []float64{1, 0})
	assert.True(t, errors.Is(err, ErrDomain))
}

func TestReducedChiSquare(t *testing.T) {
	r, err := ReducedChiSquare(6, 5, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, r, tolerance)

	_, err = ReducedChiSquare(6, 2, 2)
	assert.True(t, errors.Is(err, ErrDegenerateFit))
}

func TestResiduals(t *testing.T) {
	observed := []float64{1, 2.5, 2.75}
	expected := []float64{1.25, 2, 3}

	res, err := Residuals(observed, expected)
	require.NoError(t, err)
	require.Len(t, res, len(observed))

	for i := range res {
		assert.InDelta(t, expected[i]-observed[i], res[i], tolerance)
	}

	assert.Equal(t, []float64{1.25, 2, 3}, expected, "inputs must not be modified")

	res, err = Residuals(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, res)

	_, err = Residuals([]float64{1}, []float64{1, 2})
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestRSquared(t *testing.T) {
	y := []float64{1, 2, 3, 4}
	r2, err := RSquared(y, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r2, tolerance)

	r2, err = RSquared([]float64{1, 2, 3}, []float64{2, 2, 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r2, tolerance)

	_, err = RSquared([]float64{2, 2}, []float64{1, 3})
	assert.True(t, errors.Is(err, ErrDegenerateFit))

	_, err = RSquared(nil, nil)
	assert.True(t, errors.Is(err, ErrDegenerateFit))

	_, err = RSquared([]float64{1}, nil)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestLine_Predict(t *testing.T) {
	line := Line{Slope: 2, Intercept: -1}

	assert.InDelta(t, 5.0, line.Eval(3), tolerance)
	assert.InDeltaSlice(t, []float64{-1, 1, 3}, line.Predict([]float64{0, 1, 2}), tolerance)
	assert.Empty(t, line.Predict(nil))
}

func TestLine_PredictReproducesExactData(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{3, 5, 7, 9}

	line, err := LeastSquares(x, y)
	require.NoError(t, err)
	assert.InDeltaSlice(t, y, line.Predict(x), tolerance)
}

func TestLine_String(t *testing.T) {
	line := Line{Slope: 1, SlopeErr: 0.5, Intercept: -2, InterceptErr: 0.25}
	assert.Equal(t, "m: 1 +/- 0.5, c: -2 +/- 0.25", line.String())
}
