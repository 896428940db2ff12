package propagate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-uncertainty/internal/series"
)

// Summation returns the sum of the series with the uncertainties added in
// quadrature. A value to be subtracted is passed with a negated Value; its Err
// stays positive. An empty series yields 0 ± 0.
func Summation(s Series) (Measurement, error) {
	if err := s.validate(); err != nil {
		return Measurement{}, err
	}

	return Measurement{
		Value: series.Sum(s.Values()),
		Err:   series.Quadrature(s.Errs()),
	}, nil
}

// Power returns x^p with uncertainty |p * x^(p-1)| * err. The exponent may be
// negative or fractional. A zero base is only accepted for p >= 1, where the
// derivative stays finite.
func Power(x Measurement, p float64) (Measurement, error) {
	if err := x.validate(); err != nil {
		return Measurement{}, err
	}

	if p == 0 {
		return Measurement{Value: 1}, nil
	}

	if x.Value == 0 && p < 1 {
		return Measurement{}, fmt.Errorf("%w: zero base with exponent %g", ErrDomain, p)
	}

	z := math.Pow(x.Value, p)
	deriv := p * math.Pow(x.Value, p-1)

	if !series.AllFinite([]float64{z, deriv}) {
		return Measurement{}, fmt.Errorf("%w: %g^%g is not a real number", ErrDomain, x.Value, p)
	}

	return Measurement{Value: z, Err: math.Abs(deriv) * x.Err}, nil
}

// Square is Power(x, 2).
func Square(x Measurement) (Measurement, error) {
	return Power(x, 2)
}

// Logarithm returns ln(x) with uncertainty err/x.
func Logarithm(x Measurement) (Measurement, error) {
	if err := x.validate(); err != nil {
		return Measurement{}, err
	}

	if x.Value <= 0 {
		return Measurement{}, fmt.Errorf("%w: logarithm of %g", ErrDomain, x.Value)
	}

	return Measurement{Value: math.Log(x.Value), Err: x.Err / x.Value}, nil
}

// Sine returns sin(x) for x in radians with uncertainty |cos(x)| * err.
func Sine(x Measurement) (Measurement, error) {
	if err := x.validate(); err != nil {
		return Measurement{}, err
	}

	return Measurement{
		Value: math.Sin(x.Value),
		Err:   math.Abs(math.Cos(x.Value)) * x.Err,
	}, nil
}

// Cosine returns cos(x) for x in radians with uncertainty |sin(x)| * err.
func Cosine(x Measurement) (Measurement, error) {
	if err := x.validate(); err != nil {
		return Measurement{}, err
	}

	return Measurement{
		Value: math.Cos(x.Value),
		Err:   math.Abs(math.Sin(x.Value)) * x.Err,
	}, nil
}

// Tangent returns tan(x) for x in radians with uncertainty (1 + tan²(x)) * err.
func Tangent(x Measurement) (Measurement, error) {
	if err := x.validate(); err != nil {
		return Measurement{}, err
	}

	z := math.Tan(x.Value)

	return Measurement{Value: z, Err: (1 + z*z) * x.Err}, nil
}

// Product returns the product of the series. Err is the quadrature sum of
// the relative uncertainties err_i/x_i; use ProductAbsolute for the absolute
// uncertainty. To divide by a factor, pass it through Power(y, -1) first.
// An empty series yields 1 ± 0.
func Product(s Series) (Measurement, error) {
	z, rel, err := product(s)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{Value: z, Err: rel}, nil
}

// ProductAbsolute is Product with the relative uncertainty scaled back by |Z|.
func ProductAbsolute(s Series) (Measurement, error) {
	z, rel, err := product(s)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{Value: z, Err: math.Abs(z) * rel}, nil
}

func product(s Series) (float64, float64, error) {
	if err := s.validate(); err != nil {
		return 0, 0, err
	}

	values := s.Values()
	rel := make([]float64, len(s))

	for i, m := range s {
		// Only the square enters the quadrature sum, so the sign is irrelevant.
		r, err := m.RelErr()
		if err != nil {
			return 0, 0, fmt.Errorf("measurement %d: %w", i, err)
		}

		rel[i] = r
	}

	return floats.Prod(values), series.Quadrature(rel), nil
}

// Division returns k * x^m / y^n with uncertainty
//
//	|Z| * sqrt((m*errx/x)^2 + (n*erry/y)^2)
//
// The defaults m = n = k = 1 give the plain quotient. A negative n turns the
// division into a weighted multiplication.
func Division(x, y Measurement, opts ...DivisionOption) (Measurement, error) {
	if err := x.validate(); err != nil {
		return Measurement{}, fmt.Errorf("numerator: %w", err)
	}

	if err := y.validate(); err != nil {
		return Measurement{}, fmt.Errorf("denominator: %w", err)
	}

	cfg := ApplyDivisionOptions(opts...)

	var terms [2]float64

	if cfg.M != 0 {
		if x.Value == 0 {
			return Measurement{}, fmt.Errorf("%w: zero numerator with power %g", ErrDomain, cfg.M)
		}

		terms[0] = cfg.M * x.Err / x.Value
	}

	if cfg.N != 0 {
		if y.Value == 0 {
			return Measurement{}, fmt.Errorf("%w: zero denominator", ErrDomain)
		}

		terms[1] = cfg.N * y.Err / y.Value
	}

	z := cfg.K * (math.Pow(x.Value, cfg.M) / math.Pow(y.Value, cfg.N))
	if !series.AllFinite([]float64{z}) {
		return Measurement{}, fmt.Errorf("%w: %g^%g / %g^%g is not a real number",
			ErrDomain, x.Value, cfg.M, y.Value, cfg.N)
	}

	return Measurement{Value: z, Err: math.Abs(z) * series.Quadrature(terms[:])}, nil
}
