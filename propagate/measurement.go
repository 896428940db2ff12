package propagate

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-uncertainty/internal/series"
)

// Measurement is a value paired with its absolute uncertainty.
type Measurement struct {
	Value float64
	Err   float64 // absolute uncertainty, >= 0
}

// String formats the measurement as "value ± err".
func (m Measurement) String() string {
	return fmt.Sprintf("%g ± %g", m.Value, m.Err)
}

// RelErr returns Err/|Value|.
func (m Measurement) RelErr() (float64, error) {
	if m.Value == 0 {
		return 0, fmt.Errorf("%w: relative error of a zero value", ErrDomain)
	}

	return m.Err / math.Abs(m.Value), nil
}

func (m Measurement) validate() error {
	if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
		return fmt.Errorf("%w: non-finite value %g", ErrDomain, m.Value)
	}

	if m.Err < 0 || math.IsNaN(m.Err) || math.IsInf(m.Err, 0) {
		return fmt.Errorf("%w: uncertainty %g must be finite and non-negative", ErrDomain, m.Err)
	}

	return nil
}

// Series is an ordered sequence of measurements.
type Series []Measurement

// NewSeries pairs values with errs positionally.
func NewSeries(values, errs []float64) (Series, error) {
	if err := series.CheckLengths(values, errs); err != nil {
		return nil, err
	}

	s := make(Series, len(values))
	for i := range values {
		s[i] = Measurement{Value: values[i], Err: errs[i]}
	}

	return s, nil
}

// Values returns the measurement values in order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, m := range s {
		out[i] = m.Value
	}

	return out
}

// Errs returns the uncertainties in order.
func (s Series) Errs() []float64 {
	out := make([]float64, len(s))
	for i, m := range s {
		out[i] = m.Err
	}

	return out
}

func (s Series) validate() error {
	for i, m := range s {
		if err := m.validate(); err != nil {
			return fmt.Errorf("measurement %d: %w", i, err)
		}
	}

	return nil
}
