package propagate

// DivisionConfig holds the exponents and scale factor of Division.
type DivisionConfig struct {
	M float64 // power on x
	N float64 // power on y, negative to multiply
	K float64 // scale factor
}

// DivisionOption mutates a DivisionConfig.
type DivisionOption func(*DivisionConfig)

// DefaultDivisionConfig returns the plain quotient x/y.
func DefaultDivisionConfig() DivisionConfig {
	return DivisionConfig{M: 1, N: 1, K: 1}
}

// WithPowers sets the exponents applied to x and y.
func WithPowers(m, n float64) DivisionOption {
	return func(cfg *DivisionConfig) {
		cfg.M = m
		cfg.N = n
	}
}

// WithCoefficient sets the scale factor k.
func WithCoefficient(k float64) DivisionOption {
	return func(cfg *DivisionConfig) {
		cfg.K = k
	}
}

// ApplyDivisionOptions applies zero or more options to the default config.
func ApplyDivisionOptions(opts ...DivisionOption) DivisionConfig {
	cfg := DefaultDivisionConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
