package fit

// Config holds fitting options.
type Config struct {
	// MinPoints raises the minimum number of data points a fit accepts.
	// Values below the method's own floor are ignored.
	MinPoints int

	// CorrectedWeightedSums makes WeightedLeastSquares accumulate the
	// weighted y sum as Σw·y. The default accumulates Σw·x in that slot.
	CorrectedWeightedSums bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the literal fitting behaviour.
func DefaultConfig() Config {
	return Config{}
}

// WithMinPoints sets the minimum number of points a fit requires.
func WithMinPoints(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MinPoints = n
		}
	}
}

// WithCorrectedWeightedSums selects the Σw·y accumulator in
// WeightedLeastSquares.
func WithCorrectedWeightedSums() Option {
	return func(cfg *Config) {
		cfg.CorrectedWeightedSums = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func (cfg Config) minPoints(floor int) int {
	return max(floor, cfg.MinPoints)
}
