package fit

import (
	"errors"

	"github.com/cwbudde/algo-uncertainty/internal/series"
)

// Errors returned by fitting and goodness-of-fit functions.
var (
	ErrDomain         = errors.New("fit: input outside the domain of the formula")
	ErrDegenerateFit  = errors.New("fit: degenerate fit")
	ErrLengthMismatch = series.ErrLengthMismatch
)
