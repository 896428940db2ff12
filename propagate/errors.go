package propagate

import (
	"errors"

	"github.com/cwbudde/algo-uncertainty/internal/series"
)

// Errors returned by propagation functions.
var (
	ErrDomain         = errors.New("propagate: input outside the domain of the formula")
	ErrLengthMismatch = series.ErrLengthMismatch
)
