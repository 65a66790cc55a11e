package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Parameter errors
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNumOptions       = fmt.Errorf("%w: numOptions", ErrInvalidParameter)
	ErrClassSize        = fmt.Errorf("%w: classSize", ErrInvalidParameter)
	ErrMu               = fmt.Errorf("%w: mu", ErrInvalidParameter)
	ErrRepetitions      = fmt.Errorf("%w: repetitions", ErrInvalidParameter)
	ErrQuantile         = fmt.Errorf("%w: quantile", ErrInvalidParameter)

	// Table errors
	ErrEmptyTable       = errors.New("result table is empty")
	ErrUnknownStatistic = errors.New("unknown statistic")
	ErrNoCriticalRow    = errors.New("no row at or below quantile threshold")
)

// NewParameterError wraps one of the parameter sentinels with the offending value
func NewParameterError(kind error, reason string, value any) error {
	return fmt.Errorf("%w %s, got %v", kind, reason, value)
}

// IsInvalidParameter reports whether err stems from rejected input
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}
