package learning

import (
	"math"

	"smithwagnercv/domain/core"
)

// MinNumOptions is the smallest answer-option count the formulas are defined for
const MinNumOptions = 2

// ValidateNumOptions rejects option counts that would divide by zero
func ValidateNumOptions(numOptions int) error {
	if numOptions < MinNumOptions {
		return core.NewParameterError(core.ErrNumOptions, "must be >= 2", numOptions)
	}
	return nil
}

// ValidateClassSize rejects empty classes
func ValidateClassSize(classSize int) error {
	if classSize <= 0 {
		return core.NewParameterError(core.ErrClassSize, "must be > 0", classSize)
	}
	return nil
}

// ValidateMu requires a proportion in [0, 1]
func ValidateMu(mu float64) error {
	if math.IsNaN(mu) || mu < 0 || mu > 1 {
		return core.NewParameterError(core.ErrMu, "must be within [0, 1]", mu)
	}
	return nil
}

// ValidateRepetitions rejects batches without trials
func ValidateRepetitions(r int) error {
	if r <= 0 {
		return core.NewParameterError(core.ErrRepetitions, "must be > 0", r)
	}
	return nil
}

// ValidateQuantiles requires every point to lie strictly inside (0, 1)
func ValidateQuantiles(points []float64) error {
	for _, q := range points {
		if math.IsNaN(q) || q <= 0 || q >= 1 {
			return core.NewParameterError(core.ErrQuantile, "must be within (0, 1)", q)
		}
	}
	return nil
}

// ValidateTrial checks the inputs of a single trial
func ValidateTrial(classSize int, mu float64, numOptions int) error {
	if err := ValidateClassSize(classSize); err != nil {
		return err
	}
	if err := ValidateMu(mu); err != nil {
		return err
	}
	return ValidateNumOptions(numOptions)
}
