package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCalculation = errors.New("unknown calculation")
	ErrMissingParameter   = errors.New("missing parameter")
	ErrMalformedParameter = errors.New("malformed parameter")
	ErrNonFiniteResult    = errors.New("result is not finite")
)

// ParameterError reports which parameter failed strict validation.
type ParameterError struct {
	Calculation string
	Parameter   string
	Value       string
	Err         error
}

func (e *ParameterError) Error() string {
	if errors.Is(e.Err, ErrMissingParameter) {
		return fmt.Sprintf("%s: %s: %v", e.Calculation, e.Parameter, e.Err)
	}
	return fmt.Sprintf("%s: %s=%q: %v", e.Calculation, e.Parameter, e.Value, e.Err)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

func unknownCalculation(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownCalculation, name)
}
