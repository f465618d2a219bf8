package service

import (
	"errors"
	"fmt"
	"math"

	"petrocalc/domain"
	"petrocalc/numeric"
)

// Registry holds calculation specs keyed by name. It is immutable once built
// and safe for concurrent use.
type Registry struct {
	order []string
	specs map[string]domain.CalculationSpec
}

// NewRegistry builds a registry from specs, keeping their order.
func NewRegistry(specs ...domain.CalculationSpec) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(specs)),
		specs: make(map[string]domain.CalculationSpec, len(specs)),
	}

	for _, spec := range specs {
		if spec.Name == "" {
			return nil, errors.New("calculation name cannot be empty")
		}
		if _, dup := r.specs[spec.Name]; dup {
			return nil, fmt.Errorf("duplicate calculation: %s", spec.Name)
		}
		if spec.Formula == nil {
			return nil, fmt.Errorf("calculation %s has no formula", spec.Name)
		}

		seen := make(map[string]bool, len(spec.Parameters))
		for _, param := range spec.Parameters {
			if param.Name == "" {
				return nil, fmt.Errorf("calculation %s has an unnamed parameter", spec.Name)
			}
			if seen[param.Name] {
				return nil, fmt.Errorf("calculation %s: duplicate parameter %s", spec.Name, param.Name)
			}
			seen[param.Name] = true
		}

		spec.Parameters = append([]domain.ParameterDescriptor(nil), spec.Parameters...)
		r.order = append(r.order, spec.Name)
		r.specs[spec.Name] = spec
	}

	return r, nil
}

// DefaultRegistry returns a registry with the built-in calculations.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCalculations()...)
	if err != nil {
		panic(fmt.Sprintf("builtin calculations: %v", err))
	}
	return r
}

// List returns calculation names in registration order.
func (r *Registry) List() []string {
	return append([]string(nil), r.order...)
}

func (r *Registry) Parameters(name string) ([]domain.ParameterDescriptor, error) {
	spec, ok := r.specs[name]
	if !ok {
		return nil, unknownCalculation(name)
	}
	return append([]domain.ParameterDescriptor(nil), spec.Parameters...), nil
}

// Describe returns the presentation view of a calculation.
func (r *Registry) Describe(name string) (domain.CalculationInfo, error) {
	params, err := r.Parameters(name)
	if err != nil {
		return domain.CalculationInfo{}, err
	}
	return domain.CalculationInfo{
		Name:       name,
		Unit:       r.specs[name].Unit,
		Parameters: params,
	}, nil
}

// Evaluate runs a calculation over raw text parameters. Values that do not
// parse, and declared parameters that are absent, count as 0; a zero in a
// denominator therefore yields an Infinity or NaN result rather than an
// error. Only an unknown name fails.
func (r *Registry) Evaluate(name string, raw map[string]string) (domain.CalculationResult, error) {
	spec, ok := r.specs[name]
	if !ok {
		return domain.CalculationResult{}, unknownCalculation(name)
	}

	params := make(domain.Params, len(raw))
	for key, value := range raw {
		params[key] = numeric.Lenient(value)
	}

	return buildResult(spec, spec.Formula(params)), nil
}

// EvaluateStrict is Evaluate with input validation: every declared
// parameter must be present and a complete finite number, and the result
// must be finite.
func (r *Registry) EvaluateStrict(name string, raw map[string]string) (domain.CalculationResult, error) {
	spec, ok := r.specs[name]
	if !ok {
		return domain.CalculationResult{}, unknownCalculation(name)
	}

	params := make(domain.Params, len(spec.Parameters))
	for _, param := range spec.Parameters {
		value, present := raw[param.Name]
		if !present {
			return domain.CalculationResult{}, &ParameterError{
				Calculation: name,
				Parameter:   param.Name,
				Err:         ErrMissingParameter,
			}
		}
		v, err := numeric.Strict(value)
		if err != nil {
			return domain.CalculationResult{}, &ParameterError{
				Calculation: name,
				Parameter:   param.Name,
				Value:       value,
				Err:         fmt.Errorf("%w: %w", ErrMalformedParameter, err),
			}
		}
		params[param.Name] = v
	}

	value := spec.Formula(params)
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return domain.CalculationResult{}, fmt.Errorf("%s: %w", name, ErrNonFiniteResult)
	}
	return buildResult(spec, value), nil
}

func (r *Registry) spec(name string) (domain.CalculationSpec, bool) {
	spec, ok := r.specs[name]
	return spec, ok
}

func buildResult(spec domain.CalculationSpec, value float64) domain.CalculationResult {
	formatted := numeric.Fixed(value, ResultDecimals)
	display := formatted
	if spec.Unit != "" {
		display = formatted + " " + spec.Unit
	}
	return domain.CalculationResult{
		Calculation: spec.Name,
		Value:       value,
		Result:      formatted,
		Unit:        spec.Unit,
		Display:     display,
	}
}
