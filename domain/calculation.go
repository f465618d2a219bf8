package domain

// Params holds parsed parameter values keyed by parameter name.
// Reading an absent key yields 0, which is how missing inputs are treated.
type Params map[string]float64

// Formula evaluates a closed-form calculation over parsed parameters.
type Formula func(p Params) float64

type ParameterDescriptor struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type CalculationSpec struct {
	Name       string
	Parameters []ParameterDescriptor
	Formula    Formula
	Unit       string
}

// CalculationResult is the outcome of a single evaluation.
// Value may be non-finite, so it is kept out of the JSON form; Result
// carries its printable rendering instead.
type CalculationResult struct {
	Calculation string  `json:"calculation"`
	Value       float64 `json:"-"`
	Result      string  `json:"value"`
	Unit        string  `json:"unit"`
	Display     string  `json:"display"`
}

type CalculationInfo struct {
	Name       string                `json:"name"`
	Unit       string                `json:"unit"`
	Parameters []ParameterDescriptor `json:"parameters"`
}
