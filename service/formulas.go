package service

import (
	"math"

	"petrocalc/domain"
)

// psiPerFootPerPPG converts mud weight (ppg) and depth (ft) to pressure (psi).
const psiPerFootPerPPG = 0.052

// cubicInchesPerGallon converts pump displacement to gallons.
const cubicInchesPerGallon = 231

// BuiltinCalculations returns the drilling and reservoir calculations offered
// by the dashboard, in display order.
func BuiltinCalculations() []domain.CalculationSpec {
	return []domain.CalculationSpec{
		{
			Name: "Drill String Capacity",
			Parameters: []domain.ParameterDescriptor{
				{Name: "diameter", Label: "Diameter (in inches)"},
				{Name: "length", Label: "Length (in feet)"},
			},
			Formula: func(p domain.Params) float64 {
				d := p["diameter"]
				return (math.Pi / 4) * (d * d) * p["length"]
			},
			Unit: "cubic feet",
		},
		{
			Name: "Oil-in-Place Calculations",
			Parameters: []domain.ParameterDescriptor{
				{Name: "area", Label: "Area (in acres)"},
				{Name: "thickness", Label: "Thickness (in feet)"},
				{Name: "porosity", Label: "Porosity (as a decimal)"},
				{Name: "saturation", Label: "Water Saturation (as a decimal)"},
			},
			Formula: func(p domain.Params) float64 {
				return p["area"] * p["thickness"] * p["porosity"] * (1 - p["saturation"])
			},
			Unit: "barrels",
		},
		{
			Name: "Gas-in-Place Calculations",
			Parameters: []domain.ParameterDescriptor{
				{Name: "volume", Label: "Volume (in cubic feet)"},
				{Name: "zFactor", Label: "Compressibility Factor (Z)"},
				{Name: "temperature", Label: "Temperature (in Rankine)"},
			},
			Formula: func(p domain.Params) float64 {
				return p["volume"] / (p["zFactor"] * p["temperature"])
			},
			Unit: "standard cubic feet",
		},
		{
			Name: "Drill Pipe Nozzle Calculation",
			Parameters: []domain.ParameterDescriptor{
				{Name: "flowRate", Label: "Flow Rate (in gallons per minute)"},
				{Name: "nozzleDiameter", Label: "Nozzle Diameter (in inches)"},
				{Name: "pressure", Label: "Pressure (in psi)"},
			},
			Formula: func(p domain.Params) float64 {
				return p["flowRate"] / (p["nozzleDiameter"] * p["nozzleDiameter"] * math.Sqrt(p["pressure"]))
			},
			Unit: "gallons per minute",
		},
		{
			Name: "Annular Capacity",
			Parameters: []domain.ParameterDescriptor{
				{Name: "outerDiameter", Label: "Outer Diameter (in inches)"},
				{Name: "innerDiameter", Label: "Inner Diameter (in inches)"},
				{Name: "length", Label: "Length (in feet)"},
			},
			Formula: func(p domain.Params) float64 {
				od, id := p["outerDiameter"], p["innerDiameter"]
				// explicit conversions keep the difference from being fused into an FMA
				return (math.Pi / 4) * (float64(od*od) - float64(id*id)) * p["length"]
			},
			Unit: "cubic feet",
		},
		{
			Name: "Equivalent Circulating Density (ECD)",
			Parameters: []domain.ParameterDescriptor{
				{Name: "mudWeight", Label: "Mud Weight (in ppg)"},
				{Name: "pressure", Label: "Pressure (in psi)"},
				{Name: "depth", Label: "Depth (in feet)"},
			},
			Formula: func(p domain.Params) float64 {
				return p["mudWeight"] + p["pressure"]/(psiPerFootPerPPG*p["depth"])
			},
			Unit: "ppg",
		},
		{
			Name:       "Pump Flow Rate (Duplex Pump)",
			Parameters: pumpParameters(),
			Formula: func(p domain.Params) float64 {
				d := p["cylinderDiameter"]
				return (d * d * math.Pi * p["strokeLength"] * p["strokesPerMinute"]) / cubicInchesPerGallon
			},
			Unit: "gallons per minute",
		},
		{
			Name:       "Pump Flow Rate (Triplex Pump)",
			Parameters: pumpParameters(),
			Formula: func(p domain.Params) float64 {
				d := p["cylinderDiameter"]
				return (3 * (d * d) * math.Pi * p["strokeLength"] * p["strokesPerMinute"]) / cubicInchesPerGallon
			},
			Unit: "gallons per minute",
		},
		{
			Name: "Bottoms Up Time",
			Parameters: []domain.ParameterDescriptor{
				{Name: "holeVolume", Label: "Hole Volume (in barrels)"},
				{Name: "pumpFlowRate", Label: "Pump Flow Rate (in barrels per minute)"},
			},
			Formula: func(p domain.Params) float64 {
				return p["holeVolume"] / p["pumpFlowRate"]
			},
			Unit: "minutes",
		},
		{
			Name: "Surface to Surface Time",
			Parameters: []domain.ParameterDescriptor{
				{Name: "pipeVolume", Label: "Pipe Volume (in barrels)"},
				{Name: "pumpFlowRate", Label: "Pump Flow Rate (in barrels per minute)"},
			},
			Formula: func(p domain.Params) float64 {
				return p["pipeVolume"] / p["pumpFlowRate"]
			},
			Unit: "minutes",
		},
		{
			Name: "Effective Mud Density (EMD)",
			Parameters: []domain.ParameterDescriptor{
				{Name: "mudWeight", Label: "Mud Weight (in ppg)"},
				{Name: "annularPressureLoss", Label: "Annular Pressure Loss (in psi)"},
				{Name: "trueVerticalDepth", Label: "True Vertical Depth (in feet)"},
			},
			Formula: func(p domain.Params) float64 {
				return p["mudWeight"] + p["annularPressureLoss"]/(psiPerFootPerPPG*p["trueVerticalDepth"])
			},
			Unit: "ppg",
		},
	}
}

func pumpParameters() []domain.ParameterDescriptor {
	return []domain.ParameterDescriptor{
		{Name: "cylinderDiameter", Label: "Cylinder Diameter (in inches)"},
		{Name: "strokeLength", Label: "Stroke Length (in inches)"},
		{Name: "strokesPerMinute", Label: "Strokes per Minute"},
	}
}
