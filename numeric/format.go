package numeric

import (
	"math"
	"math/big"
	"strconv"
)

// exponentThreshold is the magnitude from which fixed-point rendering
// switches to exponent notation, matching how the dashboard prints results.
const exponentThreshold = 1e21

// Fixed renders v with exactly digits decimals. Rounding works on the exact
// binary value of v and resolves a tie away from zero, so 0.03125 becomes
// "0.0313" at four digits. Non-finite values render as "Infinity",
// "-Infinity" and "NaN" so callers can pass them through the same output
// path as ordinary numbers.
func Fixed(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if math.Abs(v) >= exponentThreshold {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	// -0 becomes the rational 0 and loses its sign here.
	return new(big.Rat).SetFloat64(v).FloatString(digits)
}

// Round rounds v to the given number of decimals with the same rule as
// Fixed, so Round(v, n) is always the number Fixed(v, n) prints.
func Round(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(Fixed(v, digits), 64)
	if err != nil {
		return v
	}
	return r
}
