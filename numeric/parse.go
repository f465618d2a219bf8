// Package numeric holds the number parsing and formatting rules shared by the
// calculation and GPA services. Lenient parsing follows the browser dashboard
// the service backs: a text field is read up to the first character that
// cannot continue a decimal literal, and garbage degrades instead of failing.
package numeric

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrEmpty     = errors.New("empty value")
	ErrInvalid   = errors.New("not a number")
	ErrNotFinite = errors.New("value is not finite")
)

const infinityLiteral = "Infinity"

// ParsePrefix reads the longest decimal literal at the start of s, after
// leading whitespace. It returns NaN when s does not start with a number.
// "12ft" parses as 12, "1e3x" as 1000, "-Infinity" as -Inf; literals that
// overflow float64 become ±Inf.
func ParsePrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, isSpace)

	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	if strings.HasPrefix(s[i:], infinityLiteral) {
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i - start

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracDigits = j - i - 1
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return math.NaN()
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

// Lenient parses s the forgiving way: anything that does not yield a
// number, and negative zero, becomes 0.
func Lenient(s string) float64 {
	v := ParsePrefix(s)
	if math.IsNaN(v) || v == 0 {
		return 0
	}
	return v
}

// Strict parses s as a complete, finite decimal number. Surrounding
// whitespace is ignored; anything else left over is an error.
func Strict(s string) (float64, error) {
	t := strings.TrimFunc(s, isSpace)
	if t == "" {
		return 0, ErrEmpty
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, ErrNotFinite
		}
		return 0, ErrInvalid
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotFinite
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isSpace reports the characters a browser skips before a number: the
// space separators plus tab, vertical tab, form feed, the line terminators
// and the byte order mark. U+0085 is not among them.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
