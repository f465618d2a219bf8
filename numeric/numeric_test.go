package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petrocalc/numeric"
)

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"4", 4},
		{"  3.25", 3.25},
		{"12ft", 12},
		{"1e3", 1000},
		{"1e3x", 1000},
		{"1e", 1},
		{"2.5E-1", 0.25},
		{".5", 0.5},
		{"5.", 5},
		{"-7.5", -7.5},
		{"+8", 8},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
		{"0012", 12},
		{"1,5", 1},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, numeric.ParsePrefix(tc.in))
		})
	}
}

func TestParsePrefix_NotANumber(t *testing.T) {
	for _, in := range []string{"", " ", "abc", ".", "-", "+.", "e5", "inf", "NaN"} {
		assert.True(t, math.IsNaN(numeric.ParsePrefix(in)), "input %q", in)
	}
}

func TestLenient(t *testing.T) {
	assert.Equal(t, 4.0, numeric.Lenient("4"))
	assert.Equal(t, 0.0, numeric.Lenient(""))
	assert.Equal(t, 0.0, numeric.Lenient("x"))
	assert.Equal(t, 12.0, numeric.Lenient("12 bbl"))
	assert.True(t, math.IsInf(numeric.Lenient("Infinity"), 1))

	negZero := numeric.Lenient("-0")
	assert.Equal(t, 0.0, negZero)
	assert.False(t, math.Signbit(negZero), "negative zero must collapse to zero")
}

func TestStrict(t *testing.T) {
	v, err := numeric.Strict(" 42.5 ")
	require.NoError(t, err)
	assert.Equal(t, 42.5, v)

	_, err = numeric.Strict("")
	require.ErrorIs(t, err, numeric.ErrEmpty)

	_, err = numeric.Strict("12ft")
	require.ErrorIs(t, err, numeric.ErrInvalid)

	_, err = numeric.Strict("Inf")
	require.ErrorIs(t, err, numeric.ErrNotFinite)

	_, err = numeric.Strict("1e400")
	require.ErrorIs(t, err, numeric.ErrNotFinite)

	_, err = numeric.Strict("NaN")
	require.ErrorIs(t, err, numeric.ErrNotFinite)
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "1256.6371", numeric.Fixed(math.Pi/4*16*100, 4))
	assert.Equal(t, "4.60", numeric.Fixed(4.6, 2))
	assert.Equal(t, "3.00", numeric.Fixed(3, 2))
	assert.Equal(t, "0.0000", numeric.Fixed(math.Copysign(0, -1), 4))
	assert.Equal(t, "Infinity", numeric.Fixed(math.Inf(1), 4))
	assert.Equal(t, "-Infinity", numeric.Fixed(math.Inf(-1), 4))
	assert.Equal(t, "NaN", numeric.Fixed(math.NaN(), 4))
	assert.Equal(t, "1e+21", numeric.Fixed(1e21, 4))
}

func TestFixed_TiesRoundAwayFromZero(t *testing.T) {
	tests := []struct {
		v      float64
		digits int
		want   string
	}{
		{1.0 / 32, 4, "0.0313"},
		{-1.0 / 32, 4, "-0.0313"},
		{33.0 / 8, 2, "4.13"},
		{0.125, 2, "0.13"},
		{2.5, 0, "3"},
		{0.5, 0, "1"},
		// 1.005 is stored just below the tie, so it rounds down.
		{1.005, 2, "1.00"},
		{-0.00001, 4, "-0.0000"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, numeric.Fixed(tc.v, tc.digits), "Fixed(%v, %d)", tc.v, tc.digits)
	}
}

func TestParsePrefix_Whitespace(t *testing.T) {
	for _, in := range []string{"\t5", "\n5", "\v5", "\f5", "\r5", "\u00a05", "\u20285", "\u20295", "\u30005", "\ufeff5", "\u20035"} {
		assert.Equal(t, 5.0, numeric.ParsePrefix(in), "input %q", in)
	}
	assert.True(t, math.IsNaN(numeric.ParsePrefix("\u00855")), "NEL is not whitespace")
	assert.Equal(t, 0.0, numeric.Lenient("\u00855"))
	assert.True(t, math.IsNaN(numeric.ParsePrefix("\u200b5")), "zero width space is not whitespace")
}

func TestRound(t *testing.T) {
	assert.Equal(t, 4.6, numeric.Round(23.0/5.0, 2))
	assert.Equal(t, 3.33, numeric.Round(10.0/3.0, 2))
	assert.Equal(t, 1256.6371, numeric.Round(math.Pi/4*16*100, 4))
	assert.True(t, math.IsInf(numeric.Round(math.Inf(1), 2), 1))
	assert.Equal(t, 4.13, numeric.Round(33.0/8.0, 2))
	assert.Equal(t, 0.0313, numeric.Round(1.0/32.0, 4))
}
