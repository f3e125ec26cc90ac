package parsley

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStr2Real(t *testing.T) {
	cases := []struct {
		input string
		value float64
		ok    bool
	}{
		{"3.14", 3.14, true},
		{"4", 4.0, true},
		{"-2.5", -2.5, true},
		{"1e3", 1000.0, true},
		{"  2.5  ", 2.5, true},
		{"0.0", 0.0, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"3.14abc", 0, false},
		{"12x", 0, false},
		{"1 2", 0, false},
		{"!!", 0, false},
		{"12!!", 0, false},
		{"12!!x", 0, false},
	}
	for _, tc := range cases {
		value, ok := Str2Real(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.value, value, "input %q", tc.input)
		}
	}
}

func TestStr2Int(t *testing.T) {
	cases := []struct {
		input string
		value int
		ok    bool
	}{
		{"42", 42, true},
		{"-7", -7, true},
		{"0", 0, true},
		{" 12 ", 12, true},
		{"", 0, false},
		{"12x", 0, false},
		{"3.9", 0, false},
		{"1e3", 0, false},
		{"abc", 0, false},
		{"12!!", 0, false},
	}
	for _, tc := range cases {
		value, ok := Str2Int(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.value, value, "input %q", tc.input)
		}
	}
}

func TestStr2IntRejectsOutOfRange(t *testing.T) {
	_, ok := Str2Int("92233720368547758070")
	assert.False(t, ok)
	_, ok = Str2Int("-92233720368547758080")
	assert.False(t, ok)
}

func TestIntRoundTrip(t *testing.T) {
	for _, x := range []int{0, 1, -1, 42, -12345, math.MaxInt, math.MinInt} {
		value, ok := Str2Int(Int2Str(x))
		require.True(t, ok, "value %d", x)
		assert.Equal(t, x, value)
	}
}

func TestRealRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 0.5, 31.6227, -273.15, 1e10} {
		value, ok := Str2Real(Real2Str(x))
		require.True(t, ok, "value %g", x)
		assert.Equal(t, x, value)
	}
}

func TestReal2Str(t *testing.T) {
	// Whole numbers keep one decimal place.
	assert.Equal(t, "4.0", Real2Str(4))
	assert.Equal(t, "-2.0", Real2Str(-2))
	assert.Equal(t, "0.0", Real2Str(0))
	assert.Equal(t, "0.5", Real2Str(0.5))
	assert.Equal(t, "31.6227", Real2Str(31.6227))
}

func TestInt2Str(t *testing.T) {
	assert.Equal(t, "0", Int2Str(0))
	assert.Equal(t, "42", Int2Str(42))
	assert.Equal(t, "-7", Int2Str(-7))
}
