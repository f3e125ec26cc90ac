package parsley

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The numeric parsers must consume the entire (trimmed) input: "12x" and
// "3.14abc" are errors, not 12 and 3.14. Appending a sentinel suffix and
// scanning for it after the number makes fmt.Sscanf enforce that, provided
// the input cannot spoof the sentinel itself.
const sentinel = "!!"

// Str2Real parses str as a base-10 floating point literal. Surrounding
// whitespace is ignored; any other trailing characters make the parse fail.
func Str2Real(str string) (float64, bool) {
	if strings.Contains(str, sentinel) {
		return 0, false
	}

	temp := strings.TrimSpace(str) + sentinel + "x"

	var value float64
	var c rune
	n, err := fmt.Sscanf(temp, "%g"+sentinel+"%c", &value, &c)
	if err != nil || n != 2 || c != 'x' {
		return 0, false
	}
	return value, true
}

// Str2Int parses str as a base-10 integer with the same whole-string
// contract as Str2Real. Values outside the int range fail rather than wrap.
func Str2Int(str string) (int, bool) {
	// Try as real first so that we can range check before converting.
	rv, ok := Str2Real(str)
	if !ok {
		return 0, false
	}
	if rv < float64(math.MinInt) || rv > float64(math.MaxInt) {
		return 0, false
	}

	temp := strings.TrimSpace(str) + sentinel + "x"

	var value int
	var c rune
	n, err := fmt.Sscanf(temp, "%d"+sentinel+"%c", &value, &c)
	if err != nil || n != 2 || c != 'x' {
		return 0, false
	}
	return value, true
}

// Real2Str renders x for help text and error messages. Whole numbers keep
// one decimal place ("4.0") so that real defaults are visibly reals.
func Real2Str(x float64) string {
	if math.Floor(x) == x {
		return strconv.FormatFloat(x, 'f', 1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Int2Str renders i in plain base 10.
func Int2Str(i int) string {
	return strconv.Itoa(i)
}
