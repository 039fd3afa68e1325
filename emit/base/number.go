package base

import (
	"strconv"
	"strings"
)

// FormatNumber renders a literal's numeric value. Integer-syntax
// literals (array indices, loop bounds) render as bare integers;
// everything else renders as a float, forcing a decimal point so "1"
// never emits as the bare token 1, and appending suffix (e.g. C's
// trailing "f").
func FormatNumber(value float64, intSyntax bool, suffix string) string {
	if intSyntax {
		return strconv.FormatInt(int64(value), 10)
	}
	s := strconv.FormatFloat(value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s + suffix
}
