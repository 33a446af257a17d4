package validate

import (
	"math"
	"strconv"
	"strings"
)

// Unbounded is used as max when a range has no upper bound.
var Unbounded = math.Inf(1)

// IsIntegerInRange reports whether value is a whole number within the
// inclusive range [min, max].
func IsIntegerInRange(value, min, max float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	if math.Trunc(value) != value {
		return false
	}
	return value >= min && value <= max
}

// ParseInteger parses s as a base 10 integer. Surrounding whitespace is
// ignored, anything else that is not a digit (or a leading sign) makes
// the parse fail.
func ParseInteger(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
