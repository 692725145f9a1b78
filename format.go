package rpncalc

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Digits is the number of digits Format writes after the decimal point.
const Digits = 5

// Format renders a value in fixed-point notation with exactly Digits digits
// after the decimal point. The value is rounded half away from zero, starting
// from the shortest decimal representation of v, so Format(0.000005) is
// "0.00001" and Format(-0.000005) is "-0.00001". Values that round to zero
// never carry a sign. Infinities and NaN are formatted as strconv does.
func Format(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', Digits, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(Digits)
}

// FormatError renders an error as the result of a calculation.
func FormatError(err error) string {
	return "error: " + err.Error()
}
