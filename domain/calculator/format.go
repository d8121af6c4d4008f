package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// minFraction is the smallest magnitude whose first significant digit still
// fits on the display after "0." and the leading zeros.
var minFraction = math.Pow10(-(MaxDisplayLen - 2))

// Cleanup formats a raw computation result to fit the display.
//
// Whole numbers lose their fractional part and switch to two-decimal
// exponent notation when wider than the display. Fractions too small or too
// wide for the display also use exponent notation; the rest are truncated
// to the display width and stripped of trailing zeros.
func Cleanup(raw string) string {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return raw
	}
	if v == 0 {
		return zeroText
	}
	if v == math.Trunc(v) {
		s := strconv.FormatFloat(v, 'f', 0, 64)
		if len(s) > MaxDisplayLen {
			return exponential(v)
		}
		return s
	}
	if math.Abs(v) < minFraction {
		return exponential(v)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if whole, _, _ := strings.Cut(s, "."); len(whole) > MaxDisplayLen {
		return exponential(v)
	}
	if len(s) > MaxDisplayLen {
		s = s[:MaxDisplayLen]
		// a sign leaves one column less for the digits
		if !strings.ContainsAny(s, "123456789") {
			return exponential(v)
		}
	}
	return trimZeros(s)
}

func exponential(v float64) string { return fmt.Sprintf("%.2e", v) }

// trimZeros strips trailing zeros after the decimal point, and the point
// itself when nothing follows it.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" || s == "-0" {
		return zeroText
	}
	return s
}
