package excise

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// toFixed formats a finite v with exactly places decimal digits.
//
// Rounding is done on the exact binary value of v, half away from zero, so 2.675
// (stored as 2.67499...) gives "2.67" while 1.125 (exact) gives "1.13". Values that
// round to zero from below keep their sign ("-0.00").
func toFixed(v float64, places int32) string {
	d := decimal.NewFromFloatWithExponent(v, -places)
	s := d.StringFixed(places)
	if v < 0 && d.IsZero() {
		s = "-" + s
	}
	return s
}

// parseFixed reads back a string produced by toFixed.
func parseFixed(s string) float64 {
	return ParseNumber(s)
}

// ParseNumber parses user-entered numeric text. Surrounding whitespace is ignored.
// The whole value must be a decimal number: trailing text such as "5 litres" is
// rejected, as are hex floats and the NaN and Inf spellings. Empty, malformed or
// out-of-range text yields NaN, which the duty pipeline turns into 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(f) {
		return math.NaN()
	}
	return normalizeZero(f)
}

// FormatLAL renders a truncated LAL for display with one decimal place.
func FormatLAL(v float64) string {
	if !isFinite(v) {
		return "0.0"
	}
	return toFixed(normalizeZero(v), 1)
}

// FormatAmount renders a monetary amount or rate with two decimal places.
func FormatAmount(v float64) string {
	if !isFinite(v) {
		return "0.00"
	}
	return toFixed(normalizeZero(v), 2)
}
