// Package excise implements the Australian excise duty pipeline for packaged beer:
// ABV from gravity readings, litres of alcohol (LAL) from volume and ABV, and duty
// payable from LAL and a duty rate.
//
// The rounding rules are statutory, not stylistic: ABV is rounded to 2 dp, LAL is
// rounded to 2 dp for display and then truncated to 1 dp for the duty base, and the
// duty is truncated to 2 dp. All functions are pure and safe for concurrent use.
package excise

import (
	"math"
)

const (
	// DefaultDutyRate is the duty rate (AUD per litre of alcohol) applied when the caller omits one.
	DefaultDutyRate = 57.79

	// LALAllowancePercent is subtracted from the nominal ABV before computing taxable alcohol.
	LALAllowancePercent = 1.15

	// gravityFactor converts an OG-FG gravity drop into ABV percent.
	gravityFactor = 131.25
)

// ABV returns the alcohol by volume percentage for the given original and final
// gravities, rounded (not truncated) to 2 decimal places.
// Non-numeric gravities yield NaN so that downstream stages degrade to zero duty.
func ABV(og, fg float64) float64 {
	abv := (og - fg) * gravityFactor
	if !isFinite(abv) {
		return math.NaN()
	}
	return parseFixed(toFixed(abv, 2))
}

// PreciseLAL returns the litres of alcohol in volumeLitres of product at abvPercent,
// after the statutory allowance, formatted to exactly 2 decimal places.
// Non-numeric inputs produce "0.00".
func PreciseLAL(volumeLitres, abvPercent float64) string {
	lal := volumeLitres * ((abvPercent - LALAllowancePercent) / 100)
	if !isFinite(lal) {
		return "0.00"
	}
	return toFixed(lal, 2)
}

// TruncatedLAL returns the duty base: the 2 dp PreciseLAL value parsed back to a
// number and truncated toward zero to 1 decimal place.
//
// The round trip through the 2 dp string is part of the rule: a raw LAL of 3.4999
// displays as "3.50" and is taxed as 3.5, not 3.4.
func TruncatedLAL(volumeLitres, abvPercent float64) float64 {
	precise := parseFixed(PreciseLAL(volumeLitres, abvPercent))
	return normalizeZero(truncate(precise, 1))
}

// DutyPayable returns the excise duty for truncatedLAL litres of alcohol at rate AUD
// per litre, truncated toward zero to 2 decimal places. Non-numeric input yields 0.
func DutyPayable(truncatedLAL, rate float64) float64 {
	if !isFinite(truncatedLAL) || !isFinite(rate) {
		return 0
	}
	duty := math.Trunc(truncatedLAL*rate*100) / 100
	if !isFinite(duty) {
		return 0
	}
	return normalizeZero(duty)
}

// DutyPayableAtDefaultRate is DutyPayable at DefaultDutyRate.
func DutyPayableAtDefaultRate(truncatedLAL float64) float64 {
	return DutyPayable(truncatedLAL, DefaultDutyRate)
}

// truncate drops everything after the given number of decimal places, toward zero.
func truncate(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Trunc(value*factor) / factor
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// normalizeZero turns -0 into 0 so callers never render "-0".
func normalizeZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
