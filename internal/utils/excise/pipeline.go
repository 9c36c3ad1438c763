package excise

import "math"

// Entry identifies the stage at which a Measurement enters the pipeline.
type Entry string

const (
	EntryABV     Entry = "abv"     // ABV supplied directly
	EntryGravity Entry = "gravity" // ABV derived from OG and FG
	EntryNone    Entry = "none"    // neither ABV nor both gravities supplied
)

// Measurement holds the batch readings fed into Calculate.
// Nil pointers mean "not supplied".
type Measurement struct {
	OriginalGravity      *float64
	FinalGravity         *float64
	ABVPercent           *float64
	PackagedVolumeLitres float64
	// ExciseRate in AUD per litre of alcohol; nil means DefaultDutyRate.
	ExciseRate *float64
}

// Entry reports which stage Calculate starts from. A directly supplied ABV wins
// over gravity readings.
func (m Measurement) Entry() Entry {
	switch {
	case m.ABVPercent != nil:
		return EntryABV
	case m.OriginalGravity != nil && m.FinalGravity != nil:
		return EntryGravity
	default:
		return EntryNone
	}
}

// Rate returns the duty rate the pipeline applies.
func (m Measurement) Rate() float64 {
	if m.ExciseRate == nil {
		return DefaultDutyRate
	}
	return *m.ExciseRate
}

// Result is the output of the pipeline, ready for display. It never carries NaN.
type Result struct {
	ABVPercent   float64
	PreciseLAL   string
	TruncatedLAL float64
	DutyPayable  float64
	RateApplied  float64
}

// Calculate runs (OG, FG) -> ABV -> LAL (precise, truncated) -> duty payable.
func Calculate(m Measurement) Result {
	abv := math.NaN()
	switch m.Entry() {
	case EntryABV:
		abv = *m.ABVPercent
	case EntryGravity:
		abv = ABV(*m.OriginalGravity, *m.FinalGravity)
	}

	rate := m.Rate()
	truncated := TruncatedLAL(m.PackagedVolumeLitres, abv)

	return Result{
		ABVPercent:   finiteOrZero(abv),
		PreciseLAL:   PreciseLAL(m.PackagedVolumeLitres, abv),
		TruncatedLAL: truncated,
		DutyPayable:  DutyPayable(truncated, rate),
		RateApplied:  finiteOrZero(rate),
	}
}

func finiteOrZero(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return normalizeZero(v)
}
