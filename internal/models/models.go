// Package models provides domain models for the trade tracker.
package models

// OptionType represents the option contract type (Indian market convention).
type OptionType string

const (
	OptionCall OptionType = "CE"
	OptionPut  OptionType = "PE"
)

// Valid reports whether the option type is one of the two known values.
// Empty is allowed: equity trades carry no option type.
func (o OptionType) Valid() bool {
	return o == "" || o == OptionCall || o == OptionPut
}

// Wave represents the Elliott-wave position at entry.
type Wave string

const (
	Wave1 Wave = "1"
	Wave2 Wave = "2"
	Wave3 Wave = "3"
	Wave4 Wave = "4"
	Wave5 Wave = "5"
	WaveA Wave = "A"
	WaveB Wave = "B"
	WaveC Wave = "C"
)

// Waves lists the selectable wave values in display order.
var Waves = []Wave{Wave1, Wave2, Wave3, Wave4, Wave5, WaveA, WaveB, WaveC}

// Valid reports whether the wave is a known value. Empty means unset.
func (w Wave) Valid() bool {
	if w == "" {
		return true
	}
	for _, known := range Waves {
		if w == known {
			return true
		}
	}
	return false
}

// Criterion represents one entry-setup criterion tag.
type Criterion string

const (
	CriterionMBLBreakRetest  Criterion = "MBL break-retest"
	CriterionAutoBreakRetest Criterion = "Auto break-retest"
	CriterionRBD             Criterion = "RBD"
	CriterionHBD             Criterion = "HBD"
	CriterionBAP             Criterion = "BAP"
)

// DefaultCriteria lists the built-in criterion tags. The configured set may
// extend this.
var DefaultCriteria = []Criterion{
	CriterionMBLBreakRetest,
	CriterionAutoBreakRetest,
	CriterionRBD,
	CriterionHBD,
	CriterionBAP,
}

// DefaultStrategies lists the built-in strategy names. The configured set may
// extend this.
var DefaultStrategies = []string{"GZ-GZ", "DZ-DZ", "3rd wave", "5th wave", "C wave"}

// Confidence bounds for the 1-5 conviction score.
const (
	MinConfidence = 1
	MaxConfidence = 5
)
