// Package strategy derives a participant's behavioral-strategy profile
// from their delta records, relative to fixed thresholds and the
// population aggregate.
package strategy

import (
	"math"

	"github.com/Kumungchi/vyzkumdata/domain/survey"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Classification thresholds. These are the study's documented cutoffs,
// named here so the rules stay auditable; all comparisons are strict, so
// a value sitting exactly on a cutoff falls through to the weaker bucket.
const (
	RangeStrong      = 1.5 // delta range above this: strong mapping
	RangeMild        = 0.8 // delta range above this: mild mapping
	TrendThreshold   = 0.3 // |correlation(Order, first RT)| above this: a speed trend
	ConsistentStdDev = 0.3 // both delta stddevs below this: highly consistent
	VariableStdDev   = 1.0 // either delta stddev above this: highly variable
)

// Code identifies a thematic strategy category. The non-default codes
// match the qualitative codebook used by the study interviews.
type Code string

const (
	CodeDepthValence      Code = "DEPTH_VAL" // spatial depth used for valence
	CodeVerticalIntensity Code = "VERT_INT"  // vertical axis used for intensity
	CodeHorizontalDom     Code = "HORIZ_DOM" // horizontal axis used for dominance
	CodeFatigue           Code = "FATIGUE"   // slowing down over the task
	CodeSystematic        Code = "SYS_DEV"   // speeding up: a developed system
	CodeMemoryReference   Code = "MEM_REF"   // highly consistent placements
	CodeIndividual        Code = "IND_DIFF"  // highly variable placements

	CodeNeutral  Code = "neutral"
	CodeStable   Code = "stable"
	CodeModerate Code = "moderate"
)

// Strength qualifies how pronounced a mapping strategy is.
type Strength string

const (
	StrengthStrong  Strength = "strong"
	StrengthMild    Strength = "mild"
	StrengthMinimal Strength = "minimal"
)

// Profile is one participant's classified behavioral pattern. SpeedPattern
// is empty (omitted) when the data carries no presentation order. The
// population comparison fields are signed and unrounded; formatting is the
// caller's concern.
type Profile struct {
	ValenceStrategy Code
	ValenceStrength Strength
	ArousalStrategy Code
	ArousalStrength Strength
	SpeedPattern    Code
	Consistency     Code

	ValenceVsPopulation float64
	ArousalVsPopulation float64

	WordCount int
}

// Empty reports whether the profile was computed from zero words. Callers
// must check this before presenting the profile.
func (p Profile) Empty() bool {
	return p.WordCount == 0
}

// Classify derives a participant's strategy profile from their delta
// records and the population aggregate. Missing values are excluded from
// every statistic; an empty input yields the zero profile.
func Classify(deltas []survey.DeltaRecord, pop survey.PopulationAggregate) Profile {
	if len(deltas) == 0 {
		return Profile{}
	}

	deltaValence := collect(deltas, func(d survey.DeltaRecord) float64 { return d.DeltaValence })
	deltaArousal := collect(deltas, func(d survey.DeltaRecord) float64 { return d.DeltaArousal })

	p := Profile{WordCount: len(deltas)}
	p.ValenceStrategy, p.ValenceStrength = mappingStrategy(CodeDepthValence, rangeOf(deltaValence))
	p.ArousalStrategy, p.ArousalStrength = mappingStrategy(CodeVerticalIntensity, rangeOf(deltaArousal))
	p.SpeedPattern = speedPattern(deltas)
	p.Consistency = consistency(deltaValence, deltaArousal)
	p.ValenceVsPopulation = survey.MeanValid(deltaValence) - pop.MeanDeltaValence
	p.ArousalVsPopulation = survey.MeanValid(deltaArousal) - pop.MeanDeltaArousal
	return p
}

// mappingStrategy buckets a delta range. NaN (no usable values) compares
// false on both cutoffs and lands in the weakest bucket.
func mappingStrategy(code Code, deltaRange float64) (Code, Strength) {
	switch {
	case deltaRange > RangeStrong:
		return code, StrengthStrong
	case deltaRange > RangeMild:
		return code, StrengthMild
	default:
		return CodeNeutral, StrengthMinimal
	}
}

// speedPattern correlates presentation order with first reaction time.
// When no order data is present at all the pattern is omitted; when order
// exists but the correlation is undefined (fewer than two usable pairs, or
// zero variance) the participant counts as stable.
func speedPattern(deltas []survey.DeltaRecord) Code {
	var order, rt []float64
	hasOrder := false
	for _, d := range deltas {
		if !math.IsNaN(d.Order) {
			hasOrder = true
		}
		if !math.IsNaN(d.Order) && !math.IsNaN(d.FirstReactionTime) {
			order = append(order, d.Order)
			rt = append(rt, d.FirstReactionTime)
		}
	}
	if !hasOrder {
		return ""
	}

	trend := math.NaN()
	if len(order) >= 2 {
		trend = stat.Correlation(order, rt, nil)
	}
	switch {
	case trend > TrendThreshold:
		return CodeFatigue
	case trend < -TrendThreshold:
		return CodeSystematic
	default:
		return CodeStable
	}
}

func consistency(deltaValence, deltaArousal []float64) Code {
	valStd := stdDev(deltaValence)
	arStd := stdDev(deltaArousal)
	switch {
	case valStd < ConsistentStdDev && arStd < ConsistentStdDev:
		return CodeMemoryReference
	case valStd > VariableStdDev || arStd > VariableStdDev:
		return CodeIndividual
	default:
		return CodeModerate
	}
}

// rangeOf is max−min over the usable values, NaN when none exist.
func rangeOf(values []float64) float64 {
	valid := survey.FilterValid(values)
	if len(valid) == 0 {
		return math.NaN()
	}
	min, err := stats.Min(valid)
	if err != nil {
		return math.NaN()
	}
	max, err := stats.Max(valid)
	if err != nil {
		return math.NaN()
	}
	return max - min
}

// stdDev is the sample standard deviation over usable values, NaN when
// fewer than two exist.
func stdDev(values []float64) float64 {
	valid := survey.FilterValid(values)
	if len(valid) < 2 {
		return math.NaN()
	}
	sd, err := stats.StandardDeviationSample(valid)
	if err != nil {
		return math.NaN()
	}
	return sd
}

func collect(deltas []survey.DeltaRecord, field func(survey.DeltaRecord) float64) []float64 {
	out := make([]float64, 0, len(deltas))
	for _, d := range deltas {
		out = append(out, field(d))
	}
	return out
}
