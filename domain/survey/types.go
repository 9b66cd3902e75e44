package survey

import "math"

// Canonical column names for the placements table. Input files arrive with
// localized or abbreviated headers; NormalizeColumns maps them onto this set.
const (
	ColID      = "ID"
	ColTerm    = "Term"
	ColPosX    = "Pos X"
	ColPosY    = "Pos Y"
	ColPosZ    = "Pos Z"
	ColFirstRT = "First reaction time"
	ColTotalRT = "Total reaction time"
	ColOrder   = "Order"
)

// Axis convention, fixed by the study design: X carries Valence, Y carries
// Dominance, Z carries Arousal. Dominance has no baseline label and is
// never delta-transformed.

// PlacementRecord is one (participant, word) placement. Missing numeric
// values are NaN, never zero.
type PlacementRecord struct {
	ID                string
	Term              string
	PosX              float64
	PosY              float64
	PosZ              float64
	FirstReactionTime float64
	TotalReactionTime float64
	Order             float64
}

// BaselineLabel is the expert reference rating for a single word.
type BaselineLabel struct {
	Word    string
	Valence string
	Arousal string
}

// BaselineTable holds the reference labels plus how the word column was
// chosen. WordColumnGuessed is set when the first-column fallback fired;
// callers should surface that as a warning rather than trust it silently.
type BaselineTable struct {
	Labels            []BaselineLabel
	WordColumn        string
	WordColumnGuessed bool
}

// DeltaRecord is a placement joined to its baseline label. For words with
// no baseline match, all four derived fields are NaN.
type DeltaRecord struct {
	PlacementRecord
	BaselineValence float64
	BaselineArousal float64
	DeltaValence    float64
	DeltaArousal    float64
}

// Matched reports whether the record's word had a baseline label with a
// recognized valence category.
func (d DeltaRecord) Matched() bool {
	return !math.IsNaN(d.BaselineValence)
}

// PopulationAggregate holds the group means across the full delta set,
// computed with missing values excluded. It has no identity of its own and
// must be recomputed from scratch whenever the delta set changes.
type PopulationAggregate struct {
	MeanDeltaValence      float64
	MeanDeltaArousal      float64
	MeanFirstReactionTime float64
	MeanDominance         float64
	SampleSize            int
}
