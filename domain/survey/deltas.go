package survey

import (
	"math"
	"strings"

	"github.com/Kumungchi/vyzkumdata/domain/core"
	"github.com/montanaflynn/stats"
)

// Baseline categorical columns.
const (
	ColValence = "Valence"
	ColArousal = "Arousal"
)

// RequiredBaselineColumns must exist in the baseline table besides the
// word column.
var RequiredBaselineColumns = []string{ColValence, ColArousal}

// Category label to ordinal maps. Lookup is case-insensitive (labels are
// lowercased once, rather than enumerating capitalization variants) and
// accepts the Czech labels used by the study alongside their English
// equivalents. Unrecognized labels map to NaN, never to zero.
var arousalLevels = map[string]float64{
	"nízký": 1, "střední": 2, "vysoký": 3,
	"low": 1, "medium": 2, "high": 3,
}

var valenceLevels = map[string]float64{
	"negativní": -1, "neutrální": 0, "pozitivní": 1,
	"negative": -1, "neutral": 0, "positive": 1,
}

// MapArousal converts an arousal label to its ordinal value (1..3), or NaN
// for an unrecognized label.
func MapArousal(label string) float64 {
	if v, ok := arousalLevels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return v
	}
	return math.NaN()
}

// MapValence converts a valence label to its signed value (-1, 0, 1), or
// NaN for an unrecognized label.
func MapValence(label string) float64 {
	if v, ok := valenceLevels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return v
	}
	return math.NaN()
}

// wordColumnKeywords identify the word column in a baseline table, in
// either language ("přídavné jméno", "adjektivum", "slovo", "word").
var wordColumnKeywords = []string{"přídav", "adjekt", "slovo", "word"}

// BaselineFromTable builds the reference label set from a raw table.
//
// The word column is the explicit wordColumn when given; otherwise it is
// detected by keyword search, falling back to the first column. The
// fallback is a heuristic, not a guarantee; the returned table's
// WordColumnGuessed flag is set so callers can warn instead of silently
// proceeding.
func BaselineFromTable(t *Table, wordColumn string) (*BaselineTable, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if missing := t.MissingColumns(RequiredBaselineColumns); len(missing) > 0 {
		return nil, core.NewMissingColumnsError("baseline table", missing)
	}

	guessed := false
	if wordColumn == "" {
		wordColumn, guessed = detectWordColumn(t)
	} else if !t.HasColumn(wordColumn) {
		return nil, core.NewNotFoundError("baseline word column", wordColumn)
	}

	labels := make([]BaselineLabel, 0, t.RowCount())
	for i := range t.Rows {
		labels = append(labels, BaselineLabel{
			Word:    strings.TrimSpace(t.Cell(i, wordColumn)),
			Valence: t.Cell(i, ColValence),
			Arousal: t.Cell(i, ColArousal),
		})
	}
	return &BaselineTable{Labels: labels, WordColumn: wordColumn, WordColumnGuessed: guessed}, nil
}

func detectWordColumn(t *Table) (column string, guessed bool) {
	for _, c := range t.Columns {
		lc := strings.ToLower(c)
		for _, k := range wordColumnKeywords {
			if strings.Contains(lc, k) {
				return c, false
			}
		}
	}
	return t.Columns[0], true
}

// ComputeDeltas left-joins placements to baseline labels on Term and
// derives the per-word deviations:
//
//	delta_valence = Pos X − baseline_valence
//	delta_arousal = Pos Z − baseline_arousal
//
// Every placement is retained; words without a baseline match carry NaN in
// all four derived fields. Dominance (Pos Y) has no baseline and is never
// delta-transformed.
func ComputeDeltas(placements []PlacementRecord, baselines *BaselineTable) []DeltaRecord {
	byWord := make(map[string]BaselineLabel, len(baselines.Labels))
	for _, lbl := range baselines.Labels {
		if _, exists := byWord[lbl.Word]; !exists {
			byWord[lbl.Word] = lbl
		}
	}

	deltas := make([]DeltaRecord, 0, len(placements))
	for _, p := range placements {
		d := DeltaRecord{
			PlacementRecord: p,
			BaselineValence: math.NaN(),
			BaselineArousal: math.NaN(),
			DeltaValence:    math.NaN(),
			DeltaArousal:    math.NaN(),
		}
		if lbl, ok := byWord[p.Term]; ok {
			d.BaselineValence = MapValence(lbl.Valence)
			d.BaselineArousal = MapArousal(lbl.Arousal)
			d.DeltaValence = p.PosX - d.BaselineValence
			d.DeltaArousal = p.PosZ - d.BaselineArousal
		}
		deltas = append(deltas, d)
	}
	return deltas
}

// Aggregate computes the population means over the full delta set with
// missing values excluded from each mean, not coerced to zero. An empty
// or all-missing column yields NaN for that mean.
func Aggregate(deltas []DeltaRecord) PopulationAggregate {
	return PopulationAggregate{
		MeanDeltaValence:      MeanValid(collect(deltas, func(d DeltaRecord) float64 { return d.DeltaValence })),
		MeanDeltaArousal:      MeanValid(collect(deltas, func(d DeltaRecord) float64 { return d.DeltaArousal })),
		MeanFirstReactionTime: MeanValid(collect(deltas, func(d DeltaRecord) float64 { return d.FirstReactionTime })),
		MeanDominance:         MeanValid(collect(deltas, func(d DeltaRecord) float64 { return d.PosY })),
		SampleSize:            len(deltas),
	}
}

func collect(deltas []DeltaRecord, field func(DeltaRecord) float64) []float64 {
	out := make([]float64, 0, len(deltas))
	for _, d := range deltas {
		out = append(out, field(d))
	}
	return out
}

// FilterValid drops NaN values, returning only the usable observations.
func FilterValid(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// MeanValid is the arithmetic mean with missing values excluded; NaN when
// nothing remains.
func MeanValid(values []float64) float64 {
	valid := FilterValid(values)
	if len(valid) == 0 {
		return math.NaN()
	}
	mean, err := stats.Mean(valid)
	if err != nil {
		return math.NaN()
	}
	return mean
}
