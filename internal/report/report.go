package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Kumungchi/vyzkumdata/domain/strategy"
	"github.com/Kumungchi/vyzkumdata/domain/survey"
	"github.com/Kumungchi/vyzkumdata/domain/thematic"
)

// Comparison cutoffs for the coarse "vs. the group" sentences. Reaction
// time uses a wider band because it is measured in seconds.
const (
	comparisonBand   = 0.1
	reactionTimeBand = 0.2
)

// topWordCount is how many most-deviant words a report highlights.
const topWordCount = 3

// Metrics are one participant's means with missing values excluded, and
// their signed differences from the population aggregate.
type Metrics struct {
	DeltaValence      float64
	DeltaArousal      float64
	FirstReactionTime float64
	Dominance         float64

	DeltaValenceVsPop      float64
	DeltaArousalVsPop      float64
	FirstReactionTimeVsPop float64
	DominanceVsPop         float64
}

// WordDeviation is one word's combined deviation from baseline.
type WordDeviation struct {
	Term         string
	DeltaValence float64
	DeltaArousal float64
	AbsDeviation float64
}

// Report is the complete personalized result set for one participant.
type Report struct {
	ReportID      string
	ParticipantID string
	WordCount     int
	GeneratedAt   time.Time

	Metrics     Metrics
	Profile     strategy.Profile
	Quotes      []thematic.Quote
	Insights    []string
	Comparisons []string
	TopWords    []WordDeviation
	Summary     string
}

// buildMetrics computes the participant means and their population offsets.
func buildMetrics(sub []survey.DeltaRecord, pop survey.PopulationAggregate) Metrics {
	val := survey.MeanValid(values(sub, func(d survey.DeltaRecord) float64 { return d.DeltaValence }))
	ar := survey.MeanValid(values(sub, func(d survey.DeltaRecord) float64 { return d.DeltaArousal }))
	rt := survey.MeanValid(values(sub, func(d survey.DeltaRecord) float64 { return d.FirstReactionTime }))
	dom := survey.MeanValid(values(sub, func(d survey.DeltaRecord) float64 { return d.PosY }))

	return Metrics{
		DeltaValence:      val,
		DeltaArousal:      ar,
		FirstReactionTime: rt,
		Dominance:         dom,

		DeltaValenceVsPop:      val - pop.MeanDeltaValence,
		DeltaArousalVsPop:      ar - pop.MeanDeltaArousal,
		FirstReactionTimeVsPop: rt - pop.MeanFirstReactionTime,
		DominanceVsPop:         dom - pop.MeanDominance,
	}
}

// buildComparisons renders the coarse comparison sentences against the
// group means. The reaction-time sentence is skipped when either side is
// missing.
func buildComparisons(m Metrics, pop survey.PopulationAggregate) []string {
	var out []string

	switch {
	case m.DeltaValence > pop.MeanDeltaValence+comparisonBand:
		out = append(out, "Overall you perceive words **more positively** than most participants.")
	case m.DeltaValence < pop.MeanDeltaValence-comparisonBand:
		out = append(out, "Overall you perceive words **more negatively** than most participants.")
	default:
		out = append(out, "Your perception of pleasantness is **similar** to most participants.")
	}

	switch {
	case m.DeltaArousal > pop.MeanDeltaArousal+comparisonBand:
		out = append(out, "Words triggered a **stronger emotional response** in you than in the others.")
	case m.DeltaArousal < pop.MeanDeltaArousal-comparisonBand:
		out = append(out, "You respond rather **calmly** (milder emotional intensity) than most.")
	default:
		out = append(out, "Your intensity of experience is **close to the group average**.")
	}

	if !math.IsNaN(m.FirstReactionTime) && !math.IsNaN(pop.MeanFirstReactionTime) {
		switch {
		case m.FirstReactionTime < pop.MeanFirstReactionTime-reactionTimeBand:
			out = append(out, "You decide **faster** than the group average.")
		case m.FirstReactionTime > pop.MeanFirstReactionTime+reactionTimeBand:
			out = append(out, "You decide **more slowly** than the group average.")
		default:
			out = append(out, "Your reaction time is **comparable** to the group.")
		}
	}

	switch {
	case m.Dominance > pop.MeanDominance+comparisonBand:
		out = append(out, "On average you feel **more in control** (higher dominance) than most.")
	case m.Dominance < pop.MeanDominance-comparisonBand:
		out = append(out, "On average you feel **less in control** than most.")
	default:
		out = append(out, "Your sense of control (dominance) is **close to the average**.")
	}

	return out
}

// topWords picks the participant's most deviant words by combined absolute
// delta. Words with missing deltas cannot be ranked and are skipped.
func topWords(sub []survey.DeltaRecord) []WordDeviation {
	var devs []WordDeviation
	for _, d := range sub {
		abs := math.Abs(d.DeltaValence) + math.Abs(d.DeltaArousal)
		if math.IsNaN(abs) {
			continue
		}
		devs = append(devs, WordDeviation{
			Term:         d.Term,
			DeltaValence: d.DeltaValence,
			DeltaArousal: d.DeltaArousal,
			AbsDeviation: abs,
		})
	}
	sort.SliceStable(devs, func(i, j int) bool {
		return devs[i].AbsDeviation > devs[j].AbsDeviation
	})
	if len(devs) > topWordCount {
		devs = devs[:topWordCount]
	}
	return devs
}

// buildSummary writes the plain-language recap that opens the report.
func buildSummary(wordCount int, m Metrics) string {
	rt := "—"
	if !math.IsNaN(m.FirstReactionTime) {
		rt = fmt.Sprintf("%.2f seconds", m.FirstReactionTime)
	}
	return fmt.Sprintf(
		"You rated %d words on three dimensions: Valence (X axis, how pleasant the word feels), "+
			"Arousal (Z axis, how activating it is) and Dominance (Y axis, how much control you feel). "+
			"Your average first reaction time was %s. "+
			"Delta (Δ) values show how far your placements sat from the expected baseline: "+
			"positive means higher than expected, negative means lower.",
		wordCount, rt)
}

func values(deltas []survey.DeltaRecord, field func(survey.DeltaRecord) float64) []float64 {
	out := make([]float64, 0, len(deltas))
	for _, d := range deltas {
		out = append(out, field(d))
	}
	return out
}
