package report

import (
	"math"
	"time"
)

// WireReport is the JSON shape of a report. Metric fields are pointers so
// missing values serialize as null; encoding/json refuses raw NaN.
type WireReport struct {
	ReportID      string    `json:"report_id"`
	ParticipantID string    `json:"participant_id"`
	WordCount     int       `json:"word_count"`
	GeneratedAt   time.Time `json:"generated_at"`

	Metrics     WireMetrics         `json:"metrics"`
	Profile     WireProfile         `json:"profile"`
	Quotes      []WireQuote         `json:"quotes"`
	Insights    []string            `json:"insights"`
	Comparisons []string            `json:"comparisons"`
	TopWords    []WireWordDeviation `json:"top_words"`
	Summary     string              `json:"summary"`
}

type WireMetrics struct {
	DeltaValence      *float64 `json:"delta_valence"`
	DeltaArousal      *float64 `json:"delta_arousal"`
	FirstReactionTime *float64 `json:"first_reaction_time"`
	Dominance         *float64 `json:"dominance"`

	DeltaValenceVsPop      *float64 `json:"delta_valence_vs_pop"`
	DeltaArousalVsPop      *float64 `json:"delta_arousal_vs_pop"`
	FirstReactionTimeVsPop *float64 `json:"first_reaction_time_vs_pop"`
	DominanceVsPop         *float64 `json:"dominance_vs_pop"`
}

type WireProfile struct {
	ValenceStrategy string `json:"valence_strategy"`
	ValenceStrength string `json:"valence_strength"`
	ArousalStrategy string `json:"arousal_strategy"`
	ArousalStrength string `json:"arousal_strength"`
	SpeedPattern    string `json:"speed_pattern,omitempty"`
	Consistency     string `json:"consistency"`

	ValenceVsPopulation *float64 `json:"valence_vs_population"`
	ArousalVsPopulation *float64 `json:"arousal_vs_population"`

	WordCount int `json:"word_count"`
}

type WireQuote struct {
	Code       string `json:"code"`
	Theme      string `json:"theme"`
	Definition string `json:"definition"`
	Quote      string `json:"quote"`
	Fallback   bool   `json:"fallback,omitempty"`
}

type WireWordDeviation struct {
	Term         string   `json:"term"`
	DeltaValence *float64 `json:"delta_valence"`
	DeltaArousal *float64 `json:"delta_arousal"`
	AbsDeviation *float64 `json:"abs_deviation"`
}

// ToWire converts a report into its JSON-safe shape.
func ToWire(r *Report) WireReport {
	quotes := make([]WireQuote, 0, len(r.Quotes))
	for _, q := range r.Quotes {
		quotes = append(quotes, WireQuote{
			Code:       q.Code,
			Theme:      q.Theme,
			Definition: q.Definition,
			Quote:      q.Quote,
			Fallback:   q.Fallback,
		})
	}

	topWords := make([]WireWordDeviation, 0, len(r.TopWords))
	for _, w := range r.TopWords {
		topWords = append(topWords, WireWordDeviation{
			Term:         w.Term,
			DeltaValence: nullable(w.DeltaValence),
			DeltaArousal: nullable(w.DeltaArousal),
			AbsDeviation: nullable(w.AbsDeviation),
		})
	}

	return WireReport{
		ReportID:      r.ReportID,
		ParticipantID: r.ParticipantID,
		WordCount:     r.WordCount,
		GeneratedAt:   r.GeneratedAt,
		Metrics: WireMetrics{
			DeltaValence:           nullable(r.Metrics.DeltaValence),
			DeltaArousal:           nullable(r.Metrics.DeltaArousal),
			FirstReactionTime:      nullable(r.Metrics.FirstReactionTime),
			Dominance:              nullable(r.Metrics.Dominance),
			DeltaValenceVsPop:      nullable(r.Metrics.DeltaValenceVsPop),
			DeltaArousalVsPop:      nullable(r.Metrics.DeltaArousalVsPop),
			FirstReactionTimeVsPop: nullable(r.Metrics.FirstReactionTimeVsPop),
			DominanceVsPop:         nullable(r.Metrics.DominanceVsPop),
		},
		Profile: WireProfile{
			ValenceStrategy:     string(r.Profile.ValenceStrategy),
			ValenceStrength:     string(r.Profile.ValenceStrength),
			ArousalStrategy:     string(r.Profile.ArousalStrategy),
			ArousalStrength:     string(r.Profile.ArousalStrength),
			SpeedPattern:        string(r.Profile.SpeedPattern),
			Consistency:         string(r.Profile.Consistency),
			ValenceVsPopulation: nullable(r.Profile.ValenceVsPopulation),
			ArousalVsPopulation: nullable(r.Profile.ArousalVsPopulation),
			WordCount:           r.Profile.WordCount,
		},
		Quotes:      quotes,
		Insights:    r.Insights,
		Comparisons: r.Comparisons,
		TopWords:    topWords,
		Summary:     r.Summary,
	}
}

// nullable turns NaN into a JSON null.
func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
