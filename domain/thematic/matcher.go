// Package thematic maps classifier output onto the qualitative interview
// codebook, selecting representative quotes for a participant's profile.
package thematic

import (
	"strings"

	"github.com/Kumungchi/vyzkumdata/domain/core"
	"github.com/Kumungchi/vyzkumdata/domain/strategy"
	"github.com/Kumungchi/vyzkumdata/domain/survey"
)

// Codebook column names.
const (
	ColCode       = "Code"
	ColSubtheme   = "Subtheme"
	ColDefinition = "Definition"
	ColExample    = "Example quotes"
)

// MaxQuotes is the most quotes ever returned for one profile.
const MaxQuotes = 3

// Entry is one row of the thematic codebook.
type Entry struct {
	Code       string
	Subtheme   string
	Definition string
	Example    string
}

// Quote is a codebook entry selected for a participant. Fallback marks
// quotes chosen only because nothing matched the profile; callers must not
// present those as reflecting the participant's specific strategy.
type Quote struct {
	Code       string
	Theme      string
	Definition string
	Quote      string
	Fallback   bool
}

// EntriesFromTable reads the codebook out of a raw table.
func EntriesFromTable(t *survey.Table) ([]Entry, error) {
	required := []string{ColCode, ColSubtheme, ColDefinition, ColExample}
	if missing := t.MissingColumns(required); len(missing) > 0 {
		return nil, core.NewMissingColumnsError("thematic codebook", missing)
	}
	entries := make([]Entry, 0, t.RowCount())
	for i := range t.Rows {
		entries = append(entries, Entry{
			Code:       strings.TrimSpace(t.Cell(i, ColCode)),
			Subtheme:   t.Cell(i, ColSubtheme),
			Definition: t.Cell(i, ColDefinition),
			Example:    t.Cell(i, ColExample),
		})
	}
	return entries, nil
}

// fallbackCodes are tried, in order, when nothing in the codebook matches
// the profile's active codes. The selection is independent of the profile
// and exists only so the report never shows an empty section.
var fallbackCodes = []strategy.Code{
	strategy.CodeDepthValence,
	strategy.CodeVerticalIntensity,
	strategy.CodeHorizontalDom,
}

// MatchQuotes selects up to MaxQuotes codebook entries whose code matches
// one of the profile's active (non-default) categories. Ordering follows
// the classifier's dimension order (valence, arousal, speed, consistency),
// which also decides what survives truncation.
func MatchQuotes(p strategy.Profile, entries []Entry) []Quote {
	var quotes []Quote
	for _, code := range activeCodes(p) {
		for _, e := range entries {
			if e.Code == string(code) {
				quotes = append(quotes, Quote{
					Code:       e.Code,
					Theme:      e.Subtheme,
					Definition: e.Definition,
					Quote:      e.Example,
				})
			}
		}
	}

	if len(quotes) == 0 {
		for _, code := range fallbackCodes {
			for _, e := range entries {
				if e.Code == string(code) {
					quotes = append(quotes, Quote{
						Code:       e.Code,
						Theme:      e.Subtheme,
						Definition: e.Definition,
						Quote:      e.Example,
						Fallback:   true,
					})
					break
				}
			}
		}
	}

	if len(quotes) > MaxQuotes {
		quotes = quotes[:MaxQuotes]
	}
	return quotes
}

// activeCodes lists the profile's non-default category codes in classifier
// dimension order.
func activeCodes(p strategy.Profile) []strategy.Code {
	var codes []strategy.Code
	if p.ValenceStrategy == strategy.CodeDepthValence {
		codes = append(codes, strategy.CodeDepthValence)
	}
	if p.ArousalStrategy == strategy.CodeVerticalIntensity {
		codes = append(codes, strategy.CodeVerticalIntensity)
	}
	if p.SpeedPattern == strategy.CodeFatigue || p.SpeedPattern == strategy.CodeSystematic {
		codes = append(codes, p.SpeedPattern)
	}
	if p.Consistency == strategy.CodeMemoryReference || p.Consistency == strategy.CodeIndividual {
		codes = append(codes, p.Consistency)
	}
	return codes
}
