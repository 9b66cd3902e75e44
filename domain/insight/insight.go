// Package insight turns a strategy profile into short natural-language
// statements. It does no classification of its own, only template
// selection keyed by the profile's categories.
package insight

import (
	"fmt"
	"math"

	"github.com/Kumungchi/vyzkumdata/domain/strategy"
	"github.com/Kumungchi/vyzkumdata/domain/thematic"
)

// PopulationDiffThreshold is the smallest |participant − population| mean
// difference worth a sentence of its own.
const PopulationDiffThreshold = 0.3

// FallbackSentence is returned alone when the profile is empty.
const FallbackSentence = "Your approach is very close to the group average."

var mappingTemplates = map[strategy.Strength]struct{ valence, arousal string }{
	strategy.StrengthStrong: {
		valence: "**Valence mapping**: you make strong use of spatial depth for how pleasant or unpleasant words feel.",
		arousal: "**Vertical intensity**: strong mapping of emotional intensity onto the vertical axis.",
	},
	strategy.StrengthMild: {
		valence: "**Valence mapping**: you make mild use of spatial depth for how pleasant or unpleasant words feel.",
		arousal: "**Vertical intensity**: mild mapping of emotional intensity onto the vertical axis.",
	},
}

// Generate produces one sentence per non-default classifier outcome, plus
// population-difference sentences when the participant's means sit far from
// the group. Quotes are accepted alongside the profile so callers can hand
// over the matcher output unchanged; the sentences themselves are keyed
// only on the profile. An empty profile yields the single fallback
// sentence.
func Generate(p strategy.Profile, quotes []thematic.Quote) []string {
	if p.Empty() {
		return []string{FallbackSentence}
	}
	_ = quotes

	var sentences []string
	if p.ValenceStrategy == strategy.CodeDepthValence {
		if t, ok := mappingTemplates[p.ValenceStrength]; ok {
			sentences = append(sentences, t.valence)
		}
	}
	if p.ArousalStrategy == strategy.CodeVerticalIntensity {
		if t, ok := mappingTemplates[p.ArousalStrength]; ok {
			sentences = append(sentences, t.arousal)
		}
	}

	switch p.SpeedPattern {
	case strategy.CodeFatigue:
		sentences = append(sentences, "**Fatigue during the task**: you gradually slowed down, which is normal for a task of this length.")
	case strategy.CodeSystematic:
		sentences = append(sentences, "**Systematic approach**: you gradually sped up — you developed an efficient strategy.")
	}

	switch p.Consistency {
	case strategy.CodeMemoryReference:
		sentences = append(sentences, "**High consistency**: you remember your earlier choices and keep to a single logic.")
	case strategy.CodeIndividual:
		sentences = append(sentences, "**Creative approach**: you use varied, atypical ways of placing words.")
	}

	if diff := p.ValenceVsPopulation; math.Abs(diff) > PopulationDiffThreshold {
		direction := "more positively"
		if diff < 0 {
			direction = "more negatively"
		}
		sentences = append(sentences, fmt.Sprintf("**Valence difference**: overall you rate words %s than the group average.", direction))
	}
	if diff := p.ArousalVsPopulation; math.Abs(diff) > PopulationDiffThreshold {
		direction := "more intensely"
		if diff < 0 {
			direction = "more calmly"
		}
		sentences = append(sentences, fmt.Sprintf("**Arousal difference**: you perceive emotional intensity %s than the others.", direction))
	}

	if len(sentences) == 0 {
		return []string{FallbackSentence}
	}
	return sentences
}
