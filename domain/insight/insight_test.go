package insight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kumungchi/vyzkumdata/domain/strategy"
)

func TestGenerate_EmptyProfile(t *testing.T) {
	sentences := Generate(strategy.Profile{}, nil)
	require.Len(t, sentences, 1)
	assert.Equal(t, FallbackSentence, sentences[0])
}

func TestGenerate_AllNeutralProfile(t *testing.T) {
	p := strategy.Profile{
		ValenceStrategy: strategy.CodeNeutral,
		ValenceStrength: strategy.StrengthMinimal,
		ArousalStrategy: strategy.CodeNeutral,
		ArousalStrength: strategy.StrengthMinimal,
		SpeedPattern:    strategy.CodeStable,
		Consistency:     strategy.CodeModerate,
		WordCount:       10,
	}
	sentences := Generate(p, nil)
	require.Len(t, sentences, 1)
	assert.Equal(t, FallbackSentence, sentences[0])
}

func TestGenerate_MappingSentences(t *testing.T) {
	p := strategy.Profile{
		ValenceStrategy: strategy.CodeDepthValence,
		ValenceStrength: strategy.StrengthStrong,
		ArousalStrategy: strategy.CodeVerticalIntensity,
		ArousalStrength: strategy.StrengthMild,
		Consistency:     strategy.CodeModerate,
		WordCount:       10,
	}
	sentences := Generate(p, nil)
	require.Len(t, sentences, 2)
	assert.Contains(t, sentences[0], "strong use of spatial depth")
	assert.Contains(t, sentences[1], "mild mapping of emotional intensity")
}

func TestGenerate_SpeedAndConsistencySentences(t *testing.T) {
	p := strategy.Profile{
		ValenceStrategy: strategy.CodeNeutral,
		ArousalStrategy: strategy.CodeNeutral,
		SpeedPattern:    strategy.CodeFatigue,
		Consistency:     strategy.CodeMemoryReference,
		WordCount:       10,
	}
	sentences := Generate(p, nil)
	require.Len(t, sentences, 2)
	assert.Contains(t, sentences[0], "Fatigue")
	assert.Contains(t, sentences[1], "consistency")
}

func TestGenerate_SystematicAndIndividual(t *testing.T) {
	p := strategy.Profile{
		SpeedPattern: strategy.CodeSystematic,
		Consistency:  strategy.CodeIndividual,
		WordCount:    10,
	}
	sentences := Generate(p, nil)
	require.Len(t, sentences, 2)
	assert.Contains(t, sentences[0], "Systematic")
	assert.Contains(t, sentences[1], "Creative")
}

func TestGenerate_PopulationDifferences(t *testing.T) {
	p := strategy.Profile{
		ValenceVsPopulation: 0.5,
		ArousalVsPopulation: -0.4,
		WordCount:           10,
	}
	sentences := Generate(p, nil)
	require.Len(t, sentences, 2)
	assert.Contains(t, sentences[0], "more positively")
	assert.Contains(t, sentences[1], "more calmly")
}

func TestGenerate_PopulationDifferenceCutoffIsStrict(t *testing.T) {
	p := strategy.Profile{
		ValenceVsPopulation: PopulationDiffThreshold, // exactly at the cutoff
		WordCount:           10,
	}
	sentences := Generate(p, nil)
	require.Len(t, sentences, 1)
	assert.Equal(t, FallbackSentence, sentences[0])
}

func TestGenerate_NeverMentionsRawCodes(t *testing.T) {
	p := strategy.Profile{
		ValenceStrategy: strategy.CodeDepthValence,
		ValenceStrength: strategy.StrengthStrong,
		SpeedPattern:    strategy.CodeFatigue,
		Consistency:     strategy.CodeIndividual,
		WordCount:       10,
	}
	for _, s := range Generate(p, nil) {
		for _, code := range []string{"DEPTH_VAL", "VERT_INT", "FATIGUE", "MEM_REF", "IND_DIFF", "SYS_DEV"} {
			assert.False(t, strings.Contains(s, code), "sentence leaks internal code %s: %s", code, s)
		}
	}
}
