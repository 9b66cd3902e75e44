package thematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kumungchi/vyzkumdata/domain/core"
	"github.com/Kumungchi/vyzkumdata/domain/strategy"
	"github.com/Kumungchi/vyzkumdata/domain/survey"
)

func testEntries() []Entry {
	return []Entry{
		{Code: "DEPTH_VAL", Subtheme: "Depth as valence", Definition: "d1", Example: "q1"},
		{Code: "VERT_INT", Subtheme: "Height as intensity", Definition: "d2", Example: "q2"},
		{Code: "HORIZ_DOM", Subtheme: "Width as control", Definition: "d3", Example: "q3"},
		{Code: "FATIGUE", Subtheme: "Fatigue", Definition: "d4", Example: "q4"},
		{Code: "SYS_DEV", Subtheme: "System", Definition: "d5", Example: "q5"},
		{Code: "MEM_REF", Subtheme: "Memory", Definition: "d6", Example: "q6"},
		{Code: "IND_DIFF", Subtheme: "Individual", Definition: "d7", Example: "q7"},
	}
}

func TestEntriesFromTable(t *testing.T) {
	table := survey.NewTable(
		[]string{ColCode, ColSubtheme, ColDefinition, ColExample},
		[][]string{{" DEPTH_VAL ", "Depth", "def", "quote"}},
	)
	entries, err := EntriesFromTable(table)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "DEPTH_VAL", entries[0].Code, "code cells are trimmed")
}

func TestEntriesFromTable_MissingColumns(t *testing.T) {
	table := survey.NewTable([]string{ColCode, ColSubtheme}, [][]string{{"DEPTH_VAL", "Depth"}})
	_, err := EntriesFromTable(table)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMissingColumns)
}

func TestMatchQuotes_DimensionOrder(t *testing.T) {
	p := strategy.Profile{
		ValenceStrategy: strategy.CodeDepthValence,
		ArousalStrategy: strategy.CodeVerticalIntensity,
		SpeedPattern:    strategy.CodeFatigue,
		Consistency:     strategy.CodeMemoryReference,
		WordCount:       10,
	}
	quotes := MatchQuotes(p, testEntries())

	require.Len(t, quotes, MaxQuotes, "four active codes truncate to the cap")
	assert.Equal(t, "DEPTH_VAL", quotes[0].Code)
	assert.Equal(t, "VERT_INT", quotes[1].Code)
	assert.Equal(t, "FATIGUE", quotes[2].Code)
	for _, q := range quotes {
		assert.False(t, q.Fallback)
	}
}

func TestMatchQuotes_MultipleEntriesPerCode(t *testing.T) {
	entries := append(testEntries(), Entry{Code: "DEPTH_VAL", Subtheme: "Depth again", Definition: "d8", Example: "q8"})
	p := strategy.Profile{ValenceStrategy: strategy.CodeDepthValence, WordCount: 10}
	quotes := MatchQuotes(p, entries)

	require.Len(t, quotes, 2)
	assert.Equal(t, "q1", quotes[0].Quote)
	assert.Equal(t, "q8", quotes[1].Quote)
}

func TestMatchQuotes_FallbackWhenNothingActive(t *testing.T) {
	p := strategy.Profile{
		ValenceStrategy: strategy.CodeNeutral,
		ArousalStrategy: strategy.CodeNeutral,
		SpeedPattern:    strategy.CodeStable,
		Consistency:     strategy.CodeModerate,
		WordCount:       10,
	}
	quotes := MatchQuotes(p, testEntries())

	require.Len(t, quotes, MaxQuotes)
	assert.Equal(t, "DEPTH_VAL", quotes[0].Code)
	assert.Equal(t, "VERT_INT", quotes[1].Code)
	assert.Equal(t, "HORIZ_DOM", quotes[2].Code)
	for _, q := range quotes {
		assert.True(t, q.Fallback, "fallback quotes must be flagged")
	}
}

func TestMatchQuotes_FallbackWithSparseCodebook(t *testing.T) {
	entries := []Entry{{Code: "VERT_INT", Subtheme: "Height", Definition: "d", Example: "q"}}
	p := strategy.Profile{WordCount: 10}
	quotes := MatchQuotes(p, entries)

	require.Len(t, quotes, 1, "only codebook-backed fallbacks appear")
	assert.Equal(t, "VERT_INT", quotes[0].Code)
	assert.True(t, quotes[0].Fallback)
}

func TestMatchQuotes_EmptyCodebook(t *testing.T) {
	p := strategy.Profile{ValenceStrategy: strategy.CodeDepthValence, WordCount: 10}
	assert.Empty(t, MatchQuotes(p, nil))
}
