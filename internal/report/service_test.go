package report_test

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kumungchi/vyzkumdata/internal/errors"
	"github.com/Kumungchi/vyzkumdata/internal/report"
	"github.com/Kumungchi/vyzkumdata/internal/testkit"
)

func testProvider() *testkit.StaticProvider {
	ds := testkit.Dataset(42,
		testkit.Participant{ID: "R1", ValenceBias: 0.8, ArousalBias: -0.5, Noise: 0.3, RTSlope: 0.15},
		testkit.Participant{ID: "R2", ValenceBias: -0.2, Noise: 0.1},
		testkit.Participant{ID: "R3", Noise: 0.05, WithoutOrder: true},
	)
	return &testkit.StaticProvider{DS: ds}
}

func TestService_Participants(t *testing.T) {
	svc := report.NewService(testProvider(), time.Hour)
	ids, err := svc.Participants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"R1", "R2", "R3"}, ids, "IDs are unique and sorted")
}

func TestService_CachesDataset(t *testing.T) {
	provider := testProvider()
	svc := report.NewService(provider, time.Hour)

	_, err := svc.Participants(context.Background())
	require.NoError(t, err)
	_, err = svc.BuildReport(context.Background(), "R1")
	require.NoError(t, err)

	assert.Equal(t, 1, provider.Loads, "second call hits the cache")

	svc.Invalidate()
	_, err = svc.Participants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, provider.Loads)
}

func TestService_BuildReport(t *testing.T) {
	svc := report.NewService(testProvider(), time.Hour)
	rep, err := svc.BuildReport(context.Background(), "R1")
	require.NoError(t, err)

	assert.NotEmpty(t, rep.ReportID)
	assert.Equal(t, "R1", rep.ParticipantID)
	assert.Equal(t, 10, rep.WordCount)
	assert.False(t, rep.GeneratedAt.IsZero())

	assert.False(t, math.IsNaN(rep.Metrics.DeltaValence))
	assert.False(t, math.IsNaN(rep.Metrics.FirstReactionTime))
	assert.False(t, rep.Profile.Empty())
	assert.Equal(t, 10, rep.Profile.WordCount)

	assert.NotEmpty(t, rep.Insights)
	assert.NotEmpty(t, rep.Comparisons)
	assert.NotEmpty(t, rep.Summary)
	assert.LessOrEqual(t, len(rep.Quotes), 3)
	assert.LessOrEqual(t, len(rep.TopWords), 3)
	for _, w := range rep.TopWords {
		assert.False(t, math.IsNaN(w.AbsDeviation))
	}
}

func TestService_TopWordsSortedByDeviation(t *testing.T) {
	svc := report.NewService(testProvider(), time.Hour)
	rep, err := svc.BuildReport(context.Background(), "R1")
	require.NoError(t, err)

	require.NotEmpty(t, rep.TopWords)
	for i := 1; i < len(rep.TopWords); i++ {
		assert.GreaterOrEqual(t, rep.TopWords[i-1].AbsDeviation, rep.TopWords[i].AbsDeviation)
	}
}

func TestService_UnknownParticipant(t *testing.T) {
	svc := report.NewService(testProvider(), time.Hour)
	_, err := svc.BuildReport(context.Background(), "R99")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestService_ProviderErrorPropagates(t *testing.T) {
	provider := &testkit.StaticProvider{Err: errors.InternalError("disk on fire")}
	svc := report.NewService(provider, time.Hour)
	_, err := svc.Participants(context.Background())
	require.Error(t, err)
}

func TestService_ReportsAreIndependentAcrossParticipants(t *testing.T) {
	svc := report.NewService(testProvider(), time.Hour)

	r1, err := svc.BuildReport(context.Background(), "R1")
	require.NoError(t, err)
	r2, err := svc.BuildReport(context.Background(), "R2")
	require.NoError(t, err)

	assert.NotEqual(t, r1.ReportID, r2.ReportID)
	assert.NotEqual(t, r1.Metrics.DeltaValence, r2.Metrics.DeltaValence)
}

func TestService_NoOrderDataOmitsSpeedPattern(t *testing.T) {
	svc := report.NewService(testProvider(), time.Hour)
	rep, err := svc.BuildReport(context.Background(), "R3")
	require.NoError(t, err)
	assert.Empty(t, string(rep.Profile.SpeedPattern))
}

func TestToWire_SerializesWithoutNaN(t *testing.T) {
	ds := testkit.Dataset(7, testkit.Participant{ID: "R1", Noise: 0.1})
	// Poison one delta so a NaN flows into the report's word list.
	ds.Deltas[0].DeltaValence = math.NaN()

	svc := report.NewService(&testkit.StaticProvider{DS: ds}, time.Hour)
	rep, err := svc.BuildReport(context.Background(), "R1")
	require.NoError(t, err)

	raw, err := json.Marshal(report.ToWire(rep))
	require.NoError(t, err, "wire shape must never carry NaN")
	assert.Contains(t, string(raw), `"participant_id":"R1"`)
}
