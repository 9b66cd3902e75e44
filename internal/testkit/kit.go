// Package testkit builds synthetic study data for tests. The generator is
// deterministic for a given seed, so assertions on derived statistics are
// stable across runs.
package testkit

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/Kumungchi/vyzkumdata/domain/survey"
	"github.com/Kumungchi/vyzkumdata/domain/thematic"
	"github.com/Kumungchi/vyzkumdata/internal/report"
)

// word pairs a stimulus term with its reference labels.
type word struct {
	term    string
	valence string
	arousal string
}

// words is a slice of the real stimulus set, enough to exercise every
// label level in both directions.
var words = []word{
	{"radostný", "pozitivní", "vysoký"},
	{"klidný", "pozitivní", "nízký"},
	{"smutný", "negativní", "nízký"},
	{"zuřivý", "negativní", "vysoký"},
	{"obyčejný", "neutrální", "střední"},
	{"pracovitý", "pozitivní", "střední"},
	{"unavený", "negativní", "střední"},
	{"tichý", "neutrální", "nízký"},
	{"hlučný", "neutrální", "vysoký"},
	{"laskavý", "pozitivní", "nízký"},
}

// Baseline returns the reference label table for the synthetic word set.
func Baseline() *survey.BaselineTable {
	labels := make([]survey.BaselineLabel, 0, len(words))
	for _, w := range words {
		labels = append(labels, survey.BaselineLabel{
			Word:    w.term,
			Valence: w.valence,
			Arousal: w.arousal,
		})
	}
	return &survey.BaselineTable{Labels: labels, WordColumn: "Slovo"}
}

// Codebook returns a minimal thematic codebook covering every strategy
// code the classifier can emit.
func Codebook() []thematic.Entry {
	return []thematic.Entry{
		{Code: "DEPTH_VAL", Subtheme: "Hloubka jako valence", Definition: "Depth axis used for pleasantness.", Example: "Příjemná slova jsem dával dopředu."},
		{Code: "VERT_INT", Subtheme: "Výška jako intenzita", Definition: "Vertical axis used for intensity.", Example: "Silná slova šla nahoru."},
		{Code: "HORIZ_DOM", Subtheme: "Šířka jako kontrola", Definition: "Horizontal axis used for dominance.", Example: "Vlevo byla slova, která mě ovládala."},
		{Code: "FATIGUE", Subtheme: "Únava", Definition: "Slowing down over the task.", Example: "Ke konci jsem se rozhodoval déle."},
		{Code: "SYS_DEV", Subtheme: "Systém", Definition: "Speeding up as a system develops.", Example: "Postupně jsem si vytvořil systém."},
		{Code: "MEM_REF", Subtheme: "Paměť", Definition: "Consistent, memory-referenced placement.", Example: "Pamatoval jsem si, kam co patří."},
		{Code: "IND_DIFF", Subtheme: "Individuální styl", Definition: "Highly variable, individual placement.", Example: "Každé slovo jsem bral zvlášť."},
	}
}

// Participant shapes one synthetic participant: a constant bias added to
// every placement plus a per-word noise amplitude. RTSlope tilts reaction
// time over presentation order, which steers the speed classifier.
type Participant struct {
	ID           string
	ValenceBias  float64
	ArousalBias  float64
	Noise        float64
	RTSlope      float64
	WithoutOrder bool
}

// Placements generates one placement row per word for each participant.
func Placements(seed int64, participants ...Participant) []survey.PlacementRecord {
	rng := rand.New(rand.NewSource(seed))
	var out []survey.PlacementRecord
	for _, p := range participants {
		for i, w := range words {
			base := labelValue(w.valence, w.arousal)
			rec := survey.PlacementRecord{
				ID:                p.ID,
				Term:              w.term,
				PosX:              base.valence + p.ValenceBias + p.Noise*(rng.Float64()*2-1),
				PosY:              p.Noise * (rng.Float64()*2 - 1),
				PosZ:              base.arousal + p.ArousalBias + p.Noise*(rng.Float64()*2-1),
				FirstReactionTime: 1.5 + p.RTSlope*float64(i) + 0.05*rng.Float64(),
				TotalReactionTime: 3.0 + 0.1*rng.Float64(),
				Order:             float64(i + 1),
			}
			if p.WithoutOrder {
				rec.Order = math.NaN()
			}
			out = append(out, rec)
		}
	}
	return out
}

// Dataset assembles a complete derived dataset from synthetic placements.
func Dataset(seed int64, participants ...Participant) *report.Dataset {
	placements := Placements(seed, participants...)
	baselines := Baseline()
	deltas := survey.ComputeDeltas(placements, baselines)
	return &report.Dataset{
		Placements: placements,
		Baselines:  baselines,
		Codebook:   Codebook(),
		Deltas:     deltas,
		Population: survey.Aggregate(deltas),
	}
}

// StaticProvider serves a fixed dataset, optionally failing, for tests
// that need a DatasetProvider without touching the filesystem.
type StaticProvider struct {
	DS    *report.Dataset
	Err   error
	Loads int
}

func (p *StaticProvider) Load(ctx context.Context) (*report.Dataset, error) {
	p.Loads++
	if p.Err != nil {
		return nil, p.Err
	}
	return p.DS, nil
}

type axisValues struct {
	valence float64
	arousal float64
}

func labelValue(valence, arousal string) axisValues {
	v := map[string]float64{"negativní": -1, "neutrální": 0, "pozitivní": 1}[valence]
	a := map[string]float64{"nízký": 1, "střední": 2, "vysoký": 3}[arousal]
	return axisValues{valence: v, arousal: a}
}

// TableFromPlacements renders placements back into a raw table with the
// canonical headers, for ingestion-path tests.
func TableFromPlacements(placements []survey.PlacementRecord) *survey.Table {
	headers := []string{
		survey.ColID, survey.ColTerm, survey.ColPosX, survey.ColPosY, survey.ColPosZ,
		survey.ColFirstRT, survey.ColTotalRT, survey.ColOrder,
	}
	rows := make([][]string, 0, len(placements))
	for _, p := range placements {
		rows = append(rows, []string{
			p.ID, p.Term,
			survey.FormatNumber(p.PosX), survey.FormatNumber(p.PosY), survey.FormatNumber(p.PosZ),
			survey.FormatNumber(p.FirstReactionTime), survey.FormatNumber(p.TotalReactionTime),
			survey.FormatNumber(p.Order),
		})
	}
	return survey.NewTable(headers, rows)
}

// IDs returns n sequential participant IDs, R1..Rn.
func IDs(n int) []string {
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, fmt.Sprintf("R%d", i))
	}
	return out
}
