package report

import (
	"context"
	"log"

	"github.com/Kumungchi/vyzkumdata/adapters/tabular"
	"github.com/Kumungchi/vyzkumdata/domain/core"
	"github.com/Kumungchi/vyzkumdata/domain/survey"
	"github.com/Kumungchi/vyzkumdata/domain/thematic"
	"github.com/Kumungchi/vyzkumdata/internal/config"
	"github.com/Kumungchi/vyzkumdata/internal/errors"
	"golang.org/x/sync/errgroup"
)

// Dataset is the fully ingested and derived study data: the three input
// tables turned into records, plus the joined deltas and population
// aggregate. It is immutable once built; per-participant reports only
// read from it.
type Dataset struct {
	Placements []survey.PlacementRecord
	Baselines  *survey.BaselineTable
	Codebook   []thematic.Entry

	Deltas     []survey.DeltaRecord
	Population survey.PopulationAggregate
}

// DatasetProvider supplies the study dataset. The file-backed Loader is
// the production implementation; tests substitute their own.
type DatasetProvider interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Loader reads and validates the three input files.
type Loader struct {
	cfg config.DataConfig
}

// NewLoader creates a loader for the configured data directory.
func NewLoader(cfg config.DataConfig) *Loader {
	return &Loader{cfg: cfg}
}

// Load reads placements, baseline labels and the thematic codebook, then
// derives the delta set and population aggregate. The three files are
// independent, so they are read concurrently. Any structural problem
// (missing file, missing required columns, ambiguous headers) fails the
// whole load; the pipeline never runs on half-ingested data.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	var placementsTable, baselineTable, codebookTable *survey.Table

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		reader := tabular.NewReader(l.cfg.PlacementsPath())
		if sep := l.cfg.PlacementsSeparator; sep != "" {
			reader = reader.WithSeparator(rune(sep[0]))
		}
		t, err := reader.Read()
		if err != nil {
			return errors.MalformedInput("failed to read placements table", err)
		}
		placementsTable = t
		return nil
	})
	g.Go(func() error {
		t, err := tabular.NewReader(l.cfg.BaselinePath()).Read()
		if err != nil {
			return errors.MalformedInput("failed to read baseline table", err)
		}
		baselineTable = t
		return nil
	})
	g.Go(func() error {
		t, err := tabular.NewReader(l.cfg.CodebookPath()).Read()
		if err != nil {
			return errors.MalformedInput("failed to read thematic codebook", err)
		}
		codebookTable = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	normalized, err := survey.NormalizeColumns(placementsTable)
	if err != nil {
		if core.IsValidationError(err) {
			return nil, errors.AmbiguousColumn(err)
		}
		return nil, errors.Wrap(err, "failed to normalize placement columns")
	}
	if missing := normalized.MissingColumns(survey.RequiredPlacementColumns); len(missing) > 0 {
		return nil, errors.MalformedInput("placements table is missing required columns",
			core.NewMissingColumnsError("placements table", missing))
	}

	baselines, err := survey.BaselineFromTable(baselineTable, l.cfg.BaselineWordColumn)
	if err != nil {
		return nil, errors.MalformedInput("failed to build baseline labels", err)
	}
	if baselines.WordColumnGuessed {
		log.Printf("[Loader] WARNING: baseline word column guessed as %q (first column); set BASELINE_WORD_COLUMN to silence this", baselines.WordColumn)
	}

	codebook, err := thematic.EntriesFromTable(codebookTable)
	if err != nil {
		return nil, errors.MalformedInput("failed to build thematic codebook", err)
	}

	placements := survey.PlacementsFromTable(normalized)
	deltas := survey.ComputeDeltas(placements, baselines)

	ds := &Dataset{
		Placements: placements,
		Baselines:  baselines,
		Codebook:   codebook,
		Deltas:     deltas,
		Population: survey.Aggregate(deltas),
	}
	log.Printf("[Loader] dataset loaded: %d placements, %d baseline words, %d codebook entries",
		len(ds.Placements), len(ds.Baselines.Labels), len(ds.Codebook))
	return ds, nil
}
