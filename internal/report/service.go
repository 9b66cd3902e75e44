package report

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Kumungchi/vyzkumdata/domain/core"
	"github.com/Kumungchi/vyzkumdata/domain/insight"
	"github.com/Kumungchi/vyzkumdata/domain/strategy"
	"github.com/Kumungchi/vyzkumdata/domain/survey"
	"github.com/Kumungchi/vyzkumdata/domain/thematic"
	"github.com/Kumungchi/vyzkumdata/internal/errors"
)

// Service builds per-participant reports on top of a cached dataset. The
// dataset is loaded lazily on first use and refreshed after the TTL
// expires; Invalidate forces a reload on the next request.
type Service struct {
	provider DatasetProvider
	ttl      time.Duration

	mu       sync.RWMutex
	cached   *Dataset
	loadedAt time.Time
}

// NewService creates a report service over the given dataset provider.
func NewService(provider DatasetProvider, ttl time.Duration) *Service {
	return &Service{provider: provider, ttl: ttl}
}

// Invalidate drops the cached dataset so the next request reloads it.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
	log.Printf("[ReportService] dataset cache invalidated")
}

// dataset returns the cached dataset, loading or refreshing it as needed.
func (s *Service) dataset(ctx context.Context) (*Dataset, error) {
	s.mu.RLock()
	if s.cached != nil && (s.ttl <= 0 || time.Since(s.loadedAt) < s.ttl) {
		ds := s.cached
		s.mu.RUnlock()
		return ds, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have loaded while we waited for the lock.
	if s.cached != nil && (s.ttl <= 0 || time.Since(s.loadedAt) < s.ttl) {
		return s.cached, nil
	}

	start := time.Now()
	ds, err := s.provider.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.cached = ds
	s.loadedAt = time.Now()
	log.Printf("[ReportService] dataset refreshed in %.2fms", float64(time.Since(start).Nanoseconds())/1e6)
	return ds, nil
}

// Participants lists the distinct participant IDs in the dataset, sorted.
func (s *Service) Participants(ctx context.Context) ([]string, error) {
	ds, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, p := range ds.Placements {
		if p.ID == "" {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids, nil
}

// BuildReport assembles the full personalized report for one participant.
// Returns a NOT_FOUND error when the participant has no placements.
func (s *Service) BuildReport(ctx context.Context, participantID string) (*Report, error) {
	ds, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	sub := filterByParticipant(ds.Deltas, participantID)
	if len(sub) == 0 {
		return nil, errors.NotFound("participant " + participantID)
	}

	start := time.Now()
	profile := strategy.Classify(sub, ds.Population)
	quotes := thematic.MatchQuotes(profile, ds.Codebook)
	insights := insight.Generate(profile, quotes)
	metrics := buildMetrics(sub, ds.Population)

	r := &Report{
		ReportID:      string(core.NewID()),
		ParticipantID: participantID,
		WordCount:     len(sub),
		GeneratedAt:   time.Now().UTC(),

		Metrics:     metrics,
		Profile:     profile,
		Quotes:      quotes,
		Insights:    insights,
		Comparisons: buildComparisons(metrics, ds.Population),
		TopWords:    topWords(sub),
		Summary:     buildSummary(len(sub), metrics),
	}
	log.Printf("[ReportService] report %s built for participant %s (%d words) in %.2fms",
		r.ReportID, participantID, r.WordCount, float64(time.Since(start).Nanoseconds())/1e6)
	return r, nil
}

func filterByParticipant(deltas []survey.DeltaRecord, id string) []survey.DeltaRecord {
	var out []survey.DeltaRecord
	for _, d := range deltas {
		if d.ID == id {
			out = append(out, d)
		}
	}
	return out
}
