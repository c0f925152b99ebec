package tactics

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Contract violations. Passing a nil formation or nil player slice is a
// programming error in the caller, not a data-quality issue, and fails
// fast. An empty (non-nil) player slice is valid input.
var (
	ErrNilFormation = errors.New("tactics: nil formation")
	ErrNilPlayers   = errors.New("tactics: nil players")
)

// MaxRecommendations bounds the aggregated recommendation stream.
const MaxRecommendations = 12

// Advisor is the optional external text-generation gateway. Implementations
// make at most one attempt per call and return an error for any failure;
// the engine degrades to heuristic-only output.
type Advisor interface {
	Advise(ctx context.Context, f *Formation, players []Player, gc *GameContext) ([]Recommendation, error)
}

// Engine aggregates the analyzers, strategy rules, and advisory gateway
// into single analysis passes. The zero value is not usable; construct with
// NewEngine.
type Engine struct {
	advisor Advisor
	history *History
	pass    atomic.Uint64
}

// NewEngine creates an engine. advisor may be nil to disable the advisory
// step; history may be nil to use a fresh one.
func NewEngine(advisor Advisor, history *History) *Engine {
	if history == nil {
		history = NewHistory()
	}
	return &Engine{advisor: advisor, history: history}
}

// Analyze runs one full analysis pass over a caller-owned snapshot: the
// four analyzers and the advisory call run concurrently, then the
// aggregator merges, dedupes, ranks, and bounds the recommendation stream.
// gc may be nil when no match context is available.
//
// An advisory failure never fails the pass; it is noted on the result and
// the heuristic output stands alone.
func (e *Engine) Analyze(ctx context.Context, f *Formation, players []Player, gc *GameContext) (*Analysis, error) {
	if f == nil {
		return nil, ErrNilFormation
	}
	if players == nil {
		return nil, ErrNilPlayers
	}

	analysis := &Analysis{Pass: e.pass.Add(1)}

	var (
		geoRecs, fitRecs, chemRecs, zoneRecs, aiRecs []Recommendation
		advisoryErr                                  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		geoRecs = AnalyzeGeometry(f)
		return nil
	})
	g.Go(func() error {
		fitRecs = FitRecommendations(ScoreFit(f, players))
		return nil
	})
	g.Go(func() error {
		analysis.Chemistry = CalculateChemistry(f, players)
		chemRecs = ChemistryRecommendations(analysis.Chemistry, players)
		return nil
	})
	g.Go(func() error {
		analysis.HeatZones, analysis.Coverage = GenerateHeatZones(f, players)
		zoneRecs = HeatZoneRecommendations(analysis.HeatZones, analysis.Coverage)
		return nil
	})
	if e.advisor != nil {
		g.Go(func() error {
			recs, err := e.advisor.Advise(gctx, f, players, gc)
			if err != nil {
				advisoryErr = err
				return nil
			}
			aiRecs = recs
			return nil
		})
	}
	_ = g.Wait()

	// Heuristics contribute before the advisory so ties resolve in their
	// favor under the stable sort.
	merged := make([]Recommendation, 0,
		len(geoRecs)+len(fitRecs)+len(chemRecs)+len(zoneRecs)+len(aiRecs)+4)
	merged = append(merged, geoRecs...)
	merged = append(merged, fitRecs...)
	merged = append(merged, chemRecs...)
	merged = append(merged, zoneRecs...)
	merged = append(merged, StrategyRecommendations(gc)...)
	merged = append(merged, aiRecs...)

	ranked := Rank(dedupe(merged))
	if len(ranked) > MaxRecommendations {
		ranked = ranked[:MaxRecommendations]
	}
	analysis.Recommendations = ranked

	if advisoryErr != nil {
		analysis.AdvisoryErr = advisoryErr.Error()
	}
	return analysis, nil
}

// StoreRecommendation re-stamps the recommendation and appends it to the
// engine's coaching history.
func (e *Engine) StoreRecommendation(rec Recommendation) HistoryEntry {
	return e.history.Store(rec)
}

// CoachingHistory returns the stored coaching history, oldest first.
func (e *Engine) CoachingHistory() []HistoryEntry {
	return e.history.Entries()
}

// Rank stable-sorts recommendations by priority rank descending, then
// confidence descending. Ties keep contribution order.
func Rank(recs []Recommendation) []Recommendation {
	sorted := make([]Recommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].Confidence > sorted[j].Confidence
	})
	return sorted
}

// dedupe collapses recommendations sharing a type and title, keeping the
// strongest version in the position of the first occurrence.
func dedupe(recs []Recommendation) []Recommendation {
	index := make(map[string]int, len(recs))
	var out []Recommendation
	for _, r := range recs {
		key := string(r.Type) + "|" + r.Title
		if at, seen := index[key]; seen {
			existing := out[at]
			if r.Priority > existing.Priority ||
				(r.Priority == existing.Priority && r.Confidence > existing.Confidence) {
				out[at] = r
			}
			continue
		}
		index[key] = len(out)
		out = append(out, r)
	}
	return out
}
