// Package monitor re-runs tactical analysis at a regular interval while a
// match view is open, compares consecutive passes, and emits alerts when
// the situation changes. Passes carry the engine's sequence numbers; a
// result from a superseded pass is dropped rather than raced into the host.
package monitor

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/blackwell-systems/touchline/internal/tactics"
)

// SnapshotFunc supplies the current analysis inputs. It is called once per
// cycle so the monitor always analyzes fresh data.
type SnapshotFunc func() (*tactics.Formation, []tactics.Player, *tactics.GameContext, error)

// Alert represents a notable change detected between two passes.
type Alert struct {
	Level   string // "info", "warning", "critical"
	Title   string
	Message string
	Time    time.Time
}

// Monitor drives periodic analysis passes against an engine.
type Monitor struct {
	engine        *tactics.Engine
	source        SnapshotFunc
	interval      time.Duration
	alertFn       func(Alert)
	previous      *tactics.Analysis
	lastAlertKeys map[string]bool // dedup: suppress repeated identical alerts
	highestPass   atomic.Uint64
}

// New creates a Monitor. alertFn may be nil to collect alerts via Check
// return values only.
func New(engine *tactics.Engine, source SnapshotFunc, interval time.Duration, alertFn func(Alert)) *Monitor {
	return &Monitor{
		engine:        engine,
		source:        source,
		interval:      interval,
		alertFn:       alertFn,
		lastAlertKeys: make(map[string]bool),
	}
}

// Run takes an initial pass, then checks at every interval. Blocks until
// ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	initial, err := m.analyze(ctx)
	if err != nil {
		return fmt.Errorf("initial analysis: %w", err)
	}
	m.previous = initial

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, a := range m.Check(ctx) {
				if m.alertFn != nil {
					m.alertFn(a)
				}
			}
		}
	}
}

// Check performs a single cycle: runs a fresh pass, compares it against the
// previous one, updates the previous state, and returns any alerts.
// Identical alerts are suppressed until the underlying data changes, and
// results from superseded passes are dropped entirely.
func (m *Monitor) Check(ctx context.Context) []Alert {
	curr, err := m.analyze(ctx)
	if err != nil {
		return []Alert{{
			Level:   "warning",
			Title:   "Analysis failed",
			Message: fmt.Sprintf("Could not analyze squad data: %v", err),
			Time:    time.Now(),
		}}
	}
	if curr == nil {
		// A newer pass already delivered; nothing to report.
		return nil
	}

	var raw []Alert
	if m.previous != nil {
		raw = Compare(m.previous, curr)
	}

	currentKeys := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		currentKeys[key] = true
		if !m.lastAlertKeys[key] {
			alerts = append(alerts, a)
		}
	}
	m.lastAlertKeys = currentKeys

	m.previous = curr
	return alerts
}

// analyze loads a fresh snapshot, runs one engine pass bounded by the
// monitor interval, and returns nil (no error) when the result belongs to
// a pass that has already been superseded.
func (m *Monitor) analyze(ctx context.Context) (*tactics.Analysis, error) {
	formation, players, gc, err := m.source()
	if err != nil {
		return nil, err
	}

	passCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	analysis, err := m.engine.Analyze(passCtx, formation, players, gc)
	if err != nil {
		return nil, err
	}
	if !m.accept(analysis) {
		return nil, nil
	}
	return analysis, nil
}

// accept records the analysis pass number and reports whether it is still
// the latest. Last pass wins: anything at or below an already-delivered
// pass is stale.
func (m *Monitor) accept(a *tactics.Analysis) bool {
	for {
		highest := m.highestPass.Load()
		if a.Pass <= highest {
			return false
		}
		if m.highestPass.CompareAndSwap(highest, a.Pass) {
			return true
		}
	}
}
