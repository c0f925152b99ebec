package monitor

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/touchline/internal/tactics"
)

// coverageDropThreshold is the coverage-point fall between passes that
// triggers a warning.
const coverageDropThreshold = 10.0

// Compare detects notable changes between two analysis passes and returns
// alerts, most severe first.
func Compare(prev, curr *tactics.Analysis) []Alert {
	var alerts []Alert
	alerts = append(alerts, compareRecommendations(prev, curr)...)
	alerts = append(alerts, compareCoverage(prev, curr)...)
	alerts = append(alerts, compareAdvisory(prev, curr)...)
	return alerts
}

// compareRecommendations alerts on recommendations that were not present in
// the previous pass. Critical items alert at critical level, high at
// warning; the rest stay quiet.
func compareRecommendations(prev, curr *tactics.Analysis) []Alert {
	known := make(map[string]bool, len(prev.Recommendations))
	for _, r := range prev.Recommendations {
		known[r.ID] = true
	}

	now := time.Now()
	var alerts []Alert
	for _, r := range curr.Recommendations {
		if known[r.ID] {
			continue
		}
		switch r.Priority {
		case tactics.PriorityCritical:
			alerts = append(alerts, Alert{
				Level:   "critical",
				Title:   r.Title,
				Message: r.Description,
				Time:    now,
			})
		case tactics.PriorityHigh:
			alerts = append(alerts, Alert{
				Level:   "warning",
				Title:   r.Title,
				Message: r.Description,
				Time:    now,
			})
		}
	}
	return alerts
}

func compareCoverage(prev, curr *tactics.Analysis) []Alert {
	drop := prev.Coverage - curr.Coverage
	if drop < coverageDropThreshold {
		return nil
	}
	return []Alert{{
		Level:   "warning",
		Title:   "Field coverage dropped",
		Message: fmt.Sprintf("Coverage fell from %.0f%% to %.0f%%", prev.Coverage, curr.Coverage),
		Time:    time.Now(),
	}}
}

func compareAdvisory(prev, curr *tactics.Analysis) []Alert {
	if curr.AdvisoryErr == "" || prev.AdvisoryErr == curr.AdvisoryErr {
		return nil
	}
	return []Alert{{
		Level:   "info",
		Title:   "Advisory unavailable",
		Message: "Continuing with heuristic recommendations: " + curr.AdvisoryErr,
		Time:    time.Now(),
	}}
}
