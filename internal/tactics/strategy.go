package tactics

// Strategy rule confidences.
const (
	attackingUrgencyConfidence   = 88
	defensiveStabilityConfidence = 84
	pressureConfidence           = 76
	counterAttackConfidence      = 79
)

// StrategyRecommendations applies the match-situation rules. A nil context
// produces nothing; the heuristic analyzers remain the only sources.
func StrategyRecommendations(gc *GameContext) []Recommendation {
	if gc == nil {
		return nil
	}

	var recs []Recommendation

	late := gc.Phase == PhaseLate || gc.Phase == PhaseExtraTime
	deficit := gc.Score.Away - gc.Score.Home

	if late && deficit > 0 {
		priority := PriorityHigh
		if gc.Phase == PhaseExtraTime || deficit >= 2 {
			priority = PriorityCritical
		}
		recs = append(recs, Recommendation{
			ID:          "strategy-attacking-urgency",
			Type:        RecStrategy,
			Title:       "Increase Attacking Urgency",
			Description: "Trailing late in the match. Push the full-backs higher, commit more bodies to the box, and raise the tempo.",
			Reasoning:   "The scoreline requires goals and the remaining time is short; conservative shape now costs more than it protects.",
			Confidence:  attackingUrgencyConfidence,
			Priority:    priority,
			Impact:      ImpactGameChanging,
			Actions: []Action{{
				Type:       "adjust_tactics",
				Parameters: map[string]any{"mentality": "attacking"},
			}},
		})
	}

	if late && deficit < 0 {
		recs = append(recs, Recommendation{
			ID:          "strategy-defensive-stability",
			Type:        RecStrategy,
			Title:       "Maintain Defensive Stability",
			Description: "Protecting a lead late on. Keep the defensive block compact and slow the game down at every restart.",
			Reasoning:   "A lead with little time remaining is best defended by denying space, not by chasing a second goal.",
			Confidence:  defensiveStabilityConfidence,
			Priority:    PriorityMedium,
			Impact:      ImpactSignificant,
			Actions: []Action{{
				Type:       "adjust_tactics",
				Parameters: map[string]any{"mentality": "defensive"},
			}},
		})
	}

	switch gc.State {
	case StatePressure:
		recs = append(recs, Recommendation{
			ID:          "strategy-weather-pressure",
			Type:        RecStrategy,
			Title:       "Weather the Pressure Spell",
			Description: "The opposition has sustained territory. Drop the line a few metres and look for an outlet to relieve pressure.",
			Reasoning:   "Sustained opposition pressure raises the chance of a defensive error; a clear outlet resets the game.",
			Confidence:  pressureConfidence,
			Priority:    PriorityMedium,
			Impact:      ImpactModerate,
		})
	case StateCounterAttack:
		recs = append(recs, Recommendation{
			ID:          "strategy-counter-attack",
			Type:        RecStrategy,
			Title:       "Commit to Counter-Attacks",
			Description: "Space is opening behind the opposition. Release the quickest forwards early on every turnover.",
			Reasoning:   "An over-committed opposition is most vulnerable in the first seconds after losing the ball.",
			Confidence:  counterAttackConfidence,
			Priority:    PriorityMedium,
			Impact:      ImpactSignificant,
		})
	}

	return recs
}
