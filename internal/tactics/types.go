// Package tactics provides the tactical analysis and recommendation engine:
// formation geometry diagnostics, player-position fit scoring, pairwise
// chemistry, heat-zone generation, and a single ranked recommendation stream.
package tactics

import (
	"encoding/json"
	"fmt"
)

// Priority is the urgency dimension of a recommendation. Higher values rank
// higher in the aggregated output.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

var priorityNames = map[Priority]string{
	PriorityLow:      "low",
	PriorityMedium:   "medium",
	PriorityHigh:     "high",
	PriorityCritical: "critical",
}

// ParsePriority converts a wire-format priority string into a Priority.
func ParsePriority(s string) (Priority, error) {
	for p, name := range priorityNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown priority %q", s)
}

// String returns the wire-format name of the priority.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// MarshalJSON encodes the priority as its wire-format string.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a wire-format priority string.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Impact describes the expected effect size of a recommendation.
type Impact string

const (
	ImpactMinor        Impact = "minor"
	ImpactModerate     Impact = "moderate"
	ImpactSignificant  Impact = "significant"
	ImpactGameChanging Impact = "game-changing"
)

// ParseImpact validates a wire-format impact string.
func ParseImpact(s string) (Impact, error) {
	switch Impact(s) {
	case ImpactMinor, ImpactModerate, ImpactSignificant, ImpactGameChanging:
		return Impact(s), nil
	}
	return "", fmt.Errorf("unknown impact %q", s)
}

// RecType categorizes what a recommendation is about.
type RecType string

const (
	RecFormation    RecType = "formation"
	RecPlayer       RecType = "player"
	RecTactical     RecType = "tactical"
	RecStrategy     RecType = "strategy"
	RecSubstitution RecType = "substitution"
)

// Action is a machine-readable follow-up attached to a recommendation.
type Action struct {
	Type       string         `json:"type"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Recommendation is a single coaching recommendation produced by one of the
// analyzers, a strategy rule, or the AI advisory gateway.
type Recommendation struct {
	ID          string   `json:"id"`
	Type        RecType  `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Reasoning   string   `json:"reasoning"`
	Confidence  float64  `json:"confidence"` // 0-100
	Priority    Priority `json:"priority"`
	Impact      Impact   `json:"impact"`
	Actions     []Action `json:"actions,omitempty"`
}

// Position is a point in field-percentage space. X runs touchline to
// touchline (0 = left), Y runs goal to goal (0 = own goal line). Both are
// in [0,100].
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Slot is a named position within a formation with a target coordinate and
// an optional assigned player. A nil Position means the slot has not been
// placed on the pitch yet.
type Slot struct {
	ID       string    `json:"id"`
	Role     string    `json:"role"`
	Position *Position `json:"position,omitempty"`
	PlayerID string    `json:"playerId,omitempty"`
}

// Formation is an ordered set of slots. Each non-empty PlayerID appears in
// at most one slot.
type Formation struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slots []Slot `json:"slots"`
}

// Player is a read-only snapshot of one squad member for a single analysis
// pass. Friendships, Rivalries, and MentorGroup feed the chemistry
// calculator; all other chemistry inputs are derived from role and position.
type Player struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Attributes       map[string]float64 `json:"attributes,omitempty"` // 0-100 each
	PreferredRole    string             `json:"preferredRole"`
	CurrentPotential float64            `json:"currentPotential"` // 0-100
	Form             float64            `json:"form"`             // 0-100
	Morale           float64            `json:"morale"`           // 0-100
	Traits           []string           `json:"traits,omitempty"`
	Friendships      []string           `json:"friendships,omitempty"` // player IDs
	Rivalries        []string           `json:"rivalries,omitempty"`   // player IDs
	MentorGroup      string             `json:"mentorGroup,omitempty"`
}

// GamePhase identifies how far into the match the analysis runs.
type GamePhase string

const (
	PhaseEarly     GamePhase = "early"
	PhaseMid       GamePhase = "mid"
	PhaseLate      GamePhase = "late"
	PhaseExtraTime GamePhase = "extra-time"
)

// GameState is the coach's read of the current match situation.
type GameState string

const (
	StateWinning       GameState = "winning"
	StateLosing        GameState = "losing"
	StateDrawing       GameState = "drawing"
	StatePressure      GameState = "pressure"
	StateCounterAttack GameState = "counter-attack"
)

// Score is the current scoreline from the analyzed team's perspective:
// Home is this team, Away is the opposition.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// GameContext carries optional match-situation inputs for the strategy rules.
type GameContext struct {
	Phase               GamePhase `json:"gamePhase"`
	Score               Score     `json:"score"`
	State               GameState `json:"gameState"`
	OppositionFormation string    `json:"oppositionFormation,omitempty"`
}

// ChemistryPair is the symmetric compatibility score for one unordered pair
// of players. PlayerA and PlayerB are player IDs.
type ChemistryPair struct {
	PlayerA         string  `json:"playerA"`
	PlayerB         string  `json:"playerB"`
	Score           float64 `json:"score"` // 0-100
	RelationshipTag string  `json:"relationshipTag,omitempty"`
}

// ZoneType is the tactical band a heat zone belongs to.
type ZoneType string

const (
	ZoneAttack   ZoneType = "attack"
	ZoneMidfield ZoneType = "midfield"
	ZoneDefense  ZoneType = "defense"
)

// HeatZone is one player's spatial influence region.
type HeatZone struct {
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Intensity float64  `json:"intensity"` // 0-1
	Type      ZoneType `json:"type"`
}

// Analysis is the complete result of one analysis pass.
type Analysis struct {
	// Pass is a monotonically increasing sequence number assigned by the
	// engine. Hosts running overlapping passes keep the highest pass and
	// drop superseded results.
	Pass uint64 `json:"pass"`

	// Recommendations is the single ranked, deduplicated stream from all
	// analyzers, strategy rules, and the advisory gateway.
	Recommendations []Recommendation `json:"recommendations"`

	// HeatZones and Chemistry are returned directly for visualization.
	HeatZones []HeatZone      `json:"heatZones"`
	Chemistry []ChemistryPair `json:"chemistry"`

	// Coverage is the field-coverage percentage derived from heat zones.
	Coverage float64 `json:"coverage"`

	// AdvisoryErr notes a failed or rejected advisory call. It is
	// informational only; the recommendations above are still valid.
	AdvisoryErr string `json:"advisoryErr,omitempty"`
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
