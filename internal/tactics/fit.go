package tactics

import (
	"fmt"
	"strings"
)

// Archetype is the broad positional class a slot falls into based on its
// field coordinate.
type Archetype string

const (
	ArchetypeDefender   Archetype = "Defender"
	ArchetypeMidfielder Archetype = "Midfielder"
	ArchetypeAttacker   Archetype = "Attacker"
	ArchetypeLeftWing   Archetype = "LeftWing"
	ArchetypeRightWing  Archetype = "RightWing"
)

// Slot classification bands, in field-percentage units.
const (
	DefensiveBandMax = 25.0 // y below this is the defensive band
	AttackingBandMin = 75.0 // y above this is the attacking band
	LeftWingMax      = 25.0 // x below this (in the middle band) is the left wing
	RightWingMin     = 75.0 // x above this (in the middle band) is the right wing
)

// Fit scoring constants.
const (
	// RoleMatchRatio applies when the slot archetype is among the player's
	// preferred archetypes.
	RoleMatchRatio = 100.0

	// RoleMismatchRatio is the default when it is not.
	RoleMismatchRatio = 60.0

	// FitWarningThreshold is the suitability below which a player
	// recommendation is emitted.
	FitWarningThreshold = 70.0

	// FitCriticalThreshold is the suitability below which the
	// recommendation escalates to high priority and significant impact.
	FitCriticalThreshold = 50.0

	// maxAlternatives bounds the alternative positions cited per player.
	maxAlternatives = 2
)

// roleArchetypes maps a preferred role code to the slot archetypes it is
// compatible with. Roles not in the table fall back to RoleMismatchRatio
// everywhere.
var roleArchetypes = map[string][]Archetype{
	"GK":  {ArchetypeDefender},
	"CB":  {ArchetypeDefender},
	"SW":  {ArchetypeDefender},
	"LB":  {ArchetypeDefender, ArchetypeLeftWing},
	"RB":  {ArchetypeDefender, ArchetypeRightWing},
	"LWB": {ArchetypeDefender, ArchetypeLeftWing},
	"RWB": {ArchetypeDefender, ArchetypeRightWing},
	"CDM": {ArchetypeMidfielder, ArchetypeDefender},
	"CM":  {ArchetypeMidfielder},
	"CAM": {ArchetypeMidfielder, ArchetypeAttacker},
	"LM":  {ArchetypeLeftWing, ArchetypeMidfielder},
	"RM":  {ArchetypeRightWing, ArchetypeMidfielder},
	"LW":  {ArchetypeLeftWing, ArchetypeAttacker},
	"RW":  {ArchetypeRightWing, ArchetypeAttacker},
	"ST":  {ArchetypeAttacker},
	"CF":  {ArchetypeAttacker},
	"SS":  {ArchetypeAttacker, ArchetypeMidfielder},
}

// ClassifySlot buckets a field coordinate into an archetype. The vertical
// bands take precedence over the wings.
func ClassifySlot(p Position) Archetype {
	switch {
	case p.Y < DefensiveBandMax:
		return ArchetypeDefender
	case p.Y > AttackingBandMin:
		return ArchetypeAttacker
	case p.X < LeftWingMax:
		return ArchetypeLeftWing
	case p.X > RightWingMin:
		return ArchetypeRightWing
	default:
		return ArchetypeMidfielder
	}
}

// PositionAlternative is a suggested alternative role for a poorly fitting
// player, with the rationale used as the recommendation reasoning.
type PositionAlternative struct {
	Role      string `json:"role"`
	Rationale string `json:"rationale"`
}

// FitReport is the suitability assessment of one player in their assigned
// slot.
type FitReport struct {
	PlayerID     string                `json:"playerId"`
	PlayerName   string                `json:"playerName"`
	SlotID       string                `json:"slotId"`
	SlotRole     string                `json:"slotRole"`
	Archetype    Archetype             `json:"archetype"`
	Suitability  float64               `json:"suitability"` // 0-100
	Alternatives []PositionAlternative `json:"alternatives,omitempty"`
}

func normalizeRole(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}

func matchRatio(preferredRole string, archetype Archetype) float64 {
	for _, a := range roleArchetypes[normalizeRole(preferredRole)] {
		if a == archetype {
			return RoleMatchRatio
		}
	}
	return RoleMismatchRatio
}

// alternativesFor produces up to maxAlternatives alternative positions for a
// player based on where their slot sits on the pitch. Players in the
// defensive half get a midfield alternative; everyone else gets
// forward-support options.
func alternativesFor(p Position) []PositionAlternative {
	if p.Y < 50 {
		return []PositionAlternative{
			{
				Role:      "Central Midfield",
				Rationale: "A deeper central role uses their distribution range while reducing positional exposure.",
			},
		}
	}
	alts := []PositionAlternative{
		{
			Role:      "Support Striker",
			Rationale: "Dropping between the lines lets them link play instead of holding an uncomfortable position.",
		},
		{
			Role:      "Wide Forward",
			Rationale: "Starting wider gives them space to attack the box on the move.",
		},
	}
	if len(alts) > maxAlternatives {
		alts = alts[:maxAlternatives]
	}
	return alts
}

// ScoreFit assesses every player with a resolved slot position. Players not
// assigned to a placed slot are skipped. Suitability is the player's current
// potential scaled by the role-archetype match ratio.
func ScoreFit(f *Formation, players []Player) []FitReport {
	if f == nil || len(players) == 0 {
		return nil
	}
	byID := make(map[string]*Player, len(players))
	for i := range players {
		if players[i].ID == "" {
			continue
		}
		byID[players[i].ID] = &players[i]
	}

	var reports []FitReport
	for _, slot := range f.Slots {
		if slot.Position == nil || slot.PlayerID == "" {
			continue
		}
		player, ok := byID[slot.PlayerID]
		if !ok {
			continue
		}
		archetype := ClassifySlot(*slot.Position)
		ratio := matchRatio(player.PreferredRole, archetype)
		suitability := clamp(player.CurrentPotential*ratio/100, 0, 100)

		report := FitReport{
			PlayerID:    player.ID,
			PlayerName:  player.Name,
			SlotID:      slot.ID,
			SlotRole:    slot.Role,
			Archetype:   archetype,
			Suitability: suitability,
		}
		if suitability < FitWarningThreshold {
			report.Alternatives = alternativesFor(*slot.Position)
		}
		reports = append(reports, report)
	}
	return reports
}

// FitRecommendations converts poor-fit reports into player recommendations.
// Confidence is the inverse of suitability: the worse the fit, the more
// certain the call.
func FitRecommendations(reports []FitReport) []Recommendation {
	var recs []Recommendation
	for _, r := range reports {
		if r.Suitability >= FitWarningThreshold {
			continue
		}
		priority := PriorityMedium
		impact := ImpactModerate
		if r.Suitability < FitCriticalThreshold {
			priority = PriorityHigh
			impact = ImpactSignificant
		}

		reasoning := ""
		var roles []string
		for _, alt := range r.Alternatives {
			roles = append(roles, alt.Role)
			if reasoning == "" {
				reasoning = alt.Rationale
			}
		}
		description := fmt.Sprintf("%s is a poor fit at %s (suitability %.0f/100).", r.PlayerName, r.SlotRole, r.Suitability)
		if len(roles) > 0 {
			description += " Consider: " + strings.Join(roles, ", ") + "."
		}

		recs = append(recs, Recommendation{
			ID:          "fit-" + r.PlayerID,
			Type:        RecPlayer,
			Title:       fmt.Sprintf("Reposition %s", r.PlayerName),
			Description: description,
			Reasoning:   reasoning,
			Confidence:  100 - r.Suitability,
			Priority:    priority,
			Impact:      impact,
		})
	}
	return recs
}
