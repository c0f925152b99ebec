package tactics

// Heat-zone constants. Zone type follows the vertical thirds of the pitch.
const (
	AttackThirdMin  = 66.0
	DefenseThirdMax = 33.0

	// DefaultPositionImportance applies to roles missing from the table.
	DefaultPositionImportance = 0.75

	// CoverageFloor is the field-coverage percentage below which a
	// recommendation is emitted.
	CoverageFloor = 50.0
)

// positionImportance weights a player's influence by role. Goalkeepers,
// strikers, and central roles anchor the team's shape; wide roles cover
// less decisive ground.
var positionImportance = map[string]float64{
	"GK": 0.9, "ST": 0.9, "CF": 0.9,
	"CB": 0.85, "SW": 0.85, "CDM": 0.85, "CM": 0.85, "CAM": 0.85,
	"SS": 0.8,
	"LB": 0.7, "RB": 0.7, "LWB": 0.7, "RWB": 0.7,
	"LM": 0.7, "RM": 0.7, "LW": 0.7, "RW": 0.7,
}

func importanceOf(role string) float64 {
	if w, ok := positionImportance[normalizeRole(role)]; ok {
		return w
	}
	return DefaultPositionImportance
}

func zoneTypeFor(y float64) ZoneType {
	switch {
	case y > AttackThirdMin:
		return ZoneAttack
	case y < DefenseThirdMax:
		return ZoneDefense
	default:
		return ZoneMidfield
	}
}

// GenerateHeatZones produces one influence zone per player assigned to a
// placed slot, plus the aggregate field-coverage percentage (mean intensity
// times 100). With no valid player positions both results are empty/zero.
func GenerateHeatZones(f *Formation, players []Player) ([]HeatZone, float64) {
	if f == nil || len(players) == 0 {
		return nil, 0
	}
	byID := make(map[string]*Player, len(players))
	for i := range players {
		if players[i].ID == "" {
			continue
		}
		byID[players[i].ID] = &players[i]
	}

	var zones []HeatZone
	var sum float64
	for _, slot := range f.Slots {
		if slot.Position == nil || slot.PlayerID == "" {
			continue
		}
		player, ok := byID[slot.PlayerID]
		if !ok {
			continue
		}
		role := slot.Role
		if role == "" {
			role = player.PreferredRole
		}
		intensity := clamp(player.CurrentPotential/100*importanceOf(role), 0, 1)
		zones = append(zones, HeatZone{
			X:         slot.Position.X,
			Y:         slot.Position.Y,
			Intensity: intensity,
			Type:      zoneTypeFor(slot.Position.Y),
		})
		sum += intensity
	}
	if len(zones) == 0 {
		return nil, 0
	}
	return zones, sum / float64(len(zones)) * 100
}

// HeatZoneRecommendations flags weak aggregate coverage for the aggregator.
func HeatZoneRecommendations(zones []HeatZone, coverage float64) []Recommendation {
	if len(zones) == 0 || coverage >= CoverageFloor {
		return nil
	}
	return []Recommendation{{
		ID:          "heatzone-coverage",
		Type:        RecTactical,
		Title:       "Expand Field Coverage",
		Description: "Aggregate influence over the pitch is thin; large areas are left uncontested.",
		Reasoning:   "Mean zone intensity is below the coverage floor, usually a mix of low player ratings and under-weighted roles.",
		Confidence:  75,
		Priority:    PriorityMedium,
		Impact:      ImpactModerate,
	}}
}
