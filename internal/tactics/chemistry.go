package tactics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Chemistry scoring constants. The score starts at ChemistryBase and moves
// with role proximity, on-pitch distance, explicit relationships, and
// mentoring-group co-membership, clamped to [0,100].
const (
	ChemistryBase     = 50.0
	SameLineBonus     = 15.0
	AdjacentLineBonus = 6.0
	MaxProximityBonus = 12.0
	ProximityRadius   = 40.0 // field-percentage distance at which the bonus fades out
	FriendshipBonus   = 20.0
	RivalryPenalty    = 25.0
	MentorGroupBonus  = 10.0

	// WeakLinkThreshold marks a pair as a chemistry problem.
	WeakLinkThreshold = 40.0

	// StrongLinkThreshold marks a pair as worth building play around.
	StrongLinkThreshold = 80.0

	// ChemistryLinkCount is how many top and bottom links are reported.
	ChemistryLinkCount = 5
)

// Relationship tags attached to chemistry pairs. Rivalry wins over
// friendship, friendship over mentorship, when several apply.
const (
	TagFriendship = "friendship"
	TagRivalry    = "rivalry"
	TagMentorship = "mentorship"
)

// roleLine maps a role code to its tactical line: 0 defense, 1 midfield,
// 2 attack.
var roleLine = map[string]int{
	"GK": 0, "CB": 0, "SW": 0, "LB": 0, "RB": 0, "LWB": 0, "RWB": 0,
	"CDM": 1, "CM": 1, "CAM": 1, "LM": 1, "RM": 1,
	"LW": 2, "RW": 2, "ST": 2, "CF": 2, "SS": 2,
}

func lineProximityBonus(roleA, roleB string) float64 {
	la, okA := roleLine[normalizeRole(roleA)]
	lb, okB := roleLine[normalizeRole(roleB)]
	if !okA || !okB {
		return 0
	}
	switch diff := la - lb; {
	case diff == 0:
		return SameLineBonus
	case diff == 1 || diff == -1:
		return AdjacentLineBonus
	default:
		return 0
	}
}

func positionProximityBonus(a, b *Position) float64 {
	if a == nil || b == nil {
		return 0
	}
	d := math.Hypot(a.X-b.X, a.Y-b.Y)
	if d >= ProximityRadius {
		return 0
	}
	return MaxProximityBonus * (1 - d/ProximityRadius)
}

func hasID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// relationship resolves the explicit relationship between two players. The
// lookup is symmetric: a tag listed on either side applies to the pair.
func relationship(a, b *Player) (delta float64, tag string) {
	if hasID(a.Rivalries, b.ID) || hasID(b.Rivalries, a.ID) {
		return -RivalryPenalty, TagRivalry
	}
	if hasID(a.Friendships, b.ID) || hasID(b.Friendships, a.ID) {
		return FriendshipBonus, TagFriendship
	}
	if a.MentorGroup != "" && a.MentorGroup == b.MentorGroup {
		return MentorGroupBonus, TagMentorship
	}
	return 0, ""
}

// pairScore computes the chemistry score for one unordered pair. It is
// symmetric in its arguments by construction.
func pairScore(a, b *Player, posA, posB *Position) (float64, string) {
	score := ChemistryBase
	score += lineProximityBonus(a.PreferredRole, b.PreferredRole)
	score += positionProximityBonus(posA, posB)
	delta, tag := relationship(a, b)
	score += delta
	return clamp(score, 0, 100), tag
}

// CalculateChemistry scores every unordered pair of named players on the
// team. Pairs involving players without an ID or name are skipped. Results
// are sorted by score descending, with pair IDs as a deterministic
// tie-break. An empty or malformed player list yields nil.
func CalculateChemistry(f *Formation, players []Player) []ChemistryPair {
	var valid []*Player
	for i := range players {
		if players[i].ID == "" || players[i].Name == "" {
			continue
		}
		valid = append(valid, &players[i])
	}
	if len(valid) < 2 {
		return nil
	}

	positions := make(map[string]*Position)
	if f != nil {
		for _, s := range f.Slots {
			if s.PlayerID != "" && s.Position != nil {
				positions[s.PlayerID] = s.Position
			}
		}
	}

	pairs := make([]ChemistryPair, 0, len(valid)*(len(valid)-1)/2)
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			a, b := valid[i], valid[j]
			score, tag := pairScore(a, b, positions[a.ID], positions[b.ID])
			pairs = append(pairs, ChemistryPair{
				PlayerA:         a.ID,
				PlayerB:         b.ID,
				Score:           score,
				RelationshipTag: tag,
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Score != pairs[j].Score {
			return pairs[i].Score > pairs[j].Score
		}
		if pairs[i].PlayerA != pairs[j].PlayerA {
			return pairs[i].PlayerA < pairs[j].PlayerA
		}
		return pairs[i].PlayerB < pairs[j].PlayerB
	})
	return pairs
}

// TopLinks returns the n highest-scoring pairs.
func TopLinks(pairs []ChemistryPair, n int) []ChemistryPair {
	if len(pairs) < n {
		n = len(pairs)
	}
	return pairs[:n]
}

// BottomLinks returns the n lowest-scoring pairs, ordered worst first.
func BottomLinks(pairs []ChemistryPair, n int) []ChemistryPair {
	if len(pairs) < n {
		n = len(pairs)
	}
	out := make([]ChemistryPair, 0, n)
	for i := len(pairs) - 1; i >= len(pairs)-n; i-- {
		out = append(out, pairs[i])
	}
	return out
}

func pairLabel(p ChemistryPair, names map[string]string) string {
	a, b := p.PlayerA, p.PlayerB
	if n, ok := names[a]; ok {
		a = n
	}
	if n, ok := names[b]; ok {
		b = n
	}
	return a + " & " + b
}

// ChemistryRecommendations converts notable chemistry links into
// recommendation-shaped output for the aggregator: a warning when the
// weakest links fall below WeakLinkThreshold, and a positive cue when the
// strongest links clear StrongLinkThreshold.
func ChemistryRecommendations(pairs []ChemistryPair, players []Player) []Recommendation {
	if len(pairs) == 0 {
		return nil
	}
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	var recs []Recommendation

	var weak []string
	for _, p := range BottomLinks(pairs, ChemistryLinkCount) {
		if p.Score < WeakLinkThreshold {
			weak = append(weak, fmt.Sprintf("%s (%.0f)", pairLabel(p, names), p.Score))
		}
	}
	if len(weak) > 0 {
		recs = append(recs, Recommendation{
			ID:          "chemistry-weak-links",
			Type:        RecPlayer,
			Title:       "Address Weak Chemistry Links",
			Description: "Low-compatibility pairings on the pitch: " + strings.Join(weak, ", ") + ".",
			Reasoning:   "Pairs scoring below the weak-link threshold disrupt passing patterns and defensive cover.",
			Confidence:  72,
			Priority:    PriorityMedium,
			Impact:      ImpactModerate,
		})
	}

	var strong []string
	for _, p := range TopLinks(pairs, ChemistryLinkCount) {
		if p.Score >= StrongLinkThreshold {
			strong = append(strong, fmt.Sprintf("%s (%.0f)", pairLabel(p, names), p.Score))
		}
	}
	if len(strong) > 0 {
		recs = append(recs, Recommendation{
			ID:          "chemistry-top-links",
			Type:        RecTactical,
			Title:       "Build Play Through Top Chemistry Links",
			Description: "Strongest pairings: " + strings.Join(strong, ", ") + ".",
			Reasoning:   "Channeling possession through high-chemistry pairs raises pass completion in tight areas.",
			Confidence:  70,
			Priority:    PriorityLow,
			Impact:      ImpactModerate,
		})
	}

	return recs
}
