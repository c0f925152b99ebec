package tactics

import "testing"

func chemistrySquad() []Player {
	return []Player{
		{ID: "p1", Name: "Keller", PreferredRole: "GK", CurrentPotential: 80},
		{ID: "p2", Name: "Duarte", PreferredRole: "CB", CurrentPotential: 78, Friendships: []string{"p3"}},
		{ID: "p3", Name: "Ivanov", PreferredRole: "CB", CurrentPotential: 75},
		{ID: "p4", Name: "Moreau", PreferredRole: "CM", CurrentPotential: 82, Rivalries: []string{"p5"}},
		{ID: "p5", Name: "Santos", PreferredRole: "ST", CurrentPotential: 88},
		{ID: "p6", Name: "Abe", PreferredRole: "CM", CurrentPotential: 70, MentorGroup: "g1"},
		{ID: "p7", Name: "Nilsen", PreferredRole: "RW", CurrentPotential: 73, MentorGroup: "g1"},
	}
}

func TestCalculateChemistry_PairCount(t *testing.T) {
	players := chemistrySquad()
	pairs := CalculateChemistry(nil, players)
	want := len(players) * (len(players) - 1) / 2
	if len(pairs) != want {
		t.Fatalf("got %d pairs, want %d", len(pairs), want)
	}
}

func TestCalculateChemistry_Symmetry(t *testing.T) {
	players := chemistrySquad()
	forward := CalculateChemistry(nil, players)

	// Reverse the player list; every unordered pair must score identically.
	reversed := make([]Player, len(players))
	for i, p := range players {
		reversed[len(players)-1-i] = p
	}
	backward := CalculateChemistry(nil, reversed)

	key := func(a, b string) string {
		if a < b {
			return a + "|" + b
		}
		return b + "|" + a
	}
	scores := make(map[string]float64)
	for _, p := range forward {
		scores[key(p.PlayerA, p.PlayerB)] = p.Score
	}
	for _, p := range backward {
		if got, ok := scores[key(p.PlayerA, p.PlayerB)]; !ok || got != p.Score {
			t.Errorf("pair (%s,%s): score %.1f != %.1f", p.PlayerA, p.PlayerB, p.Score, got)
		}
	}
}

func TestCalculateChemistry_SortedDescending(t *testing.T) {
	pairs := CalculateChemistry(nil, chemistrySquad())
	for i := 1; i < len(pairs); i++ {
		if pairs[i].Score > pairs[i-1].Score {
			t.Fatalf("pairs not sorted: index %d (%.1f) > index %d (%.1f)",
				i, pairs[i].Score, i-1, pairs[i-1].Score)
		}
	}
}

func TestCalculateChemistry_RelationshipTags(t *testing.T) {
	pairs := CalculateChemistry(nil, chemistrySquad())
	tags := make(map[string]string)
	for _, p := range pairs {
		tags[p.PlayerA+"|"+p.PlayerB] = p.RelationshipTag
	}

	if tags["p2|p3"] != TagFriendship {
		t.Errorf("p2/p3 tag = %q, want friendship", tags["p2|p3"])
	}
	if tags["p4|p5"] != TagRivalry {
		t.Errorf("p4/p5 tag = %q, want rivalry", tags["p4|p5"])
	}
	if tags["p6|p7"] != TagMentorship {
		t.Errorf("p6/p7 tag = %q, want mentorship", tags["p6|p7"])
	}
	if tags["p1|p2"] != "" {
		t.Errorf("p1/p2 tag = %q, want empty", tags["p1|p2"])
	}
}

func TestCalculateChemistry_RelationshipDeltas(t *testing.T) {
	base := []Player{
		{ID: "a", Name: "A", PreferredRole: "CB", CurrentPotential: 70},
		{ID: "b", Name: "B", PreferredRole: "CB", CurrentPotential: 70},
	}
	plain := CalculateChemistry(nil, base)[0].Score

	friends := []Player{
		{ID: "a", Name: "A", PreferredRole: "CB", Friendships: []string{"b"}},
		{ID: "b", Name: "B", PreferredRole: "CB"},
	}
	if got := CalculateChemistry(nil, friends)[0].Score; got != plain+FriendshipBonus {
		t.Errorf("friendship score = %.1f, want %.1f", got, plain+FriendshipBonus)
	}

	rivals := []Player{
		{ID: "a", Name: "A", PreferredRole: "CB"},
		{ID: "b", Name: "B", PreferredRole: "CB", Rivalries: []string{"a"}},
	}
	if got := CalculateChemistry(nil, rivals)[0].Score; got != plain-RivalryPenalty {
		t.Errorf("rivalry score = %.1f, want %.1f", got, plain-RivalryPenalty)
	}
}

func TestCalculateChemistry_PositionProximity(t *testing.T) {
	players := []Player{
		{ID: "a", Name: "A", PreferredRole: "CB"},
		{ID: "b", Name: "B", PreferredRole: "CB"},
	}
	apart := &Formation{Slots: []Slot{
		{ID: "s1", PlayerID: "a", Position: &Position{X: 0, Y: 0}},
		{ID: "s2", PlayerID: "b", Position: &Position{X: 100, Y: 100}},
	}}
	near := &Formation{Slots: []Slot{
		{ID: "s1", PlayerID: "a", Position: &Position{X: 40, Y: 20}},
		{ID: "s2", PlayerID: "b", Position: &Position{X: 45, Y: 20}},
	}}

	apartScore := CalculateChemistry(apart, players)[0].Score
	nearScore := CalculateChemistry(near, players)[0].Score
	if nearScore <= apartScore {
		t.Errorf("near pair (%.1f) should outscore distant pair (%.1f)", nearScore, apartScore)
	}
}

func TestCalculateChemistry_Guards(t *testing.T) {
	if pairs := CalculateChemistry(nil, nil); pairs != nil {
		t.Error("nil players should yield nil")
	}
	if pairs := CalculateChemistry(nil, []Player{}); pairs != nil {
		t.Error("empty players should yield nil")
	}
	// Unnamed players are skipped, leaving fewer than two valid players.
	malformed := []Player{
		{ID: "a", Name: "A", PreferredRole: "CM"},
		{ID: "b", PreferredRole: "CM"}, // no name
		{Name: "C", PreferredRole: "CM"}, // no id
	}
	if pairs := CalculateChemistry(nil, malformed); pairs != nil {
		t.Errorf("expected nil with only one valid player, got %d pairs", len(pairs))
	}
}

func TestCalculateChemistry_ScoreRange(t *testing.T) {
	for _, p := range CalculateChemistry(nil, chemistrySquad()) {
		if p.Score < 0 || p.Score > 100 {
			t.Errorf("pair (%s,%s) score %.1f out of [0,100]", p.PlayerA, p.PlayerB, p.Score)
		}
	}
}

func TestTopBottomLinks(t *testing.T) {
	pairs := CalculateChemistry(nil, chemistrySquad())
	top := TopLinks(pairs, ChemistryLinkCount)
	bottom := BottomLinks(pairs, ChemistryLinkCount)
	if len(top) != ChemistryLinkCount || len(bottom) != ChemistryLinkCount {
		t.Fatalf("got %d top / %d bottom, want %d each", len(top), len(bottom), ChemistryLinkCount)
	}
	if top[0].Score < bottom[0].Score {
		t.Errorf("top link (%.1f) should not score below bottom link (%.1f)", top[0].Score, bottom[0].Score)
	}
	// Bottom links come worst first.
	for i := 1; i < len(bottom); i++ {
		if bottom[i].Score < bottom[i-1].Score {
			t.Errorf("bottom links not ordered worst first")
		}
	}
}

func TestChemistryRecommendations_WeakLinks(t *testing.T) {
	players := []Player{
		{ID: "a", Name: "A", PreferredRole: "GK", Rivalries: []string{"b"}},
		{ID: "b", Name: "B", PreferredRole: "ST"},
	}
	pairs := CalculateChemistry(nil, players)
	if pairs[0].Score >= WeakLinkThreshold {
		t.Fatalf("fixture pair score %.1f should be below the weak-link threshold", pairs[0].Score)
	}
	recs := ChemistryRecommendations(pairs, players)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].Title != "Address Weak Chemistry Links" {
		t.Errorf("title = %q", recs[0].Title)
	}
}

func TestChemistryRecommendations_Empty(t *testing.T) {
	if recs := ChemistryRecommendations(nil, nil); recs != nil {
		t.Error("expected nil for no pairs")
	}
}
