package squad

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/touchline/internal/tactics"
)

const validSquadJSON = `{
  "formation": {
    "name": "4-4-2",
    "slots": [
      {"id": "gk", "role": "GK", "playerId": "p1", "position": {"x": 50, "y": 5}},
      {"id": "st", "role": "ST", "playerId": "p2", "position": {"x": 50, "y": 85}},
      {"id": "bench", "role": "CM"}
    ]
  },
  "players": [
    {"id": "p1", "name": "Keeper", "preferredRole": "GK", "currentPotential": 74},
    {"id": "p2", "name": "Nine", "preferredRole": "ST", "currentPotential": 81}
  ],
  "context": {"gamePhase": "late", "score": {"home": 0, "away": 1}, "gameState": "losing"}
}`

func writeSquad(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "squad.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidSnapshot(t *testing.T) {
	snap, err := Load(writeSquad(t, validSquadJSON))
	if err != nil {
		t.Fatal(err)
	}
	if snap.Formation.Name != "4-4-2" || len(snap.Formation.Slots) != 3 {
		t.Errorf("formation = %q with %d slots", snap.Formation.Name, len(snap.Formation.Slots))
	}
	if len(snap.Players) != 2 {
		t.Errorf("players = %d, want 2", len(snap.Players))
	}
	if snap.Context == nil || snap.Context.Phase != tactics.PhaseLate {
		t.Errorf("context = %+v", snap.Context)
	}
	if snap.Formation.Slots[2].Position != nil {
		t.Error("unplaced slot should keep a nil position")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	if _, err := Load(writeSquad(t, "{not json")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidateRejectsOutOfRangePosition(t *testing.T) {
	bad := strings.Replace(validSquadJSON, `{"x": 50, "y": 85}`, `{"x": 50, "y": 120}`, 1)
	_, err := Load(writeSquad(t, bad))
	if err == nil || !strings.Contains(err.Error(), "outside field space") {
		t.Errorf("expected an out-of-range error, got %v", err)
	}
}

func TestValidateRejectsDuplicateAssignment(t *testing.T) {
	bad := strings.Replace(validSquadJSON, `"playerId": "p2"`, `"playerId": "p1"`, 1)
	_, err := Load(writeSquad(t, bad))
	if err == nil || !strings.Contains(err.Error(), "assigned to slots") {
		t.Errorf("expected a duplicate-assignment error, got %v", err)
	}
}

func TestValidateRejectsDuplicatePlayerIDs(t *testing.T) {
	bad := strings.Replace(validSquadJSON, `"id": "p2", "name": "Nine"`, `"id": "p1", "name": "Nine"`, 1)
	_, err := Load(writeSquad(t, bad))
	if err == nil || !strings.Contains(err.Error(), "duplicate player id") {
		t.Errorf("expected a duplicate-player error, got %v", err)
	}
}

func TestValidateAllowsUnassignedSlots(t *testing.T) {
	snap := &Snapshot{Formation: tactics.Formation{Slots: []tactics.Slot{
		{ID: "a"}, {ID: "b"},
	}}}
	if err := snap.Validate(); err != nil {
		t.Errorf("empty slots are valid, got %v", err)
	}
}
