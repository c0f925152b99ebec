// Package squad loads match snapshots (formation, players, and optional
// game context) from JSON files supplied by the hosting side. The loader
// enforces the structural invariants the engine assumes; data-quality
// problems inside elements (unplaced slots, unassigned players) are left
// for the analyzers to skip.
package squad

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/blackwell-systems/touchline/internal/tactics"
)

// Snapshot is one caller-owned analysis input read from disk.
type Snapshot struct {
	Formation tactics.Formation    `json:"formation"`
	Players   []tactics.Player     `json:"players"`
	Context   *tactics.GameContext `json:"context,omitempty"`
}

// Load reads and validates a snapshot file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading squad file: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing squad file %s: %w", path, err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid squad file %s: %w", path, err)
	}
	return &snap, nil
}

// Validate checks the structural invariants: every placed slot sits inside
// field-percentage space, and no player is assigned to more than one slot.
func (s *Snapshot) Validate() error {
	assigned := make(map[string]string)
	for _, slot := range s.Formation.Slots {
		if p := slot.Position; p != nil {
			if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
				return fmt.Errorf("slot %s position (%.1f, %.1f) outside field space", slot.ID, p.X, p.Y)
			}
		}
		if slot.PlayerID == "" {
			continue
		}
		if prev, dup := assigned[slot.PlayerID]; dup {
			return fmt.Errorf("player %s assigned to slots %s and %s", slot.PlayerID, prev, slot.ID)
		}
		assigned[slot.PlayerID] = slot.ID
	}

	seen := make(map[string]bool, len(s.Players))
	for _, p := range s.Players {
		if p.ID == "" {
			continue
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate player id %s", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
