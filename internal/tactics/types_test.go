package tactics

import (
	"encoding/json"
	"testing"
)

func TestPriorityOrdering(t *testing.T) {
	if !(PriorityLow < PriorityMedium && PriorityMedium < PriorityHigh && PriorityHigh < PriorityCritical) {
		t.Error("priority ranks out of order")
	}
}

func TestParsePriority(t *testing.T) {
	for _, s := range []string{"low", "medium", "high", "critical"} {
		p, err := ParsePriority(s)
		if err != nil {
			t.Fatalf("ParsePriority(%q): %v", s, err)
		}
		if p.String() != s {
			t.Errorf("round trip %q -> %q", s, p.String())
		}
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Error("unknown priority should error")
	}
}

func TestPriorityJSONIsStringly(t *testing.T) {
	b, err := json.Marshal(Recommendation{ID: "x", Priority: PriorityHigh})
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["priority"] != "high" {
		t.Errorf("priority serializes as %v, want \"high\"", raw["priority"])
	}
}
