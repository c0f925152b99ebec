package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/touchline/internal/tactics"
)

func testSnapshot() (*tactics.Formation, []tactics.Player, *tactics.GameContext) {
	f := &tactics.Formation{
		Name: "4-3-3",
		Slots: []tactics.Slot{
			{ID: "s1", Role: "GK", PlayerID: "p1", Position: &tactics.Position{X: 50, Y: 5}},
			{ID: "s2", Role: "ST", PlayerID: "p2", Position: &tactics.Position{X: 50, Y: 85}},
		},
	}
	players := []tactics.Player{
		{ID: "p1", Name: "Keeper", PreferredRole: "GK", CurrentPotential: 74},
		{ID: "p2", Name: "Nine", PreferredRole: "ST", CurrentPotential: 81},
	}
	gc := &tactics.GameContext{
		Phase:               tactics.PhaseLate,
		Score:               tactics.Score{Home: 0, Away: 1},
		State:               tactics.StateLosing,
		OppositionFormation: "5-4-1",
	}
	return f, players, gc
}

// messagesResponse wraps model output text in the messages API envelope.
func messagesResponse(text string) string {
	b, _ := json.Marshal(map[string]any{
		"content": []map[string]string{{"type": "text", "text": text}},
	})
	return string(b)
}

const validAdvisory = `{
  "recommendations": [
    {
      "title": "Overload the Left Half-Space",
      "description": "Pull Nine toward the left channel to drag the spare centre-back out.",
      "reasoning": "A 5-4-1 leaves the half-spaces as the only soft entry points.",
      "priority": "high",
      "confidence": 82,
      "impact": "significant"
    }
  ]
}`

func TestAdviseSuccess(t *testing.T) {
	var gotReq apiRequest
	var gotKey, gotVersion string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprint(w, messagesResponse(validAdvisory))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.BaseURL = server.URL

	f, players, gc := testSnapshot()
	recs, err := client.Advise(context.Background(), f, players, gc)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, apiVersion, gotVersion)
	assert.Equal(t, defaultModel, gotReq.Model)
	require.Len(t, gotReq.Messages, 1)
	assert.Contains(t, gotReq.Messages[0].Content, "Nine (ST)")
	assert.Contains(t, gotReq.Messages[0].Content, "Score: 0-1")
	assert.Contains(t, gotReq.Messages[0].Content, "Opposition formation: 5-4-1")

	rec := recs[0]
	assert.Equal(t, "advisory-1", rec.ID)
	assert.Equal(t, tactics.RecTactical, rec.Type)
	assert.Equal(t, "Overload the Left Half-Space", rec.Title)
	assert.Equal(t, tactics.PriorityHigh, rec.Priority)
	assert.Equal(t, tactics.ImpactSignificant, rec.Impact)
	assert.Equal(t, 82.0, rec.Confidence)
	require.Len(t, rec.Actions, 1)
	assert.Equal(t, "adjust_tactics", rec.Actions[0].Type)
	assert.Equal(t, "ai", rec.Actions[0].Parameters["source"])
}

func TestAdviseStripsCodeFences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, messagesResponse("```json\n"+validAdvisory+"\n```"))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.BaseURL = server.URL

	f, players, gc := testSnapshot()
	recs, err := client.Advise(context.Background(), f, players, gc)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestAdviseSkipsInvalidItems(t *testing.T) {
	body := `{
  "recommendations": [
    {"title": "", "description": "no title", "priority": "high", "impact": "minor"},
    {"title": "Bad priority", "description": "x", "priority": "urgent", "impact": "minor"},
    {"title": "Bad impact", "description": "x", "priority": "high", "impact": "huge"},
    {"title": "Keep This One", "description": "x", "priority": "low", "confidence": 150, "impact": "minor"}
  ]
}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, messagesResponse(body))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.BaseURL = server.URL

	f, players, gc := testSnapshot()
	recs, err := client.Advise(context.Background(), f, players, gc)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Keep This One", recs[0].Title)
	assert.Equal(t, 100.0, recs[0].Confidence, "confidence must be clamped")
}

func TestAdviseErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-JSON body", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, messagesResponse("I think you should attack more."))
		}},
		{"empty recommendations", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, messagesResponse(`{"recommendations": []}`))
		}},
		{"all items invalid", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, messagesResponse(`{"recommendations": [{"title": "", "description": ""}]}`))
		}},
		{"HTTP error status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"type": "overloaded_error", "message": "try later"}}`, http.StatusServiceUnavailable)
		}},
		{"API error envelope", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"error": {"type": "invalid_request_error", "message": "bad model"}}`)
		}},
		{"no text content", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"content": []}`)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient("test-key")
			client.BaseURL = server.URL

			f, players, gc := testSnapshot()
			recs, err := client.Advise(context.Background(), f, players, gc)
			assert.Error(t, err)
			assert.Nil(t, recs)
		})
	}
}

func TestAdviseRequiresAPIKey(t *testing.T) {
	client := NewClient("")
	f, players, gc := testSnapshot()
	_, err := client.Advise(context.Background(), f, players, gc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"  {\"a\": 1}  ", `{"a": 1}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripCodeFences(tt.in))
	}
}
