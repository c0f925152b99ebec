// Package advisor implements the optional AI advisory gateway: a single
// best-effort call to an external text-generation service that augments the
// heuristic recommendations. Any failure, whether network, timeout, non-JSON
// body, or schema mismatch, surfaces as an error for the engine to swallow;
// nothing here ever panics or retries.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blackwell-systems/touchline/internal/tactics"
)

const (
	defaultBaseURL = "https://api.anthropic.com/v1/messages"
	apiVersion     = "2023-06-01"
	defaultModel   = "claude-sonnet-4-20250514"
	maxTokens      = 2048
	defaultTimeout = 30 * time.Second
)

// Client calls the messages API. The zero value is unusable; construct with
// NewClient and override fields before first use if needed.
type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with the default model, endpoint, and timeout.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		Model:      defaultModel,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// systemPrompt constrains the model to the advisory response schema.
const systemPrompt = `You are an elite football tactics analyst. You are given a team's formation, squad, and match situation. Produce tactical advice a head coach can act on this match.

Rules:
- Be specific to THIS formation and THESE players. Reference the player names and roles provided.
- Do not restate the input; every item must add a concrete adjustment.
- priority must be one of: low, medium, high, critical.
- impact must be one of: minor, moderate, significant, game-changing.
- confidence is a number from 0 to 100.
- Output valid JSON matching the schema below and nothing else.

Output schema:
{
  "recommendations": [
    {
      "title": "Short imperative title",
      "description": "What to change",
      "reasoning": "Why, grounded in the provided data",
      "priority": "medium",
      "confidence": 80,
      "impact": "moderate"
    }
  ]
}`

// Advise serializes the snapshot into a prompt, makes one API attempt, and
// maps the schema-validated response into recommendations. The returned
// items all have type "tactical" and carry an adjust_tactics action tagged
// with the AI source.
func (c *Client) Advise(ctx context.Context, f *tactics.Formation, players []tactics.Player, gc *tactics.GameContext) ([]tactics.Recommendation, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("advisor: API key is required")
	}

	responseText, err := c.callMessagesAPI(ctx, buildUserPrompt(f, players, gc))
	if err != nil {
		return nil, fmt.Errorf("advisor: %w", err)
	}

	recs, err := parseAdvisory(responseText)
	if err != nil {
		return nil, fmt.Errorf("advisor: %w", err)
	}
	return recs, nil
}

// buildUserPrompt renders the formation layout, the squad (name, role, and
// rating only), and the match situation.
func buildUserPrompt(f *tactics.Formation, players []tactics.Player, gc *tactics.GameContext) string {
	var sb strings.Builder

	sb.WriteString("## Formation\n\n")
	fmt.Fprintf(&sb, "- Name: %s\n", f.Name)
	for _, slot := range f.Slots {
		if slot.Position == nil {
			continue
		}
		fmt.Fprintf(&sb, "- %s at (%.0f, %.0f)", slot.Role, slot.Position.X, slot.Position.Y)
		if slot.PlayerID != "" {
			fmt.Fprintf(&sb, " [player %s]", slot.PlayerID)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n## Squad\n\n")
	for _, p := range players {
		if p.Name == "" {
			continue
		}
		fmt.Fprintf(&sb, "- %s (%s): rating %.0f, id %s\n", p.Name, p.PreferredRole, p.CurrentPotential, p.ID)
	}

	if gc != nil {
		sb.WriteString("\n## Match Situation\n\n")
		fmt.Fprintf(&sb, "- Phase: %s\n", gc.Phase)
		fmt.Fprintf(&sb, "- Score: %d-%d\n", gc.Score.Home, gc.Score.Away)
		fmt.Fprintf(&sb, "- Game state: %s\n", gc.State)
		if gc.OppositionFormation != "" {
			fmt.Fprintf(&sb, "- Opposition formation: %s\n", gc.OppositionFormation)
		}
	}

	return sb.String()
}

// apiRequest is the request body for the messages API.
type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	System    string       `json:"system"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Content []apiContentBlock `json:"content"`
	Error   *apiError         `json:"error,omitempty"`
}

type apiContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// callMessagesAPI makes the single HTTP attempt and returns the response
// text content.
func (c *Client) callMessagesAPI(ctx context.Context, userPrompt string) (string, error) {
	reqBody := apiRequest{
		Model:     c.Model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages:  []apiMessage{{Role: "user", Content: userPrompt}},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %.200s", resp.StatusCode, string(respBytes))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if apiResp.Error != nil {
		return "", fmt.Errorf("API error: %s: %s", apiResp.Error.Type, apiResp.Error.Message)
	}

	var textParts []string
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			textParts = append(textParts, block.Text)
		}
	}
	if len(textParts) == 0 {
		return "", fmt.Errorf("no text content in API response")
	}
	return strings.Join(textParts, ""), nil
}

// advisorySchema is the expected JSON structure from the model.
type advisorySchema struct {
	Recommendations []advisoryItem `json:"recommendations"`
}

type advisoryItem struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Reasoning   string  `json:"reasoning"`
	Priority    string  `json:"priority"`
	Confidence  float64 `json:"confidence"`
	Impact      string  `json:"impact"`
}

// parseAdvisory validates the model output against the schema and maps it
// into recommendations. Items with an empty title or description, or with
// an unknown priority or impact, are rejected; an all-rejected response is
// an error.
func parseAdvisory(responseText string) ([]tactics.Recommendation, error) {
	text := stripCodeFences(responseText)

	var schema advisorySchema
	if err := json.Unmarshal([]byte(text), &schema); err != nil {
		return nil, fmt.Errorf("parsing advisory JSON: %w (response was: %.200s)", err, text)
	}
	if len(schema.Recommendations) == 0 {
		return nil, fmt.Errorf("advisory response contained no recommendations")
	}

	var recs []tactics.Recommendation
	for i, item := range schema.Recommendations {
		if item.Title == "" || item.Description == "" {
			continue
		}
		priority, err := tactics.ParsePriority(item.Priority)
		if err != nil {
			continue
		}
		impact, err := tactics.ParseImpact(item.Impact)
		if err != nil {
			continue
		}
		recs = append(recs, tactics.Recommendation{
			ID:          fmt.Sprintf("advisory-%d", i+1),
			Type:        tactics.RecTactical,
			Title:       item.Title,
			Description: item.Description,
			Reasoning:   item.Reasoning,
			Confidence:  clampConfidence(item.Confidence),
			Priority:    priority,
			Impact:      impact,
			Actions: []tactics.Action{{
				Type: "adjust_tactics",
				Parameters: map[string]any{
					"source":         "ai",
					"recommendation": item.Title,
				},
			}},
		})
	}

	if len(recs) == 0 {
		return nil, fmt.Errorf("advisory response contained no valid recommendations")
	}
	return recs, nil
}

func stripCodeFences(s string) string {
	text := strings.TrimSpace(s)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
