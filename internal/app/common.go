package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/blackwell-systems/touchline/internal/advisor"
	"github.com/blackwell-systems/touchline/internal/config"
	"github.com/blackwell-systems/touchline/internal/squad"
	"github.com/blackwell-systems/touchline/internal/tactics"
)

// buildEngine constructs an engine from config. The advisory gateway is
// attached only when requested and configured; without it the engine is
// heuristic-only.
func buildEngine(cfg *config.Config, useAI bool) (*tactics.Engine, bool) {
	if !useAI || cfg.Advisor.APIKey == "" {
		return tactics.NewEngine(nil, nil), false
	}
	client := advisor.NewClient(cfg.Advisor.APIKey)
	if cfg.Advisor.Model != "" {
		client.Model = cfg.Advisor.Model
	}
	if cfg.Advisor.BaseURL != "" {
		client.BaseURL = cfg.Advisor.BaseURL
	}
	if cfg.Advisor.TimeoutSeconds > 0 {
		client.HTTPClient = &http.Client{Timeout: time.Duration(cfg.Advisor.TimeoutSeconds) * time.Second}
	}
	return tactics.NewEngine(client, nil), true
}

// loadSnapshot loads a squad file given as the single positional argument.
func loadSnapshot(args []string) (*squad.Snapshot, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected exactly one squad file argument")
	}
	return squad.Load(args[0])
}
