// Package config provides configuration loading and defaults for touchline.
package config

// DefaultConfigDir is the default location for touchline configuration.
const DefaultConfigDir = "~/.config/touchline"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "touchline.db"

// DefaultAdvisorEnabled controls whether analyze passes call the AI
// advisory gateway by default.
const DefaultAdvisorEnabled = false

// DefaultAdvisorModel is the text-generation model used by the advisory
// gateway.
const DefaultAdvisorModel = "claude-sonnet-4-20250514"

// DefaultAdvisorBaseURL is the advisory API endpoint.
const DefaultAdvisorBaseURL = "https://api.anthropic.com/v1/messages"

// DefaultAdvisorTimeoutSeconds bounds the single advisory attempt.
const DefaultAdvisorTimeoutSeconds = 30

// DefaultWatchInterval is how often the monitor re-runs analysis while a
// watch session is open.
const DefaultWatchInterval = "30s"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
