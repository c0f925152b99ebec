package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level touchline configuration. The engine's tactical
// thresholds and weight tables are fixed named constants in the tactics
// package; this config covers only host-level concerns.
type Config struct {
	Advisor Advisor `mapstructure:"advisor"`
	Watch   Watch   `mapstructure:"watch"`
	Output  Output  `mapstructure:"output"`
}

// Advisor configures the AI advisory gateway.
type Advisor struct {
	Enabled        bool   `mapstructure:"enabled"`
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Watch configures the periodic re-analysis monitor.
type Watch struct {
	Interval string `mapstructure:"interval"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. The API key falls back
// to the ANTHROPIC_API_KEY environment variable when not configured.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("advisor.enabled", DefaultAdvisorEnabled)
	v.SetDefault("advisor.api_key", "")
	v.SetDefault("advisor.model", DefaultAdvisorModel)
	v.SetDefault("advisor.base_url", DefaultAdvisorBaseURL)
	v.SetDefault("advisor.timeout_seconds", DefaultAdvisorTimeoutSeconds)
	v.SetDefault("watch.interval", DefaultWatchInterval)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Missing config file is not an error; defaults apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Advisor.APIKey == "" {
		cfg.Advisor.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
