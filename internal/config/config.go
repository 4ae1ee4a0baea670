// Package config holds operator-level configuration for an agentic-xai
// process. Everything here concerns the boundary and the live-model
// collaborator; the decision engine itself is configuration-free by design.
//
// Each viper key maps to an env var with the AXAI prefix (e.g. "model" →
// AXAI_MODEL) and to a YAML field in axai.config.yaml.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyModel           = "model"
	KeyOpenAIAPIKey    = "openai_api_key"
	KeyDefaultPriority = "default_priority"
	KeyConvention      = "convention"
	KeyLiveRPS         = "live_rps"
	KeyLiveBurst       = "live_burst"
)

// Defaults. The live-attempt limiter defaults are deliberately tight:
// the fallback engine is the common path, and nothing queues or retries
// behind a denied live attempt.
const (
	DefaultModel     = "gpt-4o-mini"
	DefaultPriority  = "medium"
	DefaultConv      = "categorical"
	DefaultLiveRPS   = 1.0
	DefaultLiveBurst = 2
)

// Config holds resolved configuration for a process.
type Config struct {
	Model           string  // Live model identifier
	OpenAIAPIKey    string  // API key for the live provider; empty disables live attempts
	DefaultPriority string  // Priority applied when a request carries none
	Convention      string  // Response convention: categorical or narrative
	LiveRPS         float64 // Sustained live-attempt rate per second
	LiveBurst       int     // Live-attempt burst size
}

// LiveEnabled reports whether a live provider can be constructed.
func (c *Config) LiveEnabled() bool {
	return c.OpenAIAPIKey != ""
}

func init() {
	bindDefaults()
}

// bindDefaults wires the env prefix and default values into the global
// viper. Split out of init so tests can rebind after viper.Reset.
func bindDefaults() {
	viper.SetEnvPrefix("AXAI")
	viper.AutomaticEnv()
	viper.SetDefault(KeyModel, DefaultModel)
	viper.SetDefault(KeyDefaultPriority, DefaultPriority)
	viper.SetDefault(KeyConvention, DefaultConv)
	viper.SetDefault(KeyLiveRPS, DefaultLiveRPS)
	viper.SetDefault(KeyLiveBurst, DefaultLiveBurst)
}

// Load reads configuration from Viper (which merges env vars, config file,
// and defaults) and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{
		Model:           viper.GetString(KeyModel),
		OpenAIAPIKey:    viper.GetString(KeyOpenAIAPIKey),
		DefaultPriority: viper.GetString(KeyDefaultPriority),
		Convention:      viper.GetString(KeyConvention),
		LiveRPS:         viper.GetFloat64(KeyLiveRPS),
		LiveBurst:       viper.GetInt(KeyLiveBurst),
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	switch c.DefaultPriority {
	case "high", "medium", "low":
	default:
		return fmt.Errorf("default_priority must be high, medium, or low (got %q)", c.DefaultPriority)
	}
	switch c.Convention {
	case "categorical", "narrative":
	default:
		return fmt.Errorf("convention must be categorical or narrative (got %q)", c.Convention)
	}
	if c.LiveRPS <= 0 {
		return fmt.Errorf("live_rps must be positive")
	}
	if c.LiveBurst < 1 {
		return fmt.Errorf("live_burst must be at least 1")
	}
	return nil
}
