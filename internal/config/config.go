// Package config loads Revu settings from an optional YAML file layered
// under REVU_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "REVU_"

// Config holds application settings. Zero values fall back to the
// defaults from Default.
type Config struct {
	// Learner identifies whose progress and history to use.
	Learner string `koanf:"learner"`

	// Policy names the next-item selection policy.
	// Values: "coverage-first", "hard-first".
	Policy string `koanf:"policy"`

	// DB overrides the SQLite database path.
	DB string `koanf:"db"`

	// CoursesDir points at a directory of extra course pack JSON
	// files, loaded alongside the embedded packs.
	CoursesDir string `koanf:"courses_dir"`

	Session SessionConfig `koanf:"session"`
	Explain ExplainConfig `koanf:"explain"`
}

// SessionConfig holds review session settings.
type SessionConfig struct {
	// CallTimeout bounds each store call made by the session
	// controller.
	CallTimeout time.Duration `koanf:"call_timeout"`
}

// ExplainConfig holds explanation generation settings.
type ExplainConfig struct {
	// Enabled turns hard-item explanations on. Requires an LLM
	// provider to be configured.
	Enabled bool `koanf:"enabled"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Learner: "default",
		Policy:  "coverage-first",
		Session: SessionConfig{
			CallTimeout: 5 * time.Second,
		},
		Explain: ExplainConfig{
			Enabled: true,
		},
	}
}

// Load reads the config file at path (optional; missing files are
// fine) and applies REVU_* environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("load config file %s: %w", path, err)
			}
		}
	}

	// Double underscore separates nesting levels so single underscores
	// survive in key names: REVU_SESSION__CALL_TIMEOUT → session.call_timeout.
	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		return strings.ReplaceAll(key, "__", "."), value
	}), nil)
	if err != nil {
		return cfg, fmt.Errorf("load env config: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/revu/config.yaml, or ~/.config/revu/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "revu", "config.yaml"), nil
}
