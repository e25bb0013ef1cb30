package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultAnalyzerCommand is used when no analyzer is configured. It expects
// the bundled Python analyzer to be reachable from the working directory.
var DefaultAnalyzerCommand = []string{"python3", "analyzer/main.py"}

// DefaultPollIntervalMs bounds the capture loop's stop-signal checks.
const DefaultPollIntervalMs = 150

type Config struct {
	SessionsDir     string
	AnalyzerCommand []string
	PollInterval    time.Duration
	LogLevel        string
	LogPath         string
}

type fileConfig struct {
	SessionsDir     string   `toml:"sessions_dir"`
	AnalyzerCommand []string `toml:"analyzer_command"`
	PollIntervalMs  int      `toml:"poll_interval_ms"`
	LogLevel        string   `toml:"log_level"`
	LogPath         string   `toml:"log_path"`
}

func Load() (*Config, error) {
	cfg := &Config{
		SessionsDir:     defaultSessionsDir(),
		AnalyzerCommand: DefaultAnalyzerCommand,
		PollInterval:    DefaultPollIntervalMs * time.Millisecond,
		LogLevel:        "info",
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", configPath, err)
		}
		if fc.SessionsDir != "" {
			cfg.SessionsDir = expandTilde(fc.SessionsDir)
		}
		if len(fc.AnalyzerCommand) > 0 {
			cfg.AnalyzerCommand = fc.AnalyzerCommand
		}
		if fc.PollIntervalMs > 0 {
			cfg.PollInterval = time.Duration(fc.PollIntervalMs) * time.Millisecond
		}
		if fc.LogLevel != "" {
			cfg.LogLevel = fc.LogLevel
		}
		if fc.LogPath != "" {
			cfg.LogPath = expandTilde(fc.LogPath)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MEETING_MINDER_SESSIONS_DIR"); v != "" {
		cfg.SessionsDir = expandTilde(v)
	}
	if v := os.Getenv("MEETING_MINDER_ANALYZER"); v != "" {
		cfg.AnalyzerCommand = strings.Fields(v)
	}
	if v := os.Getenv("MEETING_MINDER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// ConfigDir returns the directory holding config.toml.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "meeting-minder")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "meeting-minder")
	}
	return ""
}

func configFilePath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultSessionsDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "meeting-minder", "sessions")
	}
	return filepath.Join(".", "sessions")
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
