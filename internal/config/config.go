package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the probe run and its trigger surfaces need.
// Values come from an optional YAML file with environment variables layered
// on top; env always wins. The gating target's URL is the one value every
// deployment must supply.
type Config struct {
	GatingURL string `yaml:"gating_url"` // env GATING_URL (required)
	Profile   string `yaml:"profile"`    // env PROFILE, "standard" or "restricted"

	Addr   string `yaml:"addr"`    // env ADDR, serve-mode bind address
	LogDir string `yaml:"log_dir"` // env LOG_DIR

	ProbeTimeout time.Duration `yaml:"-"`                // env PROBE_TIMEOUT_MS
	TimeoutMS    int           `yaml:"probe_timeout_ms"` // file form of the same knob
	Schedule     string        `yaml:"schedule"`         // env SCHEDULE, cron expression; empty disables
	SlackWebhook string        `yaml:"slack_webhook"`    // env SLACK_WEBHOOK
	BusEndpoint  string        `yaml:"bus_endpoint"`     // env BUS_ENDPOINT
	BusSource    string        `yaml:"bus_source"`       // env BUS_SOURCE
	BusType      string        `yaml:"bus_type"`         // env BUS_TYPE
}

// ErrMissingGatingURL is returned by Validate when no gating URL was
// configured anywhere.
var ErrMissingGatingURL = errors.New("GATING_URL is not set")

func defaults() Config {
	return Config{
		Profile:      "standard",
		Addr:         "127.0.0.1:8080",
		LogDir:       "logs",
		ProbeTimeout: 5 * time.Second,
		BusSource:    "gatewatch",
		BusType:      "probe-alert",
	}
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist), then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
			if cfg.TimeoutMS > 0 {
				cfg.ProbeTimeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// FromEnv is Load without a file.
func FromEnv() Config {
	cfg, _ := Load("")
	return cfg
}

func applyEnv(cfg *Config) {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString(&cfg.GatingURL, "GATING_URL")
	setString(&cfg.Profile, "PROFILE")
	setString(&cfg.Addr, "ADDR")
	setString(&cfg.LogDir, "LOG_DIR")
	setString(&cfg.Schedule, "SCHEDULE")
	setString(&cfg.SlackWebhook, "SLACK_WEBHOOK")
	setString(&cfg.BusEndpoint, "BUS_ENDPOINT")
	setString(&cfg.BusSource, "BUS_SOURCE")
	setString(&cfg.BusType, "BUS_TYPE")

	if v := os.Getenv("PROBE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.ProbeTimeout = time.Duration(ms) * time.Millisecond
		}
	}
}

func (c Config) Validate() error {
	if c.GatingURL == "" {
		return ErrMissingGatingURL
	}
	return nil
}
