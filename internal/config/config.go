package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Questionnaire struct {
		TTL       string `yaml:"ttl"`
		DefaultID string `yaml:"default_id"`
	} `yaml:"questionnaire"`
	Assessment struct {
		// Denominator is "fixed" (divide by FixedDenominator) or "max" (divide by the best achievable total).
		Denominator      string `yaml:"denominator"`
		FixedDenominator int    `yaml:"fixed_denominator"`
		RequireComplete  bool   `yaml:"require_complete"`
		SessionTTL       string `yaml:"session_ttl"`
	} `yaml:"assessment"`
	Submission struct {
		// Backend is one of auto, memory, redis, postgres, http.
		Backend      string `yaml:"backend"`
		URL          string `yaml:"url"`
		Timeout      string `yaml:"timeout"`
		Stream       string `yaml:"stream"`
		StreamMaxLen int64  `yaml:"stream_max_len"`
	} `yaml:"submission"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
