package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
server:
  port: "9090"
assessment:
  denominator: max
  require_complete: true
submission:
  backend: http
  url: https://example.com/api/contact
  timeout: 3s
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Assessment.Denominator != "max" || !cfg.Assessment.RequireComplete {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Submission.Backend != "http" || TTLDuration(cfg.Submission.Timeout, time.Second) != 3*time.Second {
		t.Fatalf("unexpected submission config %+v", cfg.Submission)
	}
}

func TestTTLDurationFallback(t *testing.T) {
	if got := TTLDuration("", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for empty, got %v", got)
	}
	if got := TTLDuration("soon", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for garbage, got %v", got)
	}
	if got := TTLDuration("90s", time.Minute); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}
}
