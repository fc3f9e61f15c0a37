package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.Timeout)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "vitalis.yaml", `
server:
  base_url: https://api.vitalis.dev
  token: tok-abc
  timeout_seconds: 10
debug: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://api.vitalis.dev" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.Token != "tok-abc" {
		t.Fatalf("unexpected token %q", cfg.Token)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.Timeout)
	}
	if !cfg.Debug {
		t.Fatalf("expected debug true")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "vitalis.yaml", `
server:
  base_url: https://file.example.com
`)

	t.Setenv(envBaseURL, "https://env.example.com")
	t.Setenv(envToken, "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Fatalf("expected env to win, got %q", cfg.BaseURL)
	}
	if cfg.Token != "env-token" {
		t.Fatalf("expected env token, got %q", cfg.Token)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "vitalis.yaml", "server: [not: a: map")

	_, err := Load(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
