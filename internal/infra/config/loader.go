// Package config loads the CLI configuration from vitalis.yaml, with
// environment variables taking precedence over the file.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

const (
	envBaseURL = "VITALIS_BASE_URL"
	envToken   = "VITALIS_TOKEN"
)

// Config is everything the CLI needs to build a client.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Debug   bool
}

// Default points at a local development server.
func Default() Config {
	return Config{
		BaseURL: "http://localhost:8000",
		Timeout: 30 * time.Second,
	}
}

type yamlConfig struct {
	Server struct {
		BaseURL        string `yaml:"base_url"`
		Token          string `yaml:"token"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"server"`
	Debug bool `yaml:"debug"`
}

// DefaultPath is ~/.vitalis/vitalis.yaml; a missing home dir falls back to
// the working directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".vitalis", "vitalis.yaml")
}

// Load reads the file at path (missing file is fine, defaults apply) and
// then applies env overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file: defaults + env only.
	case err != nil:
		return Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	default:
		var y yamlConfig
		if err := yaml.Unmarshal(b, &y); err != nil {
			return Config{}, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		if y.Server.BaseURL != "" {
			cfg.BaseURL = y.Server.BaseURL
		}
		if y.Server.Token != "" {
			cfg.Token = y.Server.Token
		}
		if y.Server.TimeoutSeconds > 0 {
			cfg.Timeout = time.Duration(y.Server.TimeoutSeconds) * time.Second
		}
		cfg.Debug = y.Debug
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envToken); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("VITALIS_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}
