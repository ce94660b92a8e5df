package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`

	DraftsDir string `yaml:"drafts_dir,omitempty"`

	Web WebConfig `yaml:"web,omitempty"`
}

// WebConfig holds the browser front end settings. An empty password
// leaves the web UI open, matching the desktop app's behavior.
type WebConfig struct {
	Password       string        `yaml:"password,omitempty"`
	SessionSecret  string        `yaml:"session_secret,omitempty"`
	SessionTimeout time.Duration `yaml:"session_timeout,omitempty"`
	Port           int           `yaml:"port,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: "anthropic",
		Model:    "claude-sonnet-4-20250514",
		Web: WebConfig{
			SessionTimeout: 30 * time.Minute,
			Port:           8090,
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "draftsmith"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultDraftsDir is where drafts and exports land when drafts_dir
// is not configured.
func DefaultDraftsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Documents", "Draftsmith Drafts"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file, applies defaults for unset fields, and
// then applies environment overrides. A missing file yields the
// defaults rather than an error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.DraftsDir == "" {
		dir, err := DefaultDraftsDir()
		if err != nil {
			return nil, err
		}
		cfg.DraftsDir = dir
	}

	return cfg, nil
}

// applyEnv lets environment variables (typically loaded from .env)
// override file values. ANTHROPIC_API_KEY and OPENAI_API_KEY are
// honored for their respective providers so existing shells keep
// working.
func (c *Config) applyEnv() {
	if v := os.Getenv("DRAFTSMITH_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("DRAFTSMITH_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("DRAFTSMITH_API_KEY"); v != "" {
		c.APIKey = v
	}
	if c.APIKey == "" {
		switch c.Provider {
		case "anthropic":
			c.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		case "openai":
			c.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if v := os.Getenv("DRAFTSMITH_DRAFTS_DIR"); v != "" {
		c.DraftsDir = v
	}
	if v := os.Getenv("WEB_PASSWORD"); v != "" {
		c.Web.Password = v
	}
	if v := os.Getenv("WEB_SECRET_KEY"); v != "" {
		c.Web.SessionSecret = v
	}
}

func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.Web.SessionTimeout < 0 {
		return fmt.Errorf("web.session_timeout must not be negative")
	}
	return nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
