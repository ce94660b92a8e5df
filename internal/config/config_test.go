package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Provider != "anthropic" {
		t.Errorf("default provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Model == "" {
		t.Error("default model must not be empty")
	}
	if cfg.Web.SessionTimeout != 30*time.Minute {
		t.Errorf("default session timeout = %v, want 30m", cfg.Web.SessionTimeout)
	}
	if cfg.Web.Port != 8090 {
		t.Errorf("default port = %d, want 8090", cfg.Web.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"missing provider", func(c *Config) { c.Provider = "" }, true},
		{"missing model", func(c *Config) { c.Model = "" }, true},
		{"negative timeout", func(c *Config) { c.Web.SessionTimeout = -time.Minute }, true},
		{"zero timeout is fine", func(c *Config) { c.Web.SessionTimeout = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DRAFTSMITH_PROVIDER", "openai")
	t.Setenv("DRAFTSMITH_MODEL", "gpt-4o")
	t.Setenv("DRAFTSMITH_API_KEY", "sk-test")
	t.Setenv("DRAFTSMITH_DRAFTS_DIR", "/tmp/drafts")
	t.Setenv("WEB_PASSWORD", "secret")

	cfg := DefaultConfig()
	cfg.applyEnv()

	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", cfg.Model)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("api key = %q, want sk-test", cfg.APIKey)
	}
	if cfg.DraftsDir != "/tmp/drafts" {
		t.Errorf("drafts dir = %q, want /tmp/drafts", cfg.DraftsDir)
	}
	if cfg.Web.Password != "secret" {
		t.Errorf("web password = %q, want secret", cfg.Web.Password)
	}
}

func TestApplyEnvProviderKeyFallback(t *testing.T) {
	t.Setenv("DRAFTSMITH_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_API_KEY", "sk-oai")

	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	cfg.applyEnv()
	if cfg.APIKey != "sk-ant" {
		t.Errorf("anthropic fallback key = %q, want sk-ant", cfg.APIKey)
	}

	cfg = DefaultConfig()
	cfg.Provider = "openai"
	cfg.applyEnv()
	if cfg.APIKey != "sk-oai" {
		t.Errorf("openai fallback key = %q, want sk-oai", cfg.APIKey)
	}

	// An explicit file value is never clobbered by the fallback.
	cfg = DefaultConfig()
	cfg.APIKey = "from-file"
	cfg.applyEnv()
	if cfg.APIKey != "from-file" {
		t.Errorf("key = %q, want from-file", cfg.APIKey)
	}
}
