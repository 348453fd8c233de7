package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFileSubstitutesEnvVars(t *testing.T) {
	t.Setenv("RT_TEST_API_KEY", "sk-from-env")
	t.Setenv("RT_TEST_HTTP_PORT", "")

	path := writeConfigFile(t, `
server:
  http_port: "${RT_TEST_HTTP_PORT:-4001}"
provider:
  api_key: "${RT_TEST_API_KEY}"
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Provider.APIKey != "sk-from-env" {
		t.Errorf("api key = %q, want the environment value", cfg.Provider.APIKey)
	}
	// RT_TEST_HTTP_PORT is unset, so the inline default applies.
	if cfg.Server.HTTPPort != "4001" {
		t.Errorf("http port = %q, want the inline default 4001", cfg.Server.HTTPPort)
	}
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
provider:
  api_key: "sk-test"
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.HTTPPort != "3001" {
		t.Errorf("http port = %q, want 3001", cfg.Server.HTTPPort)
	}
	if cfg.Server.WebSocketPort != "3000" {
		t.Errorf("websocket port = %q, want 3000", cfg.Server.WebSocketPort)
	}
	if cfg.Provider.Name != "groq" {
		t.Errorf("provider = %q, want groq", cfg.Provider.Name)
	}
	if cfg.Provider.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("base url = %q", cfg.Provider.BaseURL)
	}
	if cfg.Provider.Model != "deepseek-r1-distill-llama-70b" {
		t.Errorf("model = %q", cfg.Provider.Model)
	}
	if cfg.Provider.Temperature != 0.3 || cfg.Provider.MaxTokens != 2000 || cfg.Provider.TopP != 0.95 {
		t.Errorf("sampling defaults = (%v, %v, %v)", cfg.Provider.Temperature, cfg.Provider.MaxTokens, cfg.Provider.TopP)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Capacity != 50 {
		t.Errorf("cache defaults = (%v, %d)", cfg.Cache.Enabled, cfg.Cache.Capacity)
	}
}

func TestLoadFromFileRejectsBadPaths(t *testing.T) {
	if _, err := LoadFromFile("config.json"); err == nil {
		t.Error("non-YAML extension accepted")
	}
	if _, err := LoadFromFile("../outside/config.yaml"); err == nil {
		t.Error("path traversal accepted")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.applyDefaults()
		cfg.Provider.APIKey = "sk-test"
		return cfg
	}

	if err := base().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg := base()
	cfg.Provider.APIKey = ""
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "API key") {
		t.Errorf("missing API key not rejected: %v", err)
	}

	cfg = base()
	cfg.Server.WebSocketPort = cfg.Server.HTTPPort
	if err := cfg.Validate(); err == nil {
		t.Error("identical ports not rejected")
	}

	cfg = base()
	cfg.Provider.Name = "cohere"
	if err := cfg.Validate(); err == nil {
		t.Error("unsupported provider not rejected")
	}
}

func TestDefaultReadsGroqKeyFromEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "sk-env-key")

	cfg := Default()

	if cfg.Provider.APIKey != "sk-env-key" {
		t.Errorf("api key = %q, want the GROQ_API_KEY value", cfg.Provider.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config with key invalid: %v", err)
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Environment = "Production"
	cfg.Server.LogLevel = "  DEBUG "

	if !cfg.IsProduction() {
		t.Error("Production not recognized case-insensitively")
	}
	if got := cfg.GetNormalizedLogLevel(); got != "debug" {
		t.Errorf("normalized log level = %q, want debug", got)
	}
}
