package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/models"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPPort      = "3001"
	defaultWebSocketPort = "3000"
	defaultProvider      = "groq"
	defaultBaseURL       = "https://api.groq.com/openai/v1"
	defaultModel         = "deepseek-r1-distill-llama-70b"
	defaultTemperature   = 0.3
	defaultMaxTokens     = 2000
	defaultTopP          = 0.95
	defaultCacheCapacity = 50
)

// Config represents the complete application configuration
type Config struct {
	Server   models.ServerConfig   `yaml:"server"`
	Provider models.ProviderConfig `yaml:"provider"`
	Cache    models.CacheConfig    `yaml:"cache"`
}

// LoadFromFile loads configuration from a YAML file with environment variable substitution
func LoadFromFile(configPath string) (*Config, error) {
	// Validate and clean the file path to prevent directory traversal
	cleanPath := filepath.Clean(configPath)
	if strings.Contains(cleanPath, "..") {
		return nil, fmt.Errorf("invalid config path: path traversal not allowed")
	}

	ext := filepath.Ext(cleanPath)
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("invalid config file: only .yaml and .yml files are allowed")
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 - path is validated above
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cleanPath, err)
	}

	content := substituteEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// LoadEnvFiles loads environment variables from .env files in order of precedence
// Loads files in the order provided (first has highest priority)
func LoadEnvFiles(envFiles []string) {
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err == nil {
				fiberlog.Infof("Loaded environment variables from %s", envFile)
			}
		}
	}
}

// New creates a new Config instance by loading from the specified config file path
func New(configPath string) (*Config, error) {
	return LoadFromFile(configPath)
}

// Default returns a configuration populated entirely from defaults and the
// environment, for deployments that run without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	if cfg.Provider.APIKey == "" {
		cfg.Provider.APIKey = os.Getenv("GROQ_API_KEY")
	}
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == "" {
		c.Server.HTTPPort = defaultHTTPPort
	}
	if c.Server.WebSocketPort == "" {
		c.Server.WebSocketPort = defaultWebSocketPort
	}
	if c.Server.AllowedOrigins == "" {
		c.Server.AllowedOrigins = "*"
	}
	if c.Provider.Name == "" {
		c.Provider.Name = defaultProvider
	}
	if c.Provider.BaseURL == "" && c.Provider.Name == defaultProvider {
		c.Provider.BaseURL = defaultBaseURL
	}
	if c.Provider.Model == "" {
		c.Provider.Model = defaultModel
	}
	if c.Provider.Temperature == 0 {
		c.Provider.Temperature = defaultTemperature
	}
	if c.Provider.MaxTokens == 0 {
		c.Provider.MaxTokens = defaultMaxTokens
	}
	if c.Provider.TopP == 0 {
		c.Provider.TopP = defaultTopP
	}
	if c.Cache.Capacity == 0 {
		c.Cache.Capacity = defaultCacheCapacity
		c.Cache.Enabled = true
	}
}

// Validate checks the configuration for fatal misconfiguration.
func (c *Config) Validate() error {
	if c.Provider.APIKey == "" {
		return fmt.Errorf("provider API key not set - set provider.api_key or the GROQ_API_KEY environment variable")
	}
	if c.Server.HTTPPort == c.Server.WebSocketPort {
		return fmt.Errorf("http_port and websocket_port must differ (both %s)", c.Server.HTTPPort)
	}
	switch c.Provider.Name {
	case "groq", "openai", "anthropic":
	default:
		return fmt.Errorf("unsupported provider %q (supported: groq, openai, anthropic)", c.Provider.Name)
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// GetNormalizedLogLevel returns the configured log level lowercased.
func (c *Config) GetNormalizedLogLevel() string {
	return strings.ToLower(strings.TrimSpace(c.Server.LogLevel))
}

// substituteEnvVars replaces ${VAR_NAME} and ${VAR_NAME:-default} patterns with environment variables
func substituteEnvVars(content string) string {
	re := regexp.MustCompile(`\$\{([^}:]+)(?::(-[^}]*))?\}`)

	return re.ReplaceAllStringFunc(content, func(match string) string {
		submatches := re.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		defaultValue := ""

		if len(submatches) > 2 && submatches[2] != "" {
			defaultValue = strings.TrimPrefix(submatches[2], "-")
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}
