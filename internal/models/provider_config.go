package models

// ProviderConfig holds configuration for the upstream completion provider.
// The default deployment points at Groq's OpenAI-compatible endpoint; any
// compatible endpoint works through base_url, and "anthropic" selects the
// native Anthropic client instead.
type ProviderConfig struct {
	Name        string  `yaml:"name" json:"name,omitzero"`               // "groq", "openai" or "anthropic"
	APIKey      string  `yaml:"api_key" json:"api_key,omitzero"`         // Provider API key
	BaseURL     string  `yaml:"base_url" json:"base_url,omitzero"`       // Optional custom base URL
	Model       string  `yaml:"model" json:"model,omitzero"`             // Upstream model identifier
	TimeoutMs   int     `yaml:"timeout_ms" json:"timeout_ms,omitzero"`   // Optional timeout in milliseconds
	Temperature float64 `yaml:"temperature" json:"temperature,omitzero"` // Sampling temperature
	MaxTokens   int     `yaml:"max_tokens" json:"max_tokens,omitzero"`   // Completion token limit
	TopP        float64 `yaml:"top_p" json:"top_p,omitzero"`             // Nucleus sampling parameter
}
