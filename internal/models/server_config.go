package models

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	HTTPPort       string `json:"http_port,omitzero" yaml:"http_port"`
	WebSocketPort  string `json:"websocket_port,omitzero" yaml:"websocket_port"`
	AllowedOrigins string `json:"allowed_origins,omitzero" yaml:"allowed_origins"`
	Environment    string `json:"environment,omitzero" yaml:"environment"`
	LogLevel       string `json:"log_level,omitzero" yaml:"log_level"`
}
