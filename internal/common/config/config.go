// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Limits   LimitsConfig   `mapstructure:"limits"`
	Contact  ContactConfig  `mapstructure:"contact"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Sessions SessionsConfig `mapstructure:"sessions"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	RequestTimeout int `mapstructure:"request_timeout"` // milliseconds
}

// GeminiConfig holds settings for the generative model client.
// The API key is injected here at process start; there is no
// package-level client state anywhere in the codebase.
type GeminiConfig struct {
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model"`
	Temperature     float32 `mapstructure:"temperature"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens"`
	Timeout         int     `mapstructure:"timeout"` // milliseconds
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LimitsConfig bounds inbound payloads before the pipeline runs.
type LimitsConfig struct {
	MaxDocumentBytes int64 `mapstructure:"max_document_bytes"`
	MaxPayloadBytes  int64 `mapstructure:"max_payload_bytes"`
}

// ContactConfig is the fixed contact block rendered into every proposal.
type ContactConfig struct {
	Company  string `mapstructure:"company"`
	Phone    string `mapstructure:"phone"`
	Email    string `mapstructure:"email"`
	Website  string `mapstructure:"website"`
	WhatsApp string `mapstructure:"whatsapp"` // digits only, used for wa.me links
}

type SessionsConfig struct {
	TTL int `mapstructure:"ttl"` // seconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required (set GEMINI_API_KEY)")
	}
	if cfg.Limits.MaxDocumentBytes <= 0 || cfg.Limits.MaxPayloadBytes <= 0 {
		return fmt.Errorf("limits must be positive")
	}
	if cfg.Limits.MaxDocumentBytes > cfg.Limits.MaxPayloadBytes {
		return fmt.Errorf("limits.max_document_bytes cannot exceed limits.max_payload_bytes")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "onboarding-engine"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 60000
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.0-flash-exp"
	}
	if cfg.Gemini.Temperature == 0 {
		cfg.Gemini.Temperature = 0.7
	}
	if cfg.Gemini.MaxOutputTokens == 0 {
		cfg.Gemini.MaxOutputTokens = 8192
	}
	if cfg.Gemini.Timeout == 0 {
		cfg.Gemini.Timeout = 45000
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = "localhost:6379"
	}
	if cfg.Limits.MaxDocumentBytes == 0 {
		cfg.Limits.MaxDocumentBytes = 100 * 1024
	}
	if cfg.Limits.MaxPayloadBytes == 0 {
		cfg.Limits.MaxPayloadBytes = 1024 * 1024
	}
	if cfg.Sessions.TTL == 0 {
		cfg.Sessions.TTL = 24 * 60 * 60
	}
	if cfg.Contact.Company == "" {
		cfg.Contact.Company = "Cehpoint Technology Consulting"
	}
	if cfg.Contact.Phone == "" {
		cfg.Contact.Phone = "+91 909 115 6095"
	}
	if cfg.Contact.Email == "" {
		cfg.Contact.Email = "sales@cehpoint.co.in"
	}
	if cfg.Contact.Website == "" {
		cfg.Contact.Website = "cehpoint.co.in"
	}
	if cfg.Contact.WhatsApp == "" {
		cfg.Contact.WhatsApp = "919091156095"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}
