package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Gemini    GeminiConfig
	Assistant AssistantConfig
	Export    ExportConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig configures the intent-classifier backend. An empty APIKey is
// allowed: classification then degrades to a configuration-clarification
// reply instead of blocking startup.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// AssistantConfig configures the assistant domain itself.
type AssistantConfig struct {
	DBPath             string
	Timezone           string        // location used to interpret classifier wall-clock strings
	ClassifierCacheTTL time.Duration // TTL for cached classifier results
	AccountSweepSpec   string        // cron spec for the expired-account sweep
}

// ExportConfig configures the calendar export pipeline.
type ExportConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")

	cfg.Assistant.DBPath = viper.GetString("assistant.db_path")
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.ClassifierCacheTTL = viper.GetDuration("assistant.classifier_cache_ttl")
	cfg.Assistant.AccountSweepSpec = viper.GetString("assistant.account_sweep_spec")

	cfg.Export.RateLimitPerMin = viper.GetInt("export.rate_limit_per_min")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.model", "")

	viper.SetDefault("assistant.db_path", "data/assistant.db")
	viper.SetDefault("assistant.timezone", "UTC")
	viper.SetDefault("assistant.classifier_cache_ttl", "10m")
	viper.SetDefault("assistant.account_sweep_spec", "@hourly")

	viper.SetDefault("export.rate_limit_per_min", 60)
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port)
	}

	if _, err := time.LoadLocation(c.Assistant.Timezone); err != nil {
		return fmt.Errorf("assistant.timezone %q is invalid: %w", c.Assistant.Timezone, err)
	}

	if c.Export.RateLimitPerMin <= 0 {
		return fmt.Errorf("export.rate_limit_per_min must be positive")
	}

	return nil
}
