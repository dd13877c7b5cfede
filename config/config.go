package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Extraction
	Extraction ExtractionConfig
	Telegram   TelegramConfig

	// Surfaces
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
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

type ExtractionConfig struct {
	// Timezone anchors relative dates when a request carries no timestamps.
	Timezone         string
	MinConfidence    float64
	MaxInputChars    int
	ParallelMatchers bool
	MaxResults       int
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	MinConfidence float64
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
	MaxClients     int
	TTL            time.Duration
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Extraction
	cfg.Extraction.Timezone = viper.GetString("extraction.timezone")
	cfg.Extraction.MinConfidence = viper.GetFloat64("extraction.min_confidence")
	cfg.Extraction.MaxInputChars = viper.GetInt("extraction.max_input_chars")
	cfg.Extraction.ParallelMatchers = viper.GetBool("extraction.parallel_matchers")
	cfg.Extraction.MaxResults = viper.GetInt("extraction.max_results")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.MinConfidence = viper.GetFloat64("telegram.min_confidence")

	// Surfaces
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")
	cfg.RateLimit.TTL = viper.GetDuration("rate_limit.ttl")

	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Metrics.Path = viper.GetString("metrics.path")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("extraction.timezone", "UTC")
	viper.SetDefault("extraction.min_confidence", 0.5)
	viper.SetDefault("extraction.max_input_chars", 10000)
	viper.SetDefault("extraction.parallel_matchers", false)
	viper.SetDefault("extraction.max_results", 0)

	viper.SetDefault("telegram.min_confidence", 0.6)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("rate_limit.burst", 20)
	viper.SetDefault("rate_limit.max_clients", 1000)
	viper.SetDefault("rate_limit.ttl", "5m")

	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.path", "/metrics")
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", c.HTTPServer.Port)
	}
	if _, err := time.LoadLocation(c.Extraction.Timezone); err != nil {
		return fmt.Errorf("extraction.timezone: %w", err)
	}
	if err := validateThreshold("extraction.min_confidence", c.Extraction.MinConfidence); err != nil {
		return err
	}
	if err := validateThreshold("telegram.min_confidence", c.Telegram.MinConfidence); err != nil {
		return err
	}
	if c.Extraction.MaxInputChars < 0 {
		return fmt.Errorf("extraction.max_input_chars must not be negative")
	}
	if c.Extraction.MaxResults < 0 {
		return fmt.Errorf("extraction.max_results must not be negative")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMin <= 0 {
			return fmt.Errorf("rate_limit.requests_per_min must be positive")
		}
		if c.RateLimit.Burst <= 0 || c.RateLimit.MaxClients <= 0 || c.RateLimit.TTL <= 0 {
			return fmt.Errorf("rate_limit.burst, max_clients and ttl must be positive")
		}
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path %q must start with /", c.Metrics.Path)
	}
	return nil
}

func validateThreshold(key string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s %.2f must be within [0, 1]", key, v)
	}
	return nil
}
