// Package config loads storefront settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	HTTPPort           string        `mapstructure:"HTTP_PORT"`
	GRPCPort           string        `mapstructure:"GRPC_PORT"`
	RequestTimeout     time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	MaxRequestBodySize int64         `mapstructure:"MAX_REQUEST_BODY_SIZE"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogPretty bool   `mapstructure:"LOG_PRETTY"`

	SessionStore  string        `mapstructure:"SESSION_STORE"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`

	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	OrdersTopic  string `mapstructure:"ORDERS_TOPIC"`

	GeminiAPIKey     string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel      string        `mapstructure:"GEMINI_MODEL"`
	AssistantTimeout time.Duration `mapstructure:"ASSISTANT_TIMEOUT"`
	AssistantRPS     float64       `mapstructure:"ASSISTANT_RPS"`
	AssistantBurst   int           `mapstructure:"ASSISTANT_BURST"`
}

var defaults = map[string]any{
	"HTTP_PORT":             "8080",
	"GRPC_PORT":             "50060",
	"REQUEST_TIMEOUT":       30 * time.Second,
	"SHUTDOWN_TIMEOUT":      10 * time.Second,
	"MAX_REQUEST_BODY_SIZE": int64(1 << 20), // 1MB
	"LOG_LEVEL":             "info",
	"LOG_PRETTY":            false,
	"SESSION_STORE":         SessionStoreMemory,
	"SESSION_TTL":           30 * time.Minute,
	"REDIS_ADDR":            "localhost:6379",
	"REDIS_PASSWORD":        "",
	"KAFKA_BROKERS":         "",
	"ORDERS_TOPIC":          "storefront-orders",
	"GEMINI_API_KEY":        "",
	"GEMINI_MODEL":          "gemini-3-flash-preview",
	"ASSISTANT_TIMEOUT":     20 * time.Second,
	"ASSISTANT_RPS":         1.0,
	"ASSISTANT_BURST":       5,
}

// Load reads configuration from the environment, falling back to defaults.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.SessionStore {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("%w: REDIS_ADDR is required for the redis session store", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown SESSION_STORE %q", ErrInvalidConfig, c.SessionStore)
	}

	if c.AssistantRPS <= 0 || c.AssistantBurst <= 0 {
		return fmt.Errorf("%w: assistant rate limit must be positive", ErrInvalidConfig)
	}
	return nil
}

// Brokers splits KAFKA_BROKERS on commas. Empty means events go to the log.
func (c *Config) Brokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
