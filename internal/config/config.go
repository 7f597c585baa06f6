package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

type Config struct {
	AppPort  int    `mapstructure:"APP_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogFile  string `mapstructure:"LOG_FILE"`

	StoreDriver  string `mapstructure:"STORE_DRIVER"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	BoltPath     string `mapstructure:"BOLT_PATH"`
	HistoryLimit int    `mapstructure:"HISTORY_LIMIT"`

	TunnelURL          string        `mapstructure:"TUNNEL_URL"`
	TunnelChatPath     string        `mapstructure:"TUNNEL_CHAT_PATH"`
	TunnelFallbackPath string        `mapstructure:"TUNNEL_FALLBACK_PATH"`
	TunnelOrigin       string        `mapstructure:"TUNNEL_ORIGIN"`
	TunnelTimeout      time.Duration `mapstructure:"TUNNEL_TIMEOUT"`

	StreamFlushInterval time.Duration `mapstructure:"STREAM_FLUSH_INTERVAL"`
	SyntheticFallback   bool          `mapstructure:"SYNTHETIC_FALLBACK"`
	SyntheticWordDelay  time.Duration `mapstructure:"SYNTHETIC_WORD_DELAY"`
	WelcomeMessage      string        `mapstructure:"WELCOME_MESSAGE"`

	TelemetryEnabled bool   `mapstructure:"TELEMETRY_ENABLED"`
	TelemetryDir     string `mapstructure:"TELEMETRY_DIR"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("STORE_DRIVER", DriverSQLite)
	viper.SetDefault("DATABASE_PATH", "/data/guestchat.db")
	viper.SetDefault("BOLT_PATH", "/data/guestchat.bolt")
	viper.SetDefault("HISTORY_LIMIT", 10)
	viper.SetDefault("TUNNEL_URL", "http://localhost:5000")
	viper.SetDefault("TUNNEL_CHAT_PATH", "/chat")
	viper.SetDefault("TUNNEL_FALLBACK_PATH", "/api/chat")
	viper.SetDefault("TUNNEL_ORIGIN", "")
	viper.SetDefault("TUNNEL_TIMEOUT", "60s")
	viper.SetDefault("STREAM_FLUSH_INTERVAL", "50ms")
	viper.SetDefault("SYNTHETIC_FALLBACK", true)
	viper.SetDefault("SYNTHETIC_WORD_DELAY", "40ms")
	viper.SetDefault("WELCOME_MESSAGE", "")
	viper.SetDefault("TELEMETRY_ENABLED", false)
	viper.SetDefault("TELEMETRY_DIR", "logs")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	if c.StoreDriver != DriverSQLite && c.StoreDriver != DriverBolt {
		return fmt.Errorf("invalid STORE_DRIVER %q: want %q or %q", c.StoreDriver, DriverSQLite, DriverBolt)
	}
	if c.TunnelURL == "" {
		return fmt.Errorf("TUNNEL_URL must not be empty")
	}
	c.TunnelURL = strings.TrimRight(c.TunnelURL, "/")
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	return nil
}
