package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultSourceURL = "https://www8.cao.go.jp/chosei/shukujitsu/syukujitsu.csv"
	defaultOutputDir = "./dist/api/v1"
	defaultAddr      = ":8080"
)

// Config represents application configuration
type Config struct {
	Source SourceConfig `mapstructure:"source"`
	Output OutputConfig `mapstructure:"output"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// SourceConfig describes where the holiday CSV comes from
type SourceConfig struct {
	URL          string `mapstructure:"url"`
	FallbackFile string `mapstructure:"fallback_file"` // Used when the download fails
	File         string `mapstructure:"file"`          // Skip the download entirely
	Timeout      string `mapstructure:"timeout"`
	Retries      int    `mapstructure:"retries"`
}

// OutputConfig represents snapshot generation settings
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// ServerConfig represents HTTP API settings
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig represents logging settings
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing file is not an error: defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("source.url", defaultSourceURL)
	v.SetDefault("source.file", "")
	v.SetDefault("source.fallback_file", "")
	v.SetDefault("source.timeout", "10s")
	v.SetDefault("source.retries", 3)
	v.SetDefault("output.dir", defaultOutputDir)
	v.SetDefault("server.addr", defaultAddr)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.jp-holidays")
		v.AddConfigPath("/etc/jp-holidays")
	}

	// Read environment variables, e.g. JP_HOLIDAYS_SOURCE_URL.
	// Only keys with a default are visible to Unmarshal.
	v.SetEnvPrefix("jp_holidays")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Source.URL == "" && c.Source.File == "" {
		return fmt.Errorf("source.url or source.file is required")
	}
	if c.Source.Retries < 0 {
		return fmt.Errorf("source.retries must not be negative")
	}
	if c.Source.Timeout != "" {
		if _, err := time.ParseDuration(c.Source.Timeout); err != nil {
			return fmt.Errorf("source.timeout is not a duration: %w", err)
		}
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}

	return nil
}

// GetTimeout returns the download timeout
func (c *SourceConfig) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}
