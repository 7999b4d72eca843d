package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API *APIConfig `yaml:"api" mapstructure:"api"`
}

// APIConfig selects the backend address and the request bounds. The
// environment decides the base URL once at startup; nothing re-reads it.
type APIConfig struct {
	Environment          string `yaml:"environment" mapstructure:"environment"`
	DevelopmentURL       string `yaml:"development_url" mapstructure:"development_url"`
	ProductionURL        string `yaml:"production_url" mapstructure:"production_url"`
	TimeoutSeconds       int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	HealthTimeoutSeconds int    `yaml:"health_timeout_seconds" mapstructure:"health_timeout_seconds"`
}

func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)

	viper.SetEnvPrefix("LOCA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}
	if conf.API == nil {
		return nil, fmt.Errorf("config %v has no api section", configPath)
	}

	return conf, nil
}

// BaseURL resolves the backend address for the configured environment.
// Unset defaults to development so a fresh checkout talks to loopback.
func (c *APIConfig) BaseURL() (string, error) {
	switch c.Environment {
	case "development", "":
		return c.DevelopmentURL, nil
	case "production":
		return c.ProductionURL, nil
	default:
		return "", fmt.Errorf("unknown environment %q", c.Environment)
	}
}

func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *APIConfig) HealthTimeout() time.Duration {
	return time.Duration(c.HealthTimeoutSeconds) * time.Second
}
