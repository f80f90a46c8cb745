// Package config manages configuration for the ecs-state-check Lambda and CLI.
// It uses Viper for unified configuration management from files and environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	awsconfig "github.com/ecs-state-check/ecs-state-check/internal/config/aws"
	"github.com/ecs-state-check/ecs-state-check/internal/constants"
	appErrors "github.com/ecs-state-check/ecs-state-check/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the configuration shared by the Lambda handler and the CLI.
type Config struct {
	InitTimeout time.Duration `mapstructure:"init_timeout" validate:"gte=0"`
	LogLevel    string        `mapstructure:"log_level"`

	// Notification sink
	WebhookURL          string        `mapstructure:"webhook_url" validate:"omitempty,url"`
	WebhookURLParameter string        `mapstructure:"webhook_url_parameter"`
	WebhookTimeout      time.Duration `mapstructure:"webhook_timeout" validate:"gte=0"`

	// Message rendering
	AlertColor    string `mapstructure:"alert_color" validate:"omitempty,hexcolor"`
	FooterIconURL string `mapstructure:"footer_icon_url" validate:"omitempty,url"`

	AWS *awsconfig.Config `mapstructure:"aws" validate:"required"`
}

var validate = validator.New()

// Load loads the configuration from environment variables.
// Variables use the ECS_STATE_CHECK_ prefix, e.g. ECS_STATE_CHECK_WEBHOOK_URL.
func Load() (*Config, error) {
	return load("")
}

// LoadFile loads the configuration from an optional YAML file.
// Environment variables take precedence over config file values.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

// LoadEventProcessor loads configuration for the Lambda event processor.
// A webhook destination is mandatory there.
func LoadEventProcessor() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if err = cfg.ValidateWebhook(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoadEventProcessor loads event processor configuration and exits on error.
// Suitable for application startup where configuration errors should be fatal.
func MustLoadEventProcessor() *Config {
	cfg, err := LoadEventProcessor()
	if err != nil {
		slog.Error("failed to load event processor configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// ValidateWebhook checks that a webhook destination is configured, either as a URL
// or as the name of the SSM parameter that holds it.
func (c *Config) ValidateWebhook() error {
	if strings.TrimSpace(c.WebhookURL) == "" && strings.TrimSpace(c.WebhookURLParameter) == "" {
		return appErrors.ErrConfig("webhook_url or webhook_url_parameter must be set", nil)
	}
	return nil
}

// GetLogLevel returns the slog.Level from the string configuration.
// Defaults to INFO if the level string is invalid.
func (c *Config) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Helper functions

func load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(constants.ConfigFileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, appErrors.ErrConfig("config validation failed", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("init_timeout", constants.DefaultInitTimeout.String())
	v.SetDefault("log_level", constants.DefaultLogLevel)
	v.SetDefault("webhook_timeout", constants.DefaultWebhookTimeout.String())
	v.SetDefault("alert_color", constants.DefaultAlertColor)
	awsconfig.BindEnvVars(v)
}

func bindEnvVars(v *viper.Viper) {
	envVars := []string{
		"ALERT_COLOR",
		"FOOTER_ICON_URL",
		"INIT_TIMEOUT",
		"LOG_LEVEL",
		"WEBHOOK_TIMEOUT",
		"WEBHOOK_URL",
		"WEBHOOK_URL_PARAMETER",
	}

	for _, envVar := range envVars {
		_ = v.BindEnv(strings.ToLower(envVar), constants.EnvPrefix+"_"+envVar)
	}
}
