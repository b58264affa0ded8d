package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. PESEL_GENERATOR_WORKERS.
const EnvPrefix = "PESEL"

// Load configuration from environment variables and optionally a config.yaml
// in the working directory or $HOME/.pesel.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.pesel")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return decode(v)
}

// LoadFile behaves like Load but reads the given YAML file, which must exist.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	// Every key needs a default so AutomaticEnv can see it during Unmarshal
	v.SetDefault("log.level", "info")
	v.SetDefault("generator.failure_budget", 80)
	v.SetDefault("generator.enumeration_limit", 2_000_000)
	v.SetDefault("generator.workers", 1)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.strategy", "auto")
	v.SetDefault("request.sex", "")
	v.SetDefault("request.date_from", "")
	v.SetDefault("request.date_to", "")
	v.SetDefault("request.count", 1)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Generator.Strategy = strings.ToLower(cfg.Generator.Strategy)

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
