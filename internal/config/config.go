// Package config loads fhirtool settings from flags, FHIRTOOL_* environment
// variables and an optional config file.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. FHIRTOOL_LOG_LEVEL.
const EnvPrefix = "FHIRTOOL"

type Config struct {
	LogLevel  string `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=console json"`
	// Pretty indents JSON output.
	Pretty bool `mapstructure:"pretty"`
	// MaxBodySize limits the size of a single input document in bytes.
	MaxBodySize int64 `mapstructure:"max_body_size" validate:"gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New returns a viper instance with the defaults and environment binding
// applied. Flags may be bound to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("pretty", false)
	v.SetDefault("max_body_size", 64<<20)
	return v
}

// Load reads file, if set, and decodes and validates the result.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", file)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Level returns the zerolog level for LogLevel.
func (c *Config) Level() zerolog.Level {
	if c.LogLevel == "disabled" {
		return zerolog.Disabled
	}
	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return l
}
