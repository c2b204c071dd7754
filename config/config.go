package config

import (
	"log/slog"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	DefaultLogDir = "logs/"
	DefaultIndex  = "UPPER_FUNNEL_FBCA_CONSUMER"
)

// Environment variables read by Load.
const (
	EnvVarEnvironment = "NODE_ENV"
	EnvVarLevel       = "LOG_LEVEL"
	EnvVarDir         = "LOG_DIR"
	EnvVarIndex       = "LOG_INDEX"
	EnvVarHostname    = "LOG_HOSTNAME"
)

type Config struct {
	Environment string `mapstructure:"environment" json:"environment"`
	Level       string `mapstructure:"level" json:"level"`
	Dir         string `mapstructure:"dir" json:"dir"`
	Index       string `mapstructure:"index" json:"index"`
	Hostname    string `mapstructure:"hostname" json:"hostname"`
}

// IsDevelopment reports whether the console sink should emit debug records.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", EnvDevelopment)
	v.SetDefault("level", LogLevelInfo)
	v.SetDefault("dir", DefaultLogDir)
	v.SetDefault("index", DefaultIndex)
	v.SetDefault("hostname", defaultHostname())

	v.SetConfigName("logging")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	for key, env := range map[string]string{
		"environment": EnvVarEnvironment,
		"level":       EnvVarLevel,
		"dir":         EnvVarDir,
		"index":       EnvVarIndex,
		"hostname":    EnvVarHostname,
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Debug("config file not found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", slog.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment, validation.Required),
		validation.Field(&c.Level, validation.Required),
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.Index, validation.Required),
		validation.Field(&c.Hostname,
			validation.Required,
			validation.By(validateHostname),
		),
	)
}

func validateHostname(value interface{}) error {
	host, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	for _, r := range host {
		if r == '/' || r == os.PathSeparator {
			return validation.NewError("validation_invalid_hostname", "must not contain path separators")
		}
	}

	return nil
}

func defaultHostname() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "localhost"
	}
	return host
}
