package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the environment.
const EnvPrefix = "PHONEBOOK"

// DefaultPort is used when neither PHONEBOOK_SERVER_PORT nor PORT is set.
const DefaultPort = 3001

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. A .env file, when present, is
// loaded into the environment first without overriding variables that are
// already set. Environment variables take precedence over the config file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return LoadFrom(viper.New())
}

// LoadFrom is Load without the .env step, using the given viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("store.driver", DriverMemory)
	v.SetDefault("store.seed", true)
	v.SetDefault("store.auto_migrate", true)
	v.SetDefault("database.url", "")
	v.SetDefault("phonebook.unique_names", false)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Conventional unprefixed names used by hosting platforms.
	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port: %w", err)
	}
	if err := v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database url: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct rules and the cross-field rules validator tags
// cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if c.Store.Driver == DriverPostgres && c.Database.URL == "" {
		return fmt.Errorf("config validation failed: database.url is required for the %s driver", DriverPostgres)
	}
	return nil
}
