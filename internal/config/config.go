package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Store     StoreConfig     `mapstructure:"store"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Phonebook PhonebookConfig `mapstructure:"phonebook"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// StoreConfig selects the contact store backend.
type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=memory postgres"`
	// Seed loads the sample contacts into an empty store on startup.
	Seed bool `mapstructure:"seed"`
	// AutoMigrate applies pending migrations on startup (postgres only).
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DatabaseConfig contains all database-related configuration settings.
// URL is only required when Store.Driver is postgres.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// PhonebookConfig holds the domain policies that differ between deployments.
type PhonebookConfig struct {
	// UniqueNames rejects a new contact whose name is already in the phonebook.
	UniqueNames bool `mapstructure:"unique_names"`
}
