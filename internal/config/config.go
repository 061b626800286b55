package config

// Config holds all application configuration.
// It is loaded exactly once at startup and passed explicitly to every
// component that needs it; nothing reads settings through ambient globals.
type Config struct {
	Env      string         `mapstructure:"env"      validate:"required"`
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
	// Pool sizing stays with the defaults configured in cmd/server.
}
