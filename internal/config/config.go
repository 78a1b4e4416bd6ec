package config

// Driver names accepted by DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	ReadTimeoutSeconds  int `mapstructure:"read_timeout_seconds"  validate:"gte=0"`
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" validate:"gte=0"`
	IdleTimeoutSeconds  int `mapstructure:"idle_timeout_seconds"  validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the storage backend: "postgres" or "memory".
	Driver string `mapstructure:"driver" validate:"required,oneof=postgres memory"`
	// URL is the PostgreSQL connection string. Required for the postgres driver.
	URL string `mapstructure:"url" validate:"required_if=Driver postgres"`

	MaxOpenConns int `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int `mapstructure:"max_idle_conns" validate:"gte=0"`

	// AutoMigrate applies pending schema migrations when the server starts.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// CORSConfig controls which origins may call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
