package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	NUI      NUIConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	Port        string `envconfig:"APP_PORT" default:"8080"`
}

// DatabaseConfig holds the connection settings of the remote catalog
// backend (a Supabase Postgres instance). Host and Password double as
// the availability probe: when either is empty the backend is treated
// as unconfigured for the whole session.
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"fivemshop"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"require"`
}

// NUIConfig holds the host-channel settings. CallbackURL is the NUI
// callback endpoint of the embedding resource; empty means the service
// runs standalone and host messages are only logged.
type NUIConfig struct {
	CallbackURL string `envconfig:"NUI_CALLBACK_URL"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist in production
		fmt.Println("No .env file found")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}

// BackendConfigured reports whether the remote catalog backend is
// reachable. Evaluated from configuration presence only; the decision
// is made once at startup and never revisited within a session, so a
// misconfigured backend degrades the whole session to fallback mode
// instead of flapping.
func (c *DatabaseConfig) BackendConfigured() bool {
	return c.Host != "" && c.Password != ""
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// IsDevelopment reports whether the app runs in development mode.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}
