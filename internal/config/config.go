package config

import (
	"fmt"
	"os"
)

// Config carries everything the process needs at startup. It is built once
// in main and passed down explicitly; nothing reads the environment after
// Load returns.
type Config struct {
	DB     DBConfig
	Server ServerConfig
	Auth   AuthConfig
}

// DBConfig holds database connection settings
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// AuthConfig holds the token signing settings. Rotating the secret
// invalidates every outstanding token.
type AuthConfig struct {
	JWTSecret string
}

// Load builds a Config from environment variables with development defaults.
// The JWT secret has no default: refusing to start beats signing tokens with
// a well-known key.
func Load() (*Config, error) {
	cfg := &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "folio_user"),
			Password: getEnv("DB_PASSWORD", "folio_password"),
			Name:     getEnv("DB_NAME", "folio"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// DSN renders the postgres connection string
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
