package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort   string
	AppEnv    string
	JWTSecret string
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		AppEnv:    getenv("APP_ENV", "development"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	return cfg
}

// Validate reports configuration the server cannot run with. A missing JWT
// secret makes every token operation fail, which is survivable during local
// development but not in production.
func (c *Config) Validate() error {
	if c.AppEnv == "production" && c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
