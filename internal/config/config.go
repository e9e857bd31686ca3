package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all externally supplied settings for the server.
type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	AllowedOrigin string
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one is present. Store settings are validated here so a
// misconfigured process fails at startup, not on the first request.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		DBName:        getEnv("DB_NAME", "insertDB"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "https://artfusion-f9745.web.app"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
