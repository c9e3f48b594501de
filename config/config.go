package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration. Everything is supplied through
// the environment; a .env file is loaded when present for local runs.
type Config struct {
	Port      string
	MongoURL  string
	MongoDB   string
	JWTSecret string
	TokenTTL  time.Duration
	Env       string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:      getEnv("PORT", "8000"),
		MongoURL:  getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGODB_DB", "ecommerce"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  getDuration("TOKEN_TTL", 365*24*time.Hour),
		Env:       getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
