package initializers

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL string
	Port        string
	GinMode     string
	LogLevel    string
}

// LoadEnv reads a .env file into the process environment when one exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

func LoadConfig() Config {
	return Config{
		DatabaseURL: firstEnv("DATABASE_URL", "DB_URL"),
		Port:        envOr("PORT", "5000"),
		GinMode:     os.Getenv("GIN_MODE"),
		LogLevel:    envOr("LOG_LEVEL", "info"),
	}
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
