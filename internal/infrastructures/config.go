package infrastructures

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	APP_PORT              string
	DATABASE_URL          string
	AUTO_MIGRATE          bool
	REDIS_ADDRESS         string
	REDIS_PASSWORD        string
	RATE_LIMIT_PER_MINUTE int
	LOG_LEVEL             string
	SEED_ADMIN_USERNAME   string
	SEED_ADMIN_PASSWORD   string
	SEED_ADMIN_NAME       string
}

var Config *AppConfig

func LoadConfig() *AppConfig {
	godotenv.Load()

	Config = &AppConfig{
		APP_PORT:              getEnv("APP_PORT", "8080"),
		DATABASE_URL:          os.Getenv("DATABASE_URL"),
		AUTO_MIGRATE:          getEnvBool("AUTO_MIGRATE", true),
		REDIS_ADDRESS:         os.Getenv("REDIS_ADDRESS"),
		REDIS_PASSWORD:        os.Getenv("REDIS_PASSWORD"),
		RATE_LIMIT_PER_MINUTE: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		LOG_LEVEL:             getEnv("LOG_LEVEL", "info"),
		SEED_ADMIN_USERNAME:   getEnv("SEED_ADMIN_USERNAME", "admin"),
		SEED_ADMIN_PASSWORD:   getEnv("SEED_ADMIN_PASSWORD", "admin123"),
		SEED_ADMIN_NAME:       getEnv("SEED_ADMIN_NAME", "Admin User"),
	}

	return Config
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
