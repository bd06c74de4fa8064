package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all configuration for the Florett backend.
type Config struct {
	Port   string
	AppEnv string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string

	JWTSecret         []byte
	AdminPasswordHash string

	// RedisURL empty means the in-memory cart store is used.
	RedisURL string
	CartTTL  time.Duration

	CORSOrigins []string
	SeedData    bool
}

// LoadConfig reads configuration from the environment, with a .env file as
// fallback for local development.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:   getEnv("PORT", "8081"),
		AppEnv: getEnv("APP_ENV", "development"),

		PostgresUser:     getEnv("POSTGRES_USER", "florett"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "florett"),
		PostgresDB:       getEnv("POSTGRES_DB", "florett"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone: getEnv("POSTGRES_TIMEZONE", "Europe/Moscow"),

		JWTSecret:         []byte(getEnv("JWT_SECRET", "florett-secret-key-change-in-production")),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		RedisURL: os.Getenv("REDIS_URL"),
		CartTTL:  time.Duration(getEnvInt("CART_TTL_HOURS", 720)) * time.Hour,

		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174"), ","),
		SeedData:    getEnv("SEED_DATA", "false") == "true",
	}

	// Development fallback: hash the default admin password at startup so the
	// service stays usable without ADMIN_PASSWORD_HASH being set.
	if cfg.AdminPasswordHash == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte("florett2024"), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		cfg.AdminPasswordHash = string(hash)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
