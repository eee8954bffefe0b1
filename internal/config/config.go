package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingJWTSecret is returned when JWT_SECRET is not configured.
// The server must refuse to start without a signing secret.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	Env         string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	CORSOrigins []string
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is read first when present. The JWT signing secret is
// mandatory: a missing secret is a deployment defect, not a runtime condition.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "3001"),
		Env:         getEnv("APP_ENV", "development"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/powerfed?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   secret,
		CORSOrigins: splitOrigins(getEnv("CORS_ORIGIN", "http://localhost:3000, http://104.198.235.137:3000")),
		LLMEndpoint: os.Getenv("LLM_ENDPOINT"),
		LLMAPIKey:   os.Getenv("LLM_API_KEY"),
		LLMModel:    getEnv("LLM_MODEL", "gpt-4o"),
	}, nil
}

// IsProduction reports whether the server runs with production hardening
// (secure cookies, non-leaking error messages).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
