package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string

	GraphQLEndpoint string
	GraphQLTimeout  time.Duration

	FallbackImageURL string

	LogLevel       string
	LogDevelopment bool

	CacheControl string
	MetricsPath  string

	ShutdownTimeout time.Duration
}

// Load reads .env.local and .env (when present) before the process
// environment. Variables already set in the environment win.
func Load() (Config, error) {
	if err := loadEnvFiles(); err != nil {
		return Config{}, err
	}

	return FromEnv(), nil
}

func FromEnv() Config {
	return Config{
		ListenAddr:       getEnv("PREVIEW_LISTEN_ADDR", ":8080"),
		GraphQLEndpoint:  getEnv("PREVIEW_GRAPHQL_ENDPOINT", "http://localhost:8080/graphql"),
		GraphQLTimeout:   getEnvDuration("PREVIEW_GRAPHQL_TIMEOUT", 0),
		FallbackImageURL: strings.TrimSpace(os.Getenv("PREVIEW_FALLBACK_IMAGE_URL")),
		LogLevel:         getEnv("PREVIEW_LOG_LEVEL", "info"),
		LogDevelopment:   getEnvBool("PREVIEW_LOG_DEVELOPMENT", false),
		CacheControl:     getEnv("PREVIEW_CACHE_CONTROL", "no-store"),
		MetricsPath:      getEnvAllowEmpty("PREVIEW_METRICS_PATH", "/metrics"),
		ShutdownTimeout:  getEnvDuration("PREVIEW_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadEnvFiles() error {
	if envFile := strings.TrimSpace(os.Getenv("ENV_FILE")); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}

	return nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	return value
}

func getEnvAllowEmpty(key string, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	return strings.TrimSpace(value)
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}

	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed < 0 {
		return fallback
	}

	return parsed
}
