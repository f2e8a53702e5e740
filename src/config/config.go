package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Debug    bool
	LogLevel string

	DatabasePath string
	SchemaPath   string // empty means the embedded schema script
	SeedDataPath string // empty means the embedded sample data script

	AllowedOrigins    []string
	RateLimitInterval time.Duration
	RateLimitBurst    int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration // 0 disables the timeout
	IdleTimeout  time.Duration
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	Cfg = &AppConfig{
		Port:     getEnv("PORT", "5000"),
		Debug:    getEnvAsBool("DEBUG", false),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabasePath: getEnv("DATABASE_PATH", "database/aktienportfolio.db"),
		SchemaPath:   getEnv("SCHEMA_PATH", ""),
		SeedDataPath: getEnv("SEED_DATA_PATH", ""),

		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		RateLimitInterval: getEnvAsDuration("RATE_LIMIT_INTERVAL", 100*time.Millisecond),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 30),

		ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 0),
		IdleTimeout:  getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
	}

	if Cfg.Debug {
		Cfg.LogLevel = "debug"
	}
	if Cfg.RateLimitBurst < 1 {
		log.Printf("WARNING: RATE_LIMIT_BURST must be positive, got %d. Using default 30.", Cfg.RateLimitBurst)
		Cfg.RateLimitBurst = 30
	}

	log.Printf("Configuration loaded: Port=%s, Debug=%t, LogLevel=%s, DBPath=%s",
		Cfg.Port, Cfg.Debug, Cfg.LogLevel, Cfg.DatabasePath)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Integer value for %s not set or empty, using default: %d", key, fallback)
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid boolean value for %s ('%s'), using default: %t", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
