package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr   string
	LogDir string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	JWTSecret  string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOSecure    bool

	// PhrasebookPath overrides the embedded keyword/response tables.
	PhrasebookPath   string
	ReplyDelay       time.Duration
	AssistantURL     string
	AssistantTimeout time.Duration
}

// DatabaseEnabled reports whether enough DB settings are present to connect.
func (c Config) DatabaseEnabled() bool {
	return c.DBHost != "" && c.DBName != ""
}

func (c Config) MinIOEnabled() bool {
	return c.MinIOEndpoint != "" && c.MinIOBucket != ""
}

func LoadConfig() Config {
	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	return Config{
		Addr:             addr(getEnv("PORT", "8000")),
		LogDir:           getEnv("LOG_DIR", "./logs"),
		DBUser:           getEnv("DB_USER", ""),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBHost:           getEnv("DB_HOST", ""),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		MinIOEndpoint:    getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:   getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:   getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:      getEnv("MINIO_BUCKET", "azoul-media"),
		MinIOSecure:      getBool("MINIO_SECURE", false),
		PhrasebookPath:   getEnv("PHRASEBOOK_PATH", ""),
		ReplyDelay:       getDuration("REPLY_DELAY", time.Second),
		AssistantURL:     getEnv("ASSISTANT_URL", "http://localhost:8000"),
		AssistantTimeout: getDuration("ASSISTANT_TIMEOUT", 5*time.Second),
	}
}

// addr accepts "8000", ":8000" or "host:8000".
func addr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

// getDuration reads Go durations ("750ms") or plain milliseconds ("750").
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
