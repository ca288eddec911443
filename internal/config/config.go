package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries every external setting the service reads. DatabaseURL
// and the S3 credentials are the two required settings: when either is
// absent the service still starts, but runs in a degraded "not
// configured" mode where every network-backed operation is refused with
// a stable message instead of crashing.
type Config struct {
	Addr string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	ImageBucket string
	AudioBucket string
}

// Load reads the configuration from environment variables. Call
// godotenv.Load first if a .env file should be honored.
func Load() *Config {
	return &Config{
		Addr:          ":" + getEnvOrDefault("PORT", "9091"),
		DatabaseURL:   databaseURL(),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", ""),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvIntOrDefault("REDIS_DB", 0),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		S3Region:      getEnvOrDefault("S3_REGION", "eu-central-1"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		ImageBucket:   getEnvOrDefault("S3_IMAGE_BUCKET", "bilder"),
		AudioBucket:   getEnvOrDefault("S3_AUDIO_BUCKET", "audio"),
	}
}

// Configured reports whether both required backends are set up. The
// service stays up either way; handlers surface the degraded state.
func (c *Config) Configured() bool {
	return c.DatabaseURL != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// databaseURL prefers an explicit DATABASE_URL and otherwise assembles
// one from POSTGRES_* parts. POSTGRES_HOST is the trigger: without it
// (and without DATABASE_URL) the database counts as unconfigured.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		return ""
	}
	port := getEnvOrDefault("POSTGRES_PORT", "5432")
	user := getEnvOrDefault("POSTGRES_USER", "fabianswelt")
	password := os.Getenv("POSTGRES_PASSWORD")
	dbname := getEnvOrDefault("POSTGRES_DB", "fabianswelt")
	sslmode := getEnvOrDefault("POSTGRES_SSLMODE", "disable")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, dbname, sslmode)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
