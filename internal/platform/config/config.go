package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string

	// Remote campus API.
	CampusAPIBaseURL string
	CampusAPITimeout time.Duration
	QueryRetryMax    int // retries for idempotent reads; never applied to 401s

	// Portal session cookie.
	SessionJWTKey    []byte
	SessionTTL       time.Duration
	SessionKeyPrefix string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CacheTTL time.Duration

	// Third-party hosted image uploads.
	CloudinaryCloudName    string
	CloudinaryUploadPreset string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:          getEnv("API_PORT", "8080"),
		CampusAPIBaseURL: getEnv("CAMPUS_API_BASE_URL", "http://localhost:5000/api/v1"),
		CampusAPITimeout: time.Duration(getEnvAsInt("CAMPUS_API_TIMEOUT_SECONDS", 15)) * time.Second,
		QueryRetryMax:    getEnvAsInt("QUERY_RETRY_MAX", 2),

		SessionJWTKey:    []byte(getEnv("SESSION_JWT_SECRET", "defaultsecret")),
		SessionTTL:       time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 72)) * time.Hour,
		SessionKeyPrefix: getEnv("SESSION_KEY_PREFIX", "campus-auth"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		CacheTTL: time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 60)) * time.Second,

		CloudinaryCloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryUploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
