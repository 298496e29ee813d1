package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Application-level settings (public base URL etc.)
	App AppConfig

	// Object storage configuration
	Storage StorageConfig

	// Owner session token configuration
	Session SessionConfig

	// Upload/compression policy
	Upload UploadConfig

	// CORS configuration
	CORS CORSConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int32
	MinConns     int32
	MaxLifetime  time.Duration
	ConnTimeout  time.Duration
	QueryTimeout time.Duration
}

// AppConfig holds application-level settings
type AppConfig struct {
	// BaseURL is the public address embedded in share messages,
	// e.g. https://suruwe.com
	BaseURL string

	// MaxProfilePhotos caps the photo grid
	MaxProfilePhotos int

	// WizardSessionTTL is how long an idle order wizard survives
	WizardSessionTTL time.Duration

	// SurfaceUploadFailures switches the wizard submit from the default
	// fail-soft attachment policy to reporting per-file upload errors
	SurfaceUploadFailures bool
}

// StorageConfig holds S3 object storage configuration
type StorageConfig struct {
	Bucket string
	Region string
	// PublicBaseURL is prefixed to object keys to form public URLs,
	// e.g. https://photos.suruwe.com
	PublicBaseURL string
}

// SessionConfig holds owner-session token configuration
type SessionConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// UploadConfig holds image compression policy
type UploadConfig struct {
	// MaxBytes is the target upper bound for a compressed image (0.5MB)
	MaxBytes int
	// MaxEdge is the longest-edge pixel cap (1200px)
	MaxEdge int
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_NAME", "postgres"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxConns:     getInt32Env("DB_MAX_CONNS", 5),
			MinConns:     getInt32Env("DB_MIN_CONNS", 0),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", time.Hour),
			ConnTimeout:  getDurationEnv("DB_CONN_TIMEOUT", 10*time.Second),
			QueryTimeout: getDurationEnv("DB_QUERY_TIMEOUT", 30*time.Second),
		},
		App: AppConfig{
			BaseURL:               strings.TrimRight(getEnv("APP_BASE_URL", "https://suruwe.com"), "/"),
			MaxProfilePhotos:      getIntEnv("APP_MAX_PROFILE_PHOTOS", 6),
			WizardSessionTTL:      getDurationEnv("APP_WIZARD_SESSION_TTL", 2*time.Hour),
			SurfaceUploadFailures: getBoolEnv("APP_SURFACE_UPLOAD_FAILURES", false),
		},
		Storage: StorageConfig{
			Bucket:        getEnv("S3_BUCKET", "photos"),
			Region:        getEnv("AWS_REGION", "eu-west-1"),
			PublicBaseURL: strings.TrimRight(getEnv("S3_PUBLIC_BASE_URL", ""), "/"),
		},
		Session: SessionConfig{
			Secret:   getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
			TokenTTL: getDurationEnv("SESSION_TOKEN_TTL", 365*24*time.Hour),
		},
		Upload: UploadConfig{
			MaxBytes: getIntEnv("UPLOAD_MAX_BYTES", 512*1024),
			MaxEdge:  getIntEnv("UPLOAD_MAX_EDGE", 1200),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Storage.PublicBaseURL == "" {
		log.Println("Warning: S3_PUBLIC_BASE_URL not configured. Uploaded image URLs will use the bucket endpoint.")
	}
	if c.Session.Secret == "your-secret-key-change-in-production" {
		log.Println("Warning: SESSION_SECRET is using the default value.")
	}
	return nil
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		int(c.Database.ConnTimeout.Seconds()),
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getInt32Env(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intValue)
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := []string{}
		for _, part := range strings.Split(value, ",") {
			if p := strings.TrimSpace(part); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
