// Package config loads dashboard configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the dashboard.
type Config struct {
	API      APIConfig
	SSH      SSHConfig
	Download DownloadConfig
	LogLevel string
}

// APIConfig holds settings for the billing backend connection.
type APIConfig struct {
	BaseURL             string
	RequestTimeout      time.Duration
	TenantStatusTimeout time.Duration
}

// SSHConfig holds settings for the SSH-served dashboard mode.
type SSHConfig struct {
	Host    string
	Port    string
	KeyPath string
}

// DownloadConfig holds settings for receipt PDF downloads.
type DownloadConfig struct {
	Dir string
}

// Load loads configuration from environment variables, reading a .env file
// first when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		API: APIConfig{
			BaseURL:             getEnvOrDefault("TAQA_API_URL", "http://localhost:5000"),
			RequestTimeout:      getDurationOrDefault("TAQA_REQUEST_TIMEOUT", 10*time.Second),
			TenantStatusTimeout: getDurationOrDefault("TAQA_TENANT_STATUS_TIMEOUT", 3*time.Second),
		},
		SSH: SSHConfig{
			Host:    getEnvOrDefault("SSH_HOST", "0.0.0.0"),
			Port:    getEnvOrDefault("SSH_PORT", "2222"),
			KeyPath: getEnvOrDefault("SSH_KEY_PATH", ".ssh/taqa_ed25519"),
		},
		Download: DownloadConfig{
			Dir: getEnvOrDefault("TAQA_DOWNLOAD_DIR", "./downloads"),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
