package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	APIBaseURL string
	AuthToken  string

	ToastDuration time.Duration

	// Mock API server settings
	MockPort   string
	MockDBName string
	JWTKey     string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:5000/api"),
		AuthToken:  getEnv("API_AUTH_TOKEN", ""),

		ToastDuration: time.Duration(getEnvInt("TOAST_DURATION_MS", 4000)) * time.Millisecond,

		MockPort:   getEnv("MOCK_PORT", "5000"),
		MockDBName: getEnv("MOCK_DB_NAME", "coursehub.db"),
		JWTKey:     getEnv("JWT_SECRET_KEY", "defaultSecret"),
	}

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
