package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. It is built once at process
// start and passed by reference; there is no ambient global state.
type Config struct {
	// Server configuration
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// AWS configuration. Endpoint and the static credentials are only needed
	// for S3-compatible/local stacks; on AWS the SDK default chain applies.
	AWSRegion    string
	AWSEndpoint  string
	AWSAccessKey string
	AWSSecretKey string

	// Storage configuration
	Bucket        string
	PublicBaseURL string
	Table         string

	// Gateway configuration
	JWTSecret string
}

// LoadConfig loads the application configuration from environment variables.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Using environment variables.")
	}

	config := &Config{
		Port:         getEnvInt("PORT", 8080),
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT_SECONDS", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT_SECONDS", 30)) * time.Second,

		AWSRegion:    getEnvString("AWS_REGION", "us-east-1"),
		AWSEndpoint:  os.Getenv("AWS_ENDPOINT"),
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),

		Bucket:        getEnvString("BUCKET_NAME", "factuprobucket"),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
		Table:         getEnvString("TABLE_NAME", "Invoices"),

		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	validateConfig(config)

	return config, nil
}

// validateConfig checks if critical configuration values are set and logs
// warnings if they're missing.
func validateConfig(config *Config) {
	if config.JWTSecret == "" {
		log.Println("Warning: No JWT secret provided. All requests will be treated as unauthenticated.")
	}

	if config.Bucket == "" {
		log.Println("Warning: No S3 bucket provided. Document uploads will fail.")
	}

	if config.Table == "" {
		log.Println("Warning: No DynamoDB table provided. Invoice records will fail.")
	}
}

// getEnvInt gets an integer from an environment variable with a default value.
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvString gets a string from an environment variable with a default value.
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
