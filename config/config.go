package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	EmailSender string
	Password    string // SMTP Password

	Judge0ApiURL string
	Judge0ApiKey string

	CheckoutApiURL string
	CheckoutApiKey string

	CdnUploadURL    string
	CdnUploadPreset string

	StreamApiKey    string
	StreamApiSecret string
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
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),

		Judge0ApiURL: getEnv("JUDGE0_API_URL", "https://judge0-ce.p.rapidapi.com"),
		Judge0ApiKey: getEnv("JUDGE0_API_KEY", ""),

		CheckoutApiURL: getEnv("CHECKOUT_API_URL", "https://api.razorpay.com/v1"),
		CheckoutApiKey: getEnv("CHECKOUT_API_KEY", ""),

		CdnUploadURL:    getEnv("CDN_UPLOAD_URL", "https://api.cloudinary.com/v1_1/antuf/image/upload"),
		CdnUploadPreset: getEnv("CDN_UPLOAD_PRESET", "antuf_unsigned"),

		StreamApiKey:    getEnv("STREAM_API_KEY", ""),
		StreamApiSecret: getEnv("STREAM_API_SECRET", ""),
	}

	// Validate critical configuration
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
