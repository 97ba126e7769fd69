// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"   // For reading environment variables
	"sync" // To load the .env file only once

	"github.com/joho/godotenv" // Loads .env files into the environment
)

type Config struct { // Config struct holds all configuration values
	Port          string // HTTP port the server listens on
	DBPath        string // Path to the SQLite database file
	JWTSecret     string // Secret key for signing and verifying tokens
	MQTTBroker    string // Address of the MQTT broker for kitchen notifications
	CreateAdmin   bool   // Whether to seed a default admin account
	AdminName     string // Username of the seeded admin
	AdminPassword string // Password of the seeded admin (required when CreateAdmin is set)
}

var loadEnvOnce sync.Once // Ensures .env is read only once per process

func Load() *Config { // Load reads config from environment variables or uses defaults
	loadEnvOnce.Do(func() {
		_ = godotenv.Load() // Missing .env is fine, plain env vars still apply
	})
	return &Config{
		Port:          getEnv("PORT", "8080"),                        // Get HTTP port or use default
		DBPath:        getEnv("DB_PATH", "restaurant.db"),            // Get DB path or use default
		JWTSecret:     getEnv("JWT_SECRET", "supersecret"),           // Get JWT secret or use default
		MQTTBroker:    getEnv("MQTT_BROKER", "tcp://localhost:1883"), // Get MQTT broker or use default
		CreateAdmin:   getEnv("CREATE_ADMIN", "false") == "true",     // Seed default admin only when asked
		AdminName:     getEnv("ADMIN_NAME", "admin"),                 // Default admin username
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),                   // No default on purpose
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
