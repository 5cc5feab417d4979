package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Frontend
	FrontendURL string

	// Per-IP chat rate limit (requests per minute)
	ChatRequestsPerMin int
}

// ClientConfig holds everything the terminal client needs.
type ClientConfig struct {
	ServerURL string
	StateDir  string

	// Pause between reply arrival and the bubble appearing, in milliseconds.
	ReplyDelayMs int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:               getEnvOrDefault("PORT", "5000"),
		Env:                getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:       mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:        getEnvOrDefault("GEMINI_MODEL", "models/gemini-2.5-flash"),
		FrontendURL:        getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		ChatRequestsPerMin: getEnvAsIntOrDefault("CHAT_REQUESTS_PER_MINUTE", 30),
	}

	return cfg
}

func LoadClient() *ClientConfig {
	godotenv.Load()

	return &ClientConfig{
		ServerURL:    getEnvOrDefault("SAKHI_SERVER_URL", "http://localhost:5000"),
		StateDir:     getEnvOrDefault("SAKHI_STATE_DIR", defaultStateDir()),
		ReplyDelayMs: getEnvAsIntOrDefault("SAKHI_REPLY_DELAY_MS", 500),
	}
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".sakhiai"
	}
	return base + string(os.PathSeparator) + "sakhiai"
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
