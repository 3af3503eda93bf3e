package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	BackendAPIBase string

	// Model provider selection: "bedrock" (default) or "openai".
	ModelProvider  string
	BedrockModelID string
	OpenAIKey      string
	OpenAIBaseURL  string
	OpenAIModel    string
	MaxTokens      int

	// Debug exposes internal error detail in 500 responses.
	Debug bool
}

func Load() *Config {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, relying on environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		BackendAPIBase: getEnv("BACKEND_API_URL", "https://api.leafshop.dev"),
		ModelProvider:  getEnv("MODEL_PROVIDER", "bedrock"),
		BedrockModelID: getEnv("BEDROCK_MODEL_ID", "anthropic.claude-3-haiku-20240307-v1:0"),
		OpenAIKey:      getEnv("OPENAI_KEY", ""),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		MaxTokens:      getEnvInt("MAX_TOKENS", 500),
		Debug:          getEnvBool("DEBUG", false),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, val, defaultVal)
		return defaultVal
	}
	return n
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		log.Printf("invalid %s=%q, using default %t", key, val, defaultVal)
		return defaultVal
	}
	return b
}
