package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App AppConfig
	Ai  AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	DataDir            string
	LogFilePath        string
	CorsAllowedOrigins string
}

type AIConfig struct {
	Provider          string // "openrouter" or "ollama"
	Model             string // default model, overridable per request
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OllamaBaseURL     string
	ReindexTopic      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			DataDir:            getEnv("DATA_DIR", "./data"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Ai: AIConfig{
			Provider:          getEnv("LLM_PROVIDER", "openrouter"),
			Model:             getEnv("LLM_MODEL", "openai/gpt-4o-mini"),
			OpenRouterAPIKey:  getEnv("OPENROUTER_API_KEY", ""),
			OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			ReindexTopic:      getEnv("POLICY_REINDEX_TOPIC_NAME", "REINDEX_POLICY_TEXT"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
