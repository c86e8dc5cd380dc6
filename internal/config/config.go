package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Vector   VectorConfig
	Ai       AIConfig
	Retrieve RetrievalConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	CooldownSeconds    int
}

type DatabaseConfig struct {
	Connection string
}

type VectorConfig struct {
	Backend    string // "qdrant", "pgvector" or "memory"
	QdrantURL  string
	QdrantKey  string
	Collection string
}

type AIConfig struct {
	EmbeddingProvider string // "openai" or "gemini"
	EmbeddingModel    string
	LLMProvider       string // "openai" or "ollama"
	FrameworkModel    string // model used for per-framework interpretation
	TransactionModel  string // model used for the transactional lens
	QuestionModel     string // model used for question refinement
	OpenAIKey         string
	GeminiKey         string
	HuggingFaceKey    string
	OllamaBaseURL     string
	OllamaEmbedModel  string
}

type RetrievalConfig struct {
	PrimaryTopK   int
	SecondaryTopK int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			CooldownSeconds:    getEnvAsInt("SUBMISSION_COOLDOWN_SECONDS", 60),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Vector: VectorConfig{
			Backend:    getEnv("VECTOR_STORE", "qdrant"),
			QdrantURL:  getEnv("QDRANT_URL", "http://localhost:6333"),
			QdrantKey:  getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "second-brain-docs"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			FrameworkModel:    getEnv("FRAMEWORK_MODEL", "gpt-4o"),
			TransactionModel:  getEnv("TRANSACTION_MODEL", "gpt-3.5-turbo"),
			QuestionModel:     getEnv("QUESTION_MODEL", "gpt-4"),
			OpenAIKey:         getEnv("OPENAI_API_KEY", ""),
			GeminiKey:         getEnv("GOOGLE_GEMINI_API_KEY", ""),
			HuggingFaceKey:    getEnv("HUGGINGFACE_API_KEY", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBED_MODEL", "nomic-embed-text"),
		},
		Retrieve: RetrievalConfig{
			PrimaryTopK:   getEnvAsInt("PRIMARY_TOP_K", 5),
			SecondaryTopK: getEnvAsInt("SECONDARY_TOP_K", 3),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
