package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting.
type Config struct {
	// Gemini API
	GeminiAPIKey string
	GeminiModel  string

	// Server
	Port           string
	AllowedOrigins []string
}

var globalConfig *Config

// LoadConfig loads environment variables into the global config.
// GEMINI_API_KEY is deliberately NOT validated here: a missing key must
// surface as a request-time failure, never a deploy-time one.
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	globalConfig = &Config{
		// Gemini API
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// Server
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Gemini model: %s", globalConfig.GeminiModel)
	log.Printf("   Allowed origins: %v", globalConfig.AllowedOrigins)
	if globalConfig.GeminiAPIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set - AI endpoints will fail until configured")
	}

	return globalConfig, nil
}

// GetConfig returns the loaded config.
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
