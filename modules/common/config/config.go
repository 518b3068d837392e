package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 구조체 - 모든 환경변수를 담음
type Config struct {
	// OpenAI (DALL-E)
	OpenAIAPIKey     string
	OpenAIAPIKeys    []string // 429 재시도용 추가 키 (comma-separated)
	OpenAIImageModel string

	// Gemini (fallback provider, optional)
	GeminiAPIKey string
	GeminiModel  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool

	// Supabase
	SupabaseURL            string
	SupabaseServiceKey     string
	SupabaseStorageBaseURL string

	// Server
	Port string

	// Napkin
	TemplatePath      string // 비어있으면 내장 기본 템플릿 사용
	RecentPromptLimit int
}

var globalConfig *Config

// LoadConfig - 환경변수 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	// Redis UseTLS 파싱
	useTLS := true // 기본값
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	// RecentPromptLimit 파싱
	recentLimit := 5 // 기본값 (최근 프롬프트 5개)
	if limitStr := os.Getenv("RECENT_PROMPT_LIMIT"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			recentLimit = parsed
		}
	}

	primaryKey := getEnv("OPENAI_API_KEY", "")

	// 추가 API 키 파싱 (retry helper용) - primary 키가 항상 첫 번째
	apiKeys := []string{}
	if primaryKey != "" {
		apiKeys = append(apiKeys, primaryKey)
	}
	if extra := os.Getenv("OPENAI_API_KEYS"); extra != "" {
		for _, key := range strings.Split(extra, ",") {
			key = strings.TrimSpace(key)
			if key != "" && key != primaryKey {
				apiKeys = append(apiKeys, key)
			}
		}
	}

	globalConfig = &Config{
		// OpenAI
		OpenAIAPIKey:     primaryKey,
		OpenAIAPIKeys:    apiKeys,
		OpenAIImageModel: getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),

		// Gemini (optional)
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash-image"),

		// Redis
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   useTLS,

		// Supabase
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey:     getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseStorageBaseURL: getEnv("SUPABASE_STORAGE_BASE_URL", ""),

		// Server
		Port: getEnv("PORT", "8080"),

		// Napkin
		TemplatePath:      getEnv("NAPKIN_TEMPLATE_PATH", ""),
		RecentPromptLimit: recentLimit,
	}

	// 필수 환경변수 검증
	if err := globalConfig.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Redis: %s:%s (TLS: %v)", globalConfig.RedisHost, globalConfig.RedisPort, globalConfig.RedisUseTLS)
	log.Printf("   Supabase: %s", globalConfig.SupabaseURL)
	log.Printf("   Image model: %s (%d API keys)", globalConfig.OpenAIImageModel, len(globalConfig.OpenAIAPIKeys))
	if globalConfig.GeminiAPIKey != "" {
		log.Printf("   Fallback: %s", globalConfig.GeminiModel)
	}
	log.Printf("   Recent prompts: %d", globalConfig.RecentPromptLimit)

	return globalConfig, nil
}

// GetConfig - 로드된 설정 가져오기
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// validate - 필수 환경변수 검증
func (c *Config) validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.RedisHost == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}
	return nil
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetRedisAddr - Redis 연결 문자열 생성
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
