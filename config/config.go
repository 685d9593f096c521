package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	JwtSecret  string
	Issuer     string
	ServerPort string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	PricingURL string

	LLMEndpoint    string
	LLMAPIKey      string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int

	LogLevel string
)

// fileConfig mirrors the optional YAML override file pointed at by
// CONFIG_FILE. Empty fields keep the environment-derived value.
type fileConfig struct {
	PricingURL string `yaml:"pricing_url"`
	LLM        struct {
		Endpoint    string  `yaml:"endpoint"`
		APIKey      string  `yaml:"api_key"`
		Model       string  `yaml:"model"`
		Temperature float64 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max_tokens"`
	} `yaml:"llm"`
	LogLevel string `yaml:"log_level"`
}

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "gpu-advisor")
	ServerPort = getEnv("SERVER_PORT", "8080")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "gpu_advisor")

	PricingURL = getEnv("PRICING_URL", "https://dev-portal.openstack.acecloudhosting.com/api/v1/pricing?is_gpu=true&resource=instances")

	LLMEndpoint = getEnv("LLM_ENDPOINT", "https://api.groq.com/openai/v1/chat/completions")
	LLMAPIKey = getEnv("LLM_API_KEY", "")
	LLMModel = getEnv("LLM_MODEL", "llama3-70b-8192")
	LLMTemperature = getEnvFloat("LLM_TEMPERATURE", 0.3)
	LLMMaxTokens = getEnvInt("LLM_MAX_TOKENS", 1024)

	LogLevel = getEnv("LOG_LEVEL", "info")

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		applyFileConfig(path)
	}
}

func applyFileConfig(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Could not read config file %s: %v", path, err)
		return
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		log.Printf("Could not parse config file %s: %v", path, err)
		return
	}
	if fc.PricingURL != "" {
		PricingURL = fc.PricingURL
	}
	if fc.LLM.Endpoint != "" {
		LLMEndpoint = fc.LLM.Endpoint
	}
	if fc.LLM.APIKey != "" {
		LLMAPIKey = fc.LLM.APIKey
	}
	if fc.LLM.Model != "" {
		LLMModel = fc.LLM.Model
	}
	if fc.LLM.Temperature != 0 {
		LLMTemperature = fc.LLM.Temperature
	}
	if fc.LLM.MaxTokens != 0 {
		LLMMaxTokens = fc.LLM.MaxTokens
	}
	if fc.LogLevel != "" {
		LogLevel = fc.LogLevel
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
