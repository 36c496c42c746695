package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Customer support specifics
	Gemini    GeminiConfig
	Voyage    VoyageConfig
	Qdrant    QdrantConfig
	Retrieval RetrievalConfig
	Harness   HarnessConfig

	// LLM call hardening
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

type VoyageConfig struct {
	APIKey string
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type RetrievalConfig struct {
	TopK     int
	MinScore float64
}

// HarnessConfig points at the validation suite consumed by the testing
// handler. A missing file disables suite replay without failing boot.
type HarnessConfig struct {
	SuitePath string
}

// LLMConfig hardens every oracle call: retry, per-call timeout and a
// client-side rate budget.
type LLMConfig struct {
	RetryAttempts  int
	RetryDelay     time.Duration
	CallTimeout    time.Duration
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Temperature = viper.GetFloat64("gemini.temperature")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Voyage AI
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Qdrant
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	// Retrieval
	cfg.Retrieval.TopK = viper.GetInt("retrieval.top_k")
	cfg.Retrieval.MinScore = viper.GetFloat64("retrieval.min_score")

	// Validation harness
	cfg.Harness.SuitePath = viper.GetString("harness.suite_path")

	// LLM call hardening
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetDuration("llm.retry_delay")
	cfg.LLM.CallTimeout = viper.GetDuration("llm.call_timeout")
	cfg.LLM.RequestsPerMin = viper.GetInt("llm.requests_per_min")

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required - set GEMINI_API_KEY or gemini.api_key")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.temperature", 0.2)
	viper.SetDefault("gemini.timeout", "30s")

	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "support_docs")
	viper.SetDefault("qdrant.vector_size", 1024)

	viper.SetDefault("retrieval.top_k", 5)
	viper.SetDefault("retrieval.min_score", 0.3)

	viper.SetDefault("harness.suite_path", "data/test_suite.json")

	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.call_timeout", "30s")
	viper.SetDefault("llm.requests_per_min", 60)
}
