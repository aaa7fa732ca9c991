package config

import (
	"os"
	"strconv"
	"time"

	apperrors "narad-backend/pkg/errors"
)

// GenerationConfig holds the sampling defaults for external generation calls.
type GenerationConfig struct {
	// Temperature controls sampling randomness
	Temperature float64
	// MaxTokens bounds the completion length
	MaxTokens int
	// TopP is the nucleus-sampling cutoff
	TopP float64
	// TopK bounds candidate tokens per step
	TopK int
	// Timeout is the per-call budget for the external API
	Timeout time.Duration
	// MinEnhancementLength is the shortest completion allowed to replace a
	// template answer
	MinEnhancementLength int
}

// SessionConfig bounds the in-memory conversation store.
type SessionConfig struct {
	// Capacity is the maximum number of live sessions
	Capacity int
	// TTL is how long an idle session is retained
	TTL time.Duration
	// HistoryWindow is how many trailing messages feed context building
	HistoryWindow int
}

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Gemini configuration; an empty API key disables external generation
	// and the pipeline answers from templates alone
	GeminiAPIKey string
	GeminiModel  string

	// Knowledge seed file; empty means the built-in dataset
	KnowledgeSeedPath string

	// Runtime-tunable config file; empty disables the watcher
	DynamicConfigPath string

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool

	Generation GenerationConfig
	Session    SessionConfig
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8000"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("MODEL_NAME", "gemini-1.5-flash"),

		KnowledgeSeedPath: getEnv("KNOWLEDGE_SEED_PATH", ""),
		DynamicConfigPath: getEnv("DYNAMIC_CONFIG_PATH", ""),

		// Logging and features
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),

		Generation: GenerationConfig{
			Temperature:          getEnvFloat("GENERATION_TEMPERATURE", 0.7),
			MaxTokens:            getEnvInt("GENERATION_MAX_TOKENS", 2000),
			TopP:                 getEnvFloat("GENERATION_TOP_P", 0.9),
			TopK:                 getEnvInt("GENERATION_TOP_K", 40),
			Timeout:              getEnvDuration("GENERATION_TIMEOUT", 60*time.Second),
			MinEnhancementLength: getEnvInt("GENERATION_MIN_LENGTH", 20),
		},
		Session: SessionConfig{
			Capacity:      getEnvInt("SESSION_CAPACITY", 10000),
			TTL:           getEnvDuration("SESSION_TTL", 2*time.Hour),
			HistoryWindow: getEnvInt("SESSION_HISTORY_WINDOW", 10),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig for backwards compatibility
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Session.Capacity <= 0 {
		return apperrors.NewValidation("SESSION_CAPACITY must be positive")
	}
	if c.Session.HistoryWindow <= 0 {
		return apperrors.NewValidation("SESSION_HISTORY_WINDOW must be positive")
	}
	if c.Generation.Timeout <= 0 {
		return apperrors.NewValidation("GENERATION_TIMEOUT must be positive")
	}
	if c.IsProduction() && c.GeminiAPIKey == "" {
		return apperrors.NewValidation("GEMINI_API_KEY is required in production")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
