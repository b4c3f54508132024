package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	LLM        LLMConfig        `yaml:"llm"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Cache      CacheConfig      `yaml:"cache"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000,http://frontend:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
}

// Supported text-generation providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// LLMConfig holds text-generation API settings.
// An empty APIKey means no generator is configured and every operation
// uses its deterministic fallback.
type LLMConfig struct {
	Provider        string        `yaml:"provider"         env:"LLM_PROVIDER"         env-default:"openai"`
	APIKey          string        `yaml:"api_key"          env:"LLM_API_KEY"`
	Model           string        `yaml:"model"            env:"LLM_MODEL"`
	BaseURL         string        `yaml:"base_url"         env:"LLM_BASE_URL"`
	MaxTokens       int           `yaml:"max_tokens"       env:"LLM_MAX_TOKENS"       env-default:"1024"`
	Timeout         time.Duration `yaml:"timeout"          env:"LLM_TIMEOUT"          env-default:"30s"`
	MaxRetries      int           `yaml:"max_retries"      env:"LLM_MAX_RETRIES"      env-default:"2"`
	RetryBackoff    time.Duration `yaml:"retry_backoff"    env:"LLM_RETRY_BACKOFF"    env-default:"500ms"`
	BreakerFailures int           `yaml:"breaker_failures" env:"LLM_BREAKER_FAILURES" env-default:"5"`
	BreakerCooldown time.Duration `yaml:"breaker_cooldown" env:"LLM_BREAKER_COOLDOWN" env-default:"30s"`
}

// Enabled reports whether a generation credential is configured.
func (c LLMConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// ModelOrDefault returns the configured model or the provider's default.
func (c LLMConfig) ModelOrDefault() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case ProviderAnthropic:
		return "claude-3-5-haiku-latest"
	case ProviderGemini:
		return "gemini-2.0-flash"
	default:
		return "gpt-3.5-turbo"
	}
}

// ExtractionConfig holds media-to-text settings. Both extractors talk to the
// OpenAI API (vision chat for images, Whisper for audio).
type ExtractionConfig struct {
	APIKey             string        `yaml:"api_key"             env:"EXTRACT_API_KEY"`
	BaseURL            string        `yaml:"base_url"            env:"EXTRACT_BASE_URL"`
	VisionModel        string        `yaml:"vision_model"        env:"EXTRACT_VISION_MODEL"        env-default:"gpt-4o-mini"`
	TranscriptionModel string        `yaml:"transcription_model" env:"EXTRACT_TRANSCRIPTION_MODEL" env-default:"whisper-1"`
	OCRLanguage        string        `yaml:"ocr_language"        env:"EXTRACT_OCR_LANGUAGE"        env-default:"spa"`
	AudioLanguage      string        `yaml:"audio_language"      env:"EXTRACT_AUDIO_LANGUAGE"      env-default:"es"`
	Timeout            time.Duration `yaml:"timeout"             env:"EXTRACT_TIMEOUT"             env-default:"60s"`
}

// ExtractionAPIKey returns the credential for the media extractors. When no
// dedicated key is set, an OpenAI generation key is reused.
func (c Config) ExtractionAPIKey() string {
	if c.Extraction.APIKey != "" {
		return c.Extraction.APIKey
	}
	if c.LLM.Provider == ProviderOpenAI {
		return c.LLM.APIKey
	}
	return ""
}

// Generation cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// CacheConfig controls reuse of model replies for identical prompts.
type CacheConfig struct {
	Backend       string        `yaml:"backend"        env:"CACHE_BACKEND"        env-default:"memory"`
	TTL           time.Duration `yaml:"ttl"            env:"CACHE_TTL"            env-default:"24h"`
	MaxEntries    int64         `yaml:"max_entries"    env:"CACHE_MAX_ENTRIES"    env-default:"10000"`
	RedisAddr     string        `yaml:"redis_addr"     env:"CACHE_REDIS_ADDR"     env-default:"localhost:6379"`
	RedisPassword string        `yaml:"redis_password" env:"CACHE_REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db"       env:"CACHE_REDIS_DB"       env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"1m"`
}
