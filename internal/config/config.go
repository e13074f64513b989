package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultDatabasePath = "studentflow.db"
	// App Engine only allows writes under /tmp
	gaeDatabasePath = "/tmp/studentflow.db"
)

type Config struct {
	Port           string
	Environment    string // ENV: production, development, etc.
	DatabaseURL    string // File path (SQLite) or postgres:// URL
	SecretKey      string // HMAC key for access tokens
	GeminiAPIKey   string // Empty means AI features run in degraded mode
	GeminiModel    string
	GeminiBaseURL  string
	AITimeout      time.Duration
	RedisURI       string   // Optional; enables rate limiting on auth routes
	AllowedOrigins []string // CORS
	AllowedHost    string   // Production host check; empty disables it
	StaticDir      string   // Bundled front-end
}

func Load() *Config {
	v := viper.New()

	_ = v.BindEnv("gae_env", "GAE_ENV")
	dbPath := defaultDatabasePath
	if strings.TrimSpace(v.GetString("gae_env")) != "" {
		dbPath = gaeDatabasePath
	}

	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("database_url", dbPath)
	v.SetDefault("secret_key", "your-secret-key-change-in-production")
	v.SetDefault("gemini_model", "gemini-2.0-flash")
	v.SetDefault("gemini_base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("ai_timeout", 60*time.Second)
	v.SetDefault("allowed_origins", "*")
	v.SetDefault("static_dir", "frontend")

	// BindEnv only fails when called without a key
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("env", "ENV")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("secret_key", "SECRET_KEY")
	_ = v.BindEnv("gemini_api_key", "GEMINI_API_KEY", "GOOGLE_API_KEY")
	_ = v.BindEnv("gemini_model", "GEMINI_MODEL")
	_ = v.BindEnv("gemini_base_url", "GEMINI_BASE_URL")
	_ = v.BindEnv("ai_timeout", "AI_TIMEOUT")
	_ = v.BindEnv("redis_uri", "REDIS_URI")
	_ = v.BindEnv("allowed_origins", "ALLOWED_ORIGINS")
	_ = v.BindEnv("allowed_host", "ALLOWED_HOST")
	_ = v.BindEnv("static_dir", "STATIC_DIR")

	timeout := v.GetDuration("ai_timeout")
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Config{
		Port:           strings.TrimSpace(v.GetString("port")),
		Environment:    strings.ToLower(strings.TrimSpace(v.GetString("env"))),
		DatabaseURL:    strings.TrimSpace(v.GetString("database_url")),
		SecretKey:      v.GetString("secret_key"),
		GeminiAPIKey:   strings.TrimSpace(v.GetString("gemini_api_key")),
		GeminiModel:    strings.TrimSpace(v.GetString("gemini_model")),
		GeminiBaseURL:  strings.TrimRight(strings.TrimSpace(v.GetString("gemini_base_url")), "/"),
		AITimeout:      timeout,
		RedisURI:       strings.TrimSpace(v.GetString("redis_uri")),
		AllowedOrigins: parseOrigins(v.GetString("allowed_origins")),
		AllowedHost:    strings.TrimSpace(v.GetString("allowed_host")),
		StaticDir:      strings.TrimSpace(v.GetString("static_dir")),
	}
}

func parseOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AIEnabled reports whether a provider credential is configured.
func (c *Config) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}

// RateLimitEnabled reports whether the shared Redis-backed auth limiter should run.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisURI != ""
}

// UsesPostgres reports whether DatabaseURL points at a PostgreSQL server.
func (c *Config) UsesPostgres() bool {
	return IsPostgresURL(c.DatabaseURL)
}

// IsPostgresURL reports whether dsn is a postgres connection string.
func IsPostgresURL(dsn string) bool {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}
