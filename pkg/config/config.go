package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Catalog   CatalogConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Optimizer OptimizerConfig
	Export    ExportConfig
}

// CatalogConfig points at the upstream course catalog service.
type CatalogConfig struct {
	Enabled       bool
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
	RetryInterval time.Duration
	CacheTTL      time.Duration
	CSVSeedFile   string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// OptimizerConfig bounds combination searches so a request can never ask for
// an intractable enumeration.
type OptimizerConfig struct {
	MaxCourses             int
	MaxCandidatesPerCourse int
	MaxCombinations        int
}

// ExportConfig toggles timetable file downloads.
type ExportConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Catalog = CatalogConfig{
		Enabled:       v.GetBool("ENABLE_CATALOG"),
		BaseURL:       v.GetString("CATALOG_BASE_URL"),
		Timeout:       parseDuration(v.GetString("CATALOG_TIMEOUT"), 10*time.Second),
		RetryAttempts: v.GetInt("CATALOG_RETRY_ATTEMPTS"),
		RetryInterval: parseDuration(v.GetString("CATALOG_RETRY_INTERVAL"), 200*time.Millisecond),
		CacheTTL:      parseDuration(v.GetString("CATALOG_CACHE_TTL"), 10*time.Minute),
		CSVSeedFile:   v.GetString("CATALOG_CSV_SEED_FILE"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Optimizer = OptimizerConfig{
		MaxCourses:             v.GetInt("OPTIMIZER_MAX_COURSES"),
		MaxCandidatesPerCourse: v.GetInt("OPTIMIZER_MAX_CANDIDATES_PER_COURSE"),
		MaxCombinations:        v.GetInt("OPTIMIZER_MAX_COMBINATIONS"),
	}

	cfg.Export = ExportConfig{
		Enabled: v.GetBool("ENABLE_EXPORT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ENABLE_CATALOG", true)
	v.SetDefault("CATALOG_BASE_URL", "http://localhost:9000")
	v.SetDefault("CATALOG_TIMEOUT", "10s")
	v.SetDefault("CATALOG_RETRY_ATTEMPTS", 3)
	v.SetDefault("CATALOG_RETRY_INTERVAL", "200ms")
	v.SetDefault("CATALOG_CACHE_TTL", "10m")
	v.SetDefault("CATALOG_CSV_SEED_FILE", "")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("OPTIMIZER_MAX_COURSES", 8)
	v.SetDefault("OPTIMIZER_MAX_CANDIDATES_PER_COURSE", 30)
	v.SetDefault("OPTIMIZER_MAX_COMBINATIONS", 10)

	v.SetDefault("ENABLE_EXPORT", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
