package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Adzuna   AdzunaConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	PoolMaxConns int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// AdzunaConfig carries the job-search provider credentials. Both fields
// empty means "no credentials": the jobs endpoint switches to the
// no-credential fallback provider and the salary endpoint reports a
// configuration error.
type AdzunaConfig struct {
	AppID   string
	AppKey  string
	Country string
	BaseURL string
}

func (c AdzunaConfig) HasCredentials() bool {
	return c.AppID != "" && c.AppKey != ""
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	// Absent .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "career-path"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "5000"),
	}

	cfg.Database = DatabaseConfig{
		Host:         opt("DB_HOST", "localhost"),
		Port:         opt("DB_PORT", "5432"),
		Name:         req("DB_NAME"),
		User:         req("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		SSLMode:      opt("DB_SSL_MODE", "disable"),
		PoolMaxConns: int32(optInt("DB_POOL_MAX_CONNS", 0)),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		TTL:      optDuration("REDIS_TTL", 10*time.Minute),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_SECRET"),
		RefreshSecret:    opt("JWT_REFRESH_SECRET", os.Getenv("JWT_SECRET")),
		AccessExpiresIn:  optDuration("JWT_ACCESS_EXPIRES_IN", 24*time.Hour),
		RefreshExpiresIn: optDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	cfg.Adzuna = AdzunaConfig{
		AppID:   strings.TrimSpace(os.Getenv("ADZUNA_APP_ID")),
		AppKey:  strings.TrimSpace(os.Getenv("ADZUNA_APP_KEY")),
		Country: opt("ADZUNA_COUNTRY", "us"),
		BaseURL: opt("ADZUNA_BASE_URL", "https://api.adzuna.com"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func optDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
