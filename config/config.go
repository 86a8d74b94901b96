package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	Store          string
	DBUrl          string
	RunMigrations  bool
	JWTSecret      string
	AllowedOrigins []string
	QueryTimeout   time.Duration

	RedisURL           string
	InvitationCacheTTL time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	Email EmailConfig
}

// EmailConfig selects and configures the outbound mailer.
type EmailConfig struct {
	Provider              string
	FromAddress           string
	FromName              string
	AWSRegion             string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := getEnv("GO_ENV", "development")

	// In production the environment is authoritative and .env may not exist.
	if env != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: .env file couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           getEnv("PORT", "3000"),
		Store:          strings.ToLower(getEnv("STORE", StorePostgres)),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RedisURL:       os.Getenv("REDIS_URL"),
		Email: EmailConfig{
			Provider:           strings.ToLower(getEnv("EMAIL_PROVIDER", "noop")),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           getEnv("EMAIL_FROM_NAME", "Wedding Invitation"),
			AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	var errs []error
	var err error
	if cfg.QueryTimeout, err = getEnvDuration("QUERY_TIMEOUT", 5*time.Second); err != nil {
		errs = append(errs, err)
	}
	if cfg.InvitationCacheTTL, err = getEnvDuration("INVITATION_CACHE_TTL", 10*time.Minute); err != nil {
		errs = append(errs, err)
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", 5); err != nil {
		errs = append(errs, err)
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 10); err != nil {
		errs = append(errs, err)
	}
	if cfg.RunMigrations, err = getEnvBool("RUN_MIGRATIONS", true); err != nil {
		errs = append(errs, err)
	}
	if cfg.Email.SESInsecureSkipVerify, err = getEnvBool("SES_INSECURE_SKIP_VERIFY", false); err != nil {
		errs = append(errs, err)
	}

	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	switch cfg.Store {
	case StorePostgres:
		cfg.DBUrl = DatabaseURL()
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE must be %q or %q, got %q", StorePostgres, StoreMemory, cfg.Store))
	}
	if cfg.QueryTimeout <= 0 {
		errs = append(errs, errors.New("QUERY_TIMEOUT must be positive"))
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// DatabaseURL returns DATABASE_URL, or a URL composed from the DB_* variables when it is unset.
func DatabaseURL() string {
	if u := getEnv("DATABASE_URL", ""); u != "" {
		return u
	}
	return databaseURLFromParts()
}

// databaseURLFromParts builds a postgres URL from DB_USER, DB_PASSWORD, DB_HOST, DB_PORT and DB_NAME.
func databaseURLFromParts() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(getEnv("DB_USER", "postgres"), os.Getenv("DB_PASSWORD")),
		Host:     net.JoinHostPort(getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432")),
		Path:     "/" + getEnv("DB_NAME", "wedding_invitation"),
		RawQuery: "sslmode=" + getEnv("DB_SSLMODE", "disable"),
	}
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, value)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", key, value)
	}
	return f, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, value)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a duration", key, value)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
