package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	RedisDefaultStatusTTL time.Duration
	AuditSchedule         string
	AuditLimit            int
	MigrationsPath        string
}

// DSN is the libpq connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the configuration from the environment. A .env file in envFile is
// loaded first when present; variables already set in the environment win.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	ttl, ttlErr := durationVariable("REDIS_DEFAULT_STATUS_TTL", 5*time.Minute)
	redisDB, redisDBErr := intVariable("REDIS_DB", 0)
	auditLimit, auditLimitErr := intVariable("AUDIT_LIMIT", 0)
	if err := errors.Join(ttlErr, redisDBErr, auditLimitErr); err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:              variable("HTTP_PORT", "8080"),
		DBHost:                variable("DB_HOST", "localhost"),
		DBPort:                variable("DB_PORT", "5432"),
		DBUser:                variable("DB_USER", "postgres"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                variable("DB_NAME", "orders"),
		DBSslMode:             variable("DB_SSLMODE", "disable"),
		RedisAddr:             variable("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:               redisDB,
		RedisDefaultStatusTTL: ttl,
		AuditSchedule:         os.Getenv("AUDIT_SCHEDULE"),
		AuditLimit:            auditLimit,
		MigrationsPath:        os.Getenv("MIGRATIONS_PATH"),
	}, nil
}

func variable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func intVariable(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
