package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultSecretKey = "your-secret-key-here"

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	DatabaseName   string `env:"DATABASE_NAME" envDefault:"medical_dispatch"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8000"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Token Config
	SecretKey          string        `env:"SECRET_KEY"`
	Algorithm          string        `env:"ALGORITHM" envDefault:"HS256"`
	AccessTokenExpire  time.Duration `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`
	MaxLoginAttempts   int           `env:"MAX_LOGIN_ATTEMPTS" envDefault:"5"`
	LoginLockoutWindow time.Duration `env:"LOGIN_LOCKOUT" envDefault:"15m"`
	PasswordMinLength  int           `env:"PASSWORD_MIN_LENGTH" envDefault:"8"`

	// Push Config
	PushURL         string        `env:"PUSH_URL" envDefault:"https://exp.host/--/api/v2/push/send"`
	PushAccessToken string        `env:"PUSH_ACCESS_TOKEN"`
	PushTimeout     time.Duration `env:"PUSH_TIMEOUT" envDefault:"5s"`

	CORSOrigins []string `env:"CORS_ORIGINS"`
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:19006",
	"http://localhost:19001",
	"http://localhost:19002",
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DatabaseName:       getEnv("DATABASE_NAME", "medical_dispatch"),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "file://migrations"),
		HTTPPort:           getEnv("HTTP_PORT", "8000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		SecretKey:          getEnv("SECRET_KEY", defaultSecretKey),
		Algorithm:          getEnv("ALGORITHM", "HS256"),
		AccessTokenExpire:  time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		MaxLoginAttempts:   getEnvAsInt("MAX_LOGIN_ATTEMPTS", 5),
		LoginLockoutWindow: getEnvAsDuration("LOGIN_LOCKOUT", 15*time.Minute),
		PasswordMinLength:  getEnvAsInt("PASSWORD_MIN_LENGTH", 8),
		PushURL:            getEnv("PUSH_URL", "https://exp.host/--/api/v2/push/send"),
		PushAccessToken:    os.Getenv("PUSH_ACCESS_TOKEN"),
		PushTimeout:        getEnvAsDuration("PUSH_TIMEOUT", 5*time.Second),
		CORSOrigins:        getEnvAsList("CORS_ORIGINS", defaultCORSOrigins),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	switch cfg.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return nil, fmt.Errorf("unsupported token algorithm %q", cfg.Algorithm)
	}

	return cfg, nil
}

// UsesDefaultSecret сообщает, что секрет подписи токенов не задан явно
func (c *Config) UsesDefaultSecret() bool {
	return c.SecretKey == defaultSecretKey
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	items := strings.Split(value, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
