package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	SurrealURL  string
	SurrealNS   string
	SurrealDB   string
	SurrealUser string
	SurrealPass string

	JWTSecret      string
	AccessTokenTTL string

	Log      string
	LogLevel string
	Env      string // dev|prod
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		SurrealURL:  def(os.Getenv("SURREALDB_URL"), "ws://localhost:8000/rpc"),
		SurrealNS:   def(os.Getenv("SURREALDB_NS"), "inkwell"),
		SurrealDB:   def(os.Getenv("SURREALDB_DB"), "blog"),
		SurrealUser: os.Getenv("SURREALDB_USER"),
		SurrealPass: os.Getenv("SURREALDB_PASS"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: def(os.Getenv("ACCESS_TOKEN_EXPIRY"), "24h"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	// Критичные: хранилище
	if c.SurrealURL == "" || c.SurrealNS == "" || c.SurrealDB == "" {
		return nil, fmt.Errorf("incomplete store config (SURREALDB_URL/SURREALDB_NS/SURREALDB_DB)")
	}
	if _, err := url.Parse(c.SurrealURL); err != nil {
		return nil, fmt.Errorf("invalid SURREALDB_URL: %w", err)
	}

	// Кривой ACCESS_TOKEN_EXPIRY приводил бы к нулевому TTL — токены
	// выдавались бы уже просроченными.
	if _, err := time.ParseDuration(c.AccessTokenTTL); err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRY: %w", err)
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		warnings = append(warnings, "JWT_SECRET is empty")
	}

	if c.SurrealUser == "" || c.SurrealPass == "" {
		warnings = append(warnings, "SurrealDB credentials are not set")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// GetStoreURLSafe — адрес хранилища без учётных данных (для логов).
func (c *Config) GetStoreURLSafe() string {
	return fmt.Sprintf("%s (ns=%s db=%s)", c.SurrealURL, c.SurrealNS, c.SurrealDB)
}
