package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	APIBaseURL string
	APITimeout time.Duration

	Log      string
	LogLevel string
	Env      string // dev|prod

	SessionSecret string
	SessionTTL    time.Duration
	SessionStore  string // memory|redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CourseID     string
	JobsPageSize int
	WebSearchURL string

	CORSOrigins []string
}

// LoadConfig reads .env and the environment and fills in defaults.
// It does not log so that config stays independent of the logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	apiTimeout, err := time.ParseDuration(def(os.Getenv("API_TIMEOUT"), "15s"))
	if err != nil {
		return nil, fmt.Errorf("parse API_TIMEOUT: %w", err)
	}
	sessionTTL, err := time.ParseDuration(def(os.Getenv("SESSION_TTL"), "24h"))
	if err != nil {
		return nil, fmt.Errorf("parse SESSION_TTL: %w", err)
	}
	pageSize, err := strconv.Atoi(def(os.Getenv("JOBS_PAGE_SIZE"), "6"))
	if err != nil || pageSize <= 0 {
		return nil, fmt.Errorf("parse JOBS_PAGE_SIZE: must be a positive integer")
	}
	redisDB, err := strconv.Atoi(def(os.Getenv("REDIS_DB"), "0"))
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_DB: %w", err)
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		APIBaseURL: strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		APITimeout: apiTimeout,

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    sessionTTL,
		SessionStore:  strings.ToLower(def(os.Getenv("SESSION_STORE"), "memory")),
		RedisAddr:     def(os.Getenv("REDIS_ADDR"), "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		CourseID:     def(os.Getenv("COURSE_ID"), "680722091c717f2f59d41dac"),
		JobsPageSize: pageSize,
		WebSearchURL: def(os.Getenv("WEB_SEARCH_URL"), "https://www.google.com/search"),

		CORSOrigins: splitCSV(def(os.Getenv("CORS_ORIGINS"), "*")),
	}

	return cfg, nil
}

// Validate returns non-fatal warnings, or an error when the app cannot start.
func (c *Config) Validate() (warnings []string, err error) {
	if c.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is empty")
	}

	if strings.TrimSpace(c.SessionSecret) == "" {
		warnings = append(warnings, "SESSION_SECRET is empty, sessions are signed with an ephemeral key")
	}

	if c.SessionStore != "memory" && c.SessionStore != "redis" {
		warnings = append(warnings, fmt.Sprintf("unknown SESSION_STORE %q, falling back to memory", c.SessionStore))
		c.SessionStore = "memory"
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
		c.Port = "8080"
	}

	return warnings, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
