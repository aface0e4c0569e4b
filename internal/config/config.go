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

var ErrInvalidConfig = errors.New("invalid config")

const (
	defaultAddr         = ":8080"
	defaultDBDriver     = "sqlite3"
	defaultTimeBudget   = 60
	defaultTickInterval = time.Second
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultOrigin       = "http://localhost:3000"
)

type Config struct {
	Addr           string
	DBDriver       string
	DBDSN          string
	TimeBudget     int
	TickInterval   time.Duration
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := Config{
		Addr:           getenvOr("ADDR", defaultAddr),
		DBDriver:       getenvOr("QUIZ_DB_DRIVER", defaultDBDriver),
		DBDSN:          strings.TrimSpace(os.Getenv("QUIZ_DB_DSN")),
		LogLevel:       getenvOr("LOG_LEVEL", defaultLogLevel),
		LogFormat:      getenvOr("LOG_FORMAT", defaultLogFormat),
		AllowedOrigins: splitList(getenvOr("CORS_ALLOWED_ORIGINS", defaultOrigin)),
	}

	budget, err := intFromEnv("QUIZ_TIME_BUDGET", defaultTimeBudget)
	if err != nil {
		return Config{}, err
	}
	cfg.TimeBudget = budget

	interval, err := durationFromEnv("QUIZ_TICK_INTERVAL", defaultTickInterval)
	if err != nil {
		return Config{}, err
	}
	cfg.TickInterval = interval

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.TimeBudget <= 0 {
		return fmt.Errorf("%w: time budget must be positive, got %d", ErrInvalidConfig, c.TimeBudget)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	switch c.DBDriver {
	case "sqlite3", "postgres":
	default:
		return fmt.Errorf("%w: unsupported db driver %q", ErrInvalidConfig, c.DBDriver)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unsupported log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// SetTimeBudget overrides the budget, typically from a command-line flag,
// and revalidates.
func (c *Config) SetTimeBudget(seconds int) error {
	c.TimeBudget = seconds
	return c.Validate()
}

func getenvOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidConfig, key)
	}
	return parsed, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration like 1s", ErrInvalidConfig, key)
	}
	return parsed, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
