// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/twosevenths/models"
)

// Database types
const (
	DatabaseMemory   = "memory"
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseRedis    = "redis"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	Options          models.OptionSet
	MaxMessageLength int
	DefaultListLimit int
	MaxListLimit     int
	TimelineSize     int

	AllowedOrigins []string
}

// LoadEnv loads variables from the given dotenv files into the process
// environment. Variables already set win. Missing files are ignored.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ParseFlags parses flags, falls back to environment variables, applies
// defaults and validates the result
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var options, origins string

	fs := flag.NewFlagSet("twosevenths", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite DSN, postgres URL or redis URL)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (memory, sqlite, postgres or redis)")

	// Poll policy
	fs.StringVar(&options, "options", "", "Comma separated poll options")
	fs.IntVar(&cfg.MaxMessageLength, "max-message-length", 0, "Maximum message length in characters")
	fs.IntVar(&cfg.DefaultListLimit, "default-limit", 0, "Messages returned when no limit is given")
	fs.IntVar(&cfg.MaxListLimit, "max-limit", 0, "Upper bound for the messages limit")
	fs.IntVar(&cfg.TimelineSize, "timeline", -1, "Recent votes included in stats (0 disables)")

	fs.StringVar(&origins, "origins", "", "Comma separated CORS origins (empty allows any)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var err error
	if cfg.Port == 0 {
		if cfg.Port, err = envInt("PORT", 3318); err != nil {
			return Config{}, err
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseMemory
		}
	}
	switch cfg.DatabaseType {
	case DatabaseMemory, DatabaseSQLite, DatabasePostgres, DatabaseRedis:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.DatabaseType != DatabaseMemory {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if options == "" {
		options = os.Getenv("POLL_OPTIONS")
	}
	if options == "" {
		cfg.Options = models.DefaultOptionSet()
	} else if cfg.Options, err = models.ParseOptionSet(options); err != nil {
		return Config{}, fmt.Errorf("invalid poll options: %w", err)
	}

	if cfg.MaxMessageLength == 0 {
		if cfg.MaxMessageLength, err = envInt("MAX_MESSAGE_LENGTH", 200); err != nil {
			return Config{}, err
		}
	}
	if cfg.DefaultListLimit == 0 {
		if cfg.DefaultListLimit, err = envInt("DEFAULT_LIST_LIMIT", 20); err != nil {
			return Config{}, err
		}
	}
	if cfg.MaxListLimit == 0 {
		if cfg.MaxListLimit, err = envInt("MAX_LIST_LIMIT", 100); err != nil {
			return Config{}, err
		}
	}
	if cfg.TimelineSize < 0 {
		if cfg.TimelineSize, err = envInt("TIMELINE_SIZE", 100); err != nil {
			return Config{}, err
		}
	}

	if origins == "" {
		origins = os.Getenv("ALLOWED_ORIGINS")
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("invalid port %d", c.Port)
	case c.MaxMessageLength <= 0:
		return errors.New("max message length must be positive")
	case c.DefaultListLimit <= 0:
		return errors.New("default list limit must be positive")
	case c.MaxListLimit < c.DefaultListLimit:
		return fmt.Errorf("max list limit %d is below default list limit %d", c.MaxListLimit, c.DefaultListLimit)
	case c.TimelineSize < 0:
		return errors.New("timeline size cannot be negative")
	}
	return nil
}

func envInt(name string, def int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", name)
	}
	return v, nil
}
