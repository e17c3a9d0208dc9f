package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort         = 3318
	DefaultSQLitePath   = "rahad-campaign.db"
	DefaultGenAIModel   = "gemini-3-flash-preview"
	DefaultSheetTimeout = 15 * time.Second
	DefaultPollGap      = 30 * time.Second
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	AdminPassword string

	GenAIAPIKey string
	GenAIModel  string

	SheetURL     string
	SheetTimeout time.Duration

	PollActivityGap time.Duration

	StaticDir string
}

// ParseFlags validates flags and falls back to the environment.
// A .env file in the working directory is loaded first; it never overrides
// variables that are already set.
func ParseFlags(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("rahad-campaign", flag.ContinueOnError)

	// Network and storage
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.StaticDir, "static", "", "Directory with the built site, served at /")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin dashboard password (prefer env)")
	fs.StringVar(&cfg.GenAIAPIKey, "genai-key", "", "Generative text API key (prefer env)")

	// Integrations
	fs.StringVar(&cfg.GenAIModel, "genai-model", "", "Generative text model")
	fs.StringVar(&cfg.SheetURL, "sheet-url", "", "Spreadsheet web app URL")
	fs.DurationVar(&cfg.SheetTimeout, "sheet-timeout", 0, "Spreadsheet request timeout")
	fs.DurationVar(&cfg.PollActivityGap, "poll-gap", 0, "Gap after which simulated poll activity is added")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLitePath
	}

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
	}

	// Secrets - admin password MUST be provided
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	// The assistant degrades to its fallback replies without a key
	if cfg.GenAIAPIKey == "" {
		cfg.GenAIAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.GenAIAPIKey == "" {
		cfg.GenAIAPIKey = os.Getenv("API_KEY")
	}

	if cfg.GenAIModel == "" {
		cfg.GenAIModel = os.Getenv("GENAI_MODEL")
		if cfg.GenAIModel == "" {
			cfg.GenAIModel = DefaultGenAIModel
		}
	}

	if cfg.SheetURL == "" {
		cfg.SheetURL = os.Getenv("GOOGLE_SHEET_APP_URL")
	}

	var err error
	if cfg.SheetTimeout == 0 {
		cfg.SheetTimeout, err = durationEnv("SHEET_TIMEOUT", DefaultSheetTimeout)
		if err != nil {
			return Config{}, err
		}
	}
	if cfg.PollActivityGap == 0 {
		cfg.PollActivityGap, err = durationEnv("POLL_ACTIVITY_GAP", DefaultPollGap)
		if err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return d, nil
}
