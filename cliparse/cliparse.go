package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store type constants
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Port          int
	StoreType     string // file, sqlite, or postgres
	DataDir       string // file-store documents; also the default sqlite location
	DatabaseURL   string // sqlite path or postgres DSN for the sql backends
	QuestionDir   string
	AdminPassword string
	SessionSalt   string
	SignalTTL     time.Duration // how long an armed signal flag stays true
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quizhost", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "store", "", "Store backend (file, sqlite, or postgres)")
	fs.StringVar(&cfg.DataDir, "data", "", "Data directory for the file store")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database path/URL for the sqlite or postgres store")
	fs.StringVar(&cfg.QuestionDir, "questions", "", "Directory holding round question files")
	fs.DurationVar(&cfg.SignalTTL, "signal-ttl", 0, "Signal flag auto-expiry (e.g. 3m)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin password (prefer env)")
	fs.StringVar(&cfg.SessionSalt, "session-salt", "", "Admin session token salt (prefer env)")

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
			cfg.Port = 3000 // default
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = StoreFile
		}
	}
	switch cfg.StoreType {
	case StoreFile, StoreSQLite, StorePostgres:
	default:
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
		if cfg.DataDir == "" {
			cfg.DataDir = "data"
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.StoreType == StoreSQLite {
		cfg.DatabaseURL = cfg.DataDir + "/quizhost.db"
	}
	if cfg.DatabaseURL == "" && cfg.StoreType == StorePostgres {
		return Config{}, errors.New("postgres store requires -d or DATABASE_URL")
	}

	if cfg.QuestionDir == "" {
		cfg.QuestionDir = os.Getenv("QUESTION_DIR")
		if cfg.QuestionDir == "" {
			cfg.QuestionDir = "questions"
		}
	}

	if cfg.SignalTTL == 0 {
		if ttlStr := os.Getenv("SIGNAL_TTL"); ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid SIGNAL_TTL env variable")
			}
			cfg.SignalTTL = ttl
		} else {
			cfg.SignalTTL = 3 * time.Minute // observed 2-6m across deployments
		}
	}

	// Secrets - MUST be provided
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	if cfg.SessionSalt == "" {
		cfg.SessionSalt = os.Getenv("SESSION_SALT")
	}
	if cfg.SessionSalt == "" {
		return Config{}, errors.New("SESSION_SALT required")
	}

	return cfg, nil
}
