package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultAdminPassword = "giftcode-admin"

type Config struct {
	Port              int
	DatabaseURL       string
	DatabaseType      string
	MongoDatabase     string
	AdminPassword     string
	AdminPasswordHash string
	SessionSecret     string
	LogLevel          string
	Env               string
	ConfigPath        string
	CORSOrigins       []string
}

// fileConfig is the optional YAML config file layout
type fileConfig struct {
	Server struct {
		Port        int      `yaml:"port"`
		Env         string   `yaml:"env"`
		LogLevel    string   `yaml:"log_level"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Database struct {
		URL   string `yaml:"url"`
		Type  string `yaml:"type"`
		Mongo string `yaml:"mongo_database"`
	} `yaml:"database"`
	Admin struct {
		Password      string `yaml:"password"`
		PasswordHash  string `yaml:"password_hash"`
		SessionSecret string `yaml:"session_secret"`
	} `yaml:"admin"`
}

// IsDev reports whether the server runs in development mode
func (c Config) IsDev() bool {
	return c.Env == "" || c.Env == "dev" || c.Env == "development"
}

// ParseFlags resolves configuration from flags, then environment, then the
// YAML config file, then defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var corsOrigins string

	fs := flag.NewFlagSet("gift-draw", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or mongo)")
	fs.StringVar(&cfg.MongoDatabase, "mongo-db", "", "MongoDB database name")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Env, "env", "", "Environment (dev or production)")
	fs.StringVar(&cfg.ConfigPath, "c", "", "YAML config file")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma-separated origins allowed to call the API with credentials")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin password (prefer env)")
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Admin session signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.ConfigPath == "" {
		cfg.ConfigPath = os.Getenv("CONFIG_PATH")
	}
	var file fileConfig
	if cfg.ConfigPath != "" {
		data, err := os.ReadFile(cfg.ConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("invalid config file: %w", err)
		}
	}

	// Fall back to environment variables, then the file
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else if file.Server.Port != 0 {
			cfg.Port = file.Server.Port
		} else {
			cfg.Port = 3318 // default
		}
	}

	cfg.DatabaseURL = firstNonEmpty(cfg.DatabaseURL, os.Getenv("DATABASE_URL"), file.Database.URL)
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	cfg.DatabaseType = firstNonEmpty(cfg.DatabaseType, os.Getenv("DATABASE_TYPE"), file.Database.Type, "sqlite")
	switch cfg.DatabaseType {
	case "sqlite", "postgres", "mongo":
	default:
		return Config{}, fmt.Errorf("unsupported DATABASE_TYPE %q", cfg.DatabaseType)
	}
	cfg.MongoDatabase = firstNonEmpty(cfg.MongoDatabase, os.Getenv("MONGODB_DB"), file.Database.Mongo, "giftdraw")

	cfg.LogLevel = firstNonEmpty(cfg.LogLevel, os.Getenv("LOG_LEVEL"), file.Server.LogLevel, "info")
	cfg.Env = firstNonEmpty(cfg.Env, os.Getenv("ENV"), file.Server.Env, "dev")

	if origins := firstNonEmpty(corsOrigins, os.Getenv("CORS_ORIGINS")); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	} else {
		cfg.CORSOrigins = file.Server.CORSOrigins
	}

	cfg.AdminPassword = firstNonEmpty(cfg.AdminPassword, os.Getenv("ADMIN_PASSWORD"), file.Admin.Password, defaultAdminPassword)
	cfg.AdminPasswordHash = firstNonEmpty(os.Getenv("ADMIN_PASSWORD_HASH"), file.Admin.PasswordHash)

	// Secrets - MUST be provided
	cfg.SessionSecret = firstNonEmpty(cfg.SessionSecret, os.Getenv("SESSION_SECRET"), file.Admin.SessionSecret)
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
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
