// config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Port           string
	AppName        string
	Storage        string
	DatabaseURL    string
	AllowedOrigins string
	GatewayToken   string

	LogLevel  log.Level
	LogFormat string

	NatsURL     string
	NatsToken   string
	NatsSubject string

	DirectoryURL   string
	DirectoryToken string

	SnapshotBucket   string
	SnapshotInterval time.Duration
	R2AccountID      string
	R2AccessKeyID    string
	R2AccessSecret   string
	S3Endpoint       string
}

// LoadEnv reads .env when present. A missing file is not an error.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Info("No .env file found, reading environment variables directly")
	}
}

// Load builds the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:           getenv("PORT", "5200"),
		AppName:        getenv("APP_NAME", "partidasApp"),
		Storage:        strings.ToLower(getenv("STORAGE", StoragePostgres)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		GatewayToken:   os.Getenv("GATEWAY_TOKEN"),
		LogFormat:      strings.ToLower(getenv("LOG_FORMAT", "text")),
		NatsURL:        os.Getenv("NATS_URL"),
		NatsToken:      os.Getenv("NATS_TOKEN"),
		NatsSubject:    os.Getenv("NATS_SUBJECT"),
		DirectoryURL:   os.Getenv("DIRECTORY_URL"),
		DirectoryToken: os.Getenv("DIRECTORY_TOKEN"),
		SnapshotBucket: os.Getenv("SNAPSHOT_BUCKET"),
		R2AccountID:    os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
		R2AccessKeyID:  os.Getenv("R2_ACCESS_KEY_ID"),
		R2AccessSecret: os.Getenv("R2_ACCESS_KEY_SECRET"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
	}

	origins := strings.Split(getenv("ALLOWED_ORIGINS", "http://localhost:3000"), ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	cfg.AllowedOrigins = strings.Join(origins, ",")

	level, err := log.ParseLevel(getenv("LOG_LEVEL", "info"))
	if err != nil {
		return cfg, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return cfg, fmt.Errorf("invalid LOG_FORMAT %q (use text or json)", cfg.LogFormat)
	}

	switch cfg.Storage {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return cfg, fmt.Errorf("DATABASE_URL environment variable not set")
		}
	case StorageMemory:
	default:
		return cfg, fmt.Errorf("invalid STORAGE %q (use postgres or memory)", cfg.Storage)
	}

	cfg.SnapshotInterval, err = time.ParseDuration(getenv("SNAPSHOT_INTERVAL", "1h"))
	if err != nil {
		return cfg, fmt.Errorf("invalid SNAPSHOT_INTERVAL: %w", err)
	}
	if cfg.SnapshotInterval <= 0 {
		return cfg, fmt.Errorf("SNAPSHOT_INTERVAL must be positive")
	}
	if cfg.SnapshotBucket != "" && cfg.S3Endpoint == "" && cfg.R2AccountID == "" {
		return cfg, fmt.Errorf("SNAPSHOT_BUCKET requires S3_ENDPOINT or CLOUDFLARE_ACCOUNT_ID")
	}

	return cfg, nil
}

// SetupLogging applies level and formatter to the global logrus logger.
func SetupLogging(cfg Config) {
	log.SetLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stdout)
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
