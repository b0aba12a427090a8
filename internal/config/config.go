package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	UploadDir       string
	NotifyQueueSize int
	NotifyWorkers   int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultUploadDir       = "uploads"
	defaultNotifyQueueSize = 256
	defaultNotifyWorkers   = 4
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", defaultJWTSecret),
		UploadDir:       getString(lookup, "UPLOAD_DIR", defaultUploadDir),
		NotifyQueueSize: getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		NotifyWorkers:   getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("sourcehub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "Directory for uploaded payment proofs")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Notification queue capacity")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of notification delivery workers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
