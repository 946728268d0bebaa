package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and
// flags. External service credentials live here and are handed to the
// collaborators at construction time; business logic never reads the
// environment.
type Config struct {
	RunAddress  string
	DatabaseURI string

	SessionSecret  string
	JWTSecret      string
	MobileTokenTTL time.Duration

	AdminEmail    string
	AdminName     string
	AdminPassword string

	UploadBaseURL  string
	UploadAPIKey   string
	UploadFolder   string
	MaxUploadBytes int64

	PushURL       string
	PushServerKey string
	AMQPURL       string

	RedisAddr         string
	PortfolioCacheTTL time.Duration

	GoogleUserInfoURL string
	GithubUserInfoURL string

	LogLevel        string
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultSessionSecret     = "change-me-in-production"
	defaultAdminName         = "Admin"
	defaultUploadFolder      = "pesanan"
	defaultMaxUploadBytes    = 5 << 20
	defaultMobileTokenTTL    = 30 * 24 * time.Hour
	defaultPortfolioCacheTTL = 10 * time.Minute
	defaultShutdownTimeout   = 10 * time.Second
	defaultGoogleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
	defaultGithubUserInfoURL = "https://api.github.com/user"
	defaultLogLevel          = "info"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		SessionSecret:     getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		JWTSecret:         getString(lookup, "JWT_SECRET", ""),
		MobileTokenTTL:    getDuration(lookup, "MOBILE_TOKEN_TTL", defaultMobileTokenTTL),
		AdminEmail:        getString(lookup, "ADMIN_EMAIL", ""),
		AdminName:         getString(lookup, "ADMIN_NAME", defaultAdminName),
		AdminPassword:     getString(lookup, "ADMIN_PASSWORD", ""),
		UploadBaseURL:     getString(lookup, "UPLOAD_BASE_URL", ""),
		UploadAPIKey:      getString(lookup, "UPLOAD_API_KEY", ""),
		UploadFolder:      getString(lookup, "UPLOAD_FOLDER", defaultUploadFolder),
		MaxUploadBytes:    getInt64(lookup, "MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		PushURL:           getString(lookup, "PUSH_URL", ""),
		PushServerKey:     getString(lookup, "PUSH_SERVER_KEY", ""),
		AMQPURL:           getString(lookup, "AMQP_URL", ""),
		RedisAddr:         getString(lookup, "REDIS_ADDR", ""),
		PortfolioCacheTTL: getDuration(lookup, "PORTFOLIO_CACHE_TTL", defaultPortfolioCacheTTL),
		GoogleUserInfoURL: getString(lookup, "GOOGLE_USERINFO_URL", defaultGoogleUserInfoURL),
		GithubUserInfoURL: getString(lookup, "GITHUB_USERINFO_URL", defaultGithubUserInfoURL),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("portal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.MobileTokenTTL.String()
		cacheTTLStr        = cfg.PortfolioCacheTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing web session cookies")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing mobile bearer tokens")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "Administrator account to provision at startup")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "Password for the provisioned administrator")
	fs.StringVar(&cfg.UploadBaseURL, "upload-url", cfg.UploadBaseURL, "Object store base URL")
	fs.StringVar(&cfg.UploadAPIKey, "upload-key", cfg.UploadAPIKey, "Object store API key")
	fs.StringVar(&cfg.PushURL, "push-url", cfg.PushURL, "Push delivery endpoint")
	fs.StringVar(&cfg.AMQPURL, "amqp-url", cfg.AMQPURL, "AMQP broker URL for lifecycle events")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for the portfolio cache")
	fs.StringVar(&tokenTTLStr, "mobile-token-ttl", tokenTTLStr, "Mobile bearer token lifetime")
	fs.StringVar(&cacheTTLStr, "cache-ttl", cacheTTLStr, "Portfolio cache lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.MobileTokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid mobile token ttl: %w", err)
	}

	if cfg.PortfolioCacheTTL, err = time.ParseDuration(cacheTTLStr); err != nil {
		return nil, fmt.Errorf("invalid cache ttl: %w", err)
	}

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

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = cfg.SessionSecret
	}

	if cfg.MobileTokenTTL <= 0 {
		cfg.MobileTokenTTL = defaultMobileTokenTTL
	}

	if cfg.PortfolioCacheTTL <= 0 {
		cfg.PortfolioCacheTTL = defaultPortfolioCacheTTL
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.UploadBaseURL == "" {
		return nil, fmt.Errorf("object store URL must be provided")
	}

	if (cfg.AdminEmail == "") != (cfg.AdminPassword == "") {
		return nil, fmt.Errorf("admin email and password must be provided together")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
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
