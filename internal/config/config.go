package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr    = ":8080"
	defaultStaticDir   = "web/dist"
	defaultTokenName   = "access_token"
	defaultConfigScope = "pamc"
)

// Config holds the console runtime configuration, loaded from the
// environment (and an optional .env file in the working directory).
type Config struct {
	// APIBaseURL is the REST base of the PAM backend.
	APIBaseURL string
	// WSBaseURL is the WebSocket base for the notification channel.
	// Derived from APIBaseURL when not set explicitly.
	WSBaseURL string
	// TokenFile stores the raw bearer token between invocations.
	TokenFile string
	// APITimeout bounds a single backend request. Zero means no timeout.
	APITimeout time.Duration

	// HTTPAddr and StaticDir configure the `serve` mode.
	HTTPAddr  string
	StaticDir string
	// MetricsAddr exposes Prometheus metrics; empty or "off" disables it.
	MetricsAddr string
}

type LoadOptions struct {
	RequireAPIBaseURL bool
}

// Load reads console configuration, requiring a backend API base URL.
func Load() (Config, error) {
	return LoadWithOptions(LoadOptions{RequireAPIBaseURL: true})
}

// LoadOptional reads console configuration without requiring a backend
// API base URL (serve mode hosts static files only).
func LoadOptional() (Config, error) {
	return LoadWithOptions(LoadOptions{RequireAPIBaseURL: false})
}

func LoadWithOptions(opts LoadOptions) (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, err
		}
	}

	cfg := Config{
		APIBaseURL:  strings.TrimRight(strings.TrimSpace(os.Getenv("PAM_API_URL")), "/"),
		WSBaseURL:   strings.TrimRight(strings.TrimSpace(os.Getenv("PAM_API_WS")), "/"),
		TokenFile:   strings.TrimSpace(os.Getenv("PAM_TOKEN_FILE")),
		HTTPAddr:    getenvDefault("HTTP_ADDR", defaultHTTPAddr),
		StaticDir:   getenvDefault("STATIC_DIR", defaultStaticDir),
		MetricsAddr: strings.TrimSpace(os.Getenv("METRICS_ADDR")),
	}

	if v := os.Getenv("API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.APITimeout = d
		}
	}

	if cfg.WSBaseURL == "" && cfg.APIBaseURL != "" {
		cfg.WSBaseURL = deriveWSBase(cfg.APIBaseURL)
	}

	if cfg.TokenFile == "" {
		path, err := defaultTokenFile()
		if err != nil {
			return Config{}, err
		}
		cfg.TokenFile = path
	}

	if opts.RequireAPIBaseURL && cfg.APIBaseURL == "" {
		return cfg, errors.New("PAM_API_URL is required")
	}

	return cfg, nil
}

// deriveWSBase rewrites an http(s) base URL into its ws(s) counterpart.
func deriveWSBase(apiBase string) string {
	switch {
	case strings.HasPrefix(apiBase, "https://"):
		return "wss://" + strings.TrimPrefix(apiBase, "https://")
	case strings.HasPrefix(apiBase, "http://"):
		return "ws://" + strings.TrimPrefix(apiBase, "http://")
	default:
		return apiBase
	}
}

func defaultTokenFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultConfigScope, defaultTokenName), nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
