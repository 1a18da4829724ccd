// Package config resolves shopctl settings from the environment.
//
// Precedence: real environment variables win, then values loaded from an
// optional .env file in the working directory, then built-in defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL  = "https://server.aptech.io"
	defaultHTTPTimeout = "30s"
	defaultAppEnv      = "local"
	defaultStubAddr    = ":8080"
	defaultJWTSecret   = "change-me-in-production"
	defaultSessionName = "session.json"
)

var (
	loadOnce sync.Once

	mu     sync.RWMutex
	values = defaultValues()
)

func defaultValues() map[string]string {
	return map[string]string{
		"API_BASE_URL": defaultAPIBaseURL,
		"HTTP_TIMEOUT": defaultHTTPTimeout,
		"APP_ENV":      defaultAppEnv,
		"STUB_ADDR":    defaultStubAddr,
		"JWT_SECRET":   defaultJWTSecret,
		"SESSION_FILE": "",
	}
}

// Load reads the optional .env file once. A missing file is not an error.
func Load() error {
	loadOnce.Do(func() {
		_ = godotenv.Load()
	})
	return nil
}

// APIBaseURL is the root of the remote back-office API.
func APIBaseURL() string {
	_ = Load()
	return strings.TrimRight(get("API_BASE_URL", defaultAPIBaseURL), "/")
}

// HTTPTimeout is the per-request transport timeout.
func HTTPTimeout() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("HTTP_TIMEOUT", defaultHTTPTimeout))
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// AppEnv returns "local", "production", etc. Controls log handler selection.
func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// SessionFile is where the login session is persisted.
// Defaults to ~/.shopctl/session.json.
func SessionFile() string {
	_ = Load()
	if f := get("SESSION_FILE", ""); f != "" {
		return f
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".shopctl", defaultSessionName)
	}
	return filepath.Join(home, ".shopctl", defaultSessionName)
}

// StubAddr is the listen address for the local API stub.
func StubAddr() string {
	_ = Load()
	return get("STUB_ADDR", defaultStubAddr)
}

// JWTSecret signs the tokens issued by the local API stub.
func JWTSecret() string {
	_ = Load()
	return get("JWT_SECRET", defaultJWTSecret)
}

func get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	mu.RLock()
	defer mu.RUnlock()

	if v := strings.TrimSpace(values[key]); v != "" {
		return v
	}
	return fallback
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
