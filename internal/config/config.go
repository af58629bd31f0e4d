// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	APIBaseURL string
	ListenAddr string
	APITimeout time.Duration
}

// Load reads configuration from environment variables and returns a
// validated Config. ACESSOPAINEL_API_BASE_URL is required and must be an
// absolute URL; the console is useless without the directory API behind
// it. Optional variables with defaults: ACESSOPAINEL_LISTEN_ADDR
// (127.0.0.1:8080), ACESSOPAINEL_API_TIMEOUT (30s).
func Load() (*Config, error) {
	baseURL := os.Getenv("ACESSOPAINEL_API_BASE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("ACESSOPAINEL_API_BASE_URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("ACESSOPAINEL_API_BASE_URL %q is not an absolute URL", baseURL)
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("ACESSOPAINEL_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	apiTimeout := 30 * time.Second
	if v, ok := os.LookupEnv("ACESSOPAINEL_API_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("ACESSOPAINEL_API_TIMEOUT has invalid duration %q: %w", v, err)
		}
		apiTimeout = parsed
	}

	return &Config{
		APIBaseURL: baseURL,
		ListenAddr: listenAddr,
		APITimeout: apiTimeout,
	}, nil
}
