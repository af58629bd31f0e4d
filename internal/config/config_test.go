package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every ACESSOPAINEL_ env var that Load() reads.
var allConfigKeys = []string{
	"ACESSOPAINEL_API_BASE_URL",
	"ACESSOPAINEL_LISTEN_ADDR",
	"ACESSOPAINEL_API_TIMEOUT",
}

// isolateConfigEnv saves and unsets all ACESSOPAINEL_ env vars so tests
// don't inherit values from the host environment (e.g. a running dev
// server). t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("ACESSOPAINEL_API_BASE_URL", "https://painel.example.com/api")
	t.Setenv("ACESSOPAINEL_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("ACESSOPAINEL_API_TIMEOUT", "10s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://painel.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("ACESSOPAINEL_API_BASE_URL", "http://localhost/api")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
}

func TestLoad_MissingBaseURL(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ACESSOPAINEL_API_BASE_URL")
}

func TestLoad_RelativeBaseURL(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("ACESSOPAINEL_API_BASE_URL", "/api")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absolute")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("ACESSOPAINEL_API_BASE_URL", "http://localhost/api")
	t.Setenv("ACESSOPAINEL_API_TIMEOUT", "not-a-duration")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ACESSOPAINEL_API_TIMEOUT")
}
