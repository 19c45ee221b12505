package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL: "https://backend.example.com",
			Timeout: 15 * time.Second,
		},
		Storage: StorageConfig{Dir: "/tmp/storefront"},
		Logger:  LoggerConfig{Level: "info", Format: "console"},
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"https", "https://backend.example.com", false},
		{"http", "http://localhost:8080", false},
		{"missing scheme", "backend.example.com", true},
		{"unsupported scheme", "ftp://backend.example.com", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Backend.BaseURL = tt.baseURL
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate_Timeout(t *testing.T) {
	cfg := validConfig()
	cfg.Backend.Timeout = 0
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_LogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logger.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_LogFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logger.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_StorageDir(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Dir = ""
	assert.Error(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.NotEmpty(t, cfg.Storage.Dir)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storefront.yaml")
	content := []byte("backend:\n  base_url: https://market.example.com\nlogger:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://market.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestAuthConfig_BearerToken(t *testing.T) {
	t.Run("inline token wins", func(t *testing.T) {
		auth := AuthConfig{Token: "inline", TokenFile: "/does/not/matter"}
		token, err := auth.BearerToken()
		require.NoError(t, err)
		assert.Equal(t, "inline", token)
	})

	t.Run("token file trimmed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0o600))

		auth := AuthConfig{TokenFile: path}
		token, err := auth.BearerToken()
		require.NoError(t, err)
		assert.Equal(t, "from-file", token)
	})

	t.Run("nothing configured means logged out", func(t *testing.T) {
		auth := AuthConfig{}
		token, err := auth.BearerToken()
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("unreadable token file", func(t *testing.T) {
		auth := AuthConfig{TokenFile: filepath.Join(t.TempDir(), "missing")}
		_, err := auth.BearerToken()
		assert.Error(t, err)
	})
}
