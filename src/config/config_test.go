package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "8888", cfg.AppURI)
	assert.Equal(t, "admin", cfg.DefaultAdminUsername)
	assert.Equal(t, 20971520, cfg.UploadMaxBytes)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}

func TestOrigins(t *testing.T) {
	cfg := &Config{AllowedOrigins: " http://a.com , ,http://b.com"}
	assert.Equal(t, "http://a.com,http://b.com", cfg.Origins())

	cfg.AllowedOrigins = ""
	assert.Equal(t, "*", cfg.Origins())
}
