package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToDevelopment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")

	cfg, err := New()
	require.NoError(t, err)

	assert.True(t, cfg.DatabaseDebug)
	assert.Equal(t, "./tmp/biblioteca.sqlite", cfg.DatabaseFilePath)
	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.NotZero(t, cfg.RequestTimeout)
	assert.NotZero(t, cfg.DatabaseBusyTimeout)
}

func TestNewTestEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.DatabaseFilePath)
	assert.Zero(t, cfg.ServerPort)
}
