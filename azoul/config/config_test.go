package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_HOST", "DB_NAME", "REPLY_DELAY", "ASSISTANT_TIMEOUT", "MINIO_ENDPOINT"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig()

	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, time.Second, cfg.ReplyDelay)
	assert.Equal(t, 5*time.Second, cfg.AssistantTimeout)
	assert.False(t, cfg.DatabaseEnabled())
	assert.False(t, cfg.MinIOEnabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9000")
	t.Setenv("REPLY_DELAY", "250")
	t.Setenv("ASSISTANT_TIMEOUT", "2s")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "azoul")

	cfg := LoadConfig()
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.ReplyDelay)
	assert.Equal(t, 2*time.Second, cfg.AssistantTimeout)
	assert.True(t, cfg.DatabaseEnabled())
}

func TestGetDurationInvalidFallsBack(t *testing.T) {
	t.Setenv("REPLY_DELAY", "soon")
	assert.Equal(t, time.Second, getDuration("REPLY_DELAY", time.Second))
}
