package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENV", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.BodyLimitMB)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "google/gemini-2.5-flash", cfg.LLM.TranscriptionFallbackModel)
	assert.Equal(t, 20, cfg.Interview.PoolLimit)
	assert.Equal(t, 3*time.Second, cfg.Recruit.KeepaliveInterval)
	assert.Equal(t, "https://api.korfit.co.kr/api/v2/recruit", cfg.Recruit.RegisterURL)
	assert.Equal(t, "interview.completed", cfg.NATS.Subject)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := []byte(`
env: production
server:
  port: 9000
db:
  path: /tmp/test.db
interview:
  pool_limit: 5
  lock_ttl: 60
llm:
  api_key: from-file
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	t.Setenv("ENV", "")
	t.Setenv("OPENROUTER_API_KEY", "from-env")
	t.Setenv("DATABASE_PATH", "/tmp/override.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "production", cfg.Logger.Env)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/tmp/override.db", cfg.DB.Path)
	assert.Equal(t, 5, cfg.Interview.PoolLimit)
	assert.Equal(t, time.Minute, cfg.Interview.LockTTL)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
}
