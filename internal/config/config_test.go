package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir keeps a stray .env or config.yaml in the package directory out of
// the test.
func chdir(t *testing.T) string {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Zero(t, cfg.Backend.Timeout)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, time.Second, cfg.Auth.LoginDelay)
	assert.False(t, cfg.Speech.Enabled)
	assert.Equal(t, 1.0, cfg.RateLimit.RPS)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, "http://localhost:8000", cfg.KnowledgeBaseURL())
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("MEDIEXPLAIN_BACKEND_BASE_URL", "http://analysis:9000")
	t.Setenv("MEDIEXPLAIN_KNOWLEDGE_BASE_URL", "http://kb:9001")
	t.Setenv("MEDIEXPLAIN_STORAGE_DRIVER", "memory")
	t.Setenv("MEDIEXPLAIN_AUTH_LOGIN_DELAY", "250ms")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://analysis:9000", cfg.Backend.BaseURL)
	assert.Equal(t, "http://kb:9001", cfg.KnowledgeBaseURL())
	assert.Equal(t, "memory", cfg.StorageOptions().Driver)
	assert.Equal(t, 250*time.Millisecond, cfg.Auth.LoginDelay)
}

func TestLoadConfigFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  driver: file
  path: ./state.json
backend:
  timeout: 30s
log:
  level: debug
  format: json
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "./state.json", cfg.Storage.Path)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadDefaultOverrides(t *testing.T) {
	chdir(t)
	overrides := []Default{{Key: "storage.driver", Value: "file"}, {Key: "storage.path", Value: "/tmp/profile.json"}}

	cfg, err := Load("", overrides...)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/profile.json", cfg.Storage.Path)

	t.Setenv("MEDIEXPLAIN_STORAGE_DRIVER", "sqlite")
	cfg, err = Load("", overrides...)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdir(t)
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MEDIEXPLAIN_SERVER_ADDR=:9999\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("MEDIEXPLAIN_SERVER_ADDR") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
}

func TestValidate(t *testing.T) {
	chdir(t)
	cfg, err := Load("")
	require.NoError(t, err)

	bad := *cfg
	bad.Storage.Driver = "mongo"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Log.Level = "loud"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Storage.Path = ""
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.RateLimit.RPS = -1
	assert.Error(t, bad.Validate())
}

func TestSetupLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)
	defer log.SetFormatter(&log.TextFormatter{})

	SetupLogging(LogConfig{Level: "debug", Format: "json"})
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	_, isJSON := log.StandardLogger().Formatter.(*log.JSONFormatter)
	assert.True(t, isJSON)
}
