package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"dbglog"
	"dbglog/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dbglog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
log_tag: myapp
log_level: debug
time_layout: "15:04:05.000"
omit_caller: true
force_enabled: true
`)

	cfg, err := config.LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "myapp", cfg.LogTag)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "15:04:05.000", cfg.TimeLayout)
	assert.True(t, cfg.OmitCaller)
	assert.True(t, cfg.ForceEnabled)
	assert.Equal(t, dbglog.SeverityDebug, cfg.Severity())
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "log_tag: onlytag\n")

	cfg, err := config.LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "onlytag", cfg.LogTag)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, dbglog.TimeLayout, cfg.TimeLayout)
	assert.False(t, cfg.OmitCaller)
	assert.False(t, cfg.ForceEnabled)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeConfig(t, "log_level: [broken\n")

	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "dbglog", cfg.LogTag)
	assert.Equal(t, dbglog.SeverityInfo, cfg.Severity())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DBGLOG_TAG", "envtag")
	t.Setenv("DBGLOG_LEVEL", "verbose")
	t.Setenv("DBGLOG_ENABLED", "true")
	t.Setenv("DBGLOG_CALLER", "false")

	cfg := config.Default()
	config.ApplyEnv(&cfg)

	assert.Equal(t, "envtag", cfg.LogTag)
	assert.Equal(t, dbglog.SeverityVerbose, cfg.Severity())
	assert.True(t, cfg.ForceEnabled)
	assert.True(t, cfg.OmitCaller)
}

func TestApplyEnvLeavesUnsetValues(t *testing.T) {
	// Shield the test from DBGLOG_* variables in the ambient
	// environment; t.Setenv registers the restore, Unsetenv clears.
	for _, key := range []string{"DBGLOG_TAG", "DBGLOG_LEVEL", "DBGLOG_TIME_LAYOUT", "DBGLOG_ENABLED", "DBGLOG_CALLER"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := config.Default()
	config.ApplyEnv(&cfg)

	assert.Equal(t, "dbglog", cfg.LogTag)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.ForceEnabled)
}

func TestApplyEnvIgnoresBadBool(t *testing.T) {
	t.Setenv("DBGLOG_ENABLED", "maybe")

	cfg := config.Default()
	config.ApplyEnv(&cfg)

	assert.False(t, cfg.ForceEnabled)
}
