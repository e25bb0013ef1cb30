package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("MEETING_MINDER_SESSIONS_DIR", "")
	t.Setenv("MEETING_MINDER_ANALYZER", "")
	t.Setenv("MEETING_MINDER_LOG_LEVEL", "")
	return dir
}

func writeConfigFile(t *testing.T, xdgDir, content string) {
	t.Helper()
	dir := filepath.Join(xdgDir, "meeting-minder")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAnalyzerCommand, cfg.AnalyzerCommand)
	assert.Equal(t, 150*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogPath)
	assert.NotEmpty(t, cfg.SessionsDir)
}

func TestLoadReadsConfigFile(t *testing.T) {
	xdg := isolate(t)
	writeConfigFile(t, xdg, `
sessions_dir = "/var/lib/meetings"
analyzer_command = ["python3", "/opt/analyzer/main.py"]
poll_interval_ms = 250
log_level = "debug"
log_path = "/tmp/meeting-minder.log"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/meetings", cfg.SessionsDir)
	assert.Equal(t, []string{"python3", "/opt/analyzer/main.py"}, cfg.AnalyzerCommand)
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/meeting-minder.log", cfg.LogPath)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	xdg := isolate(t)
	writeConfigFile(t, xdg, `log_level = "warn"`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, DefaultAnalyzerCommand, cfg.AnalyzerCommand)
	assert.Equal(t, 150*time.Millisecond, cfg.PollInterval)
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	xdg := isolate(t)
	writeConfigFile(t, xdg, `
sessions_dir = "/from/file"
log_level = "debug"
`)
	t.Setenv("MEETING_MINDER_SESSIONS_DIR", "/from/env")
	t.Setenv("MEETING_MINDER_ANALYZER", "python3 other.py --fast")
	t.Setenv("MEETING_MINDER_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.SessionsDir)
	assert.Equal(t, []string{"python3", "other.py", "--fast"}, cfg.AnalyzerCommand)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	xdg := isolate(t)
	writeConfigFile(t, xdg, `sessions_dir = [not valid toml`)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
	assert.Contains(t, err.Error(), "config.toml")
}

func TestConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")
	assert.Equal(t, filepath.Join("/custom/xdg", "meeting-minder"), ConfigDir())
}
