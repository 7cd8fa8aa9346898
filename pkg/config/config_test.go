package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskresolve/pkg/logger"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	c := DefaultConfig(logger.Nop())
	assert.Equal(t, "/run/user/1000/deskresolve.sock", c.GetSocketPath())
	assert.Equal(t, 3*time.Second, c.GetCommandTimeout())
	assert.Equal(t, DefaultEnrichWorkers, c.GetEnrichWorkers())
	assert.Empty(t, c.GetIconTheme())
	assert.Empty(t, c.GetLogFile())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"socket_path": "/tmp/x.sock",
		"command_timeout": "750ms",
		"icon_theme": "Papirus",
		"enrich_workers": 8
	}`), 0644))

	c, err := loadConfigFromPath(path, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.sock", c.GetSocketPath())
	assert.Equal(t, 750*time.Millisecond, c.GetCommandTimeout())
	assert.Equal(t, "Papirus", c.GetIconTheme())
	assert.Equal(t, 8, c.GetEnrichWorkers())
}

func TestLoadFromFileRejectsInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"bad json":         `{`,
		"bad duration":     `{"command_timeout":"soon"}`,
		"negative timeout": `{"command_timeout":"-1s"}`,
		"negative workers": `{"enrich_workers":-2}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := loadConfigFromPath(path, logger.Nop())
			assert.Error(t, err)
		})
	}
}

func TestFindConfigWritesDefault(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	c, err := FindConfig("", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, c.GetCommandTimeout())

	written := filepath.Join(configHome, "deskresolve", "config.json")
	require.FileExists(t, written)

	reloaded, err := loadConfigFromPath(written, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, c.GetSocketPath(), reloaded.GetSocketPath())
	assert.Equal(t, c.GetCommandTimeout(), reloaded.GetCommandTimeout())
}

func TestFindConfigProvidedPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := FindConfig(filepath.Join(t.TempDir(), "missing.json"), logger.Nop())
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"enrich_workers": 2}`), 0644))
	c, err := FindConfig(path, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, c.GetEnrichWorkers())
}

func TestFindConfigFallsBackOnBrokenDefault(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	dir := filepath.Join(configHome, "deskresolve")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("not json"), 0644))

	c, err := FindConfig("", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, DefaultEnrichWorkers, c.GetEnrichWorkers())
}
