package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config dir at an empty temp dir so a real
// ~/.statusdeck/statusdeck.yaml never leaks into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STATUSDECK_CONFIG_DIR", dir)
	return dir
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("dir", "", "")
	fs.String("backend", DefaultBackend, "")
	fs.Duration("debounce", DefaultDebounce, "")
	fs.String("log-level", DefaultLogLevel, "")
	fs.Bool("mouse", true, "")
	fs.String("format", "json", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Dir)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, DefaultDebounce, cfg.Debounce)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Mouse)
	assert.Empty(t, cfg.FileUsed)
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)

	yml := "backend: sqlite\ndebounce: 2s\nlog_level: warn\nmouse: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "statusdeck.yaml"), []byte(yml), 0o644))

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := Load("", testFlags())
		require.NoError(t, err)
		assert.Equal(t, BackendSQLite, cfg.Backend)
		assert.Equal(t, 2*time.Second, cfg.Debounce)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.False(t, cfg.Mouse)
		assert.Equal(t, filepath.Join(dir, "statusdeck.yaml"), cfg.FileUsed)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("STATUSDECK_LOG_LEVEL", "debug")
		cfg, err := Load("", testFlags())
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, BackendSQLite, cfg.Backend)
	})

	t.Run("changed flags over env", func(t *testing.T) {
		t.Setenv("STATUSDECK_BACKEND", "sqlite")
		fs := testFlags()
		require.NoError(t, fs.Parse([]string{"--backend", "file", "--debounce", "250ms", "--format", "table"}))

		cfg, err := Load("", fs)
		require.NoError(t, err)
		assert.Equal(t, BackendFile, cfg.Backend)
		assert.Equal(t, 250*time.Millisecond, cfg.Debounce)
		// Unchanged flags do not clobber lower layers.
		assert.False(t, cfg.Mouse)
	})
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: /tmp/deck\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/deck", cfg.Dir)
	assert.Equal(t, path, cfg.FileUsed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_ConfigDirEnvIsNotAKey(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Dir, "STATUSDECK_CONFIG_DIR=%s must not populate dir", dir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "ok", cfg: Config{Backend: "file", Debounce: time.Second, LogLevel: "info"}},
		{name: "backend is normalised", cfg: Config{Backend: " SQLite ", Debounce: time.Second, LogLevel: "info"}},
		{name: "unknown backend", cfg: Config{Backend: "redis", Debounce: time.Second, LogLevel: "info"}, wantErr: true},
		{name: "zero debounce", cfg: Config{Backend: "file", LogLevel: "info"}, wantErr: true},
		{name: "bad level", cfg: Config{Backend: "file", Debounce: time.Second, LogLevel: "loud"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLevel(t *testing.T) {
	cfg := Config{LogLevel: "debug"}
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)
}
