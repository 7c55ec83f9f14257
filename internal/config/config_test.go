package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DRAWBOARD_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Storage.Driver)
	require.Equal(t, "bracketState", cfg.Storage.Key)
	require.Equal(t, "sqlite3", cfg.Storage.SQLiteDriver)
	require.Equal(t, filepath.Join(home, ".local", "share", "drawboard", "drawboard.db"), cfg.Storage.SQLitePath)
	require.Equal(t, "default", cfg.Import.Layout)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "Masters Cup Draw", cfg.UI.Title)
}

func TestLoadFileAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "drawboard.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[storage]
driver = "s3"
key = "cup2026"

[storage.s3]
bucket = "draws"
path_style = true

[import]
layout = "federation"
`), 0o600))
	t.Setenv("DRAWBOARD_LOG_LEVEL", "debug")
	t.Setenv("DRAWBOARD_STORAGE_S3_PREFIX", "masters")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "s3", cfg.Storage.Driver)
	require.Equal(t, "cup2026", cfg.Storage.Key)
	require.Equal(t, "draws", cfg.Storage.S3.Bucket)
	require.True(t, cfg.Storage.S3.PathStyle)
	require.Equal(t, "masters", cfg.Storage.S3.Prefix)
	require.Equal(t, "federation", cfg.Import.Layout)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Storage.Driver = "file"
	cfg.Storage.Dir = "/tmp/draw-state"
	cfg.UI.Title = "Regional Cup"

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestDefaultsIgnoresFile(t *testing.T) {
	home := isolate(t)
	path := DefaultPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[storage]\ndriver = \"memory\"\n"), 0o600))
	t.Setenv("DRAWBOARD_UI_TITLE", "Winter Cup")

	loaded, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "memory", loaded.Storage.Driver)

	cfg, err := Defaults()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Storage.Driver)
	require.Equal(t, "Winter Cup", cfg.UI.Title)
	require.Equal(t, filepath.Join(home, ".local", "share", "drawboard", "drawboard.log"), cfg.Log.Path)
}
