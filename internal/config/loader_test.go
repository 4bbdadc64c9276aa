package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lpbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoader_Defaults(t *testing.T) {
	cfg, err := NewLoader(WithEnvPrefix("LPBENCH_TEST_DEFAULTS_")).Load(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoader_File(t *testing.T) {
	path := writeConfig(t, "items: 5000\nhash: xxhash\nreserve: true\n")

	cfg, err := NewLoader(WithConfigFile(path), WithEnvPrefix("LPBENCH_TEST_FILE_")).Load(nil)
	require.NoError(t, err)

	require.Equal(t, 5000, cfg.Items)
	require.Equal(t, "xxhash", cfg.Hash)
	require.True(t, cfg.Reserve)
	require.Equal(t, Default().Workers, cfg.Workers)
	require.Equal(t, Default().Keys, cfg.Keys)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(
		WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml")),
		WithEnvPrefix("LPBENCH_TEST_MISSING_"),
	).Load(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load config file")
}

func TestLoader_Precedence(t *testing.T) {
	path := writeConfig(t, "items: 5000\nworkers: 2\nhash: xxhash\nlog_level: warn\n")

	t.Setenv("LPBENCH_TEST_PRECEDENCE_WORKERS", "4")
	t.Setenv("LPBENCH_TEST_PRECEDENCE_LOG_LEVEL", "debug")

	loader := NewLoader(WithConfigFile(path), WithEnvPrefix("LPBENCH_TEST_PRECEDENCE_"))
	cfg, err := loader.Load(map[string]any{
		"workers": 8,
	})
	require.NoError(t, err)

	// File over defaults.
	require.Equal(t, 5000, cfg.Items)
	require.Equal(t, "xxhash", cfg.Hash)
	// Env over file.
	require.Equal(t, "debug", cfg.LogLevel)
	// Flags over env.
	require.Equal(t, 8, cfg.Workers)
}

func TestLoader_Validate(t *testing.T) {
	for name, flags := range map[string]map[string]any{
		"zero items":    {"items": 0},
		"zero workers":  {"workers": 0},
		"unknown hash":  {"hash": "crc32"},
		"unknown keys":  {"keys": "uuid"},
		"negative item": {"items": -5},
		"bad log level": {"log_level": "verbose"},
		"no log level":  {"log_level": ""},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewLoader(WithEnvPrefix("LPBENCH_TEST_VALIDATE_")).Load(flags)
			require.Error(t, err)
		})
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	_, err := mapProvider{}.ReadBytes()
	require.ErrorIs(t, err, ErrReadBytesNotSupported)
}
