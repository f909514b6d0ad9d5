package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Rings)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("HANOI_RINGS", "5")
	t.Setenv("HANOI_THEME", "off")
	t.Setenv("HANOI_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Rings)
	assert.Equal(t, "off", cfg.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yml")
	data := "rings: 4\ntheme: contrast\nlog:\n  file: /tmp/hanoi.log\n  encoding: console\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("HANOI_RINGS", "6")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Rings)
	assert.Equal(t, "contrast", cfg.Theme)
	assert.Equal(t, "/tmp/hanoi.log", cfg.Log.File)
	assert.Equal(t, "console", cfg.Log.Encoding)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		msg  string
	}{
		{name: "too many rings", key: "HANOI_RINGS", val: "11", msg: "Config.Rings must be at most 10"},
		{name: "negative rings", key: "HANOI_RINGS", val: "-1", msg: "Config.Rings must be at least 0"},
		{name: "unknown theme", key: "HANOI_THEME", val: "neon", msg: "Config.Theme must be one of [classic contrast off]"},
		{name: "unknown level", key: "HANOI_LOG_LEVEL", val: "trace", msg: "Config.Log.Level must be one of [debug info warn error]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidateRings(t *testing.T) {
	for n := 1; n <= 10; n++ {
		assert.NoError(t, ValidateRings(n))
	}
	assert.EqualError(t, ValidateRings(0), "invalid ring count: value must be at least 1")
	assert.EqualError(t, ValidateRings(11), "invalid ring count: value must be at most 10")
}

func TestDescription(t *testing.T) {
	text := Description()
	assert.Contains(t, text, "HANOI_RINGS")
	assert.Contains(t, text, "HANOI_LOG_FILE")
}
