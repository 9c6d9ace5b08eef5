package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geoquery/pkg/config"
)

type testConfig struct {
	Name    string        `env:"CFG_TEST_NAME" envDefault:"geoquery"`
	Port    int           `env:"CFG_TEST_PORT" envDefault:"8080"`
	Enabled bool          `env:"CFG_TEST_ENABLED" envDefault:"true"`
	Window  time.Duration `env:"CFG_TEST_WINDOW" envDefault:"1m"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "geoquery", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.True(t, cfg.Enabled)
		assert.Equal(t, time.Minute, cfg.Window)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("CFG_TEST_NAME", "other")
		t.Setenv("CFG_TEST_PORT", "9090")
		t.Setenv("CFG_TEST_WINDOW", "30s")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "other", cfg.Name)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, 30*time.Second, cfg.Window)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("CFG_TEST_PORT", "eighty")

		var cfg testConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing required", func(t *testing.T) {
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[testConfig](nil), config.ErrNilPointer)
	})
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.env")
	local := filepath.Join(dir, "local.env")
	require.NoError(t, os.WriteFile(base, []byte("CFG_TEST_NAME=base\nCFG_TEST_PORT=7000\n"), 0o600))
	require.NoError(t, os.WriteFile(local, []byte("CFG_TEST_PORT=7001\n"), 0o600))

	t.Run("later files win", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.LoadFiles(&cfg, base, local))
		assert.Equal(t, "base", cfg.Name)
		assert.Equal(t, 7001, cfg.Port)
		_, set := os.LookupEnv("CFG_TEST_NAME")
		assert.False(t, set)
	})

	t.Run("process environment wins", func(t *testing.T) {
		t.Setenv("CFG_TEST_NAME", "process")
		var cfg testConfig
		require.NoError(t, config.LoadFiles(&cfg, base))
		assert.Equal(t, "process", cfg.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg testConfig
		assert.ErrorIs(t, config.LoadFiles(&cfg, filepath.Join(dir, "nope.env")), config.ErrReadingEnvFile)
	})
}

func TestMustLoad(t *testing.T) {
	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("CFG_TEST_REQUIRED", "ok")
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	assert.Equal(t, "ok", cfg.Value)
}
