package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms/core/config"
)

type testConfig struct {
	Name  string `env:"CONFIG_TEST_NAME" envDefault:"fallback"`
	Level int    `env:"CONFIG_TEST_LEVEL" envDefault:"3"`
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_REQUIRED_SECRET,required"`
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_NAME", "first")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Name)
	assert.Equal(t, 3, cfg.Level)

	t.Setenv("CONFIG_TEST_NAME", "second")

	var again testConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Name, "second load must come from cache")
}

func TestLoad_Required(t *testing.T) {
	var cfg requiredConfig
	require.Error(t, config.Load(&cfg))
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_NilTarget(t *testing.T) {
	require.Error(t, config.Load[testConfig](nil))
}
