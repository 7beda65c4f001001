package config

import (
	"math"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "curvedemo", cfg.Logger.ServiceName)
	assert.Empty(t, cfg.Logger.LogFile)

	assert.Equal(t, 100, cfg.Demo.Count)
	assert.Equal(t, int64(1), cfg.Demo.Seed)
	assert.Equal(t, math.Pi/4, cfg.Demo.Angle)
	assert.Equal(t, 1.0, cfg.Demo.Min)
	assert.Equal(t, 100.0, cfg.Demo.Max)
}

func TestUnmarshalOverridesDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("demo.count", 7)
	v.Set("demo.seed", 42)
	v.Set("logger.level", "debug")

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, 7, cfg.Demo.Count)
	assert.Equal(t, int64(42), cfg.Demo.Seed)
	assert.Equal(t, "debug", cfg.Logger.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, math.Pi/4, cfg.Demo.Angle)
}
