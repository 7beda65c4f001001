// Package config holds the typed configuration for the curvedemo CLI.
package config

import (
	"math"

	"github.com/spf13/viper"
)

// Config is the root configuration, populated from the config file,
// environment variables and CLI flags via viper.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Demo   DemoConfig   `mapstructure:"demo" yaml:"demo"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"` // "console" or "json"
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`

	// Optional rotating log file; empty disables file output.
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// DemoConfig configures the random curve generation and the evaluation
// angle of the demo command.
type DemoConfig struct {
	Count int     `mapstructure:"count" yaml:"count"`
	Seed  int64   `mapstructure:"seed" yaml:"seed"`
	Angle float64 `mapstructure:"angle" yaml:"angle"` // radians
	Min   float64 `mapstructure:"min" yaml:"min"`
	Max   float64 `mapstructure:"max" yaml:"max"`
}

// SetDefaults registers default values for every configuration key, so that
// viper.Unmarshal yields a fully usable config even without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "curvedemo")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("demo.count", 100)
	v.SetDefault("demo.seed", 1)
	v.SetDefault("demo.angle", math.Pi/4)
	v.SetDefault("demo.min", 1)
	v.SetDefault("demo.max", 100)
}
