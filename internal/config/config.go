package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	AliveInterval     time.Duration `mapstructure:"alive_interval" yaml:"alive_interval"`
	MaxFrameSize      int64         `mapstructure:"max_frame_size" yaml:"max_frame_size"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns configuration with reasonable starter defaults. An
// AliveInterval of zero disables the heartbeat.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		AliveInterval:     5 * time.Second,
		MaxFrameSize:      1 << 16,
		LogLevel:          "info",
	}
}
