package config

import (
	"github.com/caarlos0/env/v9"
)

// Config holds the decrypt tool configuration. The AES key and IV are
// deliberately absent, they are fixed by the sensor firmware.
type Config struct {
	Logger LoggerConfig
	Output OutputConfig
}

// LoggerConfig is the configuration for the diagnostics logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"console"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"true"`
}

// OutputConfig is the configuration for the human readable stdout output
type OutputConfig struct {
	NoColor bool `env:"SPO2_NO_COLOR" envDefault:"false"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
