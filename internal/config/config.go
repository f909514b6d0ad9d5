package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Rings int       `yaml:"rings" env:"HANOI_RINGS" env-default:"0" env-description:"Number of rings, 0 asks at startup" validate:"min=0,max=10"`
	Theme string    `yaml:"theme" env:"HANOI_THEME" env-default:"classic" env-description:"Color theme: classic, contrast or off" validate:"oneof=classic contrast off"`
	Log   LogConfig `yaml:"log"`
}

type LogConfig struct {
	File     string `yaml:"file" env:"HANOI_LOG_FILE" env-description:"Log file path, logging is disabled when empty"`
	Level    string `yaml:"level" env:"HANOI_LOG_LEVEL" env-default:"info" env-description:"Log level: debug, info, warn or error" validate:"oneof=debug info warn error"`
	Encoding string `yaml:"encoding" env:"HANOI_LOG_ENCODING" env-default:"json" env-description:"Log encoding: json or console" validate:"oneof=json console"`
}

// Load reads the optional YAML file at path, then the environment, which
// overrides the file.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %s", describe(err))
	}
	return nil
}

// Description lists the environment variables for -h output
func Description() string {
	header := "Environment variables:"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return header
	}
	return text
}
