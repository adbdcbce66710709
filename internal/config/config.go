package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      string `env:"PORT" envDefault:"8000"`
	Seed      uint64 `env:"COURIERVERSE_SEED"` // 0 picks a random seed
	RulesFile string `env:"COURIERVERSE_RULES"`
	Debug     bool   `env:"COURIERVERSE_DEBUG"`
}

// FromEnv loads server settings from the environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
