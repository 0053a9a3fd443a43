package config

import (
	"errors"
	"flag"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	FilePath string
	Debug    bool   `env:"DEBUG"   envDefault:"false"`
	LogLvl   string `env:"LOG_LVL" envDefault:"info"`
}

func New() (*Config, error) {
	cfg := &Config{}

	env.Parse(cfg)

	flag.BoolVar(&cfg.Debug, "d", cfg.Debug, "report dropped and rejected records")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	cfg.FilePath = flag.Arg(0)
	if cfg.FilePath == "" {
		return nil, errors.New("missing transactions file path")
	}

	if cfg.Debug {
		cfg.LogLvl = "debug"
	}

	return cfg, nil
}
