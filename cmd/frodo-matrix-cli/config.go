package main

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	frodomatrix "github.com/BackendStack21/frodo-matrix-go"
	"github.com/BackendStack21/frodo-matrix-go/core"
)

const (
	configFlag   = "config"
	levelFlag    = "level"
	strategyFlag = "strategy"
	nFlag        = "n"
	qFlag        = "q"
	seedLenFlag  = "seed-len"
	workersFlag  = "workers"
)

// FileConfig is the YAML configuration accepted by --config.
// Zero values leave the preset untouched.
type FileConfig struct {
	Level    frodomatrix.Level    `yaml:"level"`
	Strategy frodomatrix.Strategy `yaml:"strategy"`
	N        int                  `yaml:"n"`
	Q        int                  `yaml:"q"`
	SeedLen  int                  `yaml:"seed_len"`
	Workers  int                  `yaml:"workers"`
}

// loadConfig reads a YAML file and rejects unknown keys.
func loadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config %s", path)
	}
	var cfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "cannot parse config %s", path)
	}
	return &cfg, nil
}

func paramFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    configFlag,
			Aliases: []string{"c"},
			Usage:   "YAML file with level, strategy, n, q, seed_len and workers",
			EnvVars: []string{"FRODO_MATRIX_CONFIG"},
		},
		&cli.StringFlag{
			Name:    levelFlag,
			Aliases: []string{"l"},
			Usage:   "Parameter size: FrodoKEM-640, FrodoKEM-976 or FrodoKEM-1344",
			Value:   string(frodomatrix.Frodo640),
		},
		&cli.StringFlag{
			Name:    strategyFlag,
			Aliases: []string{"s"},
			Usage:   "Expansion strategy: shake128 or aes128",
			Value:   string(frodomatrix.SHAKE128),
		},
		&cli.IntFlag{
			Name:  nFlag,
			Usage: "Override the matrix dimension of the preset",
		},
		&cli.IntFlag{
			Name:  qFlag,
			Usage: "Override the modulus of the preset (power of two, at most 65536)",
		},
		&cli.IntFlag{
			Name:  seedLenFlag,
			Usage: "Override the seed length in bytes (shake128 only, 0 accepts any)",
		},
		&cli.IntFlag{
			Name:  workersFlag,
			Usage: "Goroutines per matrix, 0 uses GOMAXPROCS",
		},
	}
}

// resolveParams layers preset <- config file <- explicit flags.
func resolveParams(c *cli.Context) (frodomatrix.Params, int, error) {
	cfg := FileConfig{
		Level:    frodomatrix.Level(c.String(levelFlag)),
		Strategy: frodomatrix.Strategy(c.String(strategyFlag)),
	}
	seedLenSet := false
	if path := c.String(configFlag); path != "" {
		fileCfg, err := loadConfig(path)
		if err != nil {
			return frodomatrix.Params{}, 0, err
		}
		if fileCfg.Level != "" {
			cfg.Level = fileCfg.Level
		}
		if fileCfg.Strategy != "" {
			cfg.Strategy = fileCfg.Strategy
		}
		cfg.N = fileCfg.N
		cfg.Q = fileCfg.Q
		cfg.Workers = fileCfg.Workers
		if fileCfg.SeedLen != 0 {
			cfg.SeedLen = fileCfg.SeedLen
			seedLenSet = true
		}
	}
	if c.IsSet(levelFlag) {
		cfg.Level = frodomatrix.Level(c.String(levelFlag))
	}
	if c.IsSet(strategyFlag) {
		cfg.Strategy = frodomatrix.Strategy(c.String(strategyFlag))
	}
	if c.IsSet(nFlag) {
		cfg.N = c.Int(nFlag)
	}
	if c.IsSet(qFlag) {
		cfg.Q = c.Int(qFlag)
	}
	if c.IsSet(seedLenFlag) {
		cfg.SeedLen = c.Int(seedLenFlag)
		seedLenSet = true
	}
	if c.IsSet(workersFlag) {
		cfg.Workers = c.Int(workersFlag)
	}

	params, err := core.GetParams(cfg.Level, cfg.Strategy)
	if err != nil {
		return frodomatrix.Params{}, 0, err
	}
	if cfg.N != 0 || cfg.Q != 0 {
		params.Level = ""
	}
	if cfg.N != 0 {
		params.N = cfg.N
	}
	if cfg.Q != 0 {
		params.Q = cfg.Q
	}
	if seedLenSet {
		params.SeedLen = cfg.SeedLen
	}
	if err := core.ValidateParams(params); err != nil {
		return frodomatrix.Params{}, 0, errors.Wrap(err, "invalid parameters")
	}
	return params, cfg.Workers, nil
}
