package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"rcv/tally"
)

// Config is the optional run configuration of the rcv command.
type Config struct {
	// Verbosity is the trace threshold, overridden by the -log flag.
	Verbosity int        `yaml:"verbosity"`
	Log       zap.Config `yaml:"log"`
}

// Default logs trace events to stdout in console form, without timestamps.
func Default() *Config {
	return &Config{
		Log: zap.Config{
			Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
			Encoding:         "console",
			OutputPaths:      []string{"stdout"},
			ErrorOutputPaths: []string{"stderr"},
			EncoderConfig: zapcore.EncoderConfig{
				MessageKey:  "m",
				LevelKey:    "l",
				EncodeLevel: zapcore.CapitalLevelEncoder,
			},
		},
	}
}

// Load reads a YAML file over Default.
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Verbosity < int(tally.LevelQuiet) || c.Verbosity > int(tally.LevelDropMinVotes) {
		return errors.Errorf("verbosity must be between %d and %d", tally.LevelQuiet, tally.LevelDropMinVotes)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return errors.Errorf("log.encoding %q is not json or console", c.Log.Encoding)
	}
	if len(c.Log.OutputPaths) == 0 {
		return errors.New("log.outputPaths is required")
	}
	return nil
}
