package config

import (
	"errors"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix is the prefix of every environment override, i.e., POKERHANDS_LOG_LEVEL
const envPrefix = "pokerhands"

// configFileEnv names the YAML configuration file
const configFileEnv = "POKERHANDS_CONFIG_FILE"

const defaultConfigFile = "config.yaml"

// Config provides configuration for the poker hands tools
type Config struct {
	loaded bool
	// Addr is the listen address of the HTTP server
	Addr string `yaml:"addr" envconfig:"addr"`
	// Seed makes dealing reproducible when non-zero
	Seed     int64          `yaml:"seed" envconfig:"seed"`
	Log      LogConfig      `yaml:"log"`
	Simulate SimulateConfig `yaml:"simulate"`
}

// LogConfig configures logrus
type LogConfig struct {
	Level             string `yaml:"level" envconfig:"level"`
	Format            string `yaml:"format" envconfig:"format"`
	DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
}

// SimulateConfig configures the category frequency simulation
type SimulateConfig struct {
	Workers int `yaml:"workers" envconfig:"workers"`
	Hands   int `yaml:"hands" envconfig:"hands"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	return Config{
		Addr: ":5000",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Simulate: SimulateConfig{
			Workers: 4,
			Hands:   100000,
		},
	}
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The defaults are overlaid with the YAML file, then with environment variables.
// A missing config.yaml is ignored unless POKERHANDS_CONFIG_FILE names it explicitly.
func Load() error {
	cfg := DefaultConfig()

	configFile, explicit := os.LookupEnv(configFileEnv)
	if !explicit {
		configFile = defaultConfigFile
	}

	if err := decodeFile(configFile, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func decodeFile(name string, cfg *Config) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && err != io.EOF {
		return err
	}

	return nil
}
