package config

import (
	"errors"
	"io/fs"
	"os"

	"camelcards/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const defaultConfigFile = "config.yaml"

// Config provides configuration for the camelcards tools
type Config struct {
	loaded    bool
	InputFile string `yaml:"inputFile" envconfig:"input_file"`
	Log       struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	cfg := Config{InputFile: "input.txt"}
	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"

	return cfg
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
// A missing config.yaml is fine, but a missing CAMEL_CONFIG_FILE is not
func Load() error {
	configFile := util.Getenv("CAMEL_CONFIG_FILE", "")
	explicit := configFile != ""
	if !explicit {
		configFile = defaultConfigFile
	}

	cfg := DefaultConfig()

	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if err := envconfig.Process("camel", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
