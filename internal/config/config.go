package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration parsed from YAML scalars such as "250ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds the runtime settings of the adapter.
type Config struct {
	Logger struct {
		Verbosity string `yaml:"verbosity"`
	} `yaml:"logger"`
	Endpoint struct {
		// URL overrides the device's default endpoint when set.
		URL            string   `yaml:"url"`
		RequestTimeout Duration `yaml:"requestTimeout"`
	} `yaml:"endpoint"`
	Job struct {
		PollInterval  Duration `yaml:"pollInterval"`
		ResultTimeout Duration `yaml:"resultTimeout"`
	} `yaml:"job"`
	Auth struct {
		TokensFile string `yaml:"tokensFile"`
	} `yaml:"auth"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	var config Config
	config.applyDefaults()
	return &config
}

// LoadConfig reads a YAML config file and fills unset fields with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Logger.Verbosity == "" {
		c.Logger.Verbosity = "info"
	}
	if c.Endpoint.RequestTimeout == 0 {
		c.Endpoint.RequestTimeout = Duration(30 * time.Second)
	}
	if c.Job.PollInterval == 0 {
		c.Job.PollInterval = Duration(time.Second)
	}
	if c.Job.ResultTimeout == 0 {
		c.Job.ResultTimeout = Duration(60 * time.Second)
	}
}
