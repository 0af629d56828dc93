package cli

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"
)

const (
	EnvAPIKey    = "KRAKEN_API_KEY"
	EnvAPISecret = "KRAKEN_API_SECRET"
)

//
// Config is the on-disk configuration of the command-line client.
//
type Config struct {
	PublicKey  string        `yaml:"public_key"`
	PrivateKey string        `yaml:"private_key"`
	RootURL    string        `yaml:"root_url,omitempty"`
	Timeout    time.Duration `yaml:"timeout,omitempty"`
	APIVersion *int          `yaml:"api_version,omitempty"`
}

//
// ConfigPath returns the default location of the configuration file, or an empty string if the home
// directory cannot be determined.
//
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "kraken", "config.yaml")
}

//
// LoadConfig reads the configuration file at the provided path. A missing file is only an error if
// the caller asked for it explicitly; otherwise an empty configuration is returned. Credentials found
// in the environment take precedence over the file.
//
func LoadConfig(path string, explicit bool) (*Config, error) {
	cfg := &Config{}

	data, err := ioutil.ReadFile(path)

	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.PublicKey = v
	}

	if v := os.Getenv(EnvAPISecret); v != "" {
		cfg.PrivateKey = v
	}

	return cfg, nil
}
