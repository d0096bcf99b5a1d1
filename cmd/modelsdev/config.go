package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	cache "github.com/mutablelogic/go-modelsdev/pkg/cache"
	catalog "github.com/mutablelogic/go-modelsdev/pkg/catalog"
	httpclient "github.com/mutablelogic/go-modelsdev/pkg/httpclient"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds the defaults for the global flags. Flags and environment
// variables take precedence.
type Config struct {
	Endpoint string        `yaml:"endpoint"`
	LogoBase string        `yaml:"logo_base"`
	CacheDir string        `yaml:"cache_dir"`
	Timeout  time.Duration `yaml:"timeout"`
}

//////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// The name of the config file
	configFile = "config.yaml"

	// Request timeout when none is configured
	defaultTimeout = 30 * time.Second
)

//////////////////////////////////////////////////////////////////
// LIFECYCLE

// LoadConfig reads the config file at path. A missing file, or an empty
// path, returns an empty config.
func LoadConfig(path string) (*Config, error) {
	config := new(Config)
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

//////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Vars returns the flag defaults for kong, filling in anything the config
// file leaves unset
func (c *Config) Vars(name string) kong.Vars {
	vars := kong.Vars{
		"endpoint":  c.Endpoint,
		"logo_base": c.LogoBase,
		"cache_dir": c.CacheDir,
		"timeout":   c.Timeout.String(),
	}
	if c.Endpoint == "" {
		vars["endpoint"] = httpclient.DefaultEndpoint
	}
	if c.LogoBase == "" {
		vars["logo_base"] = catalog.DefaultLogoBase
	}
	if c.CacheDir == "" {
		if dir, err := cache.DefaultDir(name); err == nil {
			vars["cache_dir"] = dir
		}
	}
	if c.Timeout <= 0 {
		vars["timeout"] = defaultTimeout.String()
	}
	return vars
}

//////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func configPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, name, configFile)
}
