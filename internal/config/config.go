// Package config loads the decoder's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/matthias-bs/bresser-decode/internal/options"
	"github.com/matthias-bs/bresser-decode/internal/profile"
)

// Config represents the decoder configuration.
type Config struct {
	// Profile names a built-in profile.
	Profile string `yaml:"profile"`
	// ProfileFile points at a YAML profile definition and wins over Profile.
	ProfileFile string `yaml:"profile_file"`
	// Features builds the profile from firmware feature flags and wins over Profile.
	Features []string `yaml:"features"`
	Encoding string   `yaml:"encoding"`
	Server   Server   `yaml:"server"`
	Logging  Logging  `yaml:"logging"`
}

// Server contains the uplink webhook settings.
type Server struct {
	Listen string `yaml:"listen"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Profile:  profile.DefaultName,
		Encoding: string(options.EncodingHex),
		Server: Server{
			Listen: "127.0.0.1:8080",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig reads path and overlays its values on DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that can be verified without I/O.
func (c *Config) Validate() error {
	if c.ProfileFile != "" && len(c.Features) > 0 {
		return errors.New("profile_file and features are mutually exclusive")
	}
	switch options.Encoding(c.Encoding) {
	case options.EncodingHex, options.EncodingBase64:
	default:
		return fmt.Errorf("unsupported encoding %q", c.Encoding)
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.Server.Listen == "" {
		return errors.New("server listen address missing")
	}
	return nil
}

// ResolveProfile returns the profile selected by the configuration.
func (c *Config) ResolveProfile() (profile.Profile, error) {
	switch {
	case c.ProfileFile != "":
		return profile.LoadFile(c.ProfileFile)
	case len(c.Features) > 0:
		return profile.FromFeatures(c.Features)
	case c.Profile != "":
		return profile.Lookup(c.Profile)
	default:
		return profile.Lookup(profile.DefaultName)
	}
}

// LogLevel returns the parsed logging level, falling back to info.
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Logging.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
