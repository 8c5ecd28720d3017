// Package config handles configuration loading for the linter and the server.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Orientation is the policy applied to polygon ring winding.
type Orientation string

const (
	// OrientationIgnore skips the winding audit.
	OrientationIgnore Orientation = "ignore"
	// OrientationWarn reports badly wound rings but accepts the document.
	OrientationWarn Orientation = "warn"
	// OrientationReject makes a badly wound ring a validation failure.
	OrientationReject Orientation = "reject"
)

// Defaults.
const (
	DefaultMaxBodyBytes = 4 << 20
	DefaultIndent       = 0
	DefaultFetchTimeout = 30 * time.Second
)

var ErrInvalid = errors.New("invalid configuration")

// Config represents the root configuration file structure.
type Config struct {
	Orientation  Orientation   `yaml:"orientation,omitempty" json:"orientation"`
	MaxBodyBytes int64         `yaml:"max_body_bytes,omitempty" json:"max_body_bytes"`
	Indent       int           `yaml:"indent,omitempty" json:"indent"`
	FetchTimeout time.Duration `yaml:"fetch_timeout,omitempty" json:"fetch_timeout"`
	AllowRemote  bool          `yaml:"allow_remote,omitempty" json:"allow_remote"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Orientation:  OrientationWarn,
		MaxBodyBytes: DefaultMaxBodyBytes,
		Indent:       DefaultIndent,
		FetchTimeout: DefaultFetchTimeout,
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// An empty path yields Default. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Orientation {
	case OrientationIgnore, OrientationWarn, OrientationReject:
	default:
		return fmt.Errorf("%w: orientation %q, expected ignore, warn or reject", ErrInvalid, c.Orientation)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max_body_bytes must be > 0", ErrInvalid)
	}
	if c.Indent < 0 || c.Indent > 8 {
		return fmt.Errorf("%w: indent must be between 0 and 8", ErrInvalid)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%w: fetch_timeout must be > 0", ErrInvalid)
	}
	return nil
}

// ParseOrientation converts a flag value into an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	o := Orientation(s)
	switch o {
	case OrientationIgnore, OrientationWarn, OrientationReject:
		return o, nil
	}
	return "", fmt.Errorf("%w: orientation %q", ErrInvalid, s)
}
