// SPDX-License-Identifier: MIT

// Package config loads the description of a conceptual space, the batch
// limits and the logging setup from a YAML file, applies environment
// overrides and validates the result.
//
// File layout:
//
//	space:
//	  domains:
//	    - name: color
//	      dimensions: [0, 1, 2]
//	    - name: taste
//	      dimensions: [3]
//	  dimension_names: [hue, saturation, value, sweetness]
//	limits:
//	  max_dimensions: 12
//	  max_boxes: 10
//	  concurrency: 4
//	log:
//	  level: info
//	  format: text
//
// Environment overrides: CONCEPTSPACE_MAX_DIMENSIONS, CONCEPTSPACE_MAX_BOXES,
// CONCEPTSPACE_CONCURRENCY, CONCEPTSPACE_LOG_LEVEL, CONCEPTSPACE_LOG_FORMAT.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/conceptspace/concept"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level configuration.
//
// Thread Safety: safe to read concurrently, not safe to modify after Load.
type Config struct {
	Space  SpaceConfig  `yaml:"space"`
	Limits LimitsConfig `yaml:"limits"`
	Log    LogConfig    `yaml:"log"`
}

// SpaceConfig describes the domain grouping of the space.
type SpaceConfig struct {
	Domains        []DomainConfig `yaml:"domains" validate:"required,min=1,unique=Name,dive"`
	DimensionNames []string       `yaml:"dimension_names" validate:"omitempty,dive,required"`
}

// DomainConfig is one domain and the dimensions it owns.
type DomainConfig struct {
	Name       string `yaml:"name" validate:"required"`
	Dimensions []int  `yaml:"dimensions" validate:"required,min=1,dive,gte=0"`
}

// LimitsConfig bounds batch hypervolume evaluation. 0 disables a limit.
type LimitsConfig struct {
	MaxDimensions int `yaml:"max_dimensions" env:"CONCEPTSPACE_MAX_DIMENSIONS" validate:"gte=0,lte=62"`
	MaxBoxes      int `yaml:"max_boxes" env:"CONCEPTSPACE_MAX_BOXES" validate:"gte=0,lte=62"`
	Concurrency   int `yaml:"concurrency" env:"CONCEPTSPACE_CONCURRENCY" validate:"gte=1"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" env:"CONCEPTSPACE_LOG_LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"CONCEPTSPACE_LOG_FORMAT" validate:"oneof=text json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns a configuration with the batch defaults of package concept
// and info-level text logging. Its Space section is empty and must be filled.
func Default() Config {
	return Config{
		Limits: LimitsConfig{
			MaxDimensions: concept.DefaultMaxDimensions,
			MaxBoxes:      concept.DefaultMaxBoxes,
			Concurrency:   concept.DefaultConcurrency,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path and delegates to Parse.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default, applies environment overrides and
// validates. Unknown YAML keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := env.Parse(&cfg.Limits); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := env.Parse(&cfg.Log); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
