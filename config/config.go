// SPDX-License-Identifier: MIT

// Package config loads the avomst run configuration from YAML.
//
// Unset fields take the values of their `default` tags (creasty/defaults);
// the result is checked with go-playground/validator before use.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/avomst/etl"
)

// ErrInvalidConfig wraps every load, default or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log configures the logger package.
type Log struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
	Output string `yaml:"output" default:"stderr" validate:"required"`
}

// Config is the full run configuration.
type Config struct {
	// Input is the source CSV.
	Input string `yaml:"input" default:"data/avocado.csv" validate:"required"`

	// Output is the tree file written by export.
	Output string `yaml:"output" default:"data/mst.txt" validate:"required"`

	// AvocadoType is the kept value of the type column.
	AvocadoType string `yaml:"avocado_type" default:"conventional" validate:"required"`

	// ExcludeRegions lists dropped regions; nil means etl.NonCities.
	ExcludeRegions []string `yaml:"exclude_regions" validate:"dive,required"`

	// Method is the MST algorithm.
	Method string `yaml:"method" default:"kruskal" validate:"oneof=kruskal prim"`

	// Root is Prim's start region; empty means the first region.
	Root string `yaml:"root"`

	// Workers bounds correlation parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`

	// Layout is the export file layout.
	Layout string `yaml:"layout" default:"regions" validate:"oneof=regions indexed"`

	// Describe prints the tree to stdout after writing it.
	Describe *bool `yaml:"describe" default:"true"`

	Log Log `yaml:"log"`
}

var validate = validator.New()

// Default returns a configuration with every default applied.
// It panics if the struct tags are inconsistent.
func Default() Config {
	var c Config
	if err := c.finish(); err != nil {
		panic(err)
	}

	return c
}

// Load reads path, applies defaults and validates.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
	}

	return Parse(b)
}

// Parse decodes YAML bytes, applies defaults and validates.
func Parse(b []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("%w: parse: %v", ErrInvalidConfig, err)
	}
	if err := c.finish(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// DescribeEnabled reports the effective describe switch.
func (c *Config) DescribeEnabled() bool {
	return c.Describe == nil || *c.Describe
}

// ETLOptions converts the filtering fields.
func (c *Config) ETLOptions() etl.Options {
	o := etl.Options{Type: c.AvocadoType, Exclude: c.ExcludeRegions}
	if o.Exclude == nil {
		o.Exclude = append([]string(nil), etl.NonCities...)
	}

	return o
}

func (c *Config) finish() error {
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("%w: defaults: %v", ErrInvalidConfig, err)
	}

	return c.Validate()
}
