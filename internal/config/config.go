// Package config loads optional gosbc settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosbc/internal/is800"
	"gopkg.in/yaml.v3"
)

// Default file locations
const (
	DefaultInput  = "beam_design_input.txt"
	DefaultOutput = "beam_design_output.txt"
	DefaultFile   = "gosbc.yaml"
)

// Config represents gosbc configuration options
type Config struct {
	// Input is the test case file (.txt or .xlsx)
	Input string `yaml:"input"`

	// Output is the text report path
	Output string `yaml:"output"`

	// XLSX, when set, also writes the results to this workbook
	XLSX string `yaml:"xlsx"`

	// PDF, when set, also writes a calculation sheet to this file
	PDF string `yaml:"pdf"`

	// PlotDir, when set, receives one deflected-shape image per case
	PlotDir string `yaml:"plot_dir"`

	// Project is printed on the PDF calculation sheet
	Project string `yaml:"project"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Factors overrides the design constants
	Factors is800.Factors `yaml:"factors"`
}

// DefaultConfig returns a Config that reproduces the fixed behaviour
func DefaultConfig() *Config {
	return &Config{
		Input:    DefaultInput,
		Output:   DefaultOutput,
		LogLevel: "warn",
		Factors:  is800.DefaultFactors(),
	}
}

// LoadConfig loads configuration from path.
// A missing file yields the defaults; a malformed one is an error.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required paths and factors
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("invalid config: input path is empty")
	}
	if c.Output == "" {
		return fmt.Errorf("invalid config: output path is empty")
	}
	if err := c.Factors.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
