// Package config handles bitkernel CLI configuration via YAML files and
// environment variables.
//
// Configuration Precedence (highest to lowest):
//  1. Command-line flags (--metric, --format, etc.)
//  2. Environment variables (BITKERNEL_*)
//  3. Config file (bitkernel.yaml)
//  4. Built-in defaults
//
// Environment Variables (all use BITKERNEL_ prefix):
//   - BITKERNEL_METRIC="tanimoto"
//   - BITKERNEL_FORMAT="bits", "hex" or "counts"
//   - BITKERNEL_PRECISION=4
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/molkit/bitkernel/pkg/fingerprint"
	"github.com/molkit/bitkernel/pkg/kernel"
)

// Config holds all bitkernel CLI configuration.
type Config struct {
	// Metric is the similarity metric tag (see kernel.SupportedMetrics).
	Metric string `yaml:"metric"`

	// Format is the fingerprint input format: bits, hex or counts.
	Format string `yaml:"format"`

	// Precision is the number of decimal places in printed matrices.
	Precision int `yaml:"precision"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Metric:    string(kernel.MetricTanimoto),
		Format:    string(fingerprint.FormatBits),
		Precision: 4,
	}
}

// LoadFromFile reads a YAML config file over the defaults. A missing
// file is not an error; the defaults are returned.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays BITKERNEL_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("BITKERNEL_METRIC"); v != "" {
		c.Metric = v
	}
	if v := os.Getenv("BITKERNEL_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("BITKERNEL_PRECISION"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Precision = p
		}
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if !kernel.Metric(c.Metric).Valid() {
		return fmt.Errorf("config: unknown metric %q", c.Metric)
	}
	if !fingerprint.Format(c.Format).Valid() {
		return fmt.Errorf("config: unknown fingerprint format %q", c.Format)
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("config: precision %d out of range [0, 17]", c.Precision)
	}
	return nil
}

// FindConfigFile returns the default config file path, preferring the
// working directory.
func FindConfigFile() string {
	for _, p := range []string{"bitkernel.yaml", "bitkernel.yml"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return "bitkernel.yaml"
}
