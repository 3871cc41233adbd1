// SPDX-License-Identifier: MIT

// Package config holds the batch configuration of the nacagen command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/naca/foilio"
	"github.com/katalvlaran/naca/naca"
	"gopkg.in/yaml.v3"
)

// CanonicalKeyword in Profiles expands to every canonical designator.
const CanonicalKeyword = "canonical"

// Environment variables that override file values.
const (
	EnvFormat    = "NACAGEN_FORMAT"
	EnvOutputDir = "NACAGEN_OUTPUT_DIR"
	EnvWorkers   = "NACAGEN_WORKERS"
)

// Config describes one batch run.
type Config struct {
	// Half-chord sample count; each boundary has 2*Points+1 points.
	Points int `yaml:"points"`

	FiniteTrailingEdge bool `yaml:"finite_trailing_edge"`
	HalfCosineSpacing  bool `yaml:"half_cosine_spacing"`

	// Output encoding: selig, csv or json.
	Format string `yaml:"format"`

	// Directory the files are written to, created if missing.
	OutputDir string `yaml:"output_dir"`

	// Number of profiles generated concurrently.
	Workers int `yaml:"workers"`

	// Designators to generate, or the keyword "canonical".
	Profiles []string `yaml:"profiles"`
}

// Default returns a configuration that generates every canonical profile
// as Selig files in the working directory.
func Default() *Config {
	return &Config{
		Points:    100,
		Format:    string(foilio.Selig),
		OutputDir: ".",
		Workers:   runtime.NumCPU(),
		Profiles:  []string{CanonicalKeyword},
	}
}

// Load reads a YAML file over Default(), applies environment overrides and
// validates the result. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes c as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, ErrInvalidWorkers)
		}
		c.Workers = n
	}

	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Points < 1 {
		return fmt.Errorf("points=%d: %w", c.Points, ErrInvalidPoints)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalidWorkers)
	}
	if _, err := foilio.ParseFormat(c.Format); err != nil {
		return err
	}
	if len(c.Profiles) == 0 {
		return ErrNoProfiles
	}
	for _, p := range c.Profiles {
		if strings.EqualFold(p, CanonicalKeyword) {
			continue
		}
		if _, err := naca.Parse(p); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidProfile, p, err)
		}
	}

	return nil
}

// OutputFormat returns the parsed Format.
func (c *Config) OutputFormat() (foilio.Format, error) {
	return foilio.ParseFormat(c.Format)
}

// Options maps the geometry fields onto naca.Options.
func (c *Config) Options() naca.Options {
	return naca.Options{
		FiniteTrailingEdge: c.FiniteTrailingEdge,
		HalfCosineSpacing:  c.HalfCosineSpacing,
	}
}

// Designators expands Profiles: the canonical keyword becomes the 4-digit
// then the 5-digit canonical list. Duplicates keep their first position.
func (c *Config) Designators() []string {
	seen := make(map[string]struct{}, len(c.Profiles))
	var out []string
	add := func(d string) {
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	for _, p := range c.Profiles {
		if strings.EqualFold(p, CanonicalKeyword) {
			for _, d := range naca.Canonical4() {
				add(d)
			}
			for _, d := range naca.Canonical5() {
				add(d)
			}
			continue
		}
		add(p)
	}

	return out
}
