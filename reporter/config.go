/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reporter

import (
	"context"
	"fmt"
	"os"

	"chainguard.dev/evalreport/evals/jsonreport"
	"chainguard.dev/evalreport/evals/junit"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Report formats understood by Config.
const (
	FormatJUnit = junit.Format
	FormatJSON  = jsonreport.Format
)

// Config controls where and how reports are written.
type Config struct {
	// OutputDir is joined to relative output paths. Empty leaves them relative
	// to the working directory.
	OutputDir string `yaml:"output_dir" env:"EVAL_REPORT_DIR,overwrite"`
	// Format selects the report writer: FormatJUnit or FormatJSON.
	Format string `yaml:"format" env:"EVAL_REPORT_FORMAT,overwrite,default=junit"`
	// Quiet lowers the "report written" message to debug level.
	Quiet bool `yaml:"quiet" env:"EVAL_REPORT_QUIET,overwrite"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{Format: FormatJUnit}
}

// LoadConfig reads the YAML file at path (skipped when path is empty) and then
// applies EVAL_REPORT_* environment variables on top of it.
func LoadConfig(ctx context.Context, path string) (Config, error) {
	return loadConfig(ctx, path, envconfig.OsLookuper())
}

func loadConfig(ctx context.Context, path string, lookuper envconfig.Lookuper) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return Config{}, fmt.Errorf("processing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the configuration can be used.
func (c Config) Validate() error {
	if _, err := writerFor(c.Format); err != nil {
		return err
	}
	return nil
}

func writerFor(format string) (Writer, error) {
	switch format {
	case FormatJUnit, "":
		return junit.Writer{}, nil
	case FormatJSON:
		return jsonreport.Writer{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want %q or %q)", format, FormatJUnit, FormatJSON)
	}
}
