// Package config loads clampvec settings from a YAML file.
//
// Loaded values are overlaid on Default() and then checked against the CUE
// schema embedded in schema.cue, so a typo in format or lang is reported with
// the offending field rather than silently ignored. Unknown keys are rejected
// when the file is decoded.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/clampvec/internal/export"
	"github.com/roach88/clampvec/internal/naming"
)

//go:embed schema.cue
var schemaCUE string

// Config holds clampvec settings.
type Config struct {
	// OutputDir is where generated export names are placed.
	OutputDir string `yaml:"output_dir" json:"output_dir"`

	// Format is the default export format ("text" or "csv").
	Format string `yaml:"format" json:"format"`

	// Journal is the SQLite journal path. Empty disables journaling.
	Journal string `yaml:"journal" json:"journal"`

	// Lang selects console messages ("en" or "ru").
	Lang string `yaml:"lang" json:"lang"`

	// TimestampLayout is the Go time layout for generated names.
	TimestampLayout string `yaml:"timestamp_layout" json:"timestamp_layout"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OutputDir:       ".",
		Format:          string(export.FormatText),
		Journal:         "",
		Lang:            "en",
		TimestampLayout: naming.DefaultLayout,
	}
}

// Load reads path and overlays it on Default.
// An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data over Default and validates the result.
// Keys that are not part of Config are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks c against the #Config schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	val := ctx.Encode(c)
	if err := val.Err(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := def.Unify(val).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ExportFormat returns Format as an export.Format.
func (c Config) ExportFormat() (export.Format, error) {
	return export.ParseFormat(c.Format)
}
