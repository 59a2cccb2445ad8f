package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors the subset of Config settable from boxgen.toml.
// Pointer fields distinguish "unset" from zero values.
type FileConfig struct {
	InputDir  *string `toml:"input_dir"`
	OutputDir *string `toml:"output_dir"`
	Target    *string `toml:"target"`
	Package   *string `toml:"package"`
	Runtime   *string `toml:"runtime"`
	Prefix    *string `toml:"prefix"`
	Manifest  *bool   `toml:"manifest"`
	Strict    *bool   `toml:"strict"`
	Verbose   *bool   `toml:"verbose"`
	Color     *string `toml:"color"`
	LogFile   *string `toml:"log_file"`
}

// LoadFile reads the TOML config at path. Unknown keys are an error so
// typos do not pass silently. A missing file is reported with
// fs.ErrNotExist in the chain.
func LoadFile(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var fc FileConfig
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// applyFile copies values from fc into cfg, except for settings whose
// flags were passed explicitly (explicit flags win over the file).
func applyFile(cfg *Config, fc *FileConfig, explicit map[string]bool) {
	setStr := func(dst *string, v *string, flags ...string) {
		if v == nil || anySet(explicit, flags) {
			return
		}
		*dst = *v
	}
	setBool := func(dst *bool, v *bool, flags ...string) {
		if v == nil || anySet(explicit, flags) {
			return
		}
		*dst = *v
	}

	setStr(&cfg.InputDir, fc.InputDir)
	setStr(&cfg.OutputDir, fc.OutputDir)
	if fc.Target != nil && !anySet(explicit, []string{"target", "t"}) {
		cfg.Target = Target(*fc.Target)
	}
	setStr(&cfg.Package, fc.Package, "package")
	setStr(&cfg.Runtime, fc.Runtime, "runtime")
	setStr(&cfg.Prefix, fc.Prefix, "prefix")
	setBool(&cfg.Manifest, fc.Manifest, "manifest")
	setBool(&cfg.Strict, fc.Strict, "strict")
	setBool(&cfg.Verbose, fc.Verbose, "verbose", "v")
	if fc.Color != nil && !anySet(explicit, []string{"color", "no-color"}) {
		cfg.ColorMode = ColorMode(*fc.Color)
	}
	setStr(&cfg.LogFile, fc.LogFile, "log", "l")
}

// loadConfigFile applies cfg.ConfigFile, or DefaultConfigFile when it
// exists and no file was named.
func loadConfigFile(cfg *Config, explicit map[string]bool) error {
	path := cfg.ConfigFile
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err != nil {
			return nil
		}
		path = DefaultConfigFile
	}
	fc, err := LoadFile(path)
	if err != nil {
		if cfg.ConfigFile == "" && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	cfg.ConfigFile = path
	applyFile(cfg, fc, explicit)
	return nil
}

func anySet(explicit map[string]bool, flags []string) bool {
	for _, f := range flags {
		if explicit[f] {
			return true
		}
	}
	return false
}
