// Package config holds runtime configuration: defaults, an optional TOML
// config file, CLI flag parsing, and validation.
package config

import (
	"errors"
	"go/token"
	"path/filepath"
	"strings"
	"time"
)

// --- Enum types for validated string fields ---

// Target selects the output format.
type Target string

const (
	TargetVue Target = "vue" // TypeScript Vue components (default).
	TargetGo  Target = "go"  // Go package backed by the boxicon runtime.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultConfigFile is read from the working directory when present and no
// --config flag is given.
const DefaultConfigFile = "boxgen.toml"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [LoadFile] and [ParseFlags], before being passed (by pointer) to
// packages that need it.
type Config struct {
	// Paths (positional args override file and defaults).
	InputDir   string // Default: "svg". Holds basic/, filled/, brands/.
	OutputDir  string // Default: "src".
	ConfigFile string // Optional TOML file; see DefaultConfigFile.

	// Generation.
	Target  Target // Default: "vue".
	Package string // Go package name (go target). Default: "boxicons".
	Runtime string // Go import path of the boxicon runtime (go target).
	Prefix  string // Filename prefix stripped before normalizing. Default: "bx-".

	// Behavior flags.
	DryRun   bool // Plan and render, write nothing.
	Strict   bool // Fail on duplicate identifiers within a pack.
	Manifest bool // Also write icons.yaml.
	Watch    bool // Regenerate when SVG files change.

	// Fixed: quiet period before a watch-triggered rerun.
	WatchDebounce time.Duration

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path (rotated).
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the config file and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		InputDir:      "svg",
		OutputDir:     "src",
		Target:        TargetVue,
		Package:       "boxicons",
		Runtime:       "github.com/backmassage/boxgen/boxicon",
		Prefix:        "bx-",
		WatchDebounce: 200 * time.Millisecond,
		ColorMode:     ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that the Go
// target settings are usable. When not in CheckOnly mode, it also
// requires both directory paths.
func (c *Config) Validate() error {
	switch c.Target {
	case TargetVue, TargetGo:
		// valid
	default:
		return errors.New("invalid target (use 'vue' or 'go')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Target == TargetGo {
		if !token.IsIdentifier(c.Package) {
			return errors.New("package must be a valid Go identifier")
		}
		if strings.TrimSpace(c.Runtime) == "" {
			return errors.New("runtime import path must not be empty")
		}
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("need svg_dir and output_dir")
	}
	return nil
}

// ValidatePaths ensures the resolved output directory is not inside (or
// equal to) the resolved input directory, so generated files can never be
// read back as assets. Both arguments must be absolute, symlink-resolved
// paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside svg directory")
	}
	return nil
}
