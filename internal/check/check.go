// Package check provides diagnostics (--check mode) and pre-pipeline
// validation (Preflight) for the input packs, the output directory and
// the selected target.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/boxgen/boxicon"
	"github.com/backmassage/boxgen/internal/config"
	"github.com/backmassage/boxgen/internal/pack"
)

// Sentinel errors returned by Preflight.
var (
	ErrInputMissing      = errors.New("svg directory not found")
	ErrInputNotDir       = errors.New("svg path is not a directory")
	ErrOutputNotWritable = errors.New("output directory is not writable")
)

// Logger is the minimal logging interface needed by Run.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Run runs the interactive --check flow: prints each pack directory with
// its SVG count, whether the output directory is writable, and the target.
// It reports false when the input root is missing; other findings are
// informational.
func Run(cfg *config.Config, log Logger) bool {
	log.Info("=== boxgen Check ===")

	ok := checkInput(cfg, log)
	if ok {
		checkPacks(cfg, log)
	}
	checkOutput(cfg, log)
	checkTarget(cfg, log)
	return ok
}

// checkInput verifies the svg root exists and is a directory.
func checkInput(cfg *config.Config, log Logger) bool {
	if err := inputDir(cfg.InputDir); err != nil {
		log.Error("%v: %s", err, cfg.InputDir)
		return false
	}
	log.Success("svg directory: %s", cfg.InputDir)
	return true
}

// checkPacks lists every pack directory with its SVG file count.
func checkPacks(cfg *config.Config, log Logger) {
	total := 0
	for _, p := range boxicon.Packs {
		dir := pack.Dir(cfg.InputDir, p)
		if _, err := os.Stat(dir); err != nil {
			log.Warn("  %-6s missing (%s)", p, dir)
			continue
		}
		files, err := pack.List(dir)
		if err != nil {
			log.Error("  %-6s unreadable: %v", p, err)
			continue
		}
		total += len(files)
		log.Info("  %-6s %d SVG files", p, len(files))
	}
	if total == 0 {
		log.Warn("No SVG files found; output would be empty")
	}
}

// checkOutput reports whether the output directory (or its nearest existing
// parent) accepts new files.
func checkOutput(cfg *config.Config, log Logger) {
	if err := outputWritable(cfg.OutputDir); err != nil {
		log.Error("%v: %s", err, cfg.OutputDir)
		return
	}
	log.Success("output directory writable: %s", cfg.OutputDir)
}

// checkTarget prints the selected target and its settings.
func checkTarget(cfg *config.Config, log Logger) {
	switch cfg.Target {
	case config.TargetGo:
		log.Info("Target: go (package %s, runtime %s)", cfg.Package, cfg.Runtime)
	default:
		log.Info("Target: %s", cfg.Target)
	}
	if cfg.ConfigFile != "" {
		log.Info("Config file: %s", cfg.ConfigFile)
	}
}

// Preflight is the pre-pipeline validation: the svg root must be an
// existing directory and the output directory must be writable (skipped
// in dry-run mode). Returns a sentinel error on failure.
func Preflight(cfg *config.Config) error {
	if err := inputDir(cfg.InputDir); err != nil {
		return err
	}
	if cfg.DryRun {
		return nil
	}
	return outputWritable(cfg.OutputDir)
}

// --- internal helpers ---

func inputDir(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return ErrInputMissing
	}
	if !fi.IsDir() {
		return ErrInputNotDir
	}
	return nil
}

// outputWritable creates and removes a temp file in dir, or in its
// nearest existing ancestor when dir does not exist yet.
func outputWritable(dir string) error {
	candidate := dir
	for {
		fi, err := os.Stat(candidate)
		if err == nil {
			if !fi.IsDir() {
				return ErrOutputNotWritable
			}
			break
		}
		parent := filepath.Dir(candidate)
		if parent == candidate {
			return ErrOutputNotWritable
		}
		candidate = parent
	}
	f, err := os.CreateTemp(candidate, ".boxgen-check-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputNotWritable, err)
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return nil
}
