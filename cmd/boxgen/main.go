// Command boxgen is the CLI entrypoint for the Boxicons component generator.
//
// It parses flags and the optional config file, validates configuration and
// paths, and either runs diagnostics (--check) or the generation pipeline,
// optionally watching the SVG packs for changes.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/boxgen/internal/check"
	"github.com/backmassage/boxgen/internal/config"
	"github.com/backmassage/boxgen/internal/display"
	"github.com/backmassage/boxgen/internal/logging"
	"github.com/backmassage/boxgen/internal/pipeline"
)

// commit is injected at build time via -ldflags; the version lives in
// config.Version so --version and help agree.
var commit = "unknown"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "boxgen: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "boxgen: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "boxgen: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	display.PrintBanner(os.Stdout)

	if cfg.CheckOnly {
		if !check.Run(&cfg, log) {
			return 1
		}
		return 0
	}

	// Fail fast on a missing svg root or an unwritable output directory.
	if err := check.Preflight(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Output must not be inside input, so generated files are never read
	// back as assets.
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		log.Error("Cannot resolve svg path: %s", cfg.InputDir)
		return 1
	}
	outputAbs, err := absPath(cfg.OutputDir)
	if err != nil {
		log.Error("Cannot resolve output path: %s", cfg.OutputDir)
		return 1
	}
	if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		log.Error("%v", err)
		log.Error("Choose an output path outside: %s", cfg.InputDir)
		return 1
	}

	log.Info("=== boxgen v%s (%s) ===", config.Version, commit)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputDir)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so the
	// pipeline stops between icons and watch mode exits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Phase 4: Run pipeline (read → plan → synthesize → index → manifest).
	if _, err := pipeline.Run(ctx, &cfg, log); err != nil {
		log.Error("%v", err)
		if !cfg.Watch || errors.Is(err, context.Canceled) {
			return 1
		}
	}

	if !cfg.Watch {
		return 0
	}

	// Phase 5: Watch. Each rerun is a full batch; failures are logged and
	// the watcher keeps going.
	err = pipeline.Watch(ctx, &cfg, log, func(ctx context.Context) {
		if _, err := pipeline.Run(ctx, &cfg, log); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("%v", err)
		}
	})
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of input vs output directory hierarchies. A path that does not exist yet
// resolves through its nearest existing ancestor.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		return abs, nil
	}
	dir, err := absPath(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(abs)), nil
}
