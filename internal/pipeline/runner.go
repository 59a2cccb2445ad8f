package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/backmassage/boxgen/boxicon"
	"github.com/backmassage/boxgen/internal/config"
	"github.com/backmassage/boxgen/internal/display"
	"github.com/backmassage/boxgen/internal/logging"
	"github.com/backmassage/boxgen/internal/pack"
	"github.com/backmassage/boxgen/internal/planner"
	"github.com/backmassage/boxgen/internal/synth"
)

// Sentinel errors returned by Run.
var (
	ErrDuplicateName = errors.New("duplicate icon names within a pack")
	ErrRenderFailed  = errors.New("one or more components failed to render")
)

// Run is the top-level batch entry point. It reads every pack, builds the
// merge plan, renders and writes each component in lexicographic order,
// then writes the index, the target's support files and (optionally) the
// manifest. Write failures abort the run; ctx is checked between icons.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	stats := RunStats{PerPack: make(map[boxicon.Pack]int, len(boxicon.Packs))}
	start := time.Now()

	target, err := synth.NewTarget(string(cfg.Target), synth.Options{Package: cfg.Package, Runtime: cfg.Runtime})
	if err != nil {
		return stats, err
	}

	// --- Read ---
	set, dups, err := pack.ReadAll(cfg.InputDir, cfg.Prefix)
	if err != nil {
		return stats, err
	}
	for _, p := range boxicon.Packs {
		stats.PerPack[p] = len(set[p])
		if len(set[p]) == 0 {
			log.Debug(cfg.Verbose, "Pack %s: no icons in %s", p, pack.Dir(cfg.InputDir, p))
		}
	}
	stats.Duplicates = dups
	for _, d := range dups {
		log.Warn("Duplicate %s/%s: %s replaces %s", d.Pack, d.Identifier, d.Winner, d.Loser)
	}
	if cfg.Strict && len(dups) > 0 {
		return stats, fmt.Errorf("%w: %d found (strict mode)", ErrDuplicateName, len(dups))
	}

	// --- Plan ---
	plan := planner.BuildPlanFromSet(set)
	stats.Planned = len(plan)
	target.Reserve(plan.Names())
	logBatchHeader(cfg, log, &stats, target)

	w := &writer{cfg: cfg, log: log, stats: &stats}

	// --- Components ---
	var generated []*planner.IconConfig
	for _, ic := range plan.Configs() {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			return stats, ctx.Err()
		}

		c, ok := synth.Build(ic, set)
		if !ok {
			log.Warn("Skip %s: no readable glyph", ic.Name)
			stats.Skipped++
			continue
		}
		data, err := target.Component(c)
		if err != nil {
			log.Error("Render %s failed: %v", ic.Name, err)
			stats.Failed++
			continue
		}
		if err := w.write(target.ComponentPath(ic.Name), data); err != nil {
			return stats, err
		}
		log.Debug(cfg.Verbose, "  %s from %v (default %s)", ic.Name, c.Packs(), ic.DefaultPack)
		generated = append(generated, ic)
		stats.Generated++
	}

	// --- Index, support, manifest ---
	names := make([]string, len(generated))
	for i, ic := range generated {
		names[i] = ic.Name
	}
	index, err := target.Index(names)
	if err != nil {
		return stats, err
	}
	if err := w.write(index.Path, index.Data); err != nil {
		return stats, err
	}

	support, err := target.Support()
	if err != nil {
		return stats, err
	}
	for _, f := range support {
		if err := w.write(f.Path, f.Data); err != nil {
			return stats, err
		}
	}

	if cfg.Manifest {
		b, err := Manifest(generated)
		if err != nil {
			return stats, err
		}
		if err := w.write(ManifestFile, b); err != nil {
			return stats, err
		}
	}

	logSummary(cfg, log, &stats, time.Since(start))
	if stats.Failed > 0 {
		return stats, fmt.Errorf("%w (%d)", ErrRenderFailed, stats.Failed)
	}
	return stats, nil
}

// writer writes output files relative to the output directory and keeps
// the byte and file counters. In dry-run mode it only logs.
type writer struct {
	cfg   *config.Config
	log   *logging.Logger
	stats *RunStats
}

func (w *writer) write(rel string, data []byte) error {
	path := filepath.Join(w.cfg.OutputDir, filepath.FromSlash(rel))
	if w.cfg.DryRun {
		w.log.Debug(w.cfg.Verbose, "[DRY] Would write %s (%s)", rel, display.FormatBytes(int64(len(data))))
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.stats.Files++
	w.stats.BytesWritten += int64(len(data))
	if w.cfg.Verbose {
		w.log.Generate("%s", rel)
	}
	return nil
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats, target synth.Target) {
	for _, p := range boxicon.Packs {
		log.Info("Pack %-6s %s", p, display.FormatPlural(stats.PerPack[p], "icon"))
	}
	log.Info("Planned %s for target %s", display.FormatPlural(stats.Planned, "component"), target.Name())
	if target.Name() == synth.TargetGo {
		log.Info("Package: %s (runtime %s)", cfg.Package, cfg.Runtime)
	}
	if cfg.Prefix != "" {
		log.Debug(cfg.Verbose, "Stripping filename prefix %q", cfg.Prefix)
	}
	if cfg.DryRun {
		log.Info("Dry run: no files will be written")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats, elapsed time.Duration) {
	log.Info("==============================")
	log.Info("Done: %d generated, %d skipped, %d failed", stats.Generated, stats.Skipped, stats.Failed)
	log.Info("  Read %s", display.FormatPlural(stats.Assets(), "asset"))
	if len(stats.Duplicates) > 0 {
		log.Warn("  Duplicate names replaced: %d", len(stats.Duplicates))
	}

	if cfg.DryRun {
		log.Info("  Output: n/a (dry run)")
		return
	}
	log.Success("  Wrote %s (%s) to %s in %s",
		display.FormatPlural(stats.Files, "file"),
		display.FormatBytes(stats.BytesWritten),
		cfg.OutputDir,
		display.FormatDuration(elapsed))
}
