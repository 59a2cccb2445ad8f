package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/backmassage/boxgen/boxicon"
	"github.com/backmassage/boxgen/internal/config"
	"github.com/backmassage/boxgen/internal/logging"
	"github.com/backmassage/boxgen/internal/naming"
)

// RerunFunc performs one complete batch. Watch calls it from a single
// goroutine, so runs never overlap.
type RerunFunc func(ctx context.Context)

// Watch blocks until ctx is done, calling rerun after cfg.WatchDebounce of
// quiet following any change to an .svg file in a pack directory. Pack
// directories created under the input root while watching are picked up.
func Watch(ctx context.Context, cfg *config.Config, log *logging.Logger, rerun RerunFunc) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(cfg.InputDir); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.InputDir, err)
	}
	for _, dir := range PackDirs(cfg.InputDir) {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	log.Info("Watching %s for changes (Ctrl+C to stop)", cfg.InputDir)

	// Stopped until the first relevant event arms it.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if isPackDirEvent(cfg.InputDir, ev) {
				if err := w.Add(ev.Name); err != nil {
					log.Warn("Cannot watch %s: %v", ev.Name, err)
				}
			} else if !isSVGEvent(ev) {
				continue
			}
			log.Debug(cfg.Verbose, "Change: %s %s", ev.Op, ev.Name)
			timer.Reset(cfg.WatchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error: %v", err)
		case <-timer.C:
			log.Info("Changes detected, regenerating")
			rerun(ctx)
		}
	}
}

// isSVGEvent reports whether ev changes the set or content of SVG files.
func isSVGEvent(ev fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(ev.Name), naming.SVGExt) {
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

// isPackDirEvent reports whether ev creates a pack directory directly
// under root.
func isPackDirEvent(root string, ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) || filepath.Clean(filepath.Dir(ev.Name)) != filepath.Clean(root) {
		return false
	}
	if !boxicon.Pack(filepath.Base(ev.Name)).Valid() {
		return false
	}
	fi, err := os.Stat(ev.Name)
	return err == nil && fi.IsDir()
}
