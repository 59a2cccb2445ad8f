package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/boxgen/internal/config"
)

// recorder is a Logger that keeps every formatted line.
type recorder struct{ lines []string }

func (r *recorder) add(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recorder) Info(f string, a ...interface{})    { r.add("INFO", f, a...) }
func (r *recorder) Success(f string, a ...interface{}) { r.add("SUCCESS", f, a...) }
func (r *recorder) Warn(f string, a ...interface{})    { r.add("WARN", f, a...) }
func (r *recorder) Error(f string, a ...interface{})   { r.add("ERROR", f, a...) }
func (r *recorder) Debug(v bool, f string, a ...interface{}) {
	if v {
		r.add("DEBUG", f, a...)
	}
}

func (r *recorder) String() string { return strings.Join(r.lines, "\n") }

func fixture(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.InputDir = filepath.Join(dir, "svg")
	cfg.OutputDir = filepath.Join(dir, "src")
	basic := filepath.Join(cfg.InputDir, "basic")
	require.NoError(t, os.MkdirAll(basic, 0o755))
	for _, name := range []string{"bx-a.svg", "bx-b.svg", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(basic, name), []byte("<svg/>"), 0o644))
	}
	return &cfg
}

func TestRun_ReportsPacks(t *testing.T) {
	cfg := fixture(t)
	var log recorder

	assert.True(t, Run(cfg, &log))
	out := log.String()
	assert.Contains(t, out, "basic  2 SVG files")
	assert.Contains(t, out, "WARN   filled missing")
	assert.Contains(t, out, "SUCCESS output directory writable")
	assert.Contains(t, out, "Target: vue")
}

func TestRun_MissingInput(t *testing.T) {
	cfg := fixture(t)
	cfg.InputDir = filepath.Join(cfg.InputDir, "nope")
	cfg.Target = config.TargetGo
	var log recorder

	assert.False(t, Run(cfg, &log))
	assert.Contains(t, log.String(), "ERROR svg directory not found")
	assert.Contains(t, log.String(), "Target: go (package boxicons")
}

func TestPreflight(t *testing.T) {
	cfg := fixture(t)
	assert.NoError(t, Preflight(cfg))

	missing := *cfg
	missing.InputDir = filepath.Join(cfg.InputDir, "nope")
	assert.ErrorIs(t, Preflight(&missing), ErrInputMissing)

	file := *cfg
	file.InputDir = filepath.Join(cfg.InputDir, "basic", "bx-a.svg")
	assert.ErrorIs(t, Preflight(&file), ErrInputNotDir)

	blocked := *cfg
	blocked.OutputDir = filepath.Join(cfg.InputDir, "basic", "bx-a.svg", "out")
	assert.ErrorIs(t, Preflight(&blocked), ErrOutputNotWritable)

	blocked.DryRun = true
	assert.NoError(t, Preflight(&blocked))
}
