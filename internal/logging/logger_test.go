package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/boxgen/internal/config"
)

func newTestLogger(t *testing.T, cfg config.Config) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = l.Close() })
	var out, errOut bytes.Buffer
	l.SetOutput(&out, &errOut)
	return l, &out, &errOut
}

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	l, out, _ := newTestLogger(t, cfg)
	l.Info("test message")
	if !strings.Contains(out.String(), "[INFO] test message") {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "boxgen.log")
	l, _, _ := newTestLogger(t, cfg)
	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
}

func TestLogger_ErrorGoesToStderr(t *testing.T) {
	l, out, errOut := newTestLogger(t, config.DefaultConfig())
	l.Error("boom %d", 1)
	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[ERROR] boom 1") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestLogger_Levels(t *testing.T) {
	l, out, _ := newTestLogger(t, config.DefaultConfig())
	l.Success("ok")
	l.Warn("careful")
	l.Generate("icons/Home.ts")
	for _, want := range []string{"[SUCCESS] ok", "[WARN] careful", "[GEN] icons/Home.ts"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q: %q", want, out.String())
		}
	}
}

func TestLogger_DebugOnlyWhenVerbose(t *testing.T) {
	l, out, _ := newTestLogger(t, config.DefaultConfig())
	l.Debug(false, "hidden")
	if out.Len() != 0 {
		t.Errorf("Debug(false) wrote %q", out.String())
	}
	l.Debug(true, "shown")
	if !strings.Contains(out.String(), "[DEBUG] shown") {
		t.Errorf("Debug(true) output = %q", out.String())
	}
}

func TestNewLogger_LogFileIsDirectory(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = t.TempDir()

	l, err := NewLogger(&cfg)
	if !errors.Is(err, ErrLogFileIsDir) {
		t.Fatalf("NewLogger() error = %v, want ErrLogFileIsDir", err)
	}
	if l != nil {
		t.Error("NewLogger() should not return a logger on error")
	}
	if fi, err := os.Stat(cfg.LogFile); err != nil || !fi.IsDir() {
		t.Errorf("log path directory should be left in place: %v", err)
	}
}

func TestNewLogger_LogFileUnderRegularFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(blocker, "boxgen.log")

	if _, err := NewLogger(&cfg); err == nil {
		t.Error("NewLogger() should fail when the log directory cannot be created")
	}
}

func TestNewLogger_CreatesFileEagerly(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(t.TempDir(), "boxgen.log")

	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	if _, err := os.Stat(cfg.LogFile); err != nil {
		t.Errorf("log file should exist before the first line: %v", err)
	}
}
