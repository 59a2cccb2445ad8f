// Package logging provides the leveled, optionally colored run log.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/backmassage/boxgen/internal/config"
	"github.com/backmassage/boxgen/internal/term"
)

// Log file rotation limits.
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
)

// ErrLogFileIsDir is returned by NewLogger when the log path is a directory.
var ErrLogFileIsDir = errors.New("is a directory")

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	file   io.WriteCloser
}

// NewLogger initializes colors from cfg and optionally opens a rotating log
// file. Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	l := &Logger{out: os.Stdout, errOut: os.Stderr}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		// lumberjack would rename an existing directory out of the way.
		if fi, err := os.Stat(cfg.LogFile); err == nil && fi.IsDir() {
			return nil, fmt.Errorf("log file %s: %w", cfg.LogFile, ErrLogFileIsDir)
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
		}
		// lumberjack opens lazily; an empty write opens the file now so
		// an unusable path fails here instead of on every line.
		if _, err := lj.Write(nil); err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = lj
	}
	return l, nil
}

// SetOutput redirects console output; used by tests and watch mode.
func (l *Logger) SetOutput(out, errOut io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out, l.errOut = out, errOut
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	plain := ts + " [" + level + "] " + text + "\n"
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	if color != "" {
		_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+term.NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, plain)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Generate logs one written output file at GEN level (magenta).
func (l *Logger) Generate(format string, args ...interface{}) {
	l.line("GEN", term.Magenta, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
