// Copyright 2024 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger writes structured logs to a rotating file and a colored
// console stream.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultMaxSize    = 2  // megabytes
	DefaultMaxBackups = 3
	DefaultMaxAge     = 28 // days

	// LevelTrace sits below Debug. It is written to the file only.
	LevelTrace = slog.LevelDebug - 4

	fileName = "walkctl.log"
)

// Options configures a Logger. Zero rotation values take the defaults.
type Options struct {
	Verbose    bool
	Dir        string // defaults to <user cache dir>/walkctl
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool

	// Console receives the console stream. It defaults to os.Stdout.
	Console io.Writer
}

// Path returns the log file that a Logger built from opts writes to.
func Path(opts Options) string {
	dir := opts.Dir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		dir = filepath.Join(base, "walkctl")
	}
	return filepath.Join(dir, fileName)
}

// Dump copies the current log file to w.
func Dump(w io.Writer, opts Options) error {
	path := Path(opts)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to read log file: %w", err)
	}
	return nil
}

// Logger fans every record out to the file and the console.
type Logger struct {
	file    *slog.Logger
	console *slog.Logger
	rotator *lumberjack.Logger
	path    string
}

func New(opts Options) (*Logger, error) {
	if opts.MaxSize == 0 {
		opts.MaxSize = DefaultMaxSize
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = DefaultMaxBackups
	}
	if opts.MaxAge == 0 {
		opts.MaxAge = DefaultMaxAge
	}
	if opts.Console == nil {
		opts.Console = os.Stdout
	}

	path := Path(opts)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}

	file := slog.New(slog.NewTextHandler(rotator, &slog.HandlerOptions{
		Level: LevelTrace,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok && level == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}))

	return &Logger{
		file:    file,
		console: slog.New(&ConsoleHandler{w: opts.Console, verbose: opts.Verbose}),
		rotator: rotator,
		path:    path,
	}, nil
}

func (l *Logger) Close() {
	if err := l.rotator.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to close log file: %v\n", err)
	}
}

func (l *Logger) Path() string {
	return l.path
}

func (l *Logger) Trace(msg string, args ...any) {
	l.file.Log(context.Background(), LevelTrace, msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.file.Debug(msg, args...)
	l.console.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.file.Info(msg, args...)
	l.console.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.file.Warn(msg, args...)
	l.console.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.file.Error(msg, args...)
	l.console.Error(msg, args...)
}

// ConsoleHandler prints one line per record without timestamps, colored by
// level. Trace records are dropped, and debug records unless verbose.
type ConsoleHandler struct {
	w       io.Writer
	verbose bool
}

func NewConsoleHandler(w io.Writer, verbose bool) *ConsoleHandler {
	return &ConsoleHandler{w: w, verbose: verbose}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	switch {
	case level <= LevelTrace:
		return false
	case level < slog.LevelInfo:
		return h.verbose
	}
	return true
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var prefix string
	var c *color.Color

	switch {
	case r.Level >= slog.LevelError:
		prefix, c = "ERROR: ", color.New(color.FgRed)
	case r.Level >= slog.LevelWarn:
		prefix, c = "WARNING: ", color.New(color.FgYellow)
	case r.Level < slog.LevelInfo:
		prefix, c = "VERBOSE: ", color.New(color.FgCyan)
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(r.Message)
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})

	if c != nil {
		c.Fprintln(h.w, b.String())
		return nil
	}
	fmt.Fprintln(h.w, b.String())
	return nil
}

func (h *ConsoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *ConsoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Nop discards everything.
type Nop struct{}

func (Nop) Trace(msg string, args ...any) {}
func (Nop) Debug(msg string, args ...any) {}
func (Nop) Info(msg string, args ...any)  {}
func (Nop) Warn(msg string, args ...any)  {}
func (Nop) Error(msg string, args ...any) {}
