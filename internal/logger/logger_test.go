// Copyright 2024 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuc656/walkctl/internal/logger"
)

func init() {
	color.NoColor = true
}

func TestPath_CustomDir(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, "walkctl.log"), logger.Path(logger.Options{Dir: dir}))
}

func TestPath_DefaultIsAbsolute(t *testing.T) {
	path := logger.Path(logger.Options{})
	assert.True(t, filepath.IsAbs(path), "log path should be absolute")
	assert.Equal(t, "walkctl.log", filepath.Base(path))
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	log, err := logger.New(logger.Options{Dir: dir, Console: &bytes.Buffer{}})
	require.NoError(t, err)
	defer log.Close()

	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "walkctl.log"), log.Path())
}

func TestLogger_TraceGoesToFileOnly(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	log, err := logger.New(logger.Options{Dir: dir, Console: &console, Verbose: true})
	require.NoError(t, err)

	log.Trace("dispatch", slog.String("msg", "0x201"))
	log.Info("started")
	log.Close()

	assert.NotContains(t, console.String(), "dispatch")
	assert.Contains(t, console.String(), "started")

	data, err := os.ReadFile(filepath.Join(dir, "walkctl.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=TRACE")
	assert.Contains(t, string(data), "msg=dispatch")
}

func TestConsoleHandler_Levels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func(l *slog.Logger)
		want    string
	}{
		{"error", false, func(l *slog.Logger) { l.Error("boom", "code", 3) }, "ERROR: boom code=3\n"},
		{"warn", false, func(l *slog.Logger) { l.Warn("careful") }, "WARNING: careful\n"},
		{"info", false, func(l *slog.Logger) { l.Info("hello", "n", 1) }, "hello n=1\n"},
		{"debug hidden", false, func(l *slog.Logger) { l.Debug("detail") }, ""},
		{"debug verbose", true, func(l *slog.Logger) { l.Debug("detail") }, "VERBOSE: detail\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(slog.New(logger.NewConsoleHandler(&buf, tt.verbose)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	opts := logger.Options{Dir: dir, Console: &bytes.Buffer{}}

	log, err := logger.New(opts)
	require.NoError(t, err)
	log.Warn("disk almost full")
	log.Close()

	var out bytes.Buffer
	require.NoError(t, logger.Dump(&out, opts))
	assert.Contains(t, out.String(), "disk almost full")
}

func TestDump_MissingFile(t *testing.T) {
	err := logger.Dump(&bytes.Buffer{}, logger.Options{Dir: t.TempDir()})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		var l logger.Nop
		l.Trace("x")
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
}
