// Copyright 2024 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import (
	"io"

	"github.com/wuc656/walkctl/internal/logger"
)

// Logger receives structured diagnostics. Arguments after msg are key/value
// pairs as accepted by log/slog.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// OpenLog builds a Logger writing to the rotating file described by s and to
// console. The returned func closes the file.
func OpenLog(s LogSettings, console io.Writer) (Logger, func(), error) {
	l, err := logger.New(logger.Options{
		Verbose:    s.Verbose,
		Dir:        s.Dir,
		MaxSize:    s.MaxSize,
		MaxBackups: s.MaxBackups,
		MaxAge:     s.MaxAge,
		Compress:   s.Compress,
		Console:    console,
	})
	if err != nil {
		return nil, nil, err
	}
	return l, l.Close, nil
}

// LogPath returns the file OpenLog writes to for s.
func LogPath(s LogSettings) string {
	return logger.Path(logger.Options{Dir: s.Dir})
}

// DumpLog copies the log file for s to w.
func DumpLog(w io.Writer, s LogSettings) error {
	return logger.Dump(w, logger.Options{Dir: s.Dir})
}
