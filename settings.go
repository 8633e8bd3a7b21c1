// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// PanicPolicy selects what happens when a listener panics inside a native
// callback.
type PanicPolicy string

const (
	// PanicPolicyCrash re-raises the panic on a fresh goroutine so that it
	// terminates the process instead of unwinding through native frames.
	PanicPolicyCrash PanicPolicy = "crash"
	// PanicPolicyLog logs the panic, answers the message with 0 and keeps
	// the message loop running. Precondition violations still crash.
	PanicPolicyLog PanicPolicy = "log"
)

type Settings struct {
	Input    InputSettings    `toml:"input"`
	Invoke   InvokeSettings   `toml:"invoke"`
	Dispatch DispatchSettings `toml:"dispatch"`
	Log      LogSettings      `toml:"log"`
}

type InputSettings struct {
	// DragWidth and DragHeight override the native drag rectangle when
	// non-zero.
	DragWidth  int `toml:"drag_width"`
	DragHeight int `toml:"drag_height"`
	// HoverTimeMs overrides the native hover delay when non-zero.
	HoverTimeMs int `toml:"hover_time_ms"`
}

type InvokeSettings struct {
	TimeoutMs int `toml:"timeout_ms"`
}

type DispatchSettings struct {
	ListenerPanic PanicPolicy `toml:"listener_panic"`
}

type LogSettings struct {
	Dir        string `toml:"dir"`
	Verbose    bool   `toml:"verbose"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"`
	Compress   bool   `toml:"compress"`
}

const defaultInvokeTimeout = 5 * time.Second

func DefaultSettings() Settings {
	return Settings{
		Invoke: InvokeSettings{
			TimeoutMs: int(defaultInvokeTimeout / time.Millisecond),
		},
		Dispatch: DispatchSettings{
			ListenerPanic: PanicPolicyCrash,
		},
		Log: LogSettings{
			Compress: true,
		},
	}
}

// LoadSettings reads settings from a TOML file. A missing file yields the
// defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return settings, nil
}

// Save writes the settings to path as TOML.
func (s Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func (s Settings) Validate() error {
	switch s.Dispatch.ListenerPanic {
	case "", PanicPolicyCrash, PanicPolicyLog:
	default:
		return fmt.Errorf("unknown listener_panic policy %q", s.Dispatch.ListenerPanic)
	}

	if s.Input.DragWidth < 0 || s.Input.DragHeight < 0 {
		return errors.New("drag size must not be negative")
	}
	if s.Input.HoverTimeMs < 0 || s.Invoke.TimeoutMs < 0 {
		return errors.New("durations must not be negative")
	}

	return nil
}

func (s Settings) panicPolicy() PanicPolicy {
	if s.Dispatch.ListenerPanic == "" {
		return PanicPolicyCrash
	}
	return s.Dispatch.ListenerPanic
}

func (s Settings) invokeTimeout() time.Duration {
	if s.Invoke.TimeoutMs <= 0 {
		return defaultInvokeTimeout
	}
	return time.Duration(s.Invoke.TimeoutMs) * time.Millisecond
}

func (s Settings) dragSize(native Size) Size {
	if s.Input.DragWidth > 0 {
		native.Width = s.Input.DragWidth
	}
	if s.Input.DragHeight > 0 {
		native.Height = s.Input.DragHeight
	}
	return native
}

func (s Settings) hoverTime(native time.Duration) time.Duration {
	if s.Input.HoverTimeMs > 0 {
		return time.Duration(s.Input.HoverTimeMs) * time.Millisecond
	}
	return native
}
