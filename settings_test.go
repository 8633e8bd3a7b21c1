// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuc656/walkctl"
)

func TestLoadSettings_MissingFileYieldsDefaults(t *testing.T) {
	s, err := walkctl.LoadSettings(filepath.Join(t.TempDir(), "walkctl.toml"))
	require.NoError(t, err)
	assert.Equal(t, walkctl.DefaultSettings(), s)
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walkctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[input]
drag_width = 10
hover_time_ms = 250

[dispatch]
listener_panic = "log"
`), 0o644))

	s, err := walkctl.LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 10, s.Input.DragWidth)
	assert.Zero(t, s.Input.DragHeight)
	assert.Equal(t, 250, s.Input.HoverTimeMs)
	assert.Equal(t, walkctl.PanicPolicyLog, s.Dispatch.ListenerPanic)
	assert.Equal(t, walkctl.DefaultSettings().Invoke, s.Invoke, "unset tables keep their defaults")
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "syntax", data: "[input\n"},
		{name: "policy", data: "[dispatch]\nlistener_panic = \"retry\"\n"},
		{name: "negative drag", data: "[input]\ndrag_height = -1\n"},
		{name: "negative timeout", data: "[invoke]\ntimeout_ms = -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "walkctl.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))

			_, err := walkctl.LoadSettings(path)
			assert.Error(t, err)
		})
	}
}

func TestSettingsSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walkctl.toml")

	want := walkctl.DefaultSettings()
	want.Input.DragHeight = 12
	want.Log.Dir = "logs"
	require.NoError(t, want.Save(path))

	got, err := walkctl.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsOverrideNativeMetrics(t *testing.T) {
	settings := walkctl.DefaultSettings()
	settings.Input.HoverTimeMs = 50

	app, s := newApp(t, walkctl.WithSettings(settings))
	assert.Equal(t, int64(50), app.HoverTime().Milliseconds())

	app2, _ := newApp(t)
	assert.Equal(t, s.HoverTime(), app2.HoverTime())
}
