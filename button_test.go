// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuc656/walkctl"
	"github.com/wuc656/walkctl/native"
	"github.com/wuc656/walkctl/native/sim"
)

func TestPushButton_Click(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	pb, err := walkctl.NewPushButtonWithOptions(f, walkctl.PushButtonOptions{
		Text:   "Go",
		Bounds: walkctl.Rectangle{Width: 80, Height: 24},
	})
	require.NoError(t, err)
	h := pb.NativeHandle()
	in := s.Input()

	var clicks int
	pb.OnClicked().Attach(func(e *walkctl.Event) {
		clicks++
		assert.Same(t, pb, e.Sender())
	})

	pb.Click()
	assert.Equal(t, 1, clicks)

	in.Click(h, sim.Left, walkctl.Point{X: 10, Y: 10})
	assert.Equal(t, 2, clicks)
	assert.True(t, pb.Focused(), "clicking takes the focus")

	in.Down(h, sim.Left, walkctl.Point{X: 10, Y: 10})
	in.Up(h, sim.Left, walkctl.Point{X: 200, Y: 10})
	assert.Equal(t, 2, clicks, "releasing outside does not click")

	in.KeyUp(h, native.VkSpace)
	assert.Equal(t, 3, clicks)
}

func TestCheckBox(t *testing.T) {
	app, _ := newApp(t)
	f := newForm(t, app)
	cb, err := walkctl.NewCheckBox(f, "Enabled")
	require.NoError(t, err)

	var clicks, changes int
	cb.OnClicked().Attach(func(*walkctl.Event) { clicks++ })
	cb.OnCheckedChanged().Attach(func(*walkctl.Event) { changes++ })

	assert.False(t, cb.Checked())
	cb.Click()
	assert.True(t, cb.Checked())
	assert.Equal(t, 1, clicks)
	assert.Equal(t, 1, changes)

	cb.SetChecked(true)
	assert.Equal(t, 1, changes, "no event without a change")

	cb.SetChecked(false)
	assert.False(t, cb.Checked())
	assert.Equal(t, 2, changes)
	assert.Equal(t, 1, clicks)
}

func TestDefaultButtonIgnoresPlainButtons(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	newRecorder(t, f).SetFocus()

	pb, err := walkctl.NewPushButton(f, "Plain")
	require.NoError(t, err)
	var clicks int
	pb.OnClicked().Attach(func(*walkctl.Event) { clicks++ })

	pressKey(t, app, s, native.VkReturn)
	assert.Zero(t, clicks)
}
