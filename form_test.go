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

// pressKey queues a key press for the focused window and pumps it through
// the message loop, pre-translation included.
func pressKey(t *testing.T, app *walkctl.Application, s *sim.Sim, vk uint32) {
	t.Helper()

	target := s.Focus()
	require.NotZero(t, target, "nothing has the focus")
	require.NoError(t, s.PostMessage(target, native.MsgKeyDown, uintptr(vk), 1))
	app.PumpPending()
}

func TestForm_TabMovesFocus(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	a, b := newRecorder(t, f), newRecorder(t, f)

	var keyDowns int
	a.OnKeyDown().Attach(func(*walkctl.KeyEvent) { keyDowns++ })

	a.SetFocus()
	pressKey(t, app, s, native.VkTab)
	assert.True(t, b.Focused())
	assert.Zero(t, keyDowns, "Tab is consumed before dispatch")

	pressKey(t, app, s, native.VkTab)
	assert.True(t, a.Focused(), "Tab wraps around")

	s.SetKeyDown(native.VkShift, true)
	pressKey(t, app, s, native.VkTab)
	assert.True(t, b.Focused())
	s.SetKeyDown(native.VkShift, false)

	assert.Same(t, b, f.FocusedControl())
}

func TestForm_TabSkipsUnfocusable(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	a, off, c := newRecorder(t, f), newRecorder(t, f), newRecorder(t, f)
	off.SetEnabled(false)

	a.SetFocus()
	pressKey(t, app, s, native.VkTab)
	assert.True(t, c.Focused())
}

func TestForm_CtrlTabCyclesPages(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	tab, err := walkctl.NewTab(f, walkctl.Rectangle{Width: 300, Height: 200})
	require.NoError(t, err)
	for _, title := range []string{"One", "Two", "Three"} {
		_, err := tab.Append(walkctl.TabItemInfo{Text: title})
		require.NoError(t, err)
	}
	p := newRecorder(t, f)
	p.SetFocus()

	s.SetKeyDown(native.VkControl, true)
	pressKey(t, app, s, native.VkTab)
	assert.Equal(t, 1, tab.Selected().Index())

	s.SetKeyDown(native.VkShift, true)
	pressKey(t, app, s, native.VkTab)
	pressKey(t, app, s, native.VkTab)
	assert.Equal(t, 2, tab.Selected().Index())
	assert.True(t, p.Focused(), "switching pages leaves the focus alone")
}

func TestForm_ReturnClicksDefaultButton(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)

	ok, err := walkctl.NewPushButtonWithOptions(f, walkctl.PushButtonOptions{Text: "OK", Default: true})
	require.NoError(t, err)
	other, err := walkctl.NewPushButton(f, "Other")
	require.NoError(t, err)
	edit, err := walkctl.NewEdit(f, walkctl.EditOptions{})
	require.NoError(t, err)

	var clicks int
	ok.OnClicked().Attach(func(*walkctl.Event) { clicks++ })

	edit.SetFocus()
	pressKey(t, app, s, native.VkReturn)
	assert.Equal(t, 1, clicks)
	assert.Empty(t, edit.Text(), "a consumed Return is not translated")

	other.SetFocus()
	pressKey(t, app, s, native.VkReturn)
	assert.Equal(t, 1, clicks, "push buttons keep Return for themselves")

	ok.SetEnabled(false)
	edit.SetFocus()
	pressKey(t, app, s, native.VkReturn)
	assert.Equal(t, 1, clicks, "disabled default buttons are ignored")
}

func TestForm_ReturnWithoutDefaultButton(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	p := newRecorder(t, f)

	var keys []walkctl.Key
	p.OnKeyDown().Attach(func(e *walkctl.KeyEvent) { keys = append(keys, e.Key()) })

	p.SetFocus()
	pressKey(t, app, s, native.VkReturn)
	assert.Equal(t, []walkctl.Key{walkctl.KeyReturn}, keys)
}

func TestForm_SetDefault(t *testing.T) {
	app, _ := newApp(t)
	f := newForm(t, app)

	pb, err := walkctl.NewPushButton(f, "Go")
	require.NoError(t, err)
	assert.False(t, pb.IsDefault())

	pb.SetDefault(true)
	assert.True(t, pb.IsDefault())
	pb.SetDefault(false)
	assert.False(t, pb.IsDefault())
}

func TestForm_ClosingVeto(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	h := f.NativeHandle()

	veto := true
	var closings int
	f.Closing().Attach(func(e *walkctl.CancelEvent) {
		closings++
		e.SetCanceled(veto)
	})

	f.Close()
	assert.False(t, f.IsDisposed())
	s.Input().Close(h)
	assert.False(t, f.IsDisposed())
	assert.True(t, s.IsWindow(h))

	veto = false
	f.Close()
	assert.True(t, f.IsDisposed())
	assert.False(t, s.IsWindow(h))
	assert.Equal(t, 3, closings)
}

func TestForm_ActivationRestoresFocus(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	h := f.NativeHandle()
	a := newRecorder(t, f)
	newRecorder(t, f)

	var activations, deactivations int
	f.Activating().Attach(func(*walkctl.Event) { activations++ })
	f.Deactivating().Attach(func(*walkctl.Event) { deactivations++ })

	a.SetFocus()
	s.Input().Activate(h, native.WaInactive)
	s.SetFocus(0)
	assert.Nil(t, f.FocusedControl())

	s.Input().Activate(h, native.WaClickActive)
	assert.True(t, a.Focused())
	assert.Equal(t, 1, activations)
	assert.Equal(t, 1, deactivations)
}

func TestForm_ActivationForgetsDestroyedFocus(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	h := f.NativeHandle()
	a := newRecorder(t, f)

	a.SetFocus()
	s.Input().Activate(h, native.WaInactive)
	a.Dispose()

	s.ResetCounts()
	s.Input().Activate(h, native.WaActive)
	assert.Zero(t, s.Count("SetFocus"))
	assert.Zero(t, s.Focus())
}

func TestForm_SetFocusToControl(t *testing.T) {
	app, _ := newApp(t)
	f := newForm(t, app)
	p := newRecorder(t, f)

	f.SetFocusToControl(nil)
	assert.Nil(t, f.FocusedControl())

	f.SetFocusToControl(p)
	assert.Same(t, p, f.FocusedControl())
}
