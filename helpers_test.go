// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wuc656/walkctl"
	"github.com/wuc656/walkctl/native"
	"github.com/wuc656/walkctl/native/sim"
)

// newApp binds an Application to a fresh simulator on the test's thread.
func newApp(t *testing.T, opts ...walkctl.Option) (*walkctl.Application, *sim.Sim) {
	t.Helper()

	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	s := sim.New(sim.Options{})
	app, err := walkctl.NewApplication(s, opts...)
	require.NoError(t, err)
	return app, s
}

func newForm(t *testing.T, app *walkctl.Application) *walkctl.Form {
	t.Helper()

	f, err := walkctl.NewForm(app, walkctl.FormOptions{
		Title:  "test",
		Bounds: walkctl.Rectangle{X: 100, Y: 100, Width: 400, Height: 300},
	})
	require.NoError(t, err)
	return f
}

func newPanel(t *testing.T, parent walkctl.Control, bounds walkctl.Rectangle) *walkctl.Panel {
	t.Helper()

	p, err := walkctl.NewPanel(parent, bounds)
	require.NoError(t, err)
	return p
}

// recorder is a bare control that records the messages it sees and can claim
// reflected ones.
type recorder struct {
	walkctl.ControlBase
	seen            []uint32
	originals       []uint32
	handleReflected bool
}

func newRecorder(t *testing.T, parent walkctl.Control) *recorder {
	t.Helper()

	p := new(recorder)
	require.NoError(t, walkctl.InitControl(p, parent, walkctl.ControlOptions{
		Class:  native.ClassWindow,
		Style:  native.WsVisible | native.WsTabStop,
		Bounds: walkctl.Rectangle{Width: 50, Height: 20},
	}))
	return p
}

func (p *recorder) ProcessMessage(m *native.Message) {
	p.seen = append(p.seen, m.ID)
	if m.Reflected() {
		p.originals = append(p.originals, m.OriginalID())
		if p.handleReflected {
			m.Result = 42
			return
		}
	}
	p.ControlBase.ProcessMessage(m)
}

// onOtherThread runs fn on a goroutine locked to a different OS thread and
// returns what it panicked with.
func onOtherThread(fn func()) (recovered any) {
	done := make(chan any)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer func() {
			done <- recover()
		}()
		fn()
	}()
	return <-done
}
