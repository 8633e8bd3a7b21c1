// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package walkctl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuc656/walkctl"
	"github.com/wuc656/walkctl/native"
)

func TestSetStyle_UnchangedMakesNoNativeWrites(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	h := f.Handle()

	for _, bits := range []uint32{native.WsVisible, native.WsTabStop, native.WsBorder, native.WsGroup} {
		s.ResetCounts()
		h.SetStyle(bits, h.HasStyle(bits))

		assert.Zero(t, s.Count("SetStyle"), "style %#x", bits)
		assert.Zero(t, s.Count("RefreshFrame"), "style %#x", bits)
		assert.Zero(t, s.Count("Invalidate"), "style %#x", bits)
	}

	s.ResetCounts()
	h.SetExStyle(native.WsExControlParent, h.HasExStyle(native.WsExControlParent))
	assert.Zero(t, s.Count("SetExStyle"))
}

func TestSetStyle_ChangeRefreshesFrameOnce(t *testing.T) {
	app, s := newApp(t)
	h := newForm(t, app).Handle()
	require.False(t, h.HasStyle(native.WsBorder))

	s.ResetCounts()
	h.SetStyle(native.WsBorder, true)

	assert.True(t, h.HasStyle(native.WsBorder))
	assert.Equal(t, 1, s.Count("SetStyle"))
	assert.Equal(t, 1, s.Count("RefreshFrame"))
	assert.Equal(t, 1, s.Count("Invalidate"))
}

func TestEdge(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)

	for _, e := range []walkctl.Edge{walkctl.EdgeLine, walkctl.EdgeSunken, walkctl.EdgeClient, walkctl.EdgeNone} {
		f.SetEdge(e)
		assert.Equal(t, e, f.Edge())

		s.ResetCounts()
		f.SetEdge(e)
		assert.Zero(t, s.Count("SetStyle")+s.Count("SetExStyle"), "edge %d set twice", e)
		assert.Zero(t, s.Count("RefreshFrame"))
	}
}

func TestEdge_ClearsOtherCandidates(t *testing.T) {
	app, _ := newApp(t)
	f := newForm(t, app)

	f.SetEdge(walkctl.EdgeLine)
	f.SetEdge(walkctl.EdgeClient)

	h := f.Handle()
	assert.False(t, h.HasStyle(native.WsBorder))
	assert.False(t, h.HasExStyle(native.WsExStaticEdge))
	assert.True(t, h.HasExStyle(native.WsExClientEdge))
}

func TestHandleParent(t *testing.T) {
	app, _ := newApp(t)
	f := newForm(t, app)
	p := newPanel(t, f, walkctl.Rectangle{Width: 10, Height: 10})

	assert.True(t, f.Handle().Parent().IsNull(), "top-level windows have no logical parent")
	assert.Equal(t, f.NativeHandle(), p.Handle().Parent().Native())
	assert.Nil(t, f.Parent())
	assert.Same(t, f, p.Parent())
}

func TestSetParent_RejectsCycles(t *testing.T) {
	app, _ := newApp(t)
	f := newForm(t, app)
	outer := newPanel(t, f, walkctl.Rectangle{Width: 100, Height: 100})
	inner := newPanel(t, outer, walkctl.Rectangle{Width: 50, Height: 50})

	assert.ErrorIs(t, outer.SetParent(inner), walkctl.ErrParentingCycle)
	assert.ErrorIs(t, outer.SetParent(outer), walkctl.ErrParentingCycle)
	assert.Same(t, f, outer.Parent(), "a rejected reparent leaves the tree alone")

	assert.False(t, outer.Handle().CheckParentingCycle(inner.Handle()))
	assert.True(t, inner.Handle().CheckParentingCycle(f.Handle()))

	other := newPanel(t, f, walkctl.Rectangle{Width: 10, Height: 10})
	require.NoError(t, inner.SetParent(other))
	assert.Same(t, other, inner.Parent())
}

func TestThreadAffinityViolationPanics(t *testing.T) {
	if !native.AffinityChecked {
		t.Skip("thread ids are not available on this platform")
	}

	app, _ := newApp(t)
	f := newForm(t, app)

	accessors := map[string]func(){
		"Bounds":  func() { f.Bounds() },
		"Text":    func() { f.Text() },
		"Style":   func() { f.Handle().Style() },
		"Visible": func() { f.Visible() },
		"Parent":  func() { f.Parent() },
	}
	for name, fn := range accessors {
		t.Run(name, func(t *testing.T) {
			r := onOtherThread(fn)
			require.NotNil(t, r)
			var pe *walkctl.PreconditionError
			require.IsType(t, pe, r)
		})
	}
}

func TestNullHandlePanics(t *testing.T) {
	app, _ := newApp(t)
	f := newForm(t, app)
	f.Dispose()

	assert.True(t, f.IsDisposed())
	assert.Panics(t, func() { f.Bounds() })
	assert.NotPanics(t, f.Dispose, "Dispose is idempotent")
}
