// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package walkctl

import "github.com/wuc656/walkctl/native"

// Edge is the border decoration drawn around a window.
type Edge int

const (
	EdgeNone Edge = iota
	// EdgeLine is a thin line border.
	EdgeLine
	// EdgeSunken is a static sunken edge, for controls that do not take
	// input.
	EdgeSunken
	// EdgeClient is the sunken edge used around input controls.
	EdgeClient
)

// Handle is a checked reference to a native window. It is a value type: it
// does not own the window and copying it is cheap.
//
// Every operation verifies that the handle is not null and that the caller
// is on the thread owning the window, and panics with *PreconditionError
// otherwise.
type Handle struct {
	n native.Native
	h native.Handle
}

// WrapHandle returns a Handle for h using backend n.
func WrapHandle(n native.Native, h native.Handle) Handle {
	return Handle{n: n, h: h}
}

// Native returns the raw handle.
func (w Handle) Native() native.Handle {
	return w.h
}

func (w Handle) IsNull() bool {
	return w.h == 0
}

// check validates the handle for op. Only the affinity check touches the
// native layer.
func (w Handle) check(op string) {
	if w.h == 0 || w.n == nil {
		precondition(op, "null window handle")
	}
	if native.AffinityChecked {
		if owner, cur := w.n.ThreadID(w.h), native.CurrentThreadID(); owner != cur {
			precondition(op, "window %#x is owned by thread %d, called from thread %d", uintptr(w.h), owner, cur)
		}
	}
}

func (w Handle) Style() uint32 {
	w.check("Style")
	return w.n.Style(w.h)
}

func (w Handle) ExStyle() uint32 {
	w.check("ExStyle")
	return w.n.ExStyle(w.h)
}

// HasStyle reports whether all bits are set in the style word.
func (w Handle) HasStyle(bits uint32) bool {
	return w.Style()&bits == bits
}

func (w Handle) HasExStyle(bits uint32) bool {
	return w.ExStyle()&bits == bits
}

// SetStyle sets or clears bits in the style word. When the word changes the
// frame is recomputed and the window repainted; an unchanged word causes no
// native writes.
func (w Handle) SetStyle(bits uint32, on bool) {
	w.check("SetStyle")
	old := w.n.Style(w.h)
	style := setBits(old, bits, on)
	if style == old {
		return
	}
	w.n.SetStyle(w.h, style)
	w.updateFrame()
}

func (w Handle) SetExStyle(bits uint32, on bool) {
	w.check("SetExStyle")
	old := w.n.ExStyle(w.h)
	exStyle := setBits(old, bits, on)
	if exStyle == old {
		return
	}
	w.n.SetExStyle(w.h, exStyle)
	w.updateFrame()
}

func (w Handle) updateFrame() {
	w.n.RefreshFrame(w.h)
	w.n.Invalidate(w.h)
}

func setBits(word, bits uint32, on bool) uint32 {
	if on {
		return word | bits
	}
	return word &^ bits
}

const edgeStyleBits = native.WsBorder

const edgeExStyleBits = native.WsExStaticEdge | native.WsExClientEdge

func (w Handle) Edge() Edge {
	switch exStyle := w.ExStyle(); {
	case exStyle&native.WsExClientEdge != 0:
		return EdgeClient
	case exStyle&native.WsExStaticEdge != 0:
		return EdgeSunken
	}
	if w.HasStyle(native.WsBorder) {
		return EdgeLine
	}
	return EdgeNone
}

// SetEdge replaces the border decoration. The frame is refreshed once, and
// only if a style word changed.
func (w Handle) SetEdge(e Edge) {
	w.check("SetEdge")

	style := w.n.Style(w.h) &^ edgeStyleBits
	exStyle := w.n.ExStyle(w.h) &^ edgeExStyleBits
	switch e {
	case EdgeLine:
		style |= native.WsBorder
	case EdgeSunken:
		exStyle |= native.WsExStaticEdge
	case EdgeClient:
		exStyle |= native.WsExClientEdge
	}

	changed := false
	if style != w.n.Style(w.h) {
		w.n.SetStyle(w.h, style)
		changed = true
	}
	if exStyle != w.n.ExStyle(w.h) {
		w.n.SetExStyle(w.h, exStyle)
		changed = true
	}
	if changed {
		w.updateFrame()
	}
}

// Parent returns the parent window, or a null Handle for a top-level
// window.
func (w Handle) Parent() Handle {
	w.check("Parent")
	p := w.n.Parent(w.h)
	if p == w.n.Root() {
		p = 0
	}
	return Handle{n: w.n, h: p}
}

func (w Handle) Children() []Handle {
	w.check("Children")
	hs := w.n.Children(w.h)
	children := make([]Handle, len(hs))
	for i, h := range hs {
		children[i] = Handle{n: w.n, h: h}
	}
	return children
}

// IsAncestorOf reports whether w is a strict ancestor of other.
func (w Handle) IsAncestorOf(other Handle) bool {
	w.check("IsAncestorOf")
	root := w.n.Root()
	for p := w.n.Parent(other.h); p != 0 && p != root; p = w.n.Parent(p) {
		if p == w.h {
			return true
		}
	}
	return false
}

// CheckParentingCycle reports whether candidate may become the parent of w,
// that is whether candidate is neither w nor one of its descendants.
func (w Handle) CheckParentingCycle(candidate Handle) bool {
	w.check("CheckParentingCycle")
	return candidate.h != w.h && !w.IsAncestorOf(candidate)
}

func (w Handle) SetParent(parent Handle) error {
	w.check("SetParent")
	if !w.CheckParentingCycle(parent) {
		return ErrParentingCycle
	}
	return newNativeError("SetParent", w.n.SetParent(w.h, parent.h))
}

func (w Handle) Send(id uint32, a, b uintptr, payload any) uintptr {
	w.check("Send")
	return w.n.SendMessage(w.h, id, a, b, payload)
}

// Post queues a message for w. It may be called from any thread.
func (w Handle) Post(id uint32, a, b uintptr) error {
	if w.h == 0 || w.n == nil {
		precondition("Post", "null window handle")
	}
	return newNativeError("PostMessage", w.n.PostMessage(w.h, id, a, b))
}

// Bounds returns the outer rectangle. For a top-level window it is in screen
// coordinates, for a child window it is relative to the parent's client
// area.
func (w Handle) Bounds() Rectangle {
	w.check("Bounds")
	return w.n.Bounds(w.h)
}

func (w Handle) SetBounds(bounds Rectangle) error {
	w.check("SetBounds")
	return newNativeError("SetBounds", w.n.SetBounds(w.h, bounds))
}

// ClientBounds returns the client area, relative to its own upper-left
// corner.
func (w Handle) ClientBounds() Rectangle {
	w.check("ClientBounds")
	return w.n.ClientBounds(w.h)
}

func (w Handle) ClientToScreen(p Point) Point {
	w.check("ClientToScreen")
	return w.n.ClientToScreen(w.h, p)
}

func (w Handle) ScreenToClient(p Point) Point {
	w.check("ScreenToClient")
	return w.n.ScreenToClient(w.h, p)
}

func (w Handle) Enabled() bool {
	w.check("Enabled")
	return w.n.Enabled(w.h)
}

func (w Handle) Visible() bool {
	w.check("Visible")
	return w.n.Visible(w.h)
}

func (w Handle) Text() string {
	w.check("Text")
	return w.n.Text(w.h)
}

func (w Handle) Class() string {
	w.check("Class")
	return w.n.Class(w.h)
}
