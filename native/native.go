// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package native defines the boundary between walkctl and the native
// windowing layer: opaque handles, the message record that crosses the
// boundary, the message vocabulary and the Native backend interface.
package native

import (
	"image/color"
	"time"
)

// Handle is an opaque, comparable reference to a native window. The zero
// Handle is the null handle.
type Handle uintptr

// Procedure is the native callback signature. A Procedure receives one
// message and returns the result word handed back to the native layer.
type Procedure func(h Handle, id uint32, a, b uintptr, payload any) uintptr

// Message is a single native message as seen by the object model.
//
// Result is the only output channel back to the native layer. Payload carries
// the structured data that a Win32 message would pass by pointer in B.
// Handled is reported back to a parent that reflected the message.
type Message struct {
	Target  Handle
	ID      uint32
	A       uintptr
	B       uintptr
	Payload any
	Result  uintptr
	Handled bool
}

// Reflected reports whether m is a notification that a parent shifted by
// MsgReflect before handing it to its originating child.
func (m *Message) Reflected() bool {
	return m.ID >= MsgReflect && m.ID < MsgReflect+MsgUser
}

// OriginalID returns the message id with any reflection shift removed.
func (m *Message) OriginalID() uint32 {
	if m.Reflected() {
		return m.ID - MsgReflect
	}
	return m.ID
}

// QueuedMessage is a posted message waiting in the thread's queue.
type QueuedMessage struct {
	Target Handle
	ID     uint32
	A      uintptr
	B      uintptr
}

type Point struct {
	X, Y int
}

type Size struct {
	Width, Height int
}

type Rectangle struct {
	X, Y, Width, Height int
}

func (r Rectangle) Location() Point {
	return Point{r.X, r.Y}
}

func (r Rectangle) Size() Size {
	return Size{r.Width, r.Height}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// CreateOptions describes a native window to be created.
type CreateOptions struct {
	Class   string
	Parent  Handle
	Style   uint32
	ExStyle uint32
	Bounds  Rectangle
	Text    string
	ID      uint16
}

// Native is implemented by a windowing backend. Calls that mutate or query a
// window must be made on the thread that owns it; ThreadID, PostMessage and
// PostQuit may be called from any thread.
type Native interface {
	CreateWindow(opts CreateOptions) (Handle, error)
	DestroyWindow(h Handle) error
	IsWindow(h Handle) bool
	Class(h Handle) string

	// Procedure returns the procedure currently installed for h.
	Procedure(h Handle) Procedure
	// SetProcedure installs proc for h and returns the previous procedure.
	SetProcedure(h Handle, proc Procedure) Procedure

	SendMessage(h Handle, id uint32, a, b uintptr, payload any) uintptr
	PostMessage(h Handle, id uint32, a, b uintptr) error

	// Root returns the desktop handle that top-level windows report as
	// their parent.
	Root() Handle
	Parent(h Handle) Handle
	SetParent(h, parent Handle) error
	// Children returns the direct children of h in z-order, first child
	// first.
	Children(h Handle) []Handle

	Style(h Handle) uint32
	SetStyle(h Handle, style uint32)
	ExStyle(h Handle) uint32
	SetExStyle(h Handle, exStyle uint32)
	// RefreshFrame forces the non-client area to be recomputed and repainted.
	RefreshFrame(h Handle)
	Invalidate(h Handle)

	Bounds(h Handle) Rectangle
	SetBounds(h Handle, bounds Rectangle) error
	ClientBounds(h Handle) Rectangle
	ClientToScreen(h Handle, p Point) Point
	ScreenToClient(h Handle, p Point) Point

	Focus() Handle
	SetFocus(h Handle) Handle
	Enabled(h Handle) bool
	SetEnabled(h Handle, enabled bool)
	Visible(h Handle) bool
	SetVisible(h Handle, visible bool)
	Text(h Handle) string
	SetText(h Handle, text string) error

	ThreadID(h Handle) uint32
	TrackMouse(h Handle, flags uint32) error
	DragSize() Size
	HoverTime() time.Duration
	// InMenuMode reports whether a menu bar or popup menu currently owns
	// keyboard input.
	InMenuMode() bool
	KeyDown(vk uint32) bool
	FillBackground(h Handle, dc uintptr, bounds Rectangle, c color.Color) bool

	// GetMessage blocks until a message is queued. It returns false once
	// the quit message is retrieved, carrying the exit code in A.
	GetMessage() (QueuedMessage, bool)
	// PeekMessage removes and returns the next queued message without
	// blocking. The quit message is left in place.
	PeekMessage() (QueuedMessage, bool)
	TranslateMessage(m *QueuedMessage)
	DispatchMessage(m *QueuedMessage) uintptr
	PostQuit(code int)
}
