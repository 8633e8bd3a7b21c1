// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import "github.com/wuc656/walkctl/native"

type trackState uint8

const (
	trackIdle trackState = iota
	trackTracking
	// trackLeaving is held while MouseLeave listeners run, so that a move
	// delivered from inside a listener does not start a new enter/leave
	// pair.
	trackLeaving
)

// noDragBox contains every coordinate a native message can carry.
var noDragBox = Rectangle{X: -1 << 20, Y: -1 << 20, Width: 1 << 21, Height: 1 << 21}

func (cb *ControlBase) beginMouseTracking(m *native.Message) {
	if cb.track != trackIdle {
		return
	}
	if err := cb.native().TrackMouse(cb.hWnd, native.TrackLeave|native.TrackHover); err != nil {
		cb.app.log.Warn("TrackMouse failed", "hwnd", uintptr(cb.hWnd), "err", err)
		return
	}
	cb.track = trackTracking
	cb.mouseEnterPublisher.publish(cb.mouseEvent(m))
}

// endMouseTracking raises MouseLeave if the control is tracking. cancel asks
// the native layer to drop its pending leave request as well.
func (cb *ControlBase) endMouseTracking(cancel bool) {
	if cb.track != trackTracking {
		return
	}
	cb.track = trackLeaving
	defer func() {
		cb.track = trackIdle
	}()

	if cancel {
		cb.native().TrackMouse(cb.hWnd, native.TrackCancel|native.TrackLeave|native.TrackHover)
	}
	e := newEvent(cb.self, nil)
	cb.mouseLeavePublisher.publish(&e)
}

func (cb *ControlBase) rearmHover() {
	if cb.track != trackTracking {
		return
	}
	cb.native().TrackMouse(cb.hWnd, native.TrackHover)
}

func (cb *ControlBase) armDrag(m *native.Message) {
	size := cb.app.dragSize()
	p := native.PointFromParam(m.B)

	cb.dragBox = Rectangle{
		X:      p.X - size.Width/2,
		Y:      p.Y - size.Height/2,
		Width:  size.Width,
		Height: size.Height,
	}
	cb.dragButton = buttonForMessage(m.ID)
	cb.dragStart = p
}

func (cb *ControlBase) disarmDrag() {
	cb.dragBox = noDragBox
}

// DragArmed reports whether a button press is waiting for the cursor to
// leave the drag rectangle.
func (cb *ControlBase) DragArmed() bool {
	return cb.dragBox != noDragBox
}

func (cb *ControlBase) checkDrag(m *native.Message) {
	p := native.PointFromParam(m.B)
	if cb.dragBox.Contains(p) {
		return
	}

	e := &DragEvent{MouseEvent: MouseEvent{newEvent(cb.self, m)}, button: cb.dragButton, start: cb.dragStart}
	cb.disarmDrag()
	cb.dragPublisher.publish(e)
}
