// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/wuc656/walkctl/native"

// The helpers below synthesize user input the way the native layer would
// deliver it. They are not counted as SendMessage calls.

// Button identifies a mouse button for the input helpers.
type Button int

const (
	Left Button = iota
	Right
	Middle
)

func (b Button) downID() uint32 {
	return [...]uint32{native.MsgLButtonDown, native.MsgRButtonDown, native.MsgMButtonDown}[b]
}

func (b Button) upID() uint32 {
	return [...]uint32{native.MsgLButtonUp, native.MsgRButtonUp, native.MsgMButtonUp}[b]
}

func (b Button) dblClkID() uint32 {
	return [...]uint32{native.MsgLButtonDblClk, native.MsgRButtonDblClk, native.MsgMButtonDblClk}[b]
}

func (b Button) flag() uintptr {
	return [...]uintptr{native.MkLButton, native.MkRButton, native.MkMButton}[b]
}

// Input tracks the held mouse buttons so that successive helper calls carry
// consistent key-state flags.
type Input struct {
	s    *Sim
	held uintptr
}

func (s *Sim) Input() *Input {
	return &Input{s: s}
}

func (in *Input) keyFlags() uintptr {
	flags := in.held
	if in.s.keys[native.VkShift] {
		flags |= native.MkShift
	}
	if in.s.keys[native.VkControl] {
		flags |= native.MkControl
	}
	return flags
}

func (in *Input) Move(h native.Handle, p native.Point) uintptr {
	return in.s.send(h, native.MsgMouseMove, in.keyFlags(), native.ParamFromPoint(p), nil)
}

func (in *Input) Down(h native.Handle, b Button, p native.Point) uintptr {
	in.held |= b.flag()
	return in.s.send(h, b.downID(), in.keyFlags(), native.ParamFromPoint(p), nil)
}

func (in *Input) Up(h native.Handle, b Button, p native.Point) uintptr {
	in.held &^= b.flag()
	return in.s.send(h, b.upID(), in.keyFlags(), native.ParamFromPoint(p), nil)
}

func (in *Input) DoubleClick(h native.Handle, b Button, p native.Point) uintptr {
	return in.s.send(h, b.dblClkID(), in.keyFlags(), native.ParamFromPoint(p), nil)
}

// Click presses and releases b at p.
func (in *Input) Click(h native.Handle, b Button, p native.Point) {
	in.Down(h, b, p)
	in.Up(h, b, p)
}

func (in *Input) Wheel(h native.Handle, delta int, screen native.Point) uintptr {
	return in.s.send(h, native.MsgMouseWheel, native.MakeLong(int(in.keyFlags()), delta), native.ParamFromPoint(screen), nil)
}

// Leave delivers MsgMouseLeave if h requested leave tracking, consuming the
// request as the native layer does. It reports whether it delivered.
func (in *Input) Leave(h native.Handle) bool {
	w := in.s.win(h)
	if w == nil || w.tracking&native.TrackLeave == 0 {
		return false
	}
	w.tracking &^= native.TrackLeave | native.TrackHover
	in.s.send(h, native.MsgMouseLeave, 0, 0, nil)
	return true
}

// Hover delivers MsgMouseHover if h requested hover tracking.
func (in *Input) Hover(h native.Handle, p native.Point) bool {
	w := in.s.win(h)
	if w == nil || w.tracking&native.TrackHover == 0 {
		return false
	}
	w.tracking &^= native.TrackHover
	in.s.send(h, native.MsgMouseHover, in.keyFlags(), native.ParamFromPoint(p), nil)
	return true
}

func (in *Input) KeyDown(h native.Handle, vk uint32) uintptr {
	return in.s.send(h, native.MsgKeyDown, uintptr(vk), 1, nil)
}

func (in *Input) KeyUp(h native.Handle, vk uint32) uintptr {
	return in.s.send(h, native.MsgKeyUp, uintptr(vk), 1|3<<30, nil)
}

func (in *Input) Char(h native.Handle, r rune) uintptr {
	return in.s.send(h, native.MsgChar, uintptr(r), 1, nil)
}

// Type sends one MsgChar per rune of text.
func (in *Input) Type(h native.Handle, text string) {
	for _, r := range text {
		in.Char(h, r)
	}
}

// ContextMenu requests a context menu at a screen position, as a right click
// would. Pass native.KeyboardPoint for a keyboard request.
func (in *Input) ContextMenu(h native.Handle, screen native.Point) uintptr {
	return in.s.send(h, native.MsgContextMenu, uintptr(h), native.ParamFromPoint(screen), nil)
}

// Activate delivers MsgActivate with the given state.
func (in *Input) Activate(h native.Handle, state int) uintptr {
	return in.s.send(h, native.MsgActivate, uintptr(state), 0, nil)
}

// Close delivers MsgClose, as the system menu would.
func (in *Input) Close(h native.Handle) uintptr {
	return in.s.send(h, native.MsgClose, 0, 0, nil)
}

// ClickColumn raises the column-click notification of a list view.
func (in *Input) ClickColumn(h native.Handle, column int) uintptr {
	w := in.s.mustWin(h)
	return in.s.notify(w, native.LvnColumnClick, &native.ListViewNotify{Item: -1, SubItem: column})
}
