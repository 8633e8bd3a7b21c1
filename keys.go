// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import "github.com/wuc656/walkctl/native"

type (
	Point     = native.Point
	Size      = native.Size
	Rectangle = native.Rectangle
)

// Key is a virtual key code.
type Key uint32

const (
	KeyBack   = Key(native.VkBack)
	KeyTab    = Key(native.VkTab)
	KeyReturn = Key(native.VkReturn)
	KeyEscape = Key(native.VkEscape)
	KeySpace  = Key(native.VkSpace)
	KeyLeft   = Key(native.VkLeft)
	KeyUp     = Key(native.VkUp)
	KeyRight  = Key(native.VkRight)
	KeyDown   = Key(native.VkDown)
	KeyApps   = Key(native.VkApps)
	KeyF2     = Key(native.VkF2)
)

type Modifiers byte

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
)

// ModifiersDown returns the modifier keys currently held, as reported by
// the native layer.
func ModifiersDown(n native.Native) Modifiers {
	var m Modifiers
	if n.KeyDown(native.VkShift) {
		m |= ModShift
	}
	if n.KeyDown(native.VkControl) {
		m |= ModControl
	}
	if n.KeyDown(native.VkMenu) {
		m |= ModAlt
	}
	return m
}

// MouseButton is a set of mouse buttons, using the native key-state bits.
type MouseButton uintptr

const (
	LeftButton   = MouseButton(native.MkLButton)
	RightButton  = MouseButton(native.MkRButton)
	MiddleButton = MouseButton(native.MkMButton)
)

func buttonForMessage(id uint32) MouseButton {
	switch id {
	case native.MsgLButtonDown, native.MsgLButtonUp, native.MsgLButtonDblClk:
		return LeftButton
	case native.MsgRButtonDown, native.MsgRButtonUp, native.MsgRButtonDblClk:
		return RightButton
	case native.MsgMButtonDown, native.MsgMButtonUp, native.MsgMButtonDblClk:
		return MiddleButton
	}
	return 0
}
