// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import "golang.org/x/exp/constraints"

func LoWord[T constraints.Integer](v T) uint16 {
	return uint16(uint64(v) & 0xFFFF)
}

func HiWord[T constraints.Integer](v T) uint16 {
	return uint16((uint64(v) >> 16) & 0xFFFF)
}

// MakeLong packs lo and hi into the low 32 bits of a message word.
func MakeLong[T constraints.Integer](lo, hi T) uintptr {
	return uintptr(uint32(uint16(lo)) | uint32(uint16(hi))<<16)
}

// PointFromParam decodes a pair of signed 16-bit coordinates, as carried in
// the B word of mouse messages.
func PointFromParam(p uintptr) Point {
	return Point{int(int16(LoWord(p))), int(int16(HiWord(p)))}
}

func ParamFromPoint(p Point) uintptr {
	return MakeLong(p.X, p.Y)
}

// KeyboardPoint is the position carried by a context menu request that came
// from the keyboard rather than the mouse.
var KeyboardPoint = Point{-1, -1}
