// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import (
	"image/color"

	"golang.org/x/image/font"

	"github.com/wuc656/walkctl/native"
)

type FontStyle byte

const (
	FontBold FontStyle = 1 << iota
	FontItalic
)

// Font is a named face. Controls borrow fonts: the caller keeps a Font alive
// for as long as any control uses it.
type Font struct {
	family string
	face   font.Face
	style  FontStyle
}

func NewFont(family string, face font.Face, style FontStyle) *Font {
	return &Font{family: family, face: face, style: style}
}

func (f *Font) Family() string {
	return f.family
}

func (f *Font) Face() font.Face {
	return f.face
}

func (f *Font) Style() FontStyle {
	return f.style
}

// Height returns the line height in pixels.
func (f *Font) Height() int {
	return f.face.Metrics().Height.Ceil()
}

// TextWidth returns the advance of s in pixels.
func (f *Font) TextWidth(s string) int {
	return font.MeasureString(f.face, s).Ceil()
}

func (f *Font) spec() *native.FontSpec {
	return &native.FontSpec{
		Name:   f.family,
		Height: f.Height(),
		Bold:   f.style&FontBold != 0,
		Italic: f.style&FontItalic != 0,
	}
}

// Brush paints a control's background.
type Brush interface {
	Color() color.Color
}

type SolidColorBrush struct {
	color color.Color
}

func NewSolidColorBrush(c color.Color) *SolidColorBrush {
	return &SolidColorBrush{color: c}
}

func (b *SolidColorBrush) Color() color.Color {
	return b.color
}
