// Copyright 2012 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declarative

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/wuc656/walkctl"
)

type Font struct {
	Family string `yaml:"family"`
	Bold   bool   `yaml:"bold"`
	Italic bool   `yaml:"italic"`

	// Face supplies the metrics. It defaults to the 7x13 fixed face.
	Face font.Face `yaml:"-"`
}

// Create returns nil when f names no family.
func (f Font) Create() *walkctl.Font {
	if f.Family == "" {
		return nil
	}

	var fs walkctl.FontStyle
	if f.Bold {
		fs |= walkctl.FontBold
	}
	if f.Italic {
		fs |= walkctl.FontItalic
	}

	face := f.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	return walkctl.NewFont(f.Family, face, fs)
}
