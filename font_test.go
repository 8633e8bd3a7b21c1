// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/wuc656/walkctl"
)

func TestFontMetrics(t *testing.T) {
	f := walkctl.NewFont("Fixed", basicfont.Face7x13, walkctl.FontBold)

	assert.Equal(t, "Fixed", f.Family())
	assert.Equal(t, 13, f.Height())
	assert.Equal(t, 21, f.TextWidth("abc"))
	assert.Equal(t, walkctl.FontBold, f.Style())
}

func TestSetFont(t *testing.T) {
	app, s := newApp(t)
	form := newForm(t, app)
	p := newRecorder(t, form)

	f := walkctl.NewFont("Fixed", basicfont.Face7x13, walkctl.FontItalic)
	p.SetFont(f)
	assert.Same(t, f, p.Font())

	spec := s.Font(p.NativeHandle())
	require.NotNil(t, spec)
	assert.Equal(t, "Fixed", spec.Name)
	assert.Equal(t, 13, spec.Height)
	assert.True(t, spec.Italic)
	assert.False(t, spec.Bold)

	p.SetFont(nil)
	assert.Nil(t, p.Font())
	assert.Nil(t, s.Font(p.NativeHandle()))
}
