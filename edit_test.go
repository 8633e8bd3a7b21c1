// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuc656/walkctl"
)

func newEdit(t *testing.T, parent walkctl.Control, opts walkctl.EditOptions) *walkctl.Edit {
	t.Helper()

	e, err := walkctl.NewEdit(parent, opts)
	require.NoError(t, err)
	return e
}

func TestEdit_Text(t *testing.T) {
	app, _ := newApp(t)
	f := newForm(t, app)
	e := newEdit(t, f, walkctl.EditOptions{Text: "hello"})

	assert.Equal(t, "hello", e.Text())
	assert.Equal(t, 5, e.TextLength())

	require.NoError(t, e.SetText("é\U0001F600"))
	assert.Equal(t, 2, e.TextLength())
}

func TestEdit_TextChanged(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	e := newEdit(t, f, walkctl.EditOptions{})

	var changes []string
	e.OnTextChanged().Attach(func(*walkctl.Event) { changes = append(changes, e.Text()) })

	require.NoError(t, e.SetText("ab"))
	s.Input().Type(e.NativeHandle(), "c")
	assert.Equal(t, []string{"ab", "abc"}, changes)
}

func TestEdit_MaxLength(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	e := newEdit(t, f, walkctl.EditOptions{MaxLength: 3})

	assert.Equal(t, 3, e.MaxLength())
	s.Input().Type(e.NativeHandle(), "abcd")
	assert.Equal(t, "abc", e.Text())

	e.SetMaxLength(4)
	s.Input().Type(e.NativeHandle(), "\U0001F600")
	assert.Equal(t, "abc", e.Text(), "a surrogate pair needs two units")

	assert.Panics(t, func() { e.SetMaxLength(-1) })
}

func TestEdit_ReadOnly(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	e := newEdit(t, f, walkctl.EditOptions{Text: "x", ReadOnly: true})

	assert.True(t, e.ReadOnly())
	s.Input().Type(e.NativeHandle(), "yz")
	assert.Equal(t, "x", e.Text())

	s.ResetCounts()
	e.SetReadOnly(true)
	assert.Zero(t, s.Count("SendMessage"), "unchanged state makes no native call")

	e.SetReadOnly(false)
	assert.False(t, e.ReadOnly())
	e.SetTextSelection(1, 1)
	s.Input().Type(e.NativeHandle(), "y")
	assert.Equal(t, "xy", e.Text())
}

func TestEdit_Selection(t *testing.T) {
	app, s := newApp(t)
	f := newForm(t, app)
	e := newEdit(t, f, walkctl.EditOptions{})
	require.NoError(t, e.SetText("hello"))

	start, end := e.TextSelection()
	assert.Equal(t, [2]int{5, 5}, [2]int{start, end}, "setting the text moves the caret to the end")

	e.SetTextSelection(1, 4)
	start, end = e.TextSelection()
	assert.Equal(t, [2]int{1, 4}, [2]int{start, end})

	s.Input().Type(e.NativeHandle(), "X")
	assert.Equal(t, "hXo", e.Text())

	e.SetTextSelection(0, -1)
	start, end = e.TextSelection()
	assert.Equal(t, [2]int{0, 3}, [2]int{start, end})
}
