// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuc656/walkctl/native"
	"github.com/wuc656/walkctl/native/win32"
)

func newForm(t *testing.T) (*win32.Backend, native.Handle) {
	t.Helper()

	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	b, err := win32.New()
	require.NoError(t, err)

	form, err := b.CreateWindow(native.CreateOptions{
		Class:  native.ClassWindow,
		Text:   "form",
		Bounds: native.Rectangle{Width: 300, Height: 200},
	})
	require.NoError(t, err)
	t.Cleanup(func() { b.DestroyWindow(form) })

	return b, form
}

func TestBackend_Hierarchy(t *testing.T) {
	b, form := newForm(t)

	edit, err := b.CreateWindow(native.CreateOptions{
		Class:  native.ClassEdit,
		Parent: form,
		Style:  native.WsChild | native.WsVisible,
		Bounds: native.Rectangle{X: 10, Y: 10, Width: 100, Height: 20},
		ID:     1,
	})
	require.NoError(t, err)

	assert.True(t, b.IsWindow(edit))
	assert.Equal(t, native.ClassEdit, b.Class(edit))
	assert.Equal(t, form, b.Parent(edit))
	assert.Equal(t, b.Root(), b.Parent(form))
	assert.Equal(t, []native.Handle{edit}, b.Children(form))
	assert.Equal(t, native.Rectangle{X: 10, Y: 10, Width: 100, Height: 20}, b.Bounds(edit))

	require.NoError(t, b.DestroyWindow(edit))
	assert.False(t, b.IsWindow(edit))
	assert.Empty(t, b.Children(form))
}

func TestBackend_SetProcedure(t *testing.T) {
	b, form := newForm(t)

	var (
		prev native.Procedure
		seen []string
	)
	prev = b.SetProcedure(form, func(h native.Handle, id uint32, a, bb uintptr, payload any) uintptr {
		if id == native.MsgSetText {
			seen = append(seen, payload.(string))
		}
		return prev(h, id, a, bb, payload)
	})
	require.NotNil(t, prev)

	require.NoError(t, b.SetText(form, "renamed"))
	assert.Equal(t, "renamed", b.Text(form))
	assert.Equal(t, []string{"renamed"}, seen)
}

func TestBackend_ListViewItems(t *testing.T) {
	b, form := newForm(t)

	lv, err := b.CreateWindow(native.CreateOptions{
		Class:  native.ClassListView,
		Parent: form,
		Style:  native.WsChild | native.WsVisible | native.LvsReport,
		Bounds: native.Rectangle{Width: 200, Height: 100},
	})
	require.NoError(t, err)

	b.SendMessage(lv, native.LvmInsertColumn, 0, 0, &native.ColumnData{Title: "Name", Width: 80})
	assert.EqualValues(t, 1, b.SendMessage(lv, native.LvmGetColumnCount, 0, 0, nil))

	ins := native.ItemData{Mask: native.LvifText, Text: "alpha"}
	assert.EqualValues(t, 0, b.SendMessage(lv, native.LvmInsertItem, 0, 0, &ins))
	assert.EqualValues(t, 1, b.SendMessage(lv, native.LvmGetItemCount, 0, 0, nil))

	get := native.ItemData{Mask: native.LvifText}
	b.SendMessage(lv, native.LvmGetItemText, 0, 0, &get)
	assert.Equal(t, "alpha", get.Text)
}

func TestBackend_SetText(t *testing.T) {
	b, form := newForm(t)

	require.NoError(t, b.SetText(form, "größe"))
	assert.Equal(t, "größe", b.Text(form))

	assert.Error(t, b.SetText(form, "nul\x00inside"))
}
