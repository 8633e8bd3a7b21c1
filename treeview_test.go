// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuc656/walkctl"
	"github.com/wuc656/walkctl/native"
	"github.com/wuc656/walkctl/native/sim"
)

// newTreeView returns an editable tree holding
//
//	src
//	  main.go
//	  util
//	    strings.go
//	docs
func newTreeView(t *testing.T, f *walkctl.Form) *walkctl.TreeView {
	t.Helper()

	tv, err := walkctl.NewTreeView(f, walkctl.TreeViewOptions{
		Bounds:     walkctl.Rectangle{Width: 200, Height: 200},
		EditLabels: true,
	})
	require.NoError(t, err)

	_, err = tv.Insert(walkctl.TreeItem{}, walkctl.TreeItemInfo{
		Text: "src",
		Children: []walkctl.TreeItemInfo{
			{Text: "main.go", Data: 1},
			{Text: "util", Children: []walkctl.TreeItemInfo{{Text: "strings.go"}}},
		},
	})
	require.NoError(t, err)
	_, err = tv.Insert(walkctl.TreeItem{}, walkctl.TreeItemInfo{Text: "docs"})
	require.NoError(t, err)
	return tv
}

func treeTexts(items []walkctl.TreeItem) []string {
	var s []string
	for _, it := range items {
		s = append(s, it.Text())
	}
	return s
}

func TestTreeView_Hierarchy(t *testing.T) {
	app, _ := newApp(t)
	tv := newTreeView(t, newForm(t, app))

	assert.Equal(t, 5, tv.ItemCount())

	roots := tv.Roots()
	require.Equal(t, []string{"src", "docs"}, treeTexts(roots))
	src, docs := roots[0], roots[1]

	assert.True(t, src.HasChildren())
	assert.False(t, docs.HasChildren())
	assert.Equal(t, []string{"main.go", "util"}, treeTexts(src.Children()))
	assert.Empty(t, docs.Children())

	util := src.Children()[1]
	assert.Equal(t, src.ID(), util.Parent().ID())
	assert.Equal(t, walkctl.TreeItem{}, src.Parent(), "a top-level item has no parent")
	assert.Equal(t, "main.go", util.PrevSibling().Text())
	assert.Zero(t, util.NextSibling().ID())
	assert.Equal(t, docs.ID(), src.NextSibling().ID())
	assert.Same(t, tv, util.TreeView())

	leaf, err := tv.Insert(docs, walkctl.TreeItemInfo{Text: "guide.md"})
	require.NoError(t, err)
	assert.Equal(t, docs.ID(), leaf.Parent().ID())
	assert.Equal(t, 6, tv.ItemCount())
}

func TestTreeView_InsertExpanded(t *testing.T) {
	app, _ := newApp(t)
	tv := newTreeView(t, newForm(t, app))

	var events int
	tv.OnItemExpanding().Attach(func(*walkctl.ExpandingEvent[walkctl.TreeItem]) { events++ })
	tv.OnItemExpand().Attach(func(*walkctl.ExpandEvent[walkctl.TreeItem]) { events++ })

	it, err := tv.Insert(walkctl.TreeItem{}, walkctl.TreeItemInfo{
		Text:     "open",
		Expanded: true,
		Children: []walkctl.TreeItemInfo{{Text: "child"}},
	})
	require.NoError(t, err)
	assert.True(t, it.Expanded())
	assert.Zero(t, events)

	empty, err := tv.Insert(walkctl.TreeItem{}, walkctl.TreeItemInfo{Text: "empty", Expanded: true})
	require.NoError(t, err)
	assert.False(t, empty.Expanded(), "an item without children is never expanded")
}

func TestTreeView_RemoveAndClear(t *testing.T) {
	app, _ := newApp(t)
	tv := newTreeView(t, newForm(t, app))
	src := tv.Roots()[0]
	util := src.Children()[1]

	tv.Remove(util)
	assert.False(t, util.Valid())
	assert.Equal(t, 3, tv.ItemCount())
	assert.Equal(t, []string{"main.go"}, treeTexts(src.Children()))
	assert.Panics(t, func() { util.Text() })
	assert.Panics(t, func() { tv.Remove(walkctl.TreeItem{}) })

	tv.Clear()
	assert.Zero(t, tv.ItemCount())
	assert.Empty(t, tv.Roots())
	assert.False(t, src.Valid())
}

func TestTreeItem_InfoAndAssign(t *testing.T) {
	app, _ := newApp(t)
	tv := newTreeView(t, newForm(t, app))
	src := tv.Roots()[0]
	require.True(t, src.Expand())

	assert.Equal(t, walkctl.TreeItemInfo{
		Text:     "src",
		Expanded: true,
		Children: []walkctl.TreeItemInfo{
			{Text: "main.go", Data: 1},
			{Text: "util", Children: []walkctl.TreeItemInfo{{Text: "strings.go"}}},
		},
	}, src.Info())

	src.Assign(walkctl.TreeItemInfo{Text: "lib", Image: 2, Data: 9})
	assert.Equal(t, "lib", src.Text())
	assert.Equal(t, 2, src.Image())
	assert.Equal(t, uintptr(9), src.Data())
	assert.True(t, src.Expanded(), "assigning keeps the expansion")
	assert.Len(t, src.Children(), 2)

	src.SetText("a\x00b")
	src.SetImage(5)
	src.SetData(3)
	assert.Equal(t, "ab", src.Text())
	assert.Equal(t, 5, src.Image())
	assert.Equal(t, uintptr(3), src.Data())
}

type treeSelection struct {
	kind     string
	old, new uintptr
}

func TestTreeView_Select(t *testing.T) {
	app, _ := newApp(t)
	tv := newTreeView(t, newForm(t, app))
	src, docs := tv.Roots()[0], tv.Roots()[1]

	var got []treeSelection
	veto := false
	tv.OnItemSelecting().Attach(func(e *walkctl.SelectingEvent[walkctl.TreeItem]) {
		got = append(got, treeSelection{"selecting", e.Old().ID(), e.New().ID()})
		e.SetCanceled(veto)
	})
	tv.OnItemSelect().Attach(func(e *walkctl.SelectionEvent[walkctl.TreeItem]) {
		got = append(got, treeSelection{"select", e.Old().ID(), e.New().ID()})
	})

	assert.Zero(t, tv.Selected().ID())

	require.True(t, tv.Select(src))
	assert.Equal(t, []treeSelection{{"selecting", 0, src.ID()}, {"select", 0, src.ID()}}, got)
	assert.Equal(t, src.ID(), tv.Selected().ID())
	assert.True(t, src.Selected())

	got = nil
	assert.True(t, tv.Select(src))
	assert.Empty(t, got, "selecting the current item raises nothing")

	veto = true
	assert.False(t, tv.Select(docs))
	assert.Equal(t, []treeSelection{{"selecting", src.ID(), docs.ID()}}, got)
	assert.Equal(t, src.ID(), tv.Selected().ID())
	assert.False(t, docs.Selected())

	got = nil
	veto = false
	require.True(t, tv.Select(walkctl.TreeItem{}))
	assert.Equal(t, []treeSelection{{"selecting", src.ID(), 0}, {"select", src.ID(), 0}}, got)
	assert.Zero(t, tv.Selected().ID())
	assert.False(t, src.Selected())
}

func TestTreeView_ClickSelects(t *testing.T) {
	app, s := newApp(t)
	tv := newTreeView(t, newForm(t, app))

	s.Input().Click(tv.NativeHandle(), sim.Left, walkctl.Point{X: 10, Y: sim.RowHeight + 5})
	assert.Equal(t, "docs", tv.Selected().Text())
	assert.True(t, tv.Focused())
}

type treeExpansion struct {
	kind      string
	item      string
	expanding bool
}

func recordTreeExpansion(tv *walkctl.TreeView, veto *bool) *[]treeExpansion {
	var got []treeExpansion
	tv.OnItemExpanding().Attach(func(e *walkctl.ExpandingEvent[walkctl.TreeItem]) {
		got = append(got, treeExpansion{"expanding", e.Item().Text(), e.Expanding()})
		e.SetCanceled(*veto)
	})
	tv.OnItemExpand().Attach(func(e *walkctl.ExpandEvent[walkctl.TreeItem]) {
		got = append(got, treeExpansion{"expand", e.Item().Text(), e.Expanding()})
	})
	return &got
}

func TestTreeItem_SetExpanded(t *testing.T) {
	app, _ := newApp(t)
	tv := newTreeView(t, newForm(t, app))
	src := tv.Roots()[0]

	veto := false
	got := recordTreeExpansion(tv, &veto)

	require.True(t, src.Expand())
	assert.True(t, src.Expanded())
	assert.Equal(t, []treeExpansion{{"expanding", "src", true}, {"expand", "src", true}}, *got)

	*got = nil
	assert.True(t, src.Expand())
	assert.Empty(t, *got, "no events without a change")

	veto = true
	assert.False(t, src.Collapse())
	assert.True(t, src.Expanded())
	assert.Equal(t, []treeExpansion{{"expanding", "src", false}}, *got)

	*got = nil
	veto = false
	require.True(t, src.SetExpanded(false))
	assert.False(t, src.Expanded())
	assert.Equal(t, []treeExpansion{{"expanding", "src", false}, {"expand", "src", false}}, *got)
}

func TestTreeView_UserToggle(t *testing.T) {
	app, s := newApp(t)
	tv := newTreeView(t, newForm(t, app))
	h := tv.NativeHandle()
	in := s.Input()
	src := tv.Roots()[0]

	veto := false
	got := recordTreeExpansion(tv, &veto)

	in.DoubleClick(h, sim.Left, walkctl.Point{X: 10, Y: 5})
	assert.True(t, src.Expanded())
	assert.Equal(t, []treeExpansion{{"expanding", "src", true}, {"expand", "src", true}}, *got)

	require.True(t, tv.Select(src))
	*got = nil
	veto = true
	in.KeyDown(h, native.VkLeft)
	assert.True(t, src.Expanded())
	assert.Equal(t, []treeExpansion{{"expanding", "src", false}}, *got)

	*got = nil
	veto = false
	in.KeyDown(h, native.VkLeft)
	assert.False(t, src.Expanded())
	assert.Equal(t, []treeExpansion{{"expanding", "src", false}, {"expand", "src", false}}, *got)

	*got = nil
	in.KeyDown(h, native.VkRight)
	assert.True(t, src.Expanded())
	assert.Len(t, *got, 2)
}

func TestTreeView_EditCommit(t *testing.T) {
	app, _ := newApp(t)
	tv := newTreeView(t, newForm(t, app))
	docs := tv.Roots()[1]

	var committed string
	tv.OnTextEditing().Attach(func(e *walkctl.TextEditingEvent[walkctl.TreeItem]) {
		assert.Equal(t, docs.ID(), e.Item().ID())
		require.NotNil(t, e.Editor())
		assert.Equal(t, "docs", e.Editor().Text())
	})
	tv.OnTextEdit().Attach(func(e *walkctl.TextEditEvent[walkctl.TreeItem]) {
		committed = e.Text()
		assert.Equal(t, walkctl.CommitPending, tv.EditState())
	})

	editor := docs.BeginEdit()
	require.NotNil(t, editor)
	assert.Equal(t, walkctl.Editing, tv.EditState())
	assert.Same(t, editor, tv.Editor())
	it, ok := tv.EditItem()
	require.True(t, ok)
	assert.Equal(t, docs.ID(), it.ID())
	assert.True(t, editor.Focused())

	require.NoError(t, editor.SetText("manual"))
	tv.EndEdit(true)

	assert.Equal(t, "manual", committed)
	assert.Equal(t, "manual", docs.Text())
	assert.Equal(t, walkctl.NotEditing, tv.EditState())
	assert.Nil(t, tv.Editor())
	assert.True(t, editor.IsDisposed())

	_, ok = tv.EditItem()
	assert.False(t, ok)
}

func TestTreeView_EditCancel(t *testing.T) {
	app, s := newApp(t)
	tv := newTreeView(t, newForm(t, app))
	src := tv.Roots()[0]

	var edited int
	tv.OnTextEdit().Attach(func(*walkctl.TextEditEvent[walkctl.TreeItem]) { edited++ })

	editor := tv.BeginEdit(src)
	require.NotNil(t, editor)
	require.NoError(t, editor.SetText("lib"))
	tv.EndEdit(false)

	assert.Zero(t, edited)
	assert.Equal(t, "src", src.Text())
	assert.Equal(t, walkctl.NotEditing, tv.EditState())

	require.True(t, tv.Select(src))
	tv.SetFocus()
	s.Input().KeyDown(tv.NativeHandle(), native.VkF2)
	editor = tv.Editor()
	require.NotNil(t, editor, "F2 edits the current item")
	s.Input().KeyDown(editor.NativeHandle(), native.VkEscape)
	assert.Zero(t, edited)
	assert.Equal(t, walkctl.NotEditing, tv.EditState())
}

func TestTreeView_EditingVeto(t *testing.T) {
	app, s := newApp(t)
	tv := newTreeView(t, newForm(t, app))
	src := tv.Roots()[0]

	tv.OnTextEditing().Attach(func(e *walkctl.TextEditingEvent[walkctl.TreeItem]) { e.SetCanceled(true) })

	assert.Nil(t, src.BeginEdit())
	assert.Equal(t, walkctl.NotEditing, tv.EditState())
	assert.Empty(t, s.Children(tv.NativeHandle()))
}
