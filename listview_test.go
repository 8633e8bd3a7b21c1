// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/wuc656/walkctl"
	"github.com/wuc656/walkctl/native"
	"github.com/wuc656/walkctl/native/sim"
)

// newListView returns a report view with the columns Name, Size and Kind
// holding the given rows.
func newListView(t *testing.T, f *walkctl.Form, rows ...walkctl.ListViewItemInfo) *walkctl.ListView {
	t.Helper()

	lv, err := walkctl.NewListView(f, walkctl.ListViewOptions{
		Bounds:     walkctl.Rectangle{Width: 300, Height: 200},
		EditLabels: true,
	})
	require.NoError(t, err)

	for i, title := range []string{"Name", "Size", "Kind"} {
		require.Equal(t, i, lv.InsertColumn(i, title, 80))
	}
	for _, row := range rows {
		_, err := lv.Append(row)
		require.NoError(t, err)
	}
	return lv
}

func texts(items []walkctl.ListViewItem) []string {
	var s []string
	for _, it := range items {
		s = append(s, it.Text())
	}
	return s
}

func TestListView_InsertAndRemove(t *testing.T) {
	app, _ := newApp(t)
	lv := newListView(t, newForm(t, app),
		walkctl.ListViewItemInfo{Text: "a", SubItems: []string{"1", "file"}},
		walkctl.ListViewItemInfo{Text: "c"},
	)

	it, err := lv.Insert(1, walkctl.ListViewItemInfo{Text: "b", Data: 7})
	require.NoError(t, err)
	assert.Equal(t, 1, it.Index())
	assert.Equal(t, uintptr(7), it.Data())

	tail, err := lv.Insert(99, walkctl.ListViewItemInfo{Text: "d"})
	require.NoError(t, err)
	assert.Equal(t, 3, tail.Index(), "an index past the end appends")

	assert.Equal(t, []string{"a", "b", "c", "d"}, texts(lv.Items()))
	assert.Equal(t, "file", lv.Item(0).SubItemText(2))

	lv.Remove(0)
	assert.Equal(t, []string{"b", "c", "d"}, texts(lv.Items()))
	assert.False(t, tail.Valid(), "cursors are positional")
	assert.Panics(t, func() { lv.Remove(5) })

	lv.Clear()
	assert.Zero(t, lv.ItemCount())
}

func TestListView_Columns(t *testing.T) {
	app, _ := newApp(t)
	lv := newListView(t, newForm(t, app))

	assert.Equal(t, 3, lv.ColumnCount())
	lv.RemoveColumn(1)
	assert.Equal(t, 2, lv.ColumnCount())
	assert.Panics(t, func() { lv.RemoveColumn(7) })
}

func TestListViewItem_ConstructionMakesNoNativeCalls(t *testing.T) {
	app, s := newApp(t)
	lv := newListView(t, newForm(t, app), walkctl.ListViewItemInfo{Text: "a"})

	s.ResetCounts()
	it := lv.Item(0)
	far := lv.Item(40)
	assert.Zero(t, s.Count("SendMessage"))
	assert.Zero(t, s.Sent(native.LvmGetItem))

	assert.Equal(t, "a", it.Text())
	assert.Equal(t, 1, s.Sent(native.LvmGetItem))
	assert.False(t, far.Valid())
	assert.Panics(t, func() { far.Text() })
	assert.Panics(t, func() { lv.Item(-1) })
}

func TestListViewItem_InfoIsOneSnapshot(t *testing.T) {
	app, s := newApp(t)
	lv := newListView(t, newForm(t, app),
		walkctl.ListViewItemInfo{Text: "a", SubItems: []string{"1 KB", "text"}, Image: 3, Data: 11},
	)
	it := lv.Item(0)
	require.True(t, it.SetSelected(true))

	s.ResetCounts()
	info := it.Info()

	assert.Equal(t, 1, s.Sent(native.LvmGetItem))
	assert.Equal(t, 1, s.Sent(native.LvmGetColumnCount))
	assert.Equal(t, 2, s.Sent(native.LvmGetItemText))
	assert.Equal(t, 4, s.Count("SendMessage"))

	assert.Equal(t, walkctl.ListViewItemInfo{
		Text:     "a",
		SubItems: []string{"1 KB", "text"},
		Image:    3,
		Data:     11,
		Selected: true,
	}, info)

	it.SetText("changed")
	it.SetSubItemText(1, "2 KB")
	assert.Equal(t, "a", info.Text, "a snapshot is detached from the item")
	assert.Equal(t, "1 KB", info.SubItems[0])
}

func TestListViewItem_Assign(t *testing.T) {
	app, _ := newApp(t)
	lv := newListView(t, newForm(t, app), walkctl.ListViewItemInfo{Text: "a"}, walkctl.ListViewItemInfo{Text: "b"})

	want := walkctl.ListViewItemInfo{Text: "z", SubItems: []string{"9", "dir"}, Image: 1, Data: 5, Selected: true, Focused: true}
	lv.Item(1).Assign(want)
	assert.Equal(t, want, lv.Item(1).Info())
	assert.Equal(t, "a", lv.Item(0).Text())
}

func TestListView_SelectionGate(t *testing.T) {
	app, _ := newApp(t)
	lv := newListView(t, newForm(t, app), walkctl.ListViewItemInfo{Text: "a"}, walkctl.ListViewItemInfo{Text: "b"})

	var changed []int
	lv.OnItemChanging().Attach(func(e *walkctl.ItemChangingEvent[walkctl.ListViewItem]) {
		if e.Item().Index() == 1 && e.NewState().Has(walkctl.StateSelected) {
			e.SetCanceled(true)
		}
	})
	lv.OnItemChange().Attach(func(e *walkctl.ItemChangeEvent[walkctl.ListViewItem]) {
		changed = append(changed, e.Item().Index())
		assert.False(t, e.OldState().Has(walkctl.StateSelected))
	})

	assert.True(t, lv.Item(0).SetSelected(true))
	assert.False(t, lv.Item(1).SetSelected(true))

	assert.True(t, lv.Item(0).Selected())
	assert.False(t, lv.Item(1).Selected())
	assert.Equal(t, []int{0}, changed)
	assert.Equal(t, []string{"a"}, texts(lv.SelectedItems()))

	assert.True(t, lv.Item(1).SetFocused(true))
	assert.True(t, lv.Item(1).Focused())
	assert.Equal(t, []int{0, 1}, changed)
}

func TestListView_MouseEvents(t *testing.T) {
	app, s := newApp(t)
	lv := newListView(t, newForm(t, app), walkctl.ListViewItemInfo{Text: "a"}, walkctl.ListViewItemInfo{Text: "b"})
	h := lv.NativeHandle()
	in := s.Input()

	var clicked, activated, columns []int
	lv.OnItemClick().Attach(func(e *walkctl.ItemEvent[walkctl.ListViewItem]) { clicked = append(clicked, e.Item().Index()) })
	lv.OnItemActivate().Attach(func(e *walkctl.ItemEvent[walkctl.ListViewItem]) { activated = append(activated, e.Item().Index()) })
	lv.OnColumnClick().Attach(func(e *walkctl.ColumnEvent) { columns = append(columns, e.Column()) })

	in.Click(h, sim.Left, walkctl.Point{X: 5, Y: sim.RowHeight + 5})
	assert.Equal(t, []int{1}, clicked)
	assert.True(t, lv.Item(1).Selected())
	assert.True(t, lv.Focused())

	in.Click(h, sim.Left, walkctl.Point{X: 5, Y: 150})
	assert.Equal(t, []int{1}, clicked, "clicks below the last row hit no item")

	in.DoubleClick(h, sim.Left, walkctl.Point{X: 5, Y: 5})
	assert.Equal(t, []int{0}, activated)

	in.ClickColumn(h, 2)
	assert.Equal(t, []int{2}, columns)
}

func TestListView_Sort(t *testing.T) {
	app, _ := newApp(t)
	lv := newListView(t, newForm(t, app),
		walkctl.ListViewItemInfo{Text: "file10", SubItems: []string{"3"}},
		walkctl.ListViewItemInfo{Text: "File2", SubItems: []string{"1"}},
		walkctl.ListViewItemInfo{Text: "file1", SubItems: []string{"2"}},
	)
	require.True(t, lv.Item(0).SetSelected(true))

	opts := walkctl.CompareOptions{Language: language.English, IgnoreCase: true, Numeric: true}
	lv.Sort(0, opts, false)

	assert.Equal(t, []string{"file1", "File2", "file10"}, texts(lv.Items()))
	assert.Equal(t, "2", lv.Item(0).SubItemText(1), "sub-items move with their item")
	assert.Equal(t, []string{"file10"}, texts(lv.SelectedItems()), "selection moves with its item")

	lv.Sort(1, opts, true)
	assert.Equal(t, []string{"file10", "file1", "File2"}, texts(lv.Items()))
}

func TestListView_SortRaisesNoItemChanges(t *testing.T) {
	app, _ := newApp(t)
	lv := newListView(t, newForm(t, app),
		walkctl.ListViewItemInfo{Text: "b"},
		walkctl.ListViewItemInfo{Text: "a"},
	)
	require.True(t, lv.Item(0).SetSelected(true))

	var changes int
	lv.OnItemChanging().Attach(func(e *walkctl.ItemChangingEvent[walkctl.ListViewItem]) {
		changes++
		e.SetCanceled(true)
	})
	lv.OnItemChange().Attach(func(*walkctl.ItemChangeEvent[walkctl.ListViewItem]) { changes++ })

	lv.Sort(0, walkctl.CompareOptions{}, false)

	assert.Equal(t, []string{"a", "b"}, texts(lv.Items()))
	assert.Equal(t, []string{"b"}, texts(lv.SelectedItems()), "a vetoing listener does not pin the selection")
	assert.Zero(t, changes)

	assert.False(t, lv.Item(0).SetSelected(true), "the gate applies again after sorting")
	assert.Equal(t, 1, changes)
}

func TestListView_EditCommit(t *testing.T) {
	app, _ := newApp(t)
	lv := newListView(t, newForm(t, app), walkctl.ListViewItemInfo{Text: "old"})

	var editing, edited int
	var committed string
	lv.OnTextEditing().Attach(func(e *walkctl.TextEditingEvent[walkctl.ListViewItem]) {
		editing++
		require.NotNil(t, e.Editor())
		assert.Equal(t, "old", e.Editor().Text())
	})
	lv.OnTextEdit().Attach(func(e *walkctl.TextEditEvent[walkctl.ListViewItem]) {
		edited++
		committed = e.Text()
		assert.Equal(t, walkctl.CommitPending, lv.EditState())
	})

	editor := lv.Item(0).BeginEdit()
	require.NotNil(t, editor)
	assert.Equal(t, walkctl.Editing, lv.EditState())
	assert.Same(t, editor, lv.Editor())
	it, ok := lv.EditItem()
	require.True(t, ok)
	assert.Zero(t, it.Index())
	assert.True(t, editor.Focused())

	require.NoError(t, editor.SetText("new"))
	lv.EndEdit(true)

	assert.Equal(t, 1, editing)
	assert.Equal(t, 1, edited)
	assert.Equal(t, "new", committed)
	assert.Equal(t, "new", lv.Item(0).Text())
	assert.Equal(t, walkctl.NotEditing, lv.EditState())
	assert.Nil(t, lv.Editor())
	assert.True(t, editor.IsDisposed())
	assert.True(t, lv.Focused())
}

func TestListView_EditingVetoSkipsCommit(t *testing.T) {
	app, s := newApp(t)
	lv := newListView(t, newForm(t, app), walkctl.ListViewItemInfo{Text: "old"})

	var edited int
	lv.OnTextEditing().Attach(func(e *walkctl.TextEditingEvent[walkctl.ListViewItem]) { e.SetCanceled(true) })
	lv.OnTextEdit().Attach(func(*walkctl.TextEditEvent[walkctl.ListViewItem]) { edited++ })

	assert.Nil(t, lv.BeginEdit(0))
	assert.Equal(t, walkctl.NotEditing, lv.EditState())
	assert.Empty(t, s.Children(lv.NativeHandle()), "the native editor is gone")

	lv.EndEdit(true)
	assert.Zero(t, edited)
	assert.Equal(t, "old", lv.Item(0).Text())
}

func TestListView_EditRejected(t *testing.T) {
	app, _ := newApp(t)
	lv := newListView(t, newForm(t, app), walkctl.ListViewItemInfo{Text: "old"})

	lv.OnTextEdit().Attach(func(e *walkctl.TextEditEvent[walkctl.ListViewItem]) { e.SetCanceled(e.Text() == "") })

	editor := lv.BeginEdit(0)
	require.NotNil(t, editor)
	require.NoError(t, editor.SetText(""))
	lv.EndEdit(true)

	assert.Equal(t, "old", lv.Item(0).Text())
	assert.Equal(t, walkctl.NotEditing, lv.EditState())
}

func TestListView_EditKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      uint32
		wantText string
		wantEdit int
	}{
		{name: "return commits", key: native.VkReturn, wantText: "typed", wantEdit: 1},
		{name: "escape abandons", key: native.VkEscape, wantText: "old", wantEdit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, s := newApp(t)
			lv := newListView(t, newForm(t, app), walkctl.ListViewItemInfo{Text: "old"})

			var edited int
			lv.OnTextEdit().Attach(func(*walkctl.TextEditEvent[walkctl.ListViewItem]) { edited++ })

			require.True(t, lv.Item(0).SetFocused(true))
			s.Input().KeyDown(lv.NativeHandle(), native.VkF2)
			require.Equal(t, walkctl.Editing, lv.EditState(), "F2 starts an edit on the focused item")

			editor := lv.Editor()
			require.NoError(t, editor.SetText("typed"))
			s.Input().KeyDown(editor.NativeHandle(), tt.key)

			assert.Equal(t, tt.wantText, lv.Item(0).Text())
			assert.Equal(t, tt.wantEdit, edited)
			assert.Equal(t, walkctl.NotEditing, lv.EditState())
		})
	}
}

func TestListView_EndEditCancel(t *testing.T) {
	app, _ := newApp(t)
	lv := newListView(t, newForm(t, app), walkctl.ListViewItemInfo{Text: "old"})

	var edited int
	lv.OnTextEdit().Attach(func(*walkctl.TextEditEvent[walkctl.ListViewItem]) { edited++ })

	editor := lv.BeginEdit(0)
	require.NotNil(t, editor)
	require.NoError(t, editor.SetText("typed"))
	lv.EndEdit(false)

	assert.Zero(t, edited)
	assert.Equal(t, "old", lv.Item(0).Text())
	assert.Equal(t, walkctl.NotEditing, lv.EditState())
}

func TestEditState_String(t *testing.T) {
	assert.Equal(t, "CommitPending", walkctl.CommitPending.String())
	assert.Equal(t, "EditState(?)", walkctl.EditState(42).String())
}
