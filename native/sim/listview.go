// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"slices"

	"github.com/wuc656/walkctl/native"
)

type listItem struct {
	texts []string
	state uint32
	image int
	param uintptr
}

func (it *listItem) text(sub int) string {
	if sub < 0 || sub >= len(it.texts) {
		return ""
	}
	return it.texts[sub]
}

func (it *listItem) setText(sub int, text string) {
	for len(it.texts) <= sub {
		it.texts = append(it.texts, "")
	}
	it.texts[sub] = text
}

type listState struct {
	items    []*listItem
	columns  []native.ColumnData
	editor   native.Handle
	editItem int
}

func (l *listState) valid(i int) bool {
	return i >= 0 && i < len(l.items)
}

func listViewProc(s *Sim, w *window, id uint32, a, b uintptr, payload any) uintptr {
	l := w.list

	switch id {
	case native.LvmGetItemCount:
		return uintptr(len(l.items))

	case native.LvmInsertItem:
		d, ok := payload.(*native.ItemData)
		if !ok {
			return ^uintptr(0)
		}
		i := clamp(d.Index, 0, len(l.items))
		it := &listItem{texts: []string{d.Text}, image: d.Image, param: d.Param}
		if d.Mask&native.LvifState != 0 {
			it.state = d.State & d.StateMask
		}
		l.items = slices.Insert(l.items, i, it)
		return uintptr(i)

	case native.LvmDeleteItem:
		i := int(a)
		if !l.valid(i) {
			return 0
		}
		if l.editor != 0 && l.editItem == i {
			s.endListEdit(w, false)
		}
		l.items = slices.Delete(l.items, i, i+1)
		return 1

	case native.LvmDeleteAllItems:
		if l.editor != 0 {
			s.endListEdit(w, false)
		}
		l.items = nil
		return 1

	case native.LvmInsertColumn:
		c, ok := payload.(*native.ColumnData)
		if !ok {
			return ^uintptr(0)
		}
		i := clamp(c.Index, 0, len(l.columns))
		l.columns = slices.Insert(l.columns, i, *c)
		return uintptr(i)

	case native.LvmDeleteColumn:
		i := int(a)
		if i < 0 || i >= len(l.columns) {
			return 0
		}
		l.columns = slices.Delete(l.columns, i, i+1)
		return 1

	case native.LvmGetColumnCount:
		return uintptr(len(l.columns))

	case native.LvmGetItem:
		d, ok := payload.(*native.ItemData)
		if !ok || !l.valid(d.Index) {
			return 0
		}
		it := l.items[d.Index]
		if d.Mask&native.LvifText != 0 {
			d.Text, d.TextValid = it.text(d.SubItem), true
		}
		if d.Mask&native.LvifState != 0 {
			d.State = it.state & d.StateMask
		}
		if d.Mask&native.LvifImage != 0 {
			d.Image = it.image
		}
		if d.Mask&native.LvifParam != 0 {
			d.Param = it.param
		}
		return 1

	case native.LvmSetItem:
		d, ok := payload.(*native.ItemData)
		if !ok || !l.valid(d.Index) {
			return 0
		}
		it := l.items[d.Index]
		if d.Mask&native.LvifText != 0 {
			it.setText(d.SubItem, d.Text)
		}
		if d.Mask&native.LvifImage != 0 {
			it.image = d.Image
		}
		if d.Mask&native.LvifParam != 0 {
			it.param = d.Param
		}
		if d.Mask&native.LvifState != 0 && !s.setListState(w, d.Index, d.State, d.StateMask) {
			return 0
		}
		return 1

	case native.LvmGetItemText:
		d, ok := payload.(*native.ItemData)
		if !ok || !l.valid(d.Index) {
			return 0
		}
		d.Text, d.TextValid = l.items[d.Index].text(d.SubItem), true
		return uintptr(len(d.Text))

	case native.LvmSetItemText:
		d, ok := payload.(*native.ItemData)
		if !ok || !l.valid(d.Index) {
			return 0
		}
		l.items[d.Index].setText(d.SubItem, d.Text)
		return 1

	case native.LvmGetItemState:
		i := int(a)
		if !l.valid(i) {
			return 0
		}
		return uintptr(l.items[i].state & uint32(b))

	case native.LvmSetItemState:
		d, ok := payload.(*native.ItemData)
		if !ok {
			return 0
		}
		if int(int32(a)) == -1 {
			for i := range l.items {
				s.setListState(w, i, d.State, d.StateMask)
			}
			return 1
		}
		return boolParam(s.setListState(w, int(a), d.State, d.StateMask))

	case native.LvmEditLabel:
		return uintptr(s.beginListEdit(w, int(int32(a))))

	case native.LvmGetEditControl:
		return uintptr(l.editor)

	case native.LvmCancelEditLabel:
		s.endListEdit(w, false)
		return 0

	case native.MsgLButtonDown:
		s.takeFocusOnClick(w)
		pt := native.PointFromParam(b)
		row := s.listRowAt(w, pt)
		if row >= 0 {
			for i := range l.items {
				if i != row {
					s.setListState(w, i, 0, native.LvisSelected|native.LvisFocused)
				}
			}
			s.setListState(w, row, native.LvisSelected|native.LvisFocused, native.LvisSelected|native.LvisFocused)
		}
		s.notify(w, native.NmClick, &native.ListViewNotify{Item: row, Point: pt})
		return 0

	case native.MsgLButtonDblClk:
		pt := native.PointFromParam(b)
		if row := s.listRowAt(w, pt); row >= 0 {
			s.notify(w, native.LvnItemActivate, &native.ListViewNotify{Item: row, Point: pt})
		}
		return 0

	case native.MsgKeyDown:
		if uint32(a) == native.VkF2 && w.style&native.LvsEditLabels != 0 {
			for i, it := range l.items {
				if it.state&native.LvisFocused != 0 {
					s.beginListEdit(w, i)
					break
				}
			}
		}
		return 0
	}

	return defWindowProc(s, w, id, a, b, payload)
}

func (s *Sim) listRowAt(w *window, pt native.Point) int {
	if pt.X < 0 || pt.X >= w.bounds.Width || pt.Y < 0 {
		return -1
	}
	row := pt.Y / RowHeight
	if !w.list.valid(row) {
		return -1
	}
	return row
}

// setListState changes an item's state bits, raising the changing and
// changed notifications. It reports false if the parent vetoed the change.
func (s *Sim) setListState(w *window, i int, state, mask uint32) bool {
	l := w.list
	if !l.valid(i) {
		return false
	}
	it := l.items[i]
	newState := it.state&^mask | state&mask
	if newState == it.state {
		return true
	}

	n := &native.ListViewNotify{Item: i, NewState: newState, OldState: it.state, Changed: native.LvifState}
	if s.notify(w, native.LvnItemChanging, n) != 0 {
		return false
	}
	old := it.state
	it.state = newState
	s.notify(w, native.LvnItemChanged, &native.ListViewNotify{Item: i, NewState: newState, OldState: old, Changed: native.LvifState})
	return true
}

func (s *Sim) beginListEdit(w *window, i int) native.Handle {
	l := w.list
	if l.editor != 0 {
		s.endListEdit(w, true)
	}
	if !l.valid(i) {
		return 0
	}

	editor, err := s.CreateWindow(native.CreateOptions{
		Class:  native.ClassEdit,
		Parent: w.h,
		Style:  native.WsChild | native.WsVisible | native.WsBorder,
		Bounds: native.Rectangle{Y: i * RowHeight, Width: w.bounds.Width, Height: RowHeight},
		Text:   l.items[i].text(0),
	})
	if err != nil {
		return 0
	}
	s.mustWin(editor).edit.labelOwner = w.h
	l.editor, l.editItem = editor, i

	n := &native.DisplayInfoNotify{Item: native.ItemData{Mask: native.LvifText, Index: i, Text: l.items[i].text(0), TextValid: true}}
	if s.notify(w, native.LvnBeginLabelEdit, n) != 0 {
		l.editor = 0
		s.destroy(editor)
		return 0
	}

	s.SetFocus(editor)
	return editor
}

func (s *Sim) endListEdit(w *window, commit bool) {
	l := w.list
	editor := l.editor
	if editor == 0 {
		return
	}
	l.editor = 0
	i := l.editItem

	n := &native.DisplayInfoNotify{Item: native.ItemData{Mask: native.LvifText, Index: i}}
	if commit {
		n.Item.Text, n.Item.TextValid = s.Text(editor), true
	}
	if s.notify(w, native.LvnEndLabelEdit, n) != 0 && commit && l.valid(i) {
		l.items[i].setText(0, n.Item.Text)
	}

	s.destroy(editor)
}

func (s *Sim) endLabelEdit(owner native.Handle, commit bool) {
	w := s.win(owner)
	if w == nil {
		return
	}
	switch {
	case w.list != nil:
		s.endListEdit(w, commit)
	case w.tree != nil:
		s.endTreeEdit(w, commit)
	}
}
