// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"slices"

	"github.com/wuc656/walkctl/native"
)

type treeItem struct {
	id       uintptr
	parent   *treeItem
	children []*treeItem
	text     string
	state    uint32
	image    int
	param    uintptr
}

type treeState struct {
	root     treeItem
	byID     map[uintptr]*treeItem
	caret    *treeItem
	editor   native.Handle
	editItem *treeItem
}

func newTreeState() *treeState {
	t := &treeState{byID: make(map[uintptr]*treeItem)}
	t.root.state = native.TvisExpanded
	return t
}

func (t *treeState) item(id uintptr) *treeItem {
	if id == native.TviRoot || id == 0 {
		return &t.root
	}
	return t.byID[id]
}

func (t *treeState) count() int {
	return len(t.byID)
}

// visible returns the items shown in expanded order, as the rows of the
// control.
func (t *treeState) visible() []*treeItem {
	var rows []*treeItem
	var walk func(it *treeItem)
	walk = func(it *treeItem) {
		for _, c := range it.children {
			rows = append(rows, c)
			if c.state&native.TvisExpanded != 0 {
				walk(c)
			}
		}
	}
	walk(&t.root)
	return rows
}

func (it *treeItem) index() int {
	return slices.Index(it.parent.children, it)
}

func (it *treeItem) data() native.ItemData {
	return native.ItemData{Item: it.id, Text: it.text, TextValid: true, State: it.state, Image: it.image, Param: it.param, Children: min(len(it.children), 1)}
}

func treeViewProc(s *Sim, w *window, id uint32, a, b uintptr, payload any) uintptr {
	t := w.tree

	switch id {
	case native.TvmInsertItem:
		ins, ok := payload.(*native.TreeInsert)
		if !ok {
			return 0
		}
		parent := t.item(ins.Parent)
		if parent == nil {
			return 0
		}
		it := &treeItem{id: s.nextItem, parent: parent, text: ins.Item.Text, image: ins.Item.Image, param: ins.Item.Param}
		s.nextItem++
		if ins.Item.Mask&native.TvifState != 0 {
			it.state = ins.Item.State & ins.Item.StateMask
		}

		pos := len(parent.children)
		switch ins.InsertAfter {
		case native.TviFirst:
			pos = 0
		case native.TviLast, 0:
		default:
			if after := t.byID[ins.InsertAfter]; after != nil && after.parent == parent {
				pos = after.index() + 1
			}
		}
		parent.children = slices.Insert(parent.children, pos, it)
		t.byID[it.id] = it
		return it.id

	case native.TvmDeleteItem:
		it := t.item(b)
		if it == nil {
			return 0
		}
		s.deleteTreeItem(w, it)
		return 1

	case native.TvmGetCount:
		return uintptr(t.count())

	case native.TvmGetNextItem:
		return treeNext(t, a, b)

	case native.TvmSelectItem:
		if a != native.TvgnCaret {
			return 0
		}
		var it *treeItem
		if b != 0 {
			if it = t.byID[b]; it == nil {
				return 0
			}
		}
		return boolParam(s.selectTreeItem(w, it, 0))

	case native.TvmExpand:
		it := t.byID[b]
		if it == nil {
			return 0
		}
		expanded := it.state&native.TvisExpanded != 0
		switch a {
		case native.TveExpand:
			it.state |= native.TvisExpanded
		case native.TveCollapse:
			it.state &^= native.TvisExpanded
		default:
			return 0
		}
		return boolParam(expanded != (it.state&native.TvisExpanded != 0))

	case native.TvmGetItem:
		d, ok := payload.(*native.ItemData)
		if !ok {
			return 0
		}
		it := t.byID[d.Item]
		if it == nil {
			return 0
		}
		if d.Mask&native.TvifText != 0 {
			d.Text, d.TextValid = it.text, true
		}
		if d.Mask&native.TvifState != 0 {
			d.State = it.state & d.StateMask
		}
		if d.Mask&native.TvifImage != 0 {
			d.Image = it.image
		}
		if d.Mask&native.TvifParam != 0 {
			d.Param = it.param
		}
		if d.Mask&native.TvifChildren != 0 {
			d.Children = min(len(it.children), 1)
		}
		return 1

	case native.TvmSetItem:
		d, ok := payload.(*native.ItemData)
		if !ok {
			return 0
		}
		it := t.byID[d.Item]
		if it == nil {
			return 0
		}
		if d.Mask&native.TvifText != 0 {
			it.text = d.Text
		}
		if d.Mask&native.TvifState != 0 {
			it.state = it.state&^d.StateMask | d.State&d.StateMask
		}
		if d.Mask&native.TvifImage != 0 {
			it.image = d.Image
		}
		if d.Mask&native.TvifParam != 0 {
			it.param = d.Param
		}
		return 1

	case native.TvmEditLabel:
		return uintptr(s.beginTreeEdit(w, t.byID[b]))

	case native.TvmGetEditControl:
		return uintptr(t.editor)

	case native.TvmEndEditLabelNow:
		if t.editor == 0 {
			return 0
		}
		s.endTreeEdit(w, a == 0)
		return 1

	case native.MsgLButtonDown:
		s.takeFocusOnClick(w)
		pt := native.PointFromParam(b)
		if it := s.treeRowAt(w, pt); it != nil {
			s.selectTreeItem(w, it, 1)
		}
		return 0

	case native.MsgLButtonDblClk:
		if it := s.treeRowAt(w, native.PointFromParam(b)); it != nil {
			s.userToggleTree(w, it, it.state&native.TvisExpanded == 0)
		}
		return 0

	case native.MsgKeyDown:
		if t.caret == nil {
			return 0
		}
		switch uint32(a) {
		case native.VkRight:
			s.userToggleTree(w, t.caret, true)
		case native.VkLeft:
			s.userToggleTree(w, t.caret, false)
		case native.VkF2:
			if w.style&native.TvsEditLabels != 0 {
				s.beginTreeEdit(w, t.caret)
			}
		}
		return 0
	}

	return defWindowProc(s, w, id, a, b, payload)
}

func treeNext(t *treeState, flag, id uintptr) uintptr {
	if flag == native.TvgnRoot {
		if len(t.root.children) == 0 {
			return 0
		}
		return t.root.children[0].id
	}
	if flag == native.TvgnCaret {
		if t.caret == nil {
			return 0
		}
		return t.caret.id
	}

	it := t.item(id)
	if it == nil {
		return 0
	}
	switch flag {
	case native.TvgnChild:
		if len(it.children) > 0 {
			return it.children[0].id
		}
	case native.TvgnParent:
		if it.parent != nil && it.parent != &t.root {
			return it.parent.id
		}
	case native.TvgnNext:
		if it.parent != nil {
			if i := it.index(); i+1 < len(it.parent.children) {
				return it.parent.children[i+1].id
			}
		}
	case native.TvgnPrevious:
		if it.parent != nil {
			if i := it.index(); i > 0 {
				return it.parent.children[i-1].id
			}
		}
	}
	return 0
}

func (s *Sim) treeRowAt(w *window, pt native.Point) *treeItem {
	if pt.X < 0 || pt.X >= w.bounds.Width || pt.Y < 0 {
		return nil
	}
	rows := w.tree.visible()
	if row := pt.Y / RowHeight; row < len(rows) {
		return rows[row]
	}
	return nil
}

func (s *Sim) deleteTreeItem(w *window, it *treeItem) {
	t := w.tree
	for _, c := range slices.Clone(it.children) {
		s.deleteTreeItem(w, c)
	}
	if it == &t.root {
		return
	}
	if t.editor != 0 && t.editItem == it {
		s.endTreeEdit(w, false)
	}
	if t.caret == it {
		t.caret = nil
	}
	it.parent.children = slices.DeleteFunc(it.parent.children, func(c *treeItem) bool { return c == it })
	delete(t.byID, it.id)
}

// selectTreeItem moves the caret to it, raising the selection
// notifications. It reports false if the parent vetoed the change.
func (s *Sim) selectTreeItem(w *window, it *treeItem, action uintptr) bool {
	t := w.tree
	if it == t.caret {
		return true
	}

	n := &native.TreeViewNotify{Action: action}
	if t.caret != nil {
		n.OldItem = t.caret.data()
	}
	if it != nil {
		n.NewItem = it.data()
	}
	if s.notify(w, native.TvnSelChanging, n) != 0 {
		return false
	}

	if t.caret != nil {
		t.caret.state &^= native.TvisSelected
	}
	t.caret = it
	if it != nil {
		it.state |= native.TvisSelected
	}

	done := *n
	s.notify(w, native.TvnSelChanged, &done)
	return true
}

func (s *Sim) userToggleTree(w *window, it *treeItem, expand bool) {
	if len(it.children) == 0 || expand == (it.state&native.TvisExpanded != 0) {
		return
	}

	action := native.TveCollapse
	if expand {
		action = native.TveExpand
	}

	if s.notify(w, native.TvnItemExpanding, &native.TreeViewNotify{Action: action, NewItem: it.data()}) != 0 {
		return
	}
	if expand {
		it.state |= native.TvisExpanded
	} else {
		it.state &^= native.TvisExpanded
	}
	s.notify(w, native.TvnItemExpanded, &native.TreeViewNotify{Action: action, NewItem: it.data()})
}

func (s *Sim) beginTreeEdit(w *window, it *treeItem) native.Handle {
	t := w.tree
	if t.editor != 0 {
		s.endTreeEdit(w, true)
	}
	if it == nil {
		return 0
	}

	row := slices.Index(t.visible(), it)
	editor, err := s.CreateWindow(native.CreateOptions{
		Class:  native.ClassEdit,
		Parent: w.h,
		Style:  native.WsChild | native.WsVisible | native.WsBorder,
		Bounds: native.Rectangle{Y: max(row, 0) * RowHeight, Width: w.bounds.Width, Height: RowHeight},
		Text:   it.text,
	})
	if err != nil {
		return 0
	}
	s.mustWin(editor).edit.labelOwner = w.h
	t.editor, t.editItem = editor, it

	if s.notify(w, native.TvnBeginLabelEdit, &native.DisplayInfoNotify{Item: it.data()}) != 0 {
		t.editor, t.editItem = 0, nil
		s.destroy(editor)
		return 0
	}

	s.SetFocus(editor)
	return editor
}

func (s *Sim) endTreeEdit(w *window, commit bool) {
	t := w.tree
	editor, it := t.editor, t.editItem
	if editor == 0 {
		return
	}
	t.editor, t.editItem = 0, nil

	d := it.data()
	d.Text, d.TextValid = "", false
	if commit {
		d.Text, d.TextValid = s.Text(editor), true
	}
	n := &native.DisplayInfoNotify{Item: d}
	if s.notify(w, native.TvnEndLabelEdit, n) != 0 && commit {
		it.text = n.Item.Text
	}

	s.destroy(editor)
}
