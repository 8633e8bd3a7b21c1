// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"slices"

	"github.com/wuc656/walkctl/native"
)

type tabState struct {
	items []native.ItemData
	cur   int
}

func tabProc(s *Sim, w *window, id uint32, a, b uintptr, payload any) uintptr {
	t := w.tab

	switch id {
	case native.TcmGetItemCount:
		return uintptr(len(t.items))

	case native.TcmInsertItem:
		d, ok := payload.(*native.ItemData)
		if !ok {
			return ^uintptr(0)
		}
		i := clamp(int(a), 0, len(t.items))
		t.items = slices.Insert(t.items, i, native.ItemData{Text: d.Text, Image: d.Image, Param: d.Param})
		if t.cur < 0 {
			t.cur = 0
		} else if i <= t.cur {
			t.cur++
		}
		return uintptr(i)

	case native.TcmDeleteItem:
		i := int(a)
		if i < 0 || i >= len(t.items) {
			return 0
		}
		t.items = slices.Delete(t.items, i, i+1)
		switch {
		case len(t.items) == 0:
			t.cur = -1
		case i < t.cur, t.cur >= len(t.items):
			t.cur--
		}
		return 1

	case native.TcmGetCurSel:
		return uintptr(t.cur)

	case native.TcmSetCurSel:
		i := int(a)
		if i < 0 || i >= len(t.items) {
			return ^uintptr(0)
		}
		prev := t.cur
		t.cur = i
		return uintptr(prev)

	case native.TcmGetItem:
		d, ok := payload.(*native.ItemData)
		i := int(a)
		if !ok || i < 0 || i >= len(t.items) {
			return 0
		}
		if d.Mask&native.TcifText != 0 {
			d.Text, d.TextValid = t.items[i].Text, true
		}
		if d.Mask&native.TcifImage != 0 {
			d.Image = t.items[i].Image
		}
		return 1

	case native.TcmSetItem:
		d, ok := payload.(*native.ItemData)
		i := int(a)
		if !ok || i < 0 || i >= len(t.items) {
			return 0
		}
		if d.Mask&native.TcifText != 0 {
			t.items[i].Text = d.Text
		}
		if d.Mask&native.TcifImage != 0 {
			t.items[i].Image = d.Image
		}
		return 1

	case native.MsgLButtonDown:
		s.takeFocusOnClick(w)
		pt := native.PointFromParam(b)
		if pt.Y >= 0 && pt.Y < RowHeight && pt.X >= 0 {
			s.userSelectTab(w, pt.X/TabWidth)
		}
		return 0

	case native.MsgKeyDown:
		switch uint32(a) {
		case native.VkRight:
			s.userSelectTab(w, t.cur+1)
		case native.VkLeft:
			s.userSelectTab(w, t.cur-1)
		}
		return 0
	}

	return defWindowProc(s, w, id, a, b, payload)
}

func (s *Sim) userSelectTab(w *window, i int) {
	t := w.tab
	if i < 0 || i >= len(t.items) || i == t.cur {
		return
	}
	if s.notify(w, native.TcnSelChanging, &native.NotifyHeader{}) != 0 {
		return
	}
	t.cur = i
	s.notify(w, native.TcnSelChange, &native.NotifyHeader{})
}
