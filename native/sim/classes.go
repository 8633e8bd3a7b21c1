// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"unicode/utf16"

	"github.com/wuc656/walkctl/native"
)

type classFunc func(s *Sim, w *window, id uint32, a, b uintptr, payload any) uintptr

func classProc(class string) (classFunc, func(*window)) {
	switch class {
	case native.ClassWindow:
		return defWindowProc, nil
	case native.ClassEdit:
		return editProc, func(w *window) { w.edit = &editState{limit: 0x7FFE} }
	case native.ClassButton:
		return buttonProc, func(w *window) { w.button = &buttonState{} }
	case native.ClassListView:
		return listViewProc, func(w *window) { w.list = &listState{} }
	case native.ClassTab:
		return tabProc, func(w *window) { w.tab = &tabState{cur: -1} }
	case native.ClassTreeView:
		return treeViewProc, func(w *window) { w.tree = newTreeState() }
	}
	return nil, nil
}

// defWindowProc mirrors the parts of DefWindowProc that walkctl relies on.
func defWindowProc(s *Sim, w *window, id uint32, a, b uintptr, payload any) uintptr {
	switch id {
	case native.MsgSetText:
		if text, ok := payload.(string); ok {
			w.text = text
			return 1
		}
		return 0

	case native.MsgSetFont:
		if spec, ok := payload.(*native.FontSpec); ok {
			w.font = spec
		}

	case native.MsgClose:
		s.destroy(w.h)

	case native.MsgContextMenu:
		if w.parent != rootHandle && w.style&native.WsChild != 0 {
			return s.send(w.parent, id, a, b, payload)
		}
		s.shown = append(s.shown, native.Handle(a))

	case native.MsgMouseWheel:
		if w.parent != rootHandle && w.style&native.WsChild != 0 {
			return s.send(w.parent, id, a, b, payload)
		}

	case native.MsgEraseBkgnd:
		return 1
	}

	return 0
}

// notify sends a MsgNotify from w to its parent.
func (s *Sim) notify(w *window, code int32, n native.Notifier) uintptr {
	hdr := n.Header()
	hdr.From = w.h
	hdr.ID = uintptr(w.id)
	hdr.Code = code
	return s.send(w.parent, native.MsgNotify, uintptr(w.id), 0, n)
}

// command sends a MsgCommand from w to its parent.
func (s *Sim) command(w *window, code int) uintptr {
	return s.send(w.parent, native.MsgCommand, native.MakeLong(int(w.id), code), uintptr(w.h), nil)
}

func (s *Sim) takeFocusOnClick(w *window) {
	if w.style&native.WsDisabled == 0 {
		s.SetFocus(w.h)
	}
}

type editState struct {
	caret      int // in runes
	selEnd     int
	limit      int // in UTF-16 code units
	labelOwner native.Handle
}

func editProc(s *Sim, w *window, id uint32, a, b uintptr, payload any) uintptr {
	e := w.edit

	switch id {
	case native.MsgSetText:
		text, ok := payload.(string)
		if !ok {
			return 0
		}
		w.text = text
		e.caret = len([]rune(text))
		e.selEnd = e.caret
		s.command(w, native.EnChange)
		return 1

	case native.MsgChar:
		if w.style&native.EsReadOnly != 0 {
			return 0
		}
		if editInsert(w, rune(a)) {
			s.command(w, native.EnChange)
		}
		return 0

	case native.MsgKeyDown:
		if e.labelOwner != 0 {
			switch uint32(a) {
			case native.VkReturn:
				s.endLabelEdit(e.labelOwner, true)
				return 0
			case native.VkEscape:
				s.endLabelEdit(e.labelOwner, false)
				return 0
			}
		}

	case native.MsgKillFocus:
		if e.labelOwner != 0 {
			s.endLabelEdit(e.labelOwner, true)
			return 0
		}

	case native.MsgLButtonDown, native.MsgRButtonDown:
		s.takeFocusOnClick(w)
		return 0

	case native.EmGetSel:
		return native.MakeLong(e.caret, e.selEnd)

	case native.EmSetSel:
		n := len([]rune(w.text))
		start, end := int(int32(a)), int(int32(b))
		if end == -1 {
			end = n
		}
		e.caret, e.selEnd = clamp(start, 0, n), clamp(end, 0, n)
		return 0

	case native.EmSetReadOnly:
		if a != 0 {
			w.style |= native.EsReadOnly
		} else {
			w.style &^= native.EsReadOnly
		}
		return 1

	case native.EmSetLimitText:
		e.limit = int(a)
		if e.limit == 0 {
			e.limit = 0x7FFE
		}
		return 0

	case native.EmGetLimitText:
		return uintptr(e.limit)
	}

	return defWindowProc(s, w, id, a, b, payload)
}

// editInsert applies a typed character at the caret, replacing the
// selection. It reports whether the text changed.
func editInsert(w *window, r rune) bool {
	e := w.edit
	text := []rune(w.text)
	lo, hi := min(e.caret, e.selEnd), max(e.caret, e.selEnd)
	lo, hi = clamp(lo, 0, len(text)), clamp(hi, 0, len(text))

	switch {
	case r == '\b':
		if lo == hi {
			if lo == 0 {
				return false
			}
			lo--
		}
		text = append(text[:lo], text[hi:]...)
		e.caret, e.selEnd = lo, lo

	case r < ' ':
		return false

	default:
		rest := append(append([]rune{}, text[:lo]...), text[hi:]...)
		if len(utf16.Encode(rest))+len(utf16.Encode([]rune{r})) > e.limit {
			return false
		}
		text = append(text[:lo], append([]rune{r}, text[hi:]...)...)
		e.caret, e.selEnd = lo+1, lo+1
	}

	w.text = string(text)
	return true
}

type buttonState struct {
	check   uintptr
	pressed bool
}

func buttonProc(s *Sim, w *window, id uint32, a, b uintptr, payload any) uintptr {
	bs := w.button

	switch id {
	case native.MsgLButtonDown:
		s.takeFocusOnClick(w)
		bs.pressed = true
		return 0

	case native.MsgLButtonUp:
		if !bs.pressed {
			return 0
		}
		bs.pressed = false
		cb := native.Rectangle{Width: w.bounds.Width, Height: w.bounds.Height}
		if cb.Contains(native.PointFromParam(b)) {
			s.click(w)
		}
		return 0

	case native.MsgKeyUp:
		if uint32(a) == native.VkSpace {
			s.click(w)
		}
		return 0

	case native.BmClick:
		s.click(w)
		return 0

	case native.BmGetCheck:
		return bs.check

	case native.BmSetCheck:
		bs.check = a
		return 0
	}

	return defWindowProc(s, w, id, a, b, payload)
}

func (s *Sim) click(w *window) {
	if w.style&0x0F == native.BsAutoCheckBox {
		w.button.check ^= native.BstChecked
	}
	s.command(w, native.BnClicked)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
