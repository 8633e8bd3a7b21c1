// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"runtime"
	"unsafe"

	"github.com/tailscale/win"
	"golang.org/x/sys/windows"

	"github.com/wuc656/walkctl/native"
)

// textBufLen is the capacity of buffers handed to item getters.
const textBufLen = 1024

// textCallback is LPSTR_TEXTCALLBACK.
const textCallback = ^uintptr(0)

// utf16 encodes s with its terminating NUL. Item text has had NULs removed
// before it gets here.
func utf16(s string) []uint16 {
	buf, err := windows.UTF16FromString(s)
	if err != nil {
		return []uint16{0}
	}
	return buf
}

// marshal encodes payload for a message whose Win32 form takes a struct
// pointer, sends it and decodes any output back into the payload. It reports
// false when the message has no such form.
func (b *Backend) marshal(id uint32, a uintptr, payload any, send func(a, l uintptr) uintptr) (uintptr, bool) {
	switch p := payload.(type) {
	case string:
		if id != native.MsgSetText {
			return 0, false
		}
		buf := utf16(p)
		r := send(a, uintptr(unsafe.Pointer(&buf[0])))
		runtime.KeepAlive(buf)
		return r, true

	case *native.FontSpec:
		if id != native.MsgSetFont {
			return 0, false
		}
		return send(uintptr(b.font(*p)), 1), true

	case *native.ColumnData:
		if id != native.LvmInsertColumn {
			return 0, false
		}
		title := utf16(p.Title)
		col := win.LVCOLUMN{
			Mask:    win.LVCF_TEXT | win.LVCF_WIDTH,
			Cx:      int32(p.Width),
			PszText: &title[0],
		}
		r := send(uintptr(p.Index), uintptr(unsafe.Pointer(&col)))
		runtime.KeepAlive(title)
		return r, true

	case *native.TreeInsert:
		if id != native.TvmInsertItem {
			return 0, false
		}
		text := utf16(p.Item.Text)
		ins := win.TVINSERTSTRUCT{
			HParent:      win.HTREEITEM(p.Parent),
			HInsertAfter: win.HTREEITEM(p.InsertAfter),
		}
		it := &ins.Item
		it.Mask = p.Item.Mask
		it.State = p.Item.State
		it.StateMask = p.Item.StateMask
		it.PszText = uintptr(unsafe.Pointer(&text[0]))
		it.CchTextMax = int32(len(text))
		it.IImage = int32(p.Item.Image)
		it.CChildren = int32(p.Item.Children)
		it.LParam = p.Item.Param
		r := send(a, uintptr(unsafe.Pointer(&ins)))
		runtime.KeepAlive(text)
		return r, true

	case *native.ItemData:
		switch id {
		case native.LvmGetItem, native.LvmGetItemText, native.LvmSetItem, native.LvmInsertItem,
			native.LvmSetItemText, native.LvmSetItemState:
			return b.sendListItem(id, a, p, send), true
		case native.TvmGetItem, native.TvmSetItem:
			return b.sendTreeItem(id, a, p, send), true
		case native.TcmGetItem, native.TcmSetItem, native.TcmInsertItem:
			return b.sendTabItem(id, a, p, send), true
		}
	}
	return 0, false
}

func (b *Backend) sendListItem(id uint32, a uintptr, d *native.ItemData, send func(a, l uintptr) uintptr) uintptr {
	get := id == native.LvmGetItem || id == native.LvmGetItemText

	var buf []uint16
	if get {
		buf = make([]uint16, textBufLen)
	} else {
		buf = utf16(d.Text)
	}

	it := win.LVITEM{
		Mask:       d.Mask,
		IItem:      int32(d.Index),
		ISubItem:   int32(d.SubItem),
		State:      d.State,
		StateMask:  d.StateMask,
		PszText:    &buf[0],
		CchTextMax: int32(len(buf)),
		IImage:     int32(d.Image),
		LParam:     d.Param,
	}
	if id == native.LvmGetItemText || id == native.LvmSetItemText {
		a = uintptr(d.Index)
	}

	r := send(a, uintptr(unsafe.Pointer(&it)))
	if get {
		d.State = it.State
		d.Image = int(it.IImage)
		d.Param = it.LParam
		if it.PszText != nil {
			d.Text, d.TextValid = windows.UTF16PtrToString(it.PszText), true
		}
	}
	runtime.KeepAlive(buf)
	return r
}

func (b *Backend) sendTreeItem(id uint32, a uintptr, d *native.ItemData, send func(a, l uintptr) uintptr) uintptr {
	get := id == native.TvmGetItem

	var buf []uint16
	if get {
		buf = make([]uint16, textBufLen)
	} else {
		buf = utf16(d.Text)
	}

	it := treeItem(d, buf)
	r := send(a, uintptr(unsafe.Pointer(&it)))
	if get {
		d.State = it.State
		d.Image = int(it.IImage)
		d.Param = it.LParam
		d.Children = int(it.CChildren)
		if d.Mask&native.TvifText != 0 {
			d.Text, d.TextValid = windows.UTF16ToString(buf), true
		}
	}
	runtime.KeepAlive(buf)
	return r
}

func (b *Backend) sendTabItem(id uint32, a uintptr, d *native.ItemData, send func(a, l uintptr) uintptr) uintptr {
	get := id == native.TcmGetItem

	var buf []uint16
	if get {
		buf = make([]uint16, textBufLen)
	} else {
		buf = utf16(d.Text)
	}

	it := win.TCITEM{
		Mask:       d.Mask,
		PszText:    &buf[0],
		CchTextMax: int32(len(buf)),
		IImage:     int32(d.Image),
		LParam:     d.Param,
	}
	r := send(a, uintptr(unsafe.Pointer(&it)))
	if get {
		d.Image = int(it.IImage)
		d.Param = it.LParam
		if d.Mask&native.TcifText != 0 {
			d.Text, d.TextValid = windows.UTF16ToString(buf), true
		}
	}
	runtime.KeepAlive(buf)
	return r
}

// treeItem builds a TVITEM pointing at buf. The caller keeps buf alive.
func treeItem(d *native.ItemData, buf []uint16) win.TVITEM {
	return win.TVITEM{
		Mask:       d.Mask,
		HItem:      win.HTREEITEM(d.Item),
		State:      d.State,
		StateMask:  d.StateMask,
		PszText:    uintptr(unsafe.Pointer(&buf[0])),
		CchTextMax: int32(len(buf)),
		IImage:     int32(d.Image),
		CChildren:  int32(d.Children),
		LParam:     d.Param,
	}
}

func listItemData(it *win.LVITEM) native.ItemData {
	d := native.ItemData{
		Mask:      it.Mask,
		Index:     int(it.IItem),
		SubItem:   int(it.ISubItem),
		State:     it.State,
		StateMask: it.StateMask,
		Image:     int(it.IImage),
		Param:     it.LParam,
	}
	if it.Mask&native.LvifText != 0 && it.PszText != nil {
		d.Text, d.TextValid = windows.UTF16PtrToString(it.PszText), true
	}
	return d
}

func treeItemData(it *win.TVITEM) native.ItemData {
	d := native.ItemData{
		Mask:      it.Mask,
		Item:      uintptr(it.HItem),
		State:     it.State,
		StateMask: it.StateMask,
		Image:     int(it.IImage),
		Param:     it.LParam,
		Children:  int(it.CChildren),
	}
	if it.Mask&native.TvifText != 0 && it.PszText != 0 && it.PszText != textCallback {
		d.Text, d.TextValid = windows.UTF16PtrToString((*uint16)(unsafe.Pointer(it.PszText))), true
	}
	return d
}

// font returns a cached HFONT for spec. Fonts live as long as the backend.
func (b *Backend) font(spec native.FontSpec) win.HFONT {
	if hFont, ok := b.fonts[spec]; ok {
		return hFont
	}

	lf := win.LOGFONT{
		LfHeight:  -int32(spec.Height),
		LfWeight:  win.FW_NORMAL,
		LfCharSet: win.DEFAULT_CHARSET,
	}
	if spec.Bold {
		lf.LfWeight = win.FW_BOLD
	}
	if spec.Italic {
		lf.LfItalic = 1
	}
	name := utf16(spec.Name)
	copy(lf.LfFaceName[:len(lf.LfFaceName)-1], name)

	hFont := win.CreateFontIndirect(&lf)
	b.fonts[spec] = hFont
	return hFont
}
