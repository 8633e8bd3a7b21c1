// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"unsafe"

	"github.com/tailscale/win"
	"golang.org/x/sys/windows"

	"github.com/wuc656/walkctl/native"
)

// frame is a message currently being handled by a Go procedure. Payloads
// decoded from lParam are matched by identity when they travel back to
// Win32, so the original struct is reused.
type frame struct {
	hwnd    win.HWND
	msg     uint32
	lParam  uintptr
	payload any
}

// pendingPayload carries a payload that has no Win32 encoding through a
// send. The token passed as lParam is the address of the record.
type pendingPayload struct {
	payload any
}

func wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	b := backend

	switch msg {
	case win.WM_ENTERMENULOOP:
		b.menuDepth++
	case win.WM_EXITMENULOOP:
		if b.menuDepth > 0 {
			b.menuDepth--
		}
	}

	sc, ok := b.subclasses[hwnd]
	if !ok {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}
	if msg == win.WM_NCDESTROY {
		defer b.forget(hwnd)
	}
	if sc.proc == nil {
		return win.CallWindowProc(sc.orig, hwnd, msg, wParam, lParam)
	}

	f := frame{hwnd: hwnd, msg: msg, lParam: lParam, payload: b.decode(msg, wParam, lParam)}
	b.frames = append(b.frames, f)
	defer func() {
		b.frames = b.frames[:len(b.frames)-1]
		b.writeBack(&f)
	}()

	return sc.proc(native.Handle(hwnd), msg, wParam, lParam, f.payload)
}

func (b *Backend) forget(hwnd win.HWND) {
	delete(b.subclasses, hwnd)
	delete(b.classes, hwnd)
}

// nativeProc wraps a Win32 window procedure as a native.Procedure.
func (b *Backend) nativeProc(orig uintptr) native.Procedure {
	return func(h native.Handle, id uint32, a, bb uintptr, payload any) uintptr {
		hwnd := win.HWND(h)
		return b.call(id, a, bb, payload, func(a, l uintptr) uintptr {
			return win.CallWindowProc(orig, hwnd, id, a, l)
		})
	}
}

func (b *Backend) SendMessage(h native.Handle, id uint32, a, bb uintptr, payload any) uintptr {
	hwnd := win.HWND(h)
	if id == native.LvmGetColumnCount {
		header := win.HWND(win.SendMessage(hwnd, win.LVM_GETHEADER, 0, 0))
		if header == 0 {
			return 0
		}
		return win.SendMessage(header, win.HDM_GETITEMCOUNT, 0, 0)
	}

	return b.call(id, a, bb, payload, func(a, l uintptr) uintptr {
		return win.SendMessage(hwnd, id, a, l)
	})
}

// call delivers a message through send, encoding payload into the Win32
// form the message expects.
func (b *Backend) call(id uint32, a, l uintptr, payload any, send func(a, l uintptr) uintptr) uintptr {
	if payload == nil {
		return send(a, l)
	}
	if f := b.frameFor(payload); f != nil {
		b.writeBack(f)
		return send(a, f.lParam)
	}
	if r, ok := b.marshal(id, a, payload, send); ok {
		return r
	}

	p := &pendingPayload{payload: payload}
	token := uintptr(unsafe.Pointer(p))
	b.pending[token] = p
	defer delete(b.pending, token)
	return send(a, token)
}

func (b *Backend) frameFor(payload any) *frame {
	for i := len(b.frames) - 1; i >= 0; i-- {
		if b.frames[i].payload == payload {
			return &b.frames[i]
		}
	}
	return nil
}

// decode turns the lParam of an incoming message into a payload.
func (b *Backend) decode(msg uint32, wParam, lParam uintptr) any {
	if p, ok := b.pending[lParam]; ok {
		return p.payload
	}

	switch msg {
	case win.WM_SETTEXT:
		if lParam == 0 {
			return ""
		}
		return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(lParam)))

	case win.WM_NOTIFY:
		return b.decodeNotify(lParam)
	}
	return nil
}

func (b *Backend) decodeNotify(lParam uintptr) any {
	nm := (*win.NMHDR)(unsafe.Pointer(lParam))
	hdr := native.NotifyHeader{From: native.Handle(nm.HwndFrom), ID: nm.IdFrom, Code: int32(nm.Code)}

	switch b.Class(hdr.From) {
	case native.ClassListView:
		switch hdr.Code {
		case native.LvnBeginLabelEdit, native.LvnEndLabelEdit:
			di := (*win.NMLVDISPINFO)(unsafe.Pointer(lParam))
			n := &native.DisplayInfoNotify{NotifyHeader: hdr, Item: listItemData(&di.Item)}
			if di.Item.PszText != nil {
				n.Item.Text, n.Item.TextValid = windows.UTF16PtrToString(di.Item.PszText), true
			}
			return n

		case native.LvnItemChanging, native.LvnItemChanged, native.LvnColumnClick, native.LvnItemActivate,
			native.NmClick, native.NmDblClk, native.NmRClick:
			nl := (*win.NMLISTVIEW)(unsafe.Pointer(lParam))
			return &native.ListViewNotify{
				NotifyHeader: hdr,
				Item:         int(nl.IItem),
				SubItem:      int(nl.ISubItem),
				NewState:     nl.UNewState,
				OldState:     nl.UOldState,
				Changed:      nl.UChanged,
				Point:        native.Point{X: int(nl.PtAction.X), Y: int(nl.PtAction.Y)},
			}
		}

	case native.ClassTreeView:
		switch hdr.Code {
		case native.TvnBeginLabelEdit, native.TvnEndLabelEdit:
			di := (*win.NMTVDISPINFO)(unsafe.Pointer(lParam))
			n := &native.DisplayInfoNotify{NotifyHeader: hdr, Item: treeItemData(&di.Item)}
			if di.Item.PszText != 0 && di.Item.PszText != textCallback {
				n.Item.Text, n.Item.TextValid = windows.UTF16PtrToString((*uint16)(unsafe.Pointer(di.Item.PszText))), true
			}
			return n

		case native.TvnSelChanging, native.TvnSelChanged, native.TvnItemExpanding, native.TvnItemExpanded:
			nt := (*win.NMTREEVIEW)(unsafe.Pointer(lParam))
			return &native.TreeViewNotify{
				NotifyHeader: hdr,
				Action:       uintptr(nt.Action),
				OldItem:      treeItemData(&nt.ItemOld),
				NewItem:      treeItemData(&nt.ItemNew),
				Point:        native.Point{X: int(nt.PtDrag.X), Y: int(nt.PtDrag.Y)},
			}
		}
	}

	return &hdr
}

// writeBack copies the fields a procedure may change into the Win32 struct
// the payload was decoded from. Only an accepted label edit carries data
// back.
func (b *Backend) writeBack(f *frame) {
	n, ok := f.payload.(*native.DisplayInfoNotify)
	if !ok || f.msg != win.WM_NOTIFY {
		return
	}

	switch n.Code {
	case native.LvnEndLabelEdit:
		di := (*win.NMLVDISPINFO)(unsafe.Pointer(f.lParam))
		switch {
		case !n.Item.TextValid:
			di.Item.PszText = nil
		case di.Item.PszText == nil || windows.UTF16PtrToString(di.Item.PszText) != n.Item.Text:
			b.editText = utf16(n.Item.Text)
			di.Item.PszText = &b.editText[0]
		}

	case native.TvnEndLabelEdit:
		di := (*win.NMTVDISPINFO)(unsafe.Pointer(f.lParam))
		switch {
		case !n.Item.TextValid:
			di.Item.PszText = 0
		case di.Item.PszText == 0 || windows.UTF16PtrToString((*uint16)(unsafe.Pointer(di.Item.PszText))) != n.Item.Text:
			b.editText = utf16(n.Item.Text)
			di.Item.PszText = uintptr(unsafe.Pointer(&b.editText[0]))
		}
	}
}
