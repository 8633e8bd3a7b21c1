// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package win32

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/dblohm7/wingoes"
	"github.com/tailscale/win"

	"github.com/wuc656/walkctl/native"
)

var ErrUnsupportedOnThisWindowsVersion = errors.New("win32: not supported on this version of Windows")

func errorFromHRESULT(op string, hr win.HRESULT) error {
	return fmt.Errorf("%s: HRESULT 0x%08X", op, uint32(hr))
}

func dwmAttribute(h native.Handle, attr win.DWMWINDOWATTRIBUTE, val unsafe.Pointer, valLen uint32) error {
	if hr := win.DwmGetWindowAttribute(win.HWND(h), attr, val, valLen); win.FAILED(hr) {
		return errorFromHRESULT("DwmGetWindowAttribute", hr)
	}
	return nil
}

func setDWMAttribute(h native.Handle, attr win.DWMWINDOWATTRIBUTE, val unsafe.Pointer, valLen uint32) error {
	if hr := win.DwmSetWindowAttribute(win.HWND(h), attr, val, valLen); win.FAILED(hr) {
		return errorFromHRESULT("DwmSetWindowAttribute", hr)
	}
	return nil
}

// SetDarkMode switches the frame of top-level window h between the dark and
// light themes.
func (b *Backend) SetDarkMode(h native.Handle, dark bool) error {
	if !wingoes.IsWin11OrGreater() {
		return ErrUnsupportedOnThisWindowsVersion
	}

	var val int32 // Win32 BOOL
	if dark {
		val = 1
	}
	return setDWMAttribute(h, win.DWMWA_USE_IMMERSIVE_DARK_MODE, unsafe.Pointer(&val), uint32(unsafe.Sizeof(val)))
}

// Cloaked reports whether DWM is hiding h, for example because it lives on
// another virtual desktop. Cloaked windows are still Visible.
func (b *Backend) Cloaked(h native.Handle) bool {
	var why uint32
	err := dwmAttribute(h, win.DWMWA_CLOAKED, unsafe.Pointer(&why), uint32(unsafe.Sizeof(why)))
	return err == nil && why != 0
}
