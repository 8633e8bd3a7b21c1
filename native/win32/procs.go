// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procDefWindowProcW           = user32.NewProc("DefWindowProcW")
	procFillRect                 = user32.NewProc("FillRect")
	procGetAncestor              = user32.NewProc("GetAncestor")
	procGetDesktopWindow         = user32.NewProc("GetDesktopWindow")
	procGetClassNameW            = user32.NewProc("GetClassNameW")
	procGetWindow                = user32.NewProc("GetWindow")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procIsWindow                 = user32.NewProc("IsWindow")
	procPostThreadMessageW       = user32.NewProc("PostThreadMessageW")
	procTrackMouseEvent          = user32.NewProc("TrackMouseEvent")
)

type trackMouseEvent struct {
	cbSize      uint32
	dwFlags     uint32
	hwndTrack   uintptr
	dwHoverTime uint32
}

const (
	gaParent   = 1
	gwHwndNext = 2
	gwChild    = 5

	smCXDrag = 68
	smCYDrag = 69

	spiGetMouseHoverTime = 0x0066

	hoverDefault = 0xFFFFFFFF

	wmQuit = 0x0012
)

func lastError(op string) error {
	if err := windows.GetLastError(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s failed", op)
}
