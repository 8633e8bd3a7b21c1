// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

// Package win32 implements native.Native on top of real Win32 windows. It
// subclasses every window it hands out and marshals payloads between the
// native structs and their Win32 counterparts.
package win32

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"sync"
	"time"
	"unsafe"

	"github.com/dblohm7/wingoes/com"
	"github.com/tailscale/win"
	"golang.org/x/sys/windows"

	"github.com/wuc656/walkctl/native"
)

var errInitCommonControlsEx = errors.New("win32: InitCommonControlsEx failed")

var (
	backendOnce sync.Once
	backend     *Backend
	backendErr  error
	wndProcCb   uintptr
)

// subclass records the procedures of one window. orig is the Win32 window
// procedure that was installed before ours; proc is nil until SetProcedure
// is called.
type subclass struct {
	orig uintptr
	proc native.Procedure
}

// Backend is the Win32 native layer. There is one Backend per process and
// it must be used from the thread that called New.
type Backend struct {
	instance   win.HINSTANCE
	uiThreadID uint32
	subclasses map[win.HWND]*subclass
	classes    map[win.HWND]string
	fonts      map[native.FontSpec]win.HFONT
	frames     []frame
	pending    map[uintptr]*pendingPayload
	editText   []uint16
	last       win.MSG
	menuDepth  int
}

var _ native.Native = (*Backend)(nil)

// New returns the process-wide backend, initializing COM, the common
// controls and the generic window class on first use. The calling goroutine
// should be locked to its OS thread.
func New() (*Backend, error) {
	backendOnce.Do(func() {
		backend, backendErr = newBackend()
	})
	return backend, backendErr
}

func newBackend() (*Backend, error) {
	if err := com.StartRuntime(com.GUIApp); err != nil {
		slog.Warn("wingoes/com.StartRuntime failed", "error", err)
	}

	icc := win.INITCOMMONCONTROLSEX{
		DwSize: uint32(unsafe.Sizeof(win.INITCOMMONCONTROLSEX{})),
		DwICC:  win.ICC_STANDARD_CLASSES | win.ICC_LISTVIEW_CLASSES | win.ICC_TAB_CLASSES | win.ICC_TREEVIEW_CLASSES,
	}
	if !win.InitCommonControlsEx(&icc) {
		return nil, errInitCommonControlsEx
	}

	b := &Backend{
		instance:   win.GetModuleHandle(nil),
		uiThreadID: windows.GetCurrentThreadId(),
		subclasses: make(map[win.HWND]*subclass),
		classes:    make(map[win.HWND]string),
		fonts:      make(map[native.FontSpec]win.HFONT),
		pending:    make(map[uintptr]*pendingPayload),
	}

	wndProcCb = windows.NewCallback(wndProc)

	className, err := windows.UTF16PtrFromString(native.ClassWindow)
	if err != nil {
		return nil, err
	}
	wc := win.WNDCLASSEX{
		CbSize:        uint32(unsafe.Sizeof(win.WNDCLASSEX{})),
		Style:         win.CS_DBLCLKS,
		LpfnWndProc:   wndProcCb,
		HInstance:     b.instance,
		HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW)),
		HbrBackground: win.HBRUSH(win.COLOR_BTNFACE + 1),
		LpszClassName: className,
	}
	if win.RegisterClassEx(&wc) == 0 {
		return nil, lastError("RegisterClassEx")
	}

	return b, nil
}

func (b *Backend) CreateWindow(opts native.CreateOptions) (native.Handle, error) {
	className, err := windows.UTF16PtrFromString(opts.Class)
	if err != nil {
		return 0, err
	}
	text, err := windows.UTF16PtrFromString(opts.Text)
	if err != nil {
		return 0, err
	}

	var menu win.HMENU
	if opts.Style&native.WsChild != 0 {
		menu = win.HMENU(opts.ID)
	}

	hwnd := win.CreateWindowEx(
		opts.ExStyle,
		className,
		text,
		opts.Style,
		int32(opts.Bounds.X),
		int32(opts.Bounds.Y),
		int32(opts.Bounds.Width),
		int32(opts.Bounds.Height),
		win.HWND(opts.Parent),
		menu,
		b.instance,
		nil,
	)
	if hwnd == 0 {
		return 0, lastError("CreateWindowEx")
	}

	b.classes[hwnd] = opts.Class
	b.subclassWindow(hwnd)
	return native.Handle(hwnd), nil
}

// subclassWindow routes hwnd through wndProc, remembering the procedure it
// replaces. Windows of the generic class already use wndProc and fall back
// to DefWindowProc.
func (b *Backend) subclassWindow(hwnd win.HWND) *subclass {
	if sc, ok := b.subclasses[hwnd]; ok {
		return sc
	}

	orig := win.GetWindowLongPtr(hwnd, win.GWLP_WNDPROC)
	if orig == wndProcCb {
		orig = procDefWindowProcW.Addr()
	} else {
		win.SetWindowLongPtr(hwnd, win.GWLP_WNDPROC, wndProcCb)
	}

	sc := &subclass{orig: orig}
	b.subclasses[hwnd] = sc
	return sc
}

func (b *Backend) DestroyWindow(h native.Handle) error {
	if !win.DestroyWindow(win.HWND(h)) {
		return lastError("DestroyWindow")
	}
	return nil
}

func (b *Backend) IsWindow(h native.Handle) bool {
	if h == 0 {
		return false
	}
	r, _, _ := procIsWindow.Call(uintptr(h))
	return r != 0
}

func (b *Backend) Class(h native.Handle) string {
	hwnd := win.HWND(h)
	if name, ok := b.classes[hwnd]; ok {
		return name
	}

	var buf [256]uint16
	n, _, _ := procGetClassNameW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	name := windows.UTF16ToString(buf[:n])
	b.classes[hwnd] = name
	return name
}

func (b *Backend) Procedure(h native.Handle) native.Procedure {
	hwnd := win.HWND(h)
	sc, ok := b.subclasses[hwnd]
	if !ok {
		return b.nativeProc(win.GetWindowLongPtr(hwnd, win.GWLP_WNDPROC))
	}
	if sc.proc != nil {
		return sc.proc
	}
	return b.nativeProc(sc.orig)
}

func (b *Backend) SetProcedure(h native.Handle, proc native.Procedure) native.Procedure {
	sc := b.subclassWindow(win.HWND(h))
	prev := sc.proc
	if prev == nil {
		prev = b.nativeProc(sc.orig)
	}
	sc.proc = proc
	return prev
}

func (b *Backend) PostMessage(h native.Handle, id uint32, a, bb uintptr) error {
	if win.PostMessage(win.HWND(h), id, a, bb) == 0 {
		return lastError("PostMessage")
	}
	return nil
}

func (b *Backend) Root() native.Handle {
	r, _, _ := procGetDesktopWindow.Call()
	return native.Handle(r)
}

func (b *Backend) Parent(h native.Handle) native.Handle {
	r, _, _ := procGetAncestor.Call(uintptr(h), gaParent)
	return native.Handle(r)
}

func (b *Backend) SetParent(h, parent native.Handle) error {
	if win.SetParent(win.HWND(h), win.HWND(parent)) == 0 {
		return lastError("SetParent")
	}
	return nil
}

func (b *Backend) Children(h native.Handle) []native.Handle {
	var children []native.Handle
	r, _, _ := procGetWindow.Call(uintptr(h), gwChild)
	for r != 0 {
		children = append(children, native.Handle(r))
		r, _, _ = procGetWindow.Call(r, gwHwndNext)
	}
	return children
}

func (b *Backend) Style(h native.Handle) uint32 {
	return uint32(win.GetWindowLong(win.HWND(h), win.GWL_STYLE))
}

func (b *Backend) SetStyle(h native.Handle, style uint32) {
	win.SetWindowLong(win.HWND(h), win.GWL_STYLE, int32(style))
}

func (b *Backend) ExStyle(h native.Handle) uint32 {
	return uint32(win.GetWindowLong(win.HWND(h), win.GWL_EXSTYLE))
}

func (b *Backend) SetExStyle(h native.Handle, exStyle uint32) {
	win.SetWindowLong(win.HWND(h), win.GWL_EXSTYLE, int32(exStyle))
}

func (b *Backend) RefreshFrame(h native.Handle) {
	win.SetWindowPos(win.HWND(h), 0, 0, 0, 0, 0,
		win.SWP_FRAMECHANGED|win.SWP_NOMOVE|win.SWP_NOSIZE|win.SWP_NOZORDER|win.SWP_NOACTIVATE)
}

func (b *Backend) Invalidate(h native.Handle) {
	win.InvalidateRect(win.HWND(h), nil, true)
}

// Bounds returns the window rectangle in the client coordinates of its
// parent, or in screen coordinates for a top-level window.
func (b *Backend) Bounds(h native.Handle) native.Rectangle {
	var rc win.RECT
	if !win.GetWindowRect(win.HWND(h), &rc) {
		return native.Rectangle{}
	}

	topLeft := win.POINT{X: rc.Left, Y: rc.Top}
	if parent := b.Parent(h); parent != 0 && parent != b.Root() {
		win.ScreenToClient(win.HWND(parent), &topLeft)
	}

	return native.Rectangle{
		X:      int(topLeft.X),
		Y:      int(topLeft.Y),
		Width:  int(rc.Right - rc.Left),
		Height: int(rc.Bottom - rc.Top),
	}
}

func (b *Backend) SetBounds(h native.Handle, bounds native.Rectangle) error {
	if !win.SetWindowPos(win.HWND(h), 0,
		int32(bounds.X), int32(bounds.Y), int32(bounds.Width), int32(bounds.Height),
		win.SWP_NOZORDER|win.SWP_NOACTIVATE) {
		return lastError("SetWindowPos")
	}
	return nil
}

func (b *Backend) ClientBounds(h native.Handle) native.Rectangle {
	var rc win.RECT
	if !win.GetClientRect(win.HWND(h), &rc) {
		return native.Rectangle{}
	}
	return rectangleFromRECT(rc)
}

func (b *Backend) ClientToScreen(h native.Handle, p native.Point) native.Point {
	pt := win.POINT{X: int32(p.X), Y: int32(p.Y)}
	win.ClientToScreen(win.HWND(h), &pt)
	return native.Point{X: int(pt.X), Y: int(pt.Y)}
}

func (b *Backend) ScreenToClient(h native.Handle, p native.Point) native.Point {
	pt := win.POINT{X: int32(p.X), Y: int32(p.Y)}
	win.ScreenToClient(win.HWND(h), &pt)
	return native.Point{X: int(pt.X), Y: int(pt.Y)}
}

func (b *Backend) Focus() native.Handle {
	return native.Handle(win.GetFocus())
}

func (b *Backend) SetFocus(h native.Handle) native.Handle {
	return native.Handle(win.SetFocus(win.HWND(h)))
}

func (b *Backend) Enabled(h native.Handle) bool {
	return win.IsWindowEnabled(win.HWND(h))
}

func (b *Backend) SetEnabled(h native.Handle, enabled bool) {
	win.EnableWindow(win.HWND(h), enabled)
}

func (b *Backend) Visible(h native.Handle) bool {
	return win.IsWindowVisible(win.HWND(h))
}

func (b *Backend) SetVisible(h native.Handle, visible bool) {
	cmd := int32(win.SW_HIDE)
	if visible {
		cmd = win.SW_SHOW
	}
	win.ShowWindow(win.HWND(h), cmd)
}

func (b *Backend) Text(h native.Handle) string {
	hwnd := win.HWND(h)
	n := win.GetWindowTextLength(hwnd)
	if n <= 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	win.GetWindowText(hwnd, &buf[0], n+1)
	return windows.UTF16ToString(buf)
}

func (b *Backend) SetText(h native.Handle, text string) error {
	ptr, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return err
	}
	return win.SetWindowText(win.HWND(h), ptr)
}

func (b *Backend) ThreadID(h native.Handle) uint32 {
	r, _, _ := procGetWindowThreadProcessId.Call(uintptr(h), 0)
	return uint32(r)
}

func (b *Backend) TrackMouse(h native.Handle, flags uint32) error {
	tme := trackMouseEvent{
		cbSize:      uint32(unsafe.Sizeof(trackMouseEvent{})),
		dwFlags:     flags,
		hwndTrack:   uintptr(h),
		dwHoverTime: hoverDefault,
	}
	if r, _, err := procTrackMouseEvent.Call(uintptr(unsafe.Pointer(&tme))); r == 0 {
		return fmt.Errorf("TrackMouseEvent: %w", err)
	}
	return nil
}

func (b *Backend) DragSize() native.Size {
	return native.Size{
		Width:  int(win.GetSystemMetrics(smCXDrag)),
		Height: int(win.GetSystemMetrics(smCYDrag)),
	}
}

func (b *Backend) HoverTime() time.Duration {
	var ms uint32
	if !win.SystemParametersInfo(spiGetMouseHoverTime, 0, unsafe.Pointer(&ms), 0) {
		return 400 * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

func (b *Backend) InMenuMode() bool {
	return b.menuDepth > 0
}

func (b *Backend) KeyDown(vk uint32) bool {
	return win.GetKeyState(int32(vk)) < 0
}

func (b *Backend) FillBackground(h native.Handle, dc uintptr, bounds native.Rectangle, c color.Color) bool {
	r, g, bl, _ := c.RGBA()
	lb := win.LOGBRUSH{
		LbStyle: win.BS_SOLID,
		LbColor: win.COLORREF(r>>8 | (g>>8)<<8 | (bl>>8)<<16),
	}
	brush := win.CreateBrushIndirect(&lb)
	if brush == 0 {
		return false
	}
	defer win.DeleteObject(win.HGDIOBJ(brush))

	rc := rectFromRectangle(bounds)
	ret, _, _ := procFillRect.Call(dc, uintptr(unsafe.Pointer(&rc)), uintptr(brush))
	return ret != 0
}

func (b *Backend) GetMessage() (native.QueuedMessage, bool) {
	var msg win.MSG
	if win.GetMessage(&msg, 0, 0, 0) <= 0 {
		return native.QueuedMessage{ID: native.MsgQuit, A: msg.WParam}, false
	}
	b.last = msg
	return queuedFromMSG(&msg), true
}

func (b *Backend) PeekMessage() (native.QueuedMessage, bool) {
	var msg win.MSG
	if !win.PeekMessage(&msg, 0, 0, 0, win.PM_NOREMOVE) || msg.Message == wmQuit {
		return native.QueuedMessage{}, false
	}
	win.PeekMessage(&msg, 0, 0, 0, win.PM_REMOVE)
	b.last = msg
	return queuedFromMSG(&msg), true
}

func (b *Backend) TranslateMessage(m *native.QueuedMessage) {
	msg := b.msgFromQueued(m)
	win.TranslateMessage(&msg)
}

func (b *Backend) DispatchMessage(m *native.QueuedMessage) uintptr {
	msg := b.msgFromQueued(m)
	return win.DispatchMessage(&msg)
}

// PostQuit posts the quit message to the UI thread's queue.
func (b *Backend) PostQuit(code int) {
	if windows.GetCurrentThreadId() == b.uiThreadID {
		win.PostQuitMessage(int32(code))
		return
	}
	procPostThreadMessageW.Call(uintptr(b.uiThreadID), wmQuit, uintptr(code), 0)
}

// msgFromQueued rebuilds the MSG for m, keeping the time and cursor
// position when m is the message last retrieved.
func (b *Backend) msgFromQueued(m *native.QueuedMessage) win.MSG {
	if queuedFromMSG(&b.last) == *m {
		return b.last
	}
	return win.MSG{HWnd: win.HWND(m.Target), Message: m.ID, WParam: m.A, LParam: m.B}
}

func queuedFromMSG(msg *win.MSG) native.QueuedMessage {
	return native.QueuedMessage{Target: native.Handle(msg.HWnd), ID: msg.Message, A: msg.WParam, B: msg.LParam}
}

func rectangleFromRECT(rc win.RECT) native.Rectangle {
	return native.Rectangle{
		X:      int(rc.Left),
		Y:      int(rc.Top),
		Width:  int(rc.Right - rc.Left),
		Height: int(rc.Bottom - rc.Top),
	}
}

func rectFromRectangle(r native.Rectangle) win.RECT {
	return win.RECT{
		Left:   int32(r.X),
		Top:    int32(r.Y),
		Right:  int32(r.X + r.Width),
		Bottom: int32(r.Y + r.Height),
	}
}
