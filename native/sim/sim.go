// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim implements native.Native in memory. It models window
// hierarchy, focus, z-order, mouse tracking, a posted-message queue and the
// built-in control classes closely enough to drive walkctl without a real
// windowing system, and it counts the calls made against it.
package sim

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"sync"
	"time"

	"github.com/wuc656/walkctl/native"
)

var (
	ErrUnknownClass  = errors.New("sim: unknown window class")
	ErrInvalidHandle = errors.New("sim: invalid window handle")
)

// Geometry used by the built-in classes for hit testing.
const (
	RowHeight = 20
	TabWidth  = 60
)

const (
	rootHandle  native.Handle = 1
	firstHandle native.Handle = 0x100
)

type window struct {
	h        native.Handle
	class    string
	parent   native.Handle
	children []native.Handle
	style    uint32
	exStyle  uint32
	bounds   native.Rectangle
	text     string
	thread   uint32
	proc     native.Procedure
	tracking uint32
	id       uint16
	font     *native.FontSpec

	edit   *editState
	button *buttonState
	list   *listState
	tab    *tabState
	tree   *treeState
}

// Options configures a Sim.
type Options struct {
	DragSize  native.Size
	HoverTime time.Duration
}

// Sim is an in-memory native layer.
type Sim struct {
	mu        sync.Mutex
	windows   map[native.Handle]*window
	next      native.Handle
	queue     []native.QueuedMessage
	wake      chan struct{}
	quit      bool
	quitCode  int
	counts    map[string]int
	sent      map[uint32]int
	shown     []native.Handle
	fills     []native.Handle
	focus     native.Handle
	menuMode  bool
	keys      map[uint32]bool
	dragSize  native.Size
	hoverTime time.Duration
	nextItem  uintptr
}

var _ native.Native = (*Sim)(nil)

// New returns an empty Sim. Zero fields in opts take the Win32 defaults.
func New(opts Options) *Sim {
	if opts.DragSize == (native.Size{}) {
		opts.DragSize = native.Size{Width: 4, Height: 4}
	}
	if opts.HoverTime == 0 {
		opts.HoverTime = 400 * time.Millisecond
	}

	return &Sim{
		windows:   make(map[native.Handle]*window),
		next:      firstHandle,
		wake:      make(chan struct{}, 1),
		counts:    make(map[string]int),
		sent:      make(map[uint32]int),
		keys:      make(map[uint32]bool),
		dragSize:  opts.DragSize,
		hoverTime: opts.HoverTime,
		nextItem:  1,
	}
}

func (s *Sim) count(op string) {
	s.mu.Lock()
	s.counts[op]++
	s.mu.Unlock()
}

// Count returns how many times the named Native method has been called since
// the last ResetCounts.
func (s *Sim) Count(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[op]
}

// Sent returns how many times SendMessage was called with id.
func (s *Sim) Sent(id uint32) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent[id]
}

func (s *Sim) ResetCounts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.counts)
	clear(s.sent)
}

// ShownMenus returns the windows for which the native default context menu
// was shown.
func (s *Sim) ShownMenus() []native.Handle {
	return slices.Clone(s.shown)
}

// Fills returns the windows whose background was filled with a brush.
func (s *Sim) Fills() []native.Handle {
	return slices.Clone(s.fills)
}

func (s *Sim) SetMenuMode(on bool) {
	s.menuMode = on
}

func (s *Sim) SetKeyDown(vk uint32, down bool) {
	s.keys[vk] = down
}

func (s *Sim) win(h native.Handle) *window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windows[h]
}

func (s *Sim) mustWin(h native.Handle) *window {
	w := s.win(h)
	if w == nil {
		panic(fmt.Sprintf("sim: invalid window handle %#x", uintptr(h)))
	}
	return w
}

func (s *Sim) CreateWindow(opts native.CreateOptions) (native.Handle, error) {
	s.count("CreateWindow")

	proc, init := classProc(opts.Class)
	if proc == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, opts.Class)
	}

	parent := opts.Parent
	if parent == 0 {
		parent = rootHandle
	}
	var pw *window
	if parent != rootHandle {
		if pw = s.win(parent); pw == nil {
			return 0, ErrInvalidHandle
		}
	}

	s.mu.Lock()
	h := s.next
	s.next++
	w := &window{
		h:       h,
		class:   opts.Class,
		parent:  parent,
		style:   opts.Style,
		exStyle: opts.ExStyle,
		bounds:  opts.Bounds,
		text:    opts.Text,
		thread:  native.CurrentThreadID(),
		id:      opts.ID,
	}
	s.windows[h] = w
	s.mu.Unlock()

	w.proc = func(h native.Handle, id uint32, a, b uintptr, payload any) uintptr {
		return proc(s, s.mustWin(h), id, a, b, payload)
	}
	if init != nil {
		init(w)
	}
	if pw != nil {
		pw.children = append(pw.children, h)
	}

	s.send(h, native.MsgCreate, 0, 0, nil)

	return h, nil
}

func (s *Sim) DestroyWindow(h native.Handle) error {
	s.count("DestroyWindow")

	if s.win(h) == nil {
		return ErrInvalidHandle
	}
	s.destroy(h)
	return nil
}

func (s *Sim) destroy(h native.Handle) {
	w := s.win(h)
	if w == nil {
		return
	}

	if s.isSelfOrDescendant(s.focus, h) {
		s.focus = 0
	}

	s.send(h, native.MsgDestroy, 0, 0, nil)
	for _, child := range slices.Clone(w.children) {
		s.destroy(child)
	}
	s.send(h, native.MsgNCDestroy, 0, 0, nil)

	if pw := s.win(w.parent); pw != nil {
		pw.children = slices.DeleteFunc(pw.children, func(c native.Handle) bool { return c == h })
	}

	s.mu.Lock()
	delete(s.windows, h)
	s.mu.Unlock()
}

func (s *Sim) isSelfOrDescendant(h, ancestor native.Handle) bool {
	for h != 0 && h != rootHandle {
		if h == ancestor {
			return true
		}
		w := s.win(h)
		if w == nil {
			return false
		}
		h = w.parent
	}
	return false
}

func (s *Sim) IsWindow(h native.Handle) bool {
	return s.win(h) != nil
}

func (s *Sim) Class(h native.Handle) string {
	if w := s.win(h); w != nil {
		return w.class
	}
	return ""
}

func (s *Sim) Procedure(h native.Handle) native.Procedure {
	if w := s.win(h); w != nil {
		return w.proc
	}
	return nil
}

func (s *Sim) SetProcedure(h native.Handle, proc native.Procedure) native.Procedure {
	s.count("SetProcedure")

	w := s.win(h)
	if w == nil {
		return nil
	}
	prev := w.proc
	w.proc = proc
	return prev
}

func (s *Sim) SendMessage(h native.Handle, id uint32, a, b uintptr, payload any) uintptr {
	s.mu.Lock()
	s.counts["SendMessage"]++
	s.sent[id]++
	s.mu.Unlock()

	return s.send(h, id, a, b, payload)
}

// send delivers a message without counting it. The built-in classes use it
// for the notifications they raise themselves.
func (s *Sim) send(h native.Handle, id uint32, a, b uintptr, payload any) uintptr {
	w := s.win(h)
	if w == nil || w.proc == nil {
		return 0
	}
	return w.proc(h, id, a, b, payload)
}

func (s *Sim) PostMessage(h native.Handle, id uint32, a, b uintptr) error {
	s.mu.Lock()
	if _, ok := s.windows[h]; !ok {
		s.mu.Unlock()
		return ErrInvalidHandle
	}
	s.counts["PostMessage"]++
	s.queue = append(s.queue, native.QueuedMessage{Target: h, ID: id, A: a, B: b})
	s.mu.Unlock()

	s.signal()
	return nil
}

func (s *Sim) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Sim) Root() native.Handle {
	return rootHandle
}

func (s *Sim) Parent(h native.Handle) native.Handle {
	if w := s.win(h); w != nil {
		return w.parent
	}
	return 0
}

func (s *Sim) SetParent(h, parent native.Handle) error {
	s.count("SetParent")

	w := s.win(h)
	if w == nil {
		return ErrInvalidHandle
	}
	if parent == 0 {
		parent = rootHandle
	}
	var pw *window
	if parent != rootHandle {
		if pw = s.win(parent); pw == nil {
			return ErrInvalidHandle
		}
	}

	if old := s.win(w.parent); old != nil {
		old.children = slices.DeleteFunc(old.children, func(c native.Handle) bool { return c == h })
	}
	w.parent = parent
	if pw != nil {
		pw.children = append(pw.children, h)
	}
	return nil
}

func (s *Sim) Children(h native.Handle) []native.Handle {
	if w := s.win(h); w != nil {
		return slices.Clone(w.children)
	}
	return nil
}

// Raise moves h to the top of its parent's z-order.
func (s *Sim) Raise(h native.Handle) {
	w := s.mustWin(h)
	if pw := s.win(w.parent); pw != nil {
		pw.children = slices.DeleteFunc(pw.children, func(c native.Handle) bool { return c == h })
		pw.children = slices.Insert(pw.children, 0, h)
	}
}

func (s *Sim) Style(h native.Handle) uint32 {
	return s.mustWin(h).style
}

func (s *Sim) SetStyle(h native.Handle, style uint32) {
	s.count("SetStyle")
	s.mustWin(h).style = style
}

func (s *Sim) ExStyle(h native.Handle) uint32 {
	return s.mustWin(h).exStyle
}

func (s *Sim) SetExStyle(h native.Handle, exStyle uint32) {
	s.count("SetExStyle")
	s.mustWin(h).exStyle = exStyle
}

func (s *Sim) RefreshFrame(h native.Handle) {
	s.count("RefreshFrame")
}

func (s *Sim) Invalidate(h native.Handle) {
	s.count("Invalidate")
}

func (s *Sim) Bounds(h native.Handle) native.Rectangle {
	return s.mustWin(h).bounds
}

func (s *Sim) SetBounds(h native.Handle, bounds native.Rectangle) error {
	s.count("SetBounds")

	w := s.win(h)
	if w == nil {
		return ErrInvalidHandle
	}
	old := w.bounds
	w.bounds = bounds

	if old.Location() != bounds.Location() {
		s.send(h, native.MsgMove, 0, native.ParamFromPoint(bounds.Location()), nil)
	}
	if old.Size() != bounds.Size() {
		s.send(h, native.MsgSize, 0, native.MakeLong(bounds.Width, bounds.Height), nil)
	}
	return nil
}

func (s *Sim) ClientBounds(h native.Handle) native.Rectangle {
	b := s.mustWin(h).bounds
	return native.Rectangle{Width: b.Width, Height: b.Height}
}

func (s *Sim) ClientToScreen(h native.Handle, p native.Point) native.Point {
	for h != rootHandle {
		w := s.win(h)
		if w == nil {
			break
		}
		p.X += w.bounds.X
		p.Y += w.bounds.Y
		h = w.parent
	}
	return p
}

func (s *Sim) ScreenToClient(h native.Handle, p native.Point) native.Point {
	origin := s.ClientToScreen(h, native.Point{})
	return native.Point{X: p.X - origin.X, Y: p.Y - origin.Y}
}

func (s *Sim) Focus() native.Handle {
	return s.focus
}

func (s *Sim) SetFocus(h native.Handle) native.Handle {
	s.count("SetFocus")

	old := s.focus
	if h == old {
		return old
	}
	if h != 0 && s.win(h) == nil {
		return 0
	}

	s.focus = h
	if old != 0 {
		s.send(old, native.MsgKillFocus, uintptr(h), 0, nil)
	}
	if h != 0 && s.focus == h {
		s.send(h, native.MsgSetFocus, uintptr(old), 0, nil)
	}
	return old
}

func (s *Sim) Enabled(h native.Handle) bool {
	return s.mustWin(h).style&native.WsDisabled == 0
}

func (s *Sim) SetEnabled(h native.Handle, enabled bool) {
	s.count("SetEnabled")

	w := s.mustWin(h)
	if enabled == (w.style&native.WsDisabled == 0) {
		return
	}
	if enabled {
		w.style &^= native.WsDisabled
	} else {
		w.style |= native.WsDisabled
		if s.isSelfOrDescendant(s.focus, h) {
			s.SetFocus(0)
		}
	}
	s.send(h, native.MsgEnable, boolParam(enabled), 0, nil)
}

func (s *Sim) Visible(h native.Handle) bool {
	return s.mustWin(h).style&native.WsVisible != 0
}

func (s *Sim) SetVisible(h native.Handle, visible bool) {
	s.count("SetVisible")

	w := s.mustWin(h)
	if visible == (w.style&native.WsVisible != 0) {
		return
	}
	if visible {
		w.style |= native.WsVisible
	} else {
		w.style &^= native.WsVisible
	}
	s.send(h, native.MsgShowWindow, boolParam(visible), 0, nil)
}

func (s *Sim) Text(h native.Handle) string {
	return s.mustWin(h).text
}

func (s *Sim) SetText(h native.Handle, text string) error {
	s.count("SetText")

	if s.win(h) == nil {
		return ErrInvalidHandle
	}
	s.send(h, native.MsgSetText, 0, 0, text)
	return nil
}

func (s *Sim) ThreadID(h native.Handle) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.windows[h]; ok {
		return w.thread
	}
	return 0
}

func (s *Sim) TrackMouse(h native.Handle, flags uint32) error {
	s.count("TrackMouse")

	w := s.win(h)
	if w == nil {
		return ErrInvalidHandle
	}
	if flags&native.TrackCancel != 0 {
		w.tracking &^= flags &^ native.TrackCancel
	} else {
		w.tracking |= flags
	}
	return nil
}

// Tracking returns the TrackMouse flags currently requested for h.
func (s *Sim) Tracking(h native.Handle) uint32 {
	return s.mustWin(h).tracking
}

func (s *Sim) DragSize() native.Size {
	return s.dragSize
}

func (s *Sim) HoverTime() time.Duration {
	return s.hoverTime
}

func (s *Sim) InMenuMode() bool {
	return s.menuMode
}

func (s *Sim) KeyDown(vk uint32) bool {
	return s.keys[vk]
}

func (s *Sim) FillBackground(h native.Handle, dc uintptr, bounds native.Rectangle, c color.Color) bool {
	s.count("FillBackground")
	s.fills = append(s.fills, h)
	return true
}

// Font returns the font last assigned to h through MsgSetFont.
func (s *Sim) Font(h native.Handle) *native.FontSpec {
	return s.mustWin(h).font
}

func (s *Sim) GetMessage() (native.QueuedMessage, bool) {
	for {
		s.mu.Lock()
		if len(s.queue) > 0 {
			m := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return m, true
		}
		if s.quit {
			code := s.quitCode
			s.quit = false
			s.mu.Unlock()
			return native.QueuedMessage{ID: native.MsgQuit, A: uintptr(code)}, false
		}
		s.mu.Unlock()

		<-s.wake
	}
}

func (s *Sim) PeekMessage() (native.QueuedMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return native.QueuedMessage{}, false
	}
	m := s.queue[0]
	s.queue = s.queue[1:]
	return m, true
}

func (s *Sim) TranslateMessage(m *native.QueuedMessage) {
	if m.ID != native.MsgKeyDown {
		return
	}
	if r, ok := s.charForKey(uint32(m.A)); ok {
		s.PostMessage(m.Target, native.MsgChar, uintptr(r), m.B)
	}
}

func (s *Sim) charForKey(vk uint32) (rune, bool) {
	switch {
	case vk >= 'A' && vk <= 'Z':
		if s.keys[native.VkShift] {
			return rune(vk), true
		}
		return rune(vk - 'A' + 'a'), true
	case vk >= '0' && vk <= '9', vk == native.VkSpace:
		return rune(vk), true
	case vk == native.VkBack:
		return '\b', true
	case vk == native.VkReturn:
		return '\r', true
	}
	return 0, false
}

func (s *Sim) DispatchMessage(m *native.QueuedMessage) uintptr {
	return s.send(m.Target, m.ID, m.A, m.B, nil)
}

func (s *Sim) PostQuit(code int) {
	s.mu.Lock()
	s.quit = true
	s.quitCode = code
	s.mu.Unlock()

	s.signal()
}

func boolParam(v bool) uintptr {
	if v {
		return 1
	}
	return 0
}
