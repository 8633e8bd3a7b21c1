// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import (
	"sync/atomic"

	"github.com/wuc656/walkctl/native"
)

// Control is implemented by every object bound to a native window. Derived
// controls embed ControlBase and override ProcessMessage, delegating the
// messages they do not handle to the embedded ControlBase.
type Control interface {
	AsControlBase() *ControlBase
	ProcessMessage(m *native.Message)
}

// ControlOptions describes the native window created by InitControl.
type ControlOptions struct {
	Class   string
	Style   uint32
	ExStyle uint32
	Bounds  Rectangle
	Text    string
	ID      uint16
}

// ControlBase carries the state shared by all controls: the native handle,
// the default procedure captured at attach time, mouse tracking and drag
// state, tab order, borrowed graphics resources and the listener catalog.
type ControlBase struct {
	self    Control
	app     *Application
	hWnd    native.Handle
	defProc native.Procedure

	// target mirrors hWnd for Invoke, which may run on any thread.
	target atomic.Uintptr

	tabIndex   int
	track      trackState
	dragBox    Rectangle
	dragButton MouseButton
	dragStart  Point
	font       *Font
	background Brush

	mouseDownPublisher        Listener[*MouseEvent]
	mouseUpPublisher          Listener[*MouseEvent]
	mouseMovePublisher        Listener[*MouseEvent]
	mouseDoubleClickPublisher Listener[*MouseEvent]
	mouseEnterPublisher       Listener[*MouseEvent]
	mouseLeavePublisher       Listener[*Event]
	mouseHoverPublisher       Listener[*MouseEvent]
	mouseWheelPublisher       Listener[*WheelEvent]
	dragPublisher             Listener[*DragEvent]
	keyDownPublisher          Listener[*KeyEvent]
	keyUpPublisher            Listener[*KeyEvent]
	keyPressPublisher         Listener[*KeyPressEvent]
	focusPublisher            Listener[*FocusEvent]
	defocusPublisher          Listener[*FocusEvent]
	popupMenuPublisher        Listener[*PopupMenuEvent]
	resizePublisher           Listener[*SizeEvent]
	movePublisher             Listener[*MoveEvent]
	enabledChangedPublisher   Listener[*Event]
	visibleChangedPublisher   Listener[*Event]
	destroyingPublisher       Listener[*Event]
}

// InitControl creates a child window of parent described by opts and binds
// it to c.
func InitControl(c Control, parent Control, opts ControlOptions) error {
	if parent == nil {
		precondition("InitControl", "nil parent")
	}
	pb := parent.AsControlBase()
	pb.Handle().check("InitControl")

	opts.Style |= native.WsChild
	return initControl(c, pb.app, pb.hWnd, opts)
}

// InitTopLevel creates a top-level window described by opts and binds it to
// c.
func InitTopLevel(c Control, app *Application, opts ControlOptions) error {
	if app == nil {
		precondition("InitTopLevel", "nil application")
	}
	app.AssertUIThread()

	opts.Style &^= native.WsChild
	return initControl(c, app, 0, opts)
}

func initControl(c Control, app *Application, parent native.Handle, opts ControlOptions) error {
	cb := c.AsControlBase()
	if cb.hWnd != 0 {
		precondition("InitControl", "control is already bound to window %#x", uintptr(cb.hWnd))
	}

	h, err := app.native.CreateWindow(native.CreateOptions{
		Class:   opts.Class,
		Parent:  parent,
		Style:   opts.Style,
		ExStyle: opts.ExStyle,
		Bounds:  opts.Bounds,
		Text:    opts.Text,
		ID:      opts.ID,
	})
	if err != nil {
		return newNativeError("CreateWindow", err)
	}

	cb.attach(c, app, h)
	return nil
}

// AttachControl binds c to an existing native window h, subclassing it. The
// window must not be owned by another Control.
func AttachControl(c Control, app *Application, h native.Handle) {
	Handle{n: app.native, h: h}.check("AttachControl")
	if app.registry.lookup(h) != nil {
		precondition("AttachControl", "window %#x already has an owner", uintptr(h))
	}
	cb := c.AsControlBase()
	if cb.hWnd != 0 {
		precondition("AttachControl", "control is already bound to window %#x", uintptr(cb.hWnd))
	}
	cb.attach(c, app, h)
}

func (cb *ControlBase) attach(c Control, app *Application, h native.Handle) {
	cb.self = c
	cb.app = app
	cb.hWnd = h
	cb.dragBox = noDragBox
	cb.track = trackIdle
	cb.defProc = app.native.SetProcedure(h, app.procedure)
	cb.target.Store(uintptr(h))
	app.registry.add(h, c)

	app.log.Trace("control attached", "hwnd", uintptr(h), "class", app.native.Class(h))
}

// release forgets the native window without touching it.
func (cb *ControlBase) release() {
	if cb.hWnd == 0 {
		return
	}
	cb.app.registry.remove(cb.hWnd, cb.self)
	cb.target.Store(0)
	if n := cb.app.invocations.dropTarget(cb.hWnd); n > 0 {
		cb.app.log.Debug("dropped pending invocations", "hwnd", uintptr(cb.hWnd), "count", n)
	}
	cb.hWnd = 0
}

func (cb *ControlBase) AsControlBase() *ControlBase {
	return cb
}

// Handle returns a checked reference to the native window. It is null once
// the control has been disposed or detached.
func (cb *ControlBase) Handle() Handle {
	if cb.app == nil {
		return Handle{}
	}
	return Handle{n: cb.app.native, h: cb.hWnd}
}

// NativeHandle returns the raw handle, or 0.
func (cb *ControlBase) NativeHandle() native.Handle {
	return cb.hWnd
}

func (cb *ControlBase) Application() *Application {
	return cb.app
}

func (cb *ControlBase) native() native.Native {
	return cb.app.native
}

// send checks the handle and delivers a message synchronously.
func (cb *ControlBase) send(op string, id uint32, a, b uintptr, payload any) uintptr {
	h := cb.Handle()
	h.check(op)
	return h.n.SendMessage(h.h, id, a, b, payload)
}

func (cb *ControlBase) IsDisposed() bool {
	return cb.hWnd == 0
}

// Dispose destroys the native window. Calling it again is a no-op.
func (cb *ControlBase) Dispose() {
	if cb.hWnd == 0 {
		return
	}
	h := cb.Handle()
	h.check("Dispose")

	if err := h.n.DestroyWindow(h.h); err != nil {
		cb.app.log.Warn("DestroyWindow failed", "hwnd", uintptr(h.h), "err", err)
	}
	// NCDestroy normally releases the handle; cover backends that skip it.
	if cb.hWnd == h.h {
		cb.release()
	}
}

// Detach restores the window's default procedure and unbinds it from the
// control without destroying it. It returns the raw handle.
func (cb *ControlBase) Detach() native.Handle {
	h := cb.Handle()
	h.check("Detach")

	cb.endMouseTracking(true)
	h.n.SetProcedure(h.h, cb.defProc)
	cb.release()
	cb.defProc = nil
	return h.h
}

// Rebind moves the native window and the base state, listeners included, to
// dst without recreating the window. State held by a derived type is not
// moved. Afterwards cb is detached.
func (cb *ControlBase) Rebind(dst Control) {
	h := cb.Handle()
	h.check("Rebind")

	db := dst.AsControlBase()
	if db == cb {
		return
	}
	if db.hWnd != 0 {
		precondition("Rebind", "destination is already bound to window %#x", uintptr(db.hWnd))
	}

	db.self = dst
	db.app = cb.app
	db.hWnd = cb.hWnd
	db.defProc = cb.defProc
	db.tabIndex = cb.tabIndex
	db.track = cb.track
	db.dragBox = cb.dragBox
	db.dragButton = cb.dragButton
	db.dragStart = cb.dragStart
	db.font = cb.font
	db.background = cb.background
	db.moveListeners(cb)
	db.target.Store(uintptr(db.hWnd))
	cb.app.registry.add(db.hWnd, dst)

	cb.hWnd = 0
	cb.defProc = nil
	cb.track = trackIdle
	cb.dragBox = noDragBox
	cb.target.Store(0)
}

func (cb *ControlBase) moveListeners(src *ControlBase) {
	cb.mouseDownPublisher, src.mouseDownPublisher = src.mouseDownPublisher, Listener[*MouseEvent]{}
	cb.mouseUpPublisher, src.mouseUpPublisher = src.mouseUpPublisher, Listener[*MouseEvent]{}
	cb.mouseMovePublisher, src.mouseMovePublisher = src.mouseMovePublisher, Listener[*MouseEvent]{}
	cb.mouseDoubleClickPublisher, src.mouseDoubleClickPublisher = src.mouseDoubleClickPublisher, Listener[*MouseEvent]{}
	cb.mouseEnterPublisher, src.mouseEnterPublisher = src.mouseEnterPublisher, Listener[*MouseEvent]{}
	cb.mouseLeavePublisher, src.mouseLeavePublisher = src.mouseLeavePublisher, Listener[*Event]{}
	cb.mouseHoverPublisher, src.mouseHoverPublisher = src.mouseHoverPublisher, Listener[*MouseEvent]{}
	cb.mouseWheelPublisher, src.mouseWheelPublisher = src.mouseWheelPublisher, Listener[*WheelEvent]{}
	cb.dragPublisher, src.dragPublisher = src.dragPublisher, Listener[*DragEvent]{}
	cb.keyDownPublisher, src.keyDownPublisher = src.keyDownPublisher, Listener[*KeyEvent]{}
	cb.keyUpPublisher, src.keyUpPublisher = src.keyUpPublisher, Listener[*KeyEvent]{}
	cb.keyPressPublisher, src.keyPressPublisher = src.keyPressPublisher, Listener[*KeyPressEvent]{}
	cb.focusPublisher, src.focusPublisher = src.focusPublisher, Listener[*FocusEvent]{}
	cb.defocusPublisher, src.defocusPublisher = src.defocusPublisher, Listener[*FocusEvent]{}
	cb.popupMenuPublisher, src.popupMenuPublisher = src.popupMenuPublisher, Listener[*PopupMenuEvent]{}
	cb.resizePublisher, src.resizePublisher = src.resizePublisher, Listener[*SizeEvent]{}
	cb.movePublisher, src.movePublisher = src.movePublisher, Listener[*MoveEvent]{}
	cb.enabledChangedPublisher, src.enabledChangedPublisher = src.enabledChangedPublisher, Listener[*Event]{}
	cb.visibleChangedPublisher, src.visibleChangedPublisher = src.visibleChangedPublisher, Listener[*Event]{}
	cb.destroyingPublisher, src.destroyingPublisher = src.destroyingPublisher, Listener[*Event]{}
}

// ControlFromHandle returns the Control owning h, or nil.
func (app *Application) ControlFromHandle(h native.Handle) Control {
	return app.registry.lookup(h)
}

// Parent returns the parent Control, or nil for a top-level control or a
// parent window that no Control owns.
func (cb *ControlBase) Parent() Control {
	p := cb.Handle().Parent()
	if p.IsNull() {
		return nil
	}
	return cb.app.registry.lookup(p.h)
}

// SetParent moves the control under parent. It returns ErrParentingCycle if
// parent is the control itself or one of its descendants.
func (cb *ControlBase) SetParent(parent Control) error {
	h := cb.Handle()
	h.check("SetParent")
	if parent == nil {
		precondition("SetParent", "nil parent")
	}

	if err := h.SetParent(parent.AsControlBase().Handle()); err != nil {
		return err
	}
	h.SetStyle(native.WsChild, true)
	return nil
}

// Children returns the owned child controls in z-order.
func (cb *ControlBase) Children() []Control {
	var children []Control
	for _, ch := range cb.Handle().Children() {
		if c := cb.app.registry.lookup(ch.h); c != nil {
			children = append(children, c)
		}
	}
	return children
}

// TopLevel returns the outermost Control containing cb, which may be cb's
// own Control.
func (cb *ControlBase) TopLevel() Control {
	cb.Handle().check("TopLevel")
	c := cb.self
	for p := cb.Parent(); p != nil; p = p.AsControlBase().Parent() {
		c = p
	}
	return c
}

func (cb *ControlBase) Bounds() Rectangle {
	return cb.Handle().Bounds()
}

func (cb *ControlBase) SetBounds(bounds Rectangle) error {
	return cb.Handle().SetBounds(bounds)
}

func (cb *ControlBase) ClientBounds() Rectangle {
	return cb.Handle().ClientBounds()
}

func (cb *ControlBase) Enabled() bool {
	return cb.Handle().Enabled()
}

func (cb *ControlBase) SetEnabled(enabled bool) {
	h := cb.Handle()
	h.check("SetEnabled")
	h.n.SetEnabled(h.h, enabled)
}

func (cb *ControlBase) Visible() bool {
	return cb.Handle().Visible()
}

func (cb *ControlBase) SetVisible(visible bool) {
	h := cb.Handle()
	h.check("SetVisible")
	h.n.SetVisible(h.h, visible)
}

func (cb *ControlBase) Text() string {
	return cb.Handle().Text()
}

// SetText replaces the window text. NUL characters are dropped and the text
// is normalized to NFC.
func (cb *ControlBase) SetText(text string) error {
	h := cb.Handle()
	h.check("SetText")
	return newNativeError("SetText", h.n.SetText(h.h, NewText(text).String()))
}

func (cb *ControlBase) Focused() bool {
	h := cb.Handle()
	h.check("Focused")
	return h.n.Focus() == h.h
}

func (cb *ControlBase) SetFocus() {
	h := cb.Handle()
	h.check("SetFocus")
	h.n.SetFocus(h.h)
}

func (cb *ControlBase) Edge() Edge {
	return cb.Handle().Edge()
}

func (cb *ControlBase) SetEdge(e Edge) {
	cb.Handle().SetEdge(e)
}

// TabStop reports whether keyboard navigation stops at the control.
func (cb *ControlBase) TabStop() bool {
	return cb.Handle().HasStyle(native.WsTabStop)
}

func (cb *ControlBase) SetTabStop(tabStop bool) {
	cb.Handle().SetStyle(native.WsTabStop, tabStop)
}

// TabIndex returns the control's position among its siblings in tab order.
// Siblings with equal indexes keep their z-order.
func (cb *ControlBase) TabIndex() int {
	return cb.tabIndex
}

func (cb *ControlBase) SetTabIndex(index int) {
	if index < 0 {
		precondition("SetTabIndex", "negative tab index %d", index)
	}
	cb.tabIndex = index
}

// Font returns the borrowed font, or nil for the native default.
func (cb *ControlBase) Font() *Font {
	return cb.font
}

// SetFont assigns a font that the caller keeps alive for as long as the
// control uses it.
func (cb *ControlBase) SetFont(f *Font) {
	var spec *native.FontSpec
	if f != nil {
		spec = f.spec()
	}
	cb.send("SetFont", native.MsgSetFont, 0, 1, spec)
	cb.font = f
}

func (cb *ControlBase) Background() Brush {
	return cb.background
}

// SetBackground assigns a borrowed brush used to erase the background, or
// nil for the native default.
func (cb *ControlBase) SetBackground(b Brush) {
	h := cb.Handle()
	h.check("SetBackground")
	cb.background = b
	h.n.Invalidate(h.h)
}

// MouseTracked reports whether the control currently tracks the mouse, that
// is between MouseEnter and MouseLeave.
func (cb *ControlBase) MouseTracked() bool {
	return cb.track == trackTracking
}

func (cb *ControlBase) OnMouseDown() *Listener[*MouseEvent] {
	return &cb.mouseDownPublisher
}

func (cb *ControlBase) OnMouseUp() *Listener[*MouseEvent] {
	return &cb.mouseUpPublisher
}

func (cb *ControlBase) OnMouseMove() *Listener[*MouseEvent] {
	return &cb.mouseMovePublisher
}

func (cb *ControlBase) OnMouseDoubleClick() *Listener[*MouseEvent] {
	return &cb.mouseDoubleClickPublisher
}

func (cb *ControlBase) OnMouseEnter() *Listener[*MouseEvent] {
	return &cb.mouseEnterPublisher
}

func (cb *ControlBase) OnMouseLeave() *Listener[*Event] {
	return &cb.mouseLeavePublisher
}

func (cb *ControlBase) OnMouseHover() *Listener[*MouseEvent] {
	return &cb.mouseHoverPublisher
}

func (cb *ControlBase) OnMouseWheel() *Listener[*WheelEvent] {
	return &cb.mouseWheelPublisher
}

// OnDrag fires once per button press, when the cursor first leaves the drag
// rectangle around the press point.
func (cb *ControlBase) OnDrag() *Listener[*DragEvent] {
	return &cb.dragPublisher
}

func (cb *ControlBase) OnKeyDown() *Listener[*KeyEvent] {
	return &cb.keyDownPublisher
}

func (cb *ControlBase) OnKeyUp() *Listener[*KeyEvent] {
	return &cb.keyUpPublisher
}

func (cb *ControlBase) OnKeyPress() *Listener[*KeyPressEvent] {
	return &cb.keyPressPublisher
}

func (cb *ControlBase) OnFocus() *Listener[*FocusEvent] {
	return &cb.focusPublisher
}

func (cb *ControlBase) OnDefocus() *Listener[*FocusEvent] {
	return &cb.defocusPublisher
}

// OnPopupMenu fires for context menu requests aimed at the control.
// Canceling the event lets the native default menu appear instead.
func (cb *ControlBase) OnPopupMenu() *Listener[*PopupMenuEvent] {
	return &cb.popupMenuPublisher
}

func (cb *ControlBase) OnResize() *Listener[*SizeEvent] {
	return &cb.resizePublisher
}

func (cb *ControlBase) OnMove() *Listener[*MoveEvent] {
	return &cb.movePublisher
}

func (cb *ControlBase) OnEnabledChanged() *Listener[*Event] {
	return &cb.enabledChangedPublisher
}

func (cb *ControlBase) OnVisibleChanged() *Listener[*Event] {
	return &cb.visibleChangedPublisher
}

func (cb *ControlBase) OnDestroying() *Listener[*Event] {
	return &cb.destroyingPublisher
}
