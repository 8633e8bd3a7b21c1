// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import "github.com/wuc656/walkctl/native"

// CallDefaultProcedure hands m to the procedure that was installed before
// the control attached. Reflected messages never reach the native layer;
// they come back to the reflecting parent as unhandled instead.
func (cb *ControlBase) CallDefaultProcedure(m *native.Message) {
	if m.Reflected() {
		m.Handled = false
		return
	}
	if cb.defProc == nil {
		return
	}
	m.Result = cb.defProc(m.Target, m.ID, m.A, m.B, m.Payload)
}

// ProcessMessage translates native messages into events. Derived controls
// override it for the messages they handle and call it for the rest.
func (cb *ControlBase) ProcessMessage(m *native.Message) {
	switch m.ID {
	case native.MsgChar:
		e := &KeyPressEvent{Event: newEvent(cb.self, m), char: rune(m.A)}
		cb.keyPressPublisher.publish(e)
		if e.handled {
			m.Result = 0
			return
		}
		m.A = uintptr(e.char)
		cb.CallDefaultProcedure(m)

	case native.MsgKeyDown:
		cb.handleKey(m, &cb.keyDownPublisher)

	case native.MsgKeyUp:
		cb.handleKey(m, &cb.keyUpPublisher)

	case native.MsgLButtonDown, native.MsgMButtonDown, native.MsgRButtonDown:
		cb.CallDefaultProcedure(m)
		cb.armDrag(m)
		cb.mouseDownPublisher.publish(cb.mouseEvent(m))

	case native.MsgLButtonUp, native.MsgMButtonUp, native.MsgRButtonUp:
		cb.CallDefaultProcedure(m)
		if uintptr(native.LoWord(m.A))&native.MkButtons == 0 {
			cb.disarmDrag()
		}
		cb.mouseUpPublisher.publish(cb.mouseEvent(m))

	case native.MsgLButtonDblClk, native.MsgMButtonDblClk, native.MsgRButtonDblClk:
		cb.CallDefaultProcedure(m)
		cb.mouseDoubleClickPublisher.publish(cb.mouseEvent(m))

	case native.MsgMouseMove:
		cb.beginMouseTracking(m)
		cb.CallDefaultProcedure(m)
		cb.mouseMovePublisher.publish(cb.mouseEvent(m))
		cb.checkDrag(m)

	case native.MsgMouseHover:
		cb.CallDefaultProcedure(m)
		cb.mouseHoverPublisher.publish(cb.mouseEvent(m))
		cb.rearmHover()

	case native.MsgMouseLeave:
		cb.CallDefaultProcedure(m)
		cb.endMouseTracking(false)
		cb.disarmDrag()

	case native.MsgMouseWheel:
		e := &WheelEvent{MouseEvent: MouseEvent{newEvent(cb.self, m)}}
		cb.mouseWheelPublisher.publish(e)
		if !e.handled {
			cb.CallDefaultProcedure(m)
		}

	case native.MsgNotify, native.MsgCommand, native.MsgHScroll, native.MsgVScroll:
		cb.reflect(m)

	case native.MsgContextMenu:
		cb.handleContextMenu(m)

	case native.MsgSetFocus:
		cb.CallDefaultProcedure(m)
		cb.focusPublisher.publish(&FocusEvent{Event: newEvent(cb.self, m), other: cb.app.registry.lookup(native.Handle(m.A))})

	case native.MsgKillFocus:
		cb.defocusPublisher.publish(&FocusEvent{Event: newEvent(cb.self, m), other: cb.app.registry.lookup(native.Handle(m.A))})
		cb.CallDefaultProcedure(m)

	case native.MsgDestroy:
		cb.endMouseTracking(true)
		if top := cb.TopLevel(); top != cb.self {
			if o, ok := top.(destroyObserver); ok {
				o.descendantDestroying(cb.self)
			}
		}
		e := newEvent(cb.self, m)
		cb.destroyingPublisher.publish(&e)
		cb.CallDefaultProcedure(m)

	case native.MsgNCDestroy:
		cb.CallDefaultProcedure(m)
		cb.release()

	case native.MsgSize:
		cb.CallDefaultProcedure(m)
		cb.resizePublisher.publish(&SizeEvent{newEvent(cb.self, m)})

	case native.MsgMove:
		cb.CallDefaultProcedure(m)
		cb.movePublisher.publish(&MoveEvent{newEvent(cb.self, m)})

	case native.MsgEnable:
		cb.CallDefaultProcedure(m)
		e := newEvent(cb.self, m)
		cb.enabledChangedPublisher.publish(&e)

	case native.MsgShowWindow:
		cb.CallDefaultProcedure(m)
		e := newEvent(cb.self, m)
		cb.visibleChangedPublisher.publish(&e)

	case native.MsgEraseBkgnd:
		if cb.background != nil && cb.native().FillBackground(cb.hWnd, m.A, cb.native().ClientBounds(cb.hWnd), cb.background.Color()) {
			m.Result = 1
			return
		}
		cb.CallDefaultProcedure(m)

	default:
		if m.ID == cb.app.invokeMsg {
			cb.app.runInvocation(m.A)
			return
		}
		cb.CallDefaultProcedure(m)
	}
}

// destroyObserver is implemented by top-level controls that track their
// descendants, such as Form with its remembered focus.
type destroyObserver interface {
	descendantDestroying(c Control)
}

func (cb *ControlBase) mouseEvent(m *native.Message) *MouseEvent {
	return &MouseEvent{newEvent(cb.self, m)}
}

func (cb *ControlBase) handleKey(m *native.Message, l *Listener[*KeyEvent]) {
	e := &KeyEvent{Event: newEvent(cb.self, m)}
	l.publish(e)
	if !e.handled {
		cb.CallDefaultProcedure(m)
	}
}

// reflect hands a notification from a child back to the child that sent
// it, so that controls can handle their own notifications. The parent's
// default handling runs only if the child leaves the message unhandled.
func (cb *ControlBase) reflect(m *native.Message) {
	var from native.Handle
	if m.ID == native.MsgNotify {
		if n, ok := m.Payload.(native.Notifier); ok {
			from = n.Header().From
		}
	} else {
		from = native.Handle(m.B)
	}

	if from != 0 && from != cb.hWnd {
		if child := cb.app.registry.lookup(from); child != nil {
			if reflectMessage(child, m) {
				return
			}
			cb.app.log.Trace("reflected message not handled", "msg", m.ID, "from", uintptr(from))
		}
	}

	cb.CallDefaultProcedure(m)
}

func reflectMessage(child Control, m *native.Message) bool {
	id := m.ID
	m.ID += native.MsgReflect
	m.Handled = true
	defer func() {
		m.ID = id
	}()

	child.ProcessMessage(m)
	return m.Handled
}

func (cb *ControlBase) handleContextMenu(m *native.Message) {
	if native.Handle(m.A) != cb.hWnd || !cb.popupMenuPublisher.Attached() {
		cb.CallDefaultProcedure(m)
		return
	}

	n := cb.native()
	screen := native.PointFromParam(m.B)
	client := n.ClientBounds(cb.hWnd)

	e := &PopupMenuEvent{CancelEvent: CancelEvent{Event: newEvent(cb.self, m)}}
	if screen == native.KeyboardPoint {
		e.keyboard = true
		e.pos = Point{X: client.Width / 2, Y: client.Height / 2}
	} else {
		e.pos = n.ScreenToClient(cb.hWnd, screen)
		if !client.Contains(e.pos) {
			cb.CallDefaultProcedure(m)
			return
		}
	}

	if n.InMenuMode() {
		cb.app.log.Trace("context menu suppressed in menu mode", "hwnd", uintptr(cb.hWnd))
		cb.CallDefaultProcedure(m)
		return
	}

	cb.popupMenuPublisher.publish(e)
	if e.canceled {
		cb.app.log.Trace("popup menu canceled", "hwnd", uintptr(cb.hWnd))
		cb.CallDefaultProcedure(m)
		return
	}
	m.Result = 0
}
