// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import "github.com/wuc656/walkctl/native"

// Event is the common part of every event. It is only valid for the
// duration of the callback.
type Event struct {
	sender Control
	msg    *native.Message
}

func newEvent(sender Control, msg *native.Message) Event {
	return Event{sender: sender, msg: msg}
}

func (e *Event) Sender() Control {
	return e.sender
}

// Message returns the native message that raised the event, or nil for
// events raised by the control itself.
func (e *Event) Message() *native.Message {
	return e.msg
}

// CancelEvent is delivered by the gate half of a two-gate event. Setting it
// canceled vetoes the pending change.
type CancelEvent struct {
	Event
	canceled bool
}

func (e *CancelEvent) Canceled() bool {
	return e.canceled
}

func (e *CancelEvent) SetCanceled(canceled bool) {
	e.canceled = canceled
}

type MouseEvent struct {
	Event
}

// Position returns the cursor position in client coordinates.
func (e *MouseEvent) Position() Point {
	return native.PointFromParam(e.msg.B)
}

// Button returns the button whose state change raised the event, or 0 for
// move and hover events.
func (e *MouseEvent) Button() MouseButton {
	return buttonForMessage(e.msg.ID)
}

// Buttons returns the buttons held while the event was raised.
func (e *MouseEvent) Buttons() MouseButton {
	return MouseButton(uintptr(native.LoWord(e.msg.A)) & native.MkButtons)
}

func (e *MouseEvent) Modifiers() Modifiers {
	var m Modifiers
	flags := uintptr(native.LoWord(e.msg.A))
	if flags&native.MkShift != 0 {
		m |= ModShift
	}
	if flags&native.MkControl != 0 {
		m |= ModControl
	}
	if e.sender.AsControlBase().native().KeyDown(native.VkMenu) {
		m |= ModAlt
	}
	return m
}

type WheelEvent struct {
	MouseEvent
	handled bool
}

// Delta returns the signed wheel rotation in native units.
func (e *WheelEvent) Delta() int {
	return int(int16(native.HiWord(e.msg.A)))
}

// Position converts the screen position carried by wheel messages to client
// coordinates.
func (e *WheelEvent) Position() Point {
	cb := e.sender.AsControlBase()
	return cb.native().ScreenToClient(cb.hWnd, native.PointFromParam(e.msg.B))
}

func (e *WheelEvent) Handled() bool {
	return e.handled
}

// SetHandled stops the wheel message from reaching the native default
// handling, which would scroll or forward it to the parent.
func (e *WheelEvent) SetHandled(handled bool) {
	e.handled = handled
}

type DragEvent struct {
	MouseEvent
	button MouseButton
	start  Point
}

// Button returns the button that was pressed when the drag started.
func (e *DragEvent) Button() MouseButton {
	return e.button
}

// Start returns where the button was pressed.
func (e *DragEvent) Start() Point {
	return e.start
}

type KeyEvent struct {
	Event
	handled bool
}

func (e *KeyEvent) Key() Key {
	return Key(e.msg.A)
}

func (e *KeyEvent) RepeatCount() int {
	return int(native.LoWord(e.msg.B))
}

// WasDown reports whether the key was already down before the message.
func (e *KeyEvent) WasDown() bool {
	return e.msg.B&(1<<30) != 0
}

func (e *KeyEvent) Modifiers() Modifiers {
	return ModifiersDown(e.sender.AsControlBase().native())
}

func (e *KeyEvent) Handled() bool {
	return e.handled
}

func (e *KeyEvent) SetHandled(handled bool) {
	e.handled = handled
}

// KeyPressEvent carries a translated character. Listeners may replace the
// character or swallow it.
type KeyPressEvent struct {
	Event
	char    rune
	handled bool
}

func (e *KeyPressEvent) Char() rune {
	return e.char
}

func (e *KeyPressEvent) SetChar(r rune) {
	e.char = r
}

func (e *KeyPressEvent) Handled() bool {
	return e.handled
}

func (e *KeyPressEvent) SetHandled(handled bool) {
	e.handled = handled
}

type FocusEvent struct {
	Event
	other Control
}

// Other returns the control losing focus for a focus event and the control
// gaining it for a defocus event. It is nil when that window is not owned by
// a Control.
func (e *FocusEvent) Other() Control {
	return e.other
}

type PopupMenuEvent struct {
	CancelEvent
	pos      Point
	keyboard bool
}

// Position returns where the menu should appear, in client coordinates.
func (e *PopupMenuEvent) Position() Point {
	return e.pos
}

// FromKeyboard reports whether the menu was requested with the keyboard.
func (e *PopupMenuEvent) FromKeyboard() bool {
	return e.keyboard
}

type SizeEvent struct {
	Event
}

func (e *SizeEvent) Size() Size {
	return Size{Width: int(native.LoWord(e.msg.B)), Height: int(native.HiWord(e.msg.B))}
}

type MoveEvent struct {
	Event
}

func (e *MoveEvent) Position() Point {
	return native.PointFromParam(e.msg.B)
}

// ItemEvent reports something that happened to one item.
type ItemEvent[I any] struct {
	Event
	item I
}

func (e *ItemEvent[I]) Item() I {
	return e.item
}

// ItemChangeEvent reports a change of an item's state bits.
type ItemChangeEvent[I any] struct {
	Event
	item     I
	oldState ItemState
	newState ItemState
}

func (e *ItemChangeEvent[I]) Item() I {
	return e.item
}

func (e *ItemChangeEvent[I]) OldState() ItemState {
	return e.oldState
}

func (e *ItemChangeEvent[I]) NewState() ItemState {
	return e.newState
}

// SelectionEvent reports a move of the current item from Old to New.
type SelectionEvent[I any] struct {
	Event
	old, new I
}

func (e *SelectionEvent[I]) Old() I {
	return e.old
}

func (e *SelectionEvent[I]) New() I {
	return e.new
}

type ExpandEvent[I any] struct {
	Event
	item      I
	expanding bool
}

func (e *ExpandEvent[I]) Item() I {
	return e.item
}

// Expanding reports whether the item is being expanded rather than
// collapsed.
func (e *ExpandEvent[I]) Expanding() bool {
	return e.expanding
}

// canceler is the veto flag of the gate events that carry a confirmation
// event's payload.
type canceler struct {
	canceled bool
}

func (c *canceler) Canceled() bool {
	return c.canceled
}

func (c *canceler) SetCanceled(canceled bool) {
	c.canceled = canceled
}

// ItemChangingEvent is raised before an item's state bits change.
type ItemChangingEvent[I any] struct {
	ItemChangeEvent[I]
	canceler
}

// SelectingEvent is raised before the current item moves.
type SelectingEvent[I any] struct {
	SelectionEvent[I]
	canceler
}

// ExpandingEvent is raised before an item is expanded or collapsed.
type ExpandingEvent[I any] struct {
	ExpandEvent[I]
	canceler
}

type ColumnEvent struct {
	Event
	column int
}

func (e *ColumnEvent) Column() int {
	return e.column
}

// TextEditingEvent is raised before an inline label editor becomes active.
// Canceling it keeps the editor from opening.
type TextEditingEvent[I any] struct {
	CancelEvent
	item   I
	editor *Edit
}

func (e *TextEditingEvent[I]) Item() I {
	return e.item
}

// Editor returns the transient editor, or nil if the native control did not
// expose one.
func (e *TextEditingEvent[I]) Editor() *Edit {
	return e.editor
}

// TextEditEvent is raised when an inline edit is committed. Canceling it
// rejects the new text.
type TextEditEvent[I any] struct {
	CancelEvent
	item I
	text string
}

func (e *TextEditEvent[I]) Item() I {
	return e.item
}

func (e *TextEditEvent[I]) Text() string {
	return e.text
}
