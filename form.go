// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import "github.com/wuc656/walkctl/native"

// Form is a top-level window. It remembers which descendant had the focus
// when it was deactivated, moves the focus through its descendants on Tab
// and Shift+Tab, and asks its Closing listeners before it is destroyed.
type Form struct {
	ControlBase
	prevFocus             native.Handle
	closingPublisher      Listener[*CancelEvent]
	activatingPublisher   Listener[*Event]
	deactivatingPublisher Listener[*Event]
}

type FormOptions struct {
	Title  string
	Bounds Rectangle
	// Hidden creates the form without WS_VISIBLE.
	Hidden bool
}

func NewForm(app *Application, opts FormOptions) (*Form, error) {
	f := new(Form)

	style := uint32(native.WsVisible)
	if opts.Hidden {
		style = 0
	}

	if err := InitTopLevel(f, app, ControlOptions{
		Class:   native.ClassWindow,
		Style:   style,
		ExStyle: native.WsExControlParent,
		Bounds:  opts.Bounds,
		Text:    NewText(opts.Title).String(),
	}); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *Form) Title() string {
	return f.Text()
}

func (f *Form) SetTitle(title string) error {
	return f.SetText(title)
}

// Close asks the form to close, as the system menu would. Closing listeners
// may veto it.
func (f *Form) Close() {
	f.send("Close", native.MsgClose, 0, 0, nil)
}

// Closing is raised before the form is destroyed in response to a close
// request. Cancel the event to keep the form open.
func (f *Form) Closing() *Listener[*CancelEvent] {
	return &f.closingPublisher
}

func (f *Form) Activating() *Listener[*Event] {
	return &f.activatingPublisher
}

func (f *Form) Deactivating() *Listener[*Event] {
	return &f.deactivatingPublisher
}

// FocusedControl returns the descendant that currently has the focus, or
// nil.
func (f *Form) FocusedControl() Control {
	h := f.Handle()
	h.check("FocusedControl")
	focus := h.n.Focus()
	if focus == 0 || !h.IsAncestorOf(Handle{n: h.n, h: focus}) {
		return nil
	}
	return f.app.registry.lookup(focus)
}

// SetFocusToControl focuses c, or does nothing when c is nil.
func (f *Form) SetFocusToControl(c Control) {
	if c != nil {
		c.AsControlBase().SetFocus()
	}
}

func (f *Form) ProcessMessage(m *native.Message) {
	switch m.ID {
	case native.MsgActivate:
		switch native.LoWord(m.A) {
		case native.WaActive, native.WaClickActive:
			if f.prevFocus != 0 {
				f.native().SetFocus(f.prevFocus)
			}
			e := newEvent(f, m)
			f.activatingPublisher.publish(&e)

		case native.WaInactive:
			f.prevFocus = 0
			if c := f.FocusedControl(); c != nil {
				f.prevFocus = c.AsControlBase().hWnd
			}
			e := newEvent(f, m)
			f.deactivatingPublisher.publish(&e)
		}
		m.Result = 0
		return

	case native.MsgClose:
		e := &CancelEvent{Event: newEvent(f, m)}
		f.closingPublisher.publish(e)
		if e.canceled {
			f.app.log.Trace("close canceled", "hwnd", uintptr(f.hWnd))
		} else {
			f.Dispose()
		}
		m.Result = 0
		return
	}

	f.ControlBase.ProcessMessage(m)
}

// descendantDestroying forgets the remembered focus when it is about to
// become invalid.
func (f *Form) descendantDestroying(c Control) {
	if f.prevFocus == c.AsControlBase().hWnd {
		f.prevFocus = 0
	}
}

// OnPreTranslate implements PreTranslateHandler.
func (f *Form) OnPreTranslate(msg *native.QueuedMessage) bool {
	if msg.ID != native.MsgKeyDown {
		return false
	}
	return f.HandleKeyDown(msg)
}

// HandleKeyDown processes key presses before translation: Tab and
// Shift+Tab move the focus, Ctrl+Tab and Ctrl+Shift+Tab switch the pages of
// the nearest Tab control and Return clicks the default push button.
func (f *Form) HandleKeyDown(msg *native.QueuedMessage) bool {
	switch Key(msg.A) {
	case KeyTab:
	case KeyReturn:
		return f.clickDefaultButton(msg.Target)
	default:
		return false
	}
	mods := ModifiersDown(f.native())

	if mods&ModControl != 0 {
		return f.cycleTabPage(mods&ModShift == 0)
	}

	start := f.app.registry.lookup(msg.Target)
	if start == nil {
		start = f
	}
	next := FindNextControl(start, mods&ModShift == 0, NextControlOptions{
		TabStopOnly:   true,
		FocusableOnly: true,
		Wrap:          true,
	})
	if next != nil {
		next.AsControlBase().SetFocus()
	}
	return true
}

// clickDefaultButton leaves Return to push buttons, multi-line edits and
// inline label editors.
func (f *Form) clickDefaultButton(target native.Handle) bool {
	switch c := f.app.registry.lookup(target).(type) {
	case *PushButton:
		return false
	case *Edit:
		if c.label || c.Handle().HasStyle(native.EsMultiline) {
			return false
		}
	}

	pb := defaultButton(f)
	if pb == nil {
		return false
	}
	pb.Click()
	return true
}

func (f *Form) cycleTabPage(forward bool) bool {
	var tab *Tab

	// Prefer a Tab control containing the focus.
	for c := f.FocusedControl(); c != nil && tab == nil; c = c.AsControlBase().Parent() {
		tab, _ = c.(*Tab)
	}
	if tab == nil {
		walkDescendants(f, func(c Control) bool {
			tab, _ = c.(*Tab)
			return tab == nil
		})
	}
	if tab == nil {
		return false
	}

	n := tab.ItemCount()
	if n == 0 {
		return true
	}
	i := tab.Selected().Index()
	if forward {
		i = (i + 1) % n
	} else {
		i = (i - 1 + n) % n
	}
	tab.Select(i)
	return true
}

// walkDescendants visits the descendants of c in pre-order until fn returns
// false.
func walkDescendants(c Control, fn func(Control) bool) bool {
	for _, child := range c.AsControlBase().Children() {
		if !fn(child) || !walkDescendants(child, fn) {
			return false
		}
	}
	return true
}
