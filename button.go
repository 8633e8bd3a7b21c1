// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import "github.com/wuc656/walkctl/native"

// Button is the part shared by push buttons and check boxes.
type Button struct {
	ControlBase
	clickedPublisher        Listener[*Event]
	checkedChangedPublisher Listener[*Event]
}

func (b *Button) init(parent Control, text string, bounds Rectangle, style uint32, self Control) error {
	return InitControl(self, parent, ControlOptions{
		Class:  native.ClassButton,
		Style:  native.WsVisible | native.WsTabStop | style,
		Bounds: bounds,
		Text:   NewText(text).String(),
	})
}

// Click behaves as if the user had clicked the button.
func (b *Button) Click() {
	b.send("Click", native.BmClick, 0, 0, nil)
}

func (b *Button) OnClicked() *Listener[*Event] {
	return &b.clickedPublisher
}

func (b *Button) Checked() bool {
	return b.send("Checked", native.BmGetCheck, 0, 0, nil) == native.BstChecked
}

// SetChecked changes the check state. Listeners of OnCheckedChanged run only
// if the state actually changes.
func (b *Button) SetChecked(checked bool) {
	if checked == b.Checked() {
		return
	}
	state := uintptr(native.BstUnchecked)
	if checked {
		state = native.BstChecked
	}
	b.send("SetChecked", native.BmSetCheck, state, 0, nil)
	b.checkedChangedPublisher.publish(&Event{sender: b.self})
}

func (b *Button) OnCheckedChanged() *Listener[*Event] {
	return &b.checkedChangedPublisher
}

func (b *Button) ProcessMessage(m *native.Message) {
	if m.ID == native.MsgReflect+native.MsgCommand && native.HiWord(m.A) == native.BnClicked {
		if b.Handle().Style()&0x0F == native.BsAutoCheckBox {
			e := newEvent(b.self, m)
			b.checkedChangedPublisher.publish(&e)
		}
		e := newEvent(b.self, m)
		b.clickedPublisher.publish(&e)
		m.Result = 0
		return
	}

	b.ControlBase.ProcessMessage(m)
}

type PushButton struct {
	Button
}

// PushButtonOptions provides the optional fields that are passed into
// [NewPushButtonWithOptions].
type PushButtonOptions struct {
	Text   string
	Bounds Rectangle
	// Default makes Return click the button while the focus is on a control
	// of the same form that is not itself a push button.
	Default bool
}

func NewPushButton(parent Control, text string) (*PushButton, error) {
	return NewPushButtonWithOptions(parent, PushButtonOptions{Text: text})
}

func NewPushButtonWithOptions(parent Control, opts PushButtonOptions) (*PushButton, error) {
	pb := new(PushButton)

	style := native.BsPushButton
	if opts.Default {
		style = native.BsDefPushButton
	}
	if err := pb.init(parent, opts.Text, opts.Bounds, style, pb); err != nil {
		return nil, err
	}

	return pb, nil
}

// IsDefault reports whether the button answers Return for its form.
func (pb *PushButton) IsDefault() bool {
	return pb.Handle().Style()&0x0F == native.BsDefPushButton
}

func (pb *PushButton) SetDefault(def bool) {
	h := pb.Handle()
	if def == pb.IsDefault() {
		return
	}
	h.SetStyle(native.BsDefPushButton, def)
}

type CheckBox struct {
	Button
}

func NewCheckBox(parent Control, text string) (*CheckBox, error) {
	cb := new(CheckBox)

	if err := cb.init(parent, text, Rectangle{}, native.BsAutoCheckBox, cb); err != nil {
		return nil, err
	}

	return cb, nil
}

// defaultButton returns the first enabled default push button under c.
func defaultButton(c Control) *PushButton {
	var found *PushButton
	walkDescendants(c, func(d Control) bool {
		if pb, ok := d.(*PushButton); ok && pb.IsDefault() && pb.Enabled() {
			found = pb
			return false
		}
		return true
	})
	return found
}
