// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import "github.com/wuc656/walkctl/native"

// Edit is a single line text box. It is also the type of the transient
// editors that list and tree views open for inline label edits.
type Edit struct {
	ControlBase
	textChangedPublisher Listener[*Event]
	label                bool
}

type EditOptions struct {
	Text     string
	Bounds   Rectangle
	ReadOnly bool
	// MaxLength limits the text in UTF-16 code units. Zero keeps the native
	// default.
	MaxLength int
}

func NewEdit(parent Control, opts EditOptions) (*Edit, error) {
	e := new(Edit)

	style := native.WsVisible | native.WsTabStop
	if opts.ReadOnly {
		style |= native.EsReadOnly
	}

	if err := InitControl(e, parent, ControlOptions{
		Class:   native.ClassEdit,
		Style:   style,
		ExStyle: native.WsExClientEdge,
		Bounds:  opts.Bounds,
		Text:    NewText(opts.Text).String(),
	}); err != nil {
		return nil, err
	}

	if opts.MaxLength > 0 {
		e.SetMaxLength(opts.MaxLength)
	}

	return e, nil
}

// attachEdit wraps a native edit window that the caller does not own, such
// as an inline label editor.
func attachEdit(app *Application, h native.Handle) *Edit {
	e := &Edit{label: true}
	AttachControl(e, app, h)
	return e
}

// TextLength returns the number of user-perceived characters in the text.
func (e *Edit) TextLength() int {
	return NewText(e.Text()).Graphemes()
}

// MaxLength returns the limit in UTF-16 code units.
func (e *Edit) MaxLength() int {
	return int(e.send("MaxLength", native.EmGetLimitText, 0, 0, nil))
}

func (e *Edit) SetMaxLength(n int) {
	if n < 0 {
		precondition("SetMaxLength", "negative length %d", n)
	}
	e.send("SetMaxLength", native.EmSetLimitText, uintptr(n), 0, nil)
}

func (e *Edit) ReadOnly() bool {
	return e.Handle().HasStyle(native.EsReadOnly)
}

// SetReadOnly goes through the native control, which owns the style bit.
func (e *Edit) SetReadOnly(readOnly bool) {
	if readOnly == e.ReadOnly() {
		return
	}
	e.send("SetReadOnly", native.EmSetReadOnly, boolToParam(readOnly), 0, nil)
}

// TextSelection returns the selected range in characters.
func (e *Edit) TextSelection() (start, end int) {
	r := e.send("TextSelection", native.EmGetSel, 0, 0, nil)
	return int(native.LoWord(r)), int(native.HiWord(r))
}

// SetTextSelection selects [start, end). An end of -1 selects to the end of
// the text.
func (e *Edit) SetTextSelection(start, end int) {
	e.send("SetTextSelection", native.EmSetSel, uintptr(start), uintptr(end), nil)
}

// OnTextChanged fires after every change of the text, whether typed by the
// user or set by the program.
func (e *Edit) OnTextChanged() *Listener[*Event] {
	return &e.textChangedPublisher
}

func (e *Edit) ProcessMessage(m *native.Message) {
	if m.ID == native.MsgReflect+native.MsgCommand && native.HiWord(m.A) == native.EnChange {
		ev := newEvent(e, m)
		e.textChangedPublisher.publish(&ev)
		return
	}

	e.ControlBase.ProcessMessage(m)
}

func boolToParam(v bool) uintptr {
	if v {
		return 1
	}
	return 0
}
