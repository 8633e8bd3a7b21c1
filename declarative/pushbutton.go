// Copyright 2012 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declarative

import (
	"github.com/wuc656/walkctl"
)

type PushButton struct {
	ControlProps `yaml:",inline"`

	Text    string `yaml:"text"`
	Default bool   `yaml:"default"`

	OnClicked func(*walkctl.Event) `yaml:"-"`
	AssignTo  **walkctl.PushButton `yaml:"-"`
}

func (pb PushButton) Create(b *Builder) error {
	w, err := walkctl.NewPushButtonWithOptions(b.Parent(), walkctl.PushButtonOptions{
		Text:    pb.Text,
		Bounds:  pb.Bounds,
		Default: pb.Default,
	})
	if err != nil {
		return err
	}

	if pb.AssignTo != nil {
		*pb.AssignTo = w
	}

	return b.InitWidget(pb.ControlProps, w, func() error {
		if pb.OnClicked != nil {
			w.OnClicked().Attach(pb.OnClicked)
		}
		return nil
	}, nil)
}

type CheckBox struct {
	ControlProps `yaml:",inline"`

	Text    string `yaml:"text"`
	Checked bool   `yaml:"checked"`

	OnClicked        func(*walkctl.Event) `yaml:"-"`
	OnCheckedChanged func(*walkctl.Event) `yaml:"-"`
	AssignTo         **walkctl.CheckBox   `yaml:"-"`
}

func (cb CheckBox) Create(b *Builder) error {
	w, err := walkctl.NewCheckBox(b.Parent(), cb.Text)
	if err != nil {
		return err
	}

	if cb.AssignTo != nil {
		*cb.AssignTo = w
	}

	return b.InitWidget(cb.ControlProps, w, func() error {
		if cb.Bounds != (walkctl.Rectangle{}) {
			if err := w.SetBounds(cb.Bounds); err != nil {
				return err
			}
		}
		w.SetChecked(cb.Checked)

		if cb.OnClicked != nil {
			w.OnClicked().Attach(cb.OnClicked)
		}
		if cb.OnCheckedChanged != nil {
			w.OnCheckedChanged().Attach(cb.OnCheckedChanged)
		}
		return nil
	}, nil)
}
