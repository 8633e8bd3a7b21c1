// Copyright 2012 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declarative

import "github.com/wuc656/walkctl"

type Edit struct {
	ControlProps `yaml:",inline"`

	Text      string `yaml:"text"`
	ReadOnly  bool   `yaml:"readOnly"`
	MaxLength int    `yaml:"maxLength"`

	OnTextChanged func(*walkctl.Event) `yaml:"-"`
	AssignTo      **walkctl.Edit       `yaml:"-"`
}

func (e Edit) Create(b *Builder) error {
	w, err := walkctl.NewEdit(b.Parent(), walkctl.EditOptions{
		Text:      e.Text,
		Bounds:    e.Bounds,
		ReadOnly:  e.ReadOnly,
		MaxLength: e.MaxLength,
	})
	if err != nil {
		return err
	}

	if e.AssignTo != nil {
		*e.AssignTo = w
	}

	return b.InitWidget(e.ControlProps, w, func() error {
		if e.OnTextChanged != nil {
			w.OnTextChanged().Attach(e.OnTextChanged)
		}
		return nil
	}, nil)
}
