// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package declarative

import (
	"errors"

	"github.com/wuc656/walkctl"
)

type Form struct {
	ControlProps `yaml:",inline"`

	Title    string  `yaml:"title"`
	Children Widgets `yaml:"children"`
	// Focus names the child that receives the focus once the form is built.
	Focus string `yaml:"focus"`

	OnClosing func(*walkctl.CancelEvent) `yaml:"-"`
	AssignTo  **walkctl.Form             `yaml:"-"`
}

func (f Form) Create(b *Builder) error {
	if b.Parent() != nil {
		return errors.New("declarative: a form must be the outermost declaration")
	}

	form, err := walkctl.NewForm(b.Application(), walkctl.FormOptions{
		Title:  f.Title,
		Bounds: f.Bounds,
		Hidden: f.Hidden,
	})
	if err != nil {
		return err
	}

	if f.AssignTo != nil {
		*f.AssignTo = form
	}

	if f.Focus != "" {
		b.Defer(func() error {
			c, ok := b.Named(f.Focus)
			if !ok {
				return errors.New("declarative: focus names no control: " + f.Focus)
			}
			form.SetFocusToControl(c)
			return nil
		})
	}

	props := f.ControlProps
	props.Hidden = false
	return b.InitWidget(props, form, func() error {
		if f.OnClosing != nil {
			form.Closing().Attach(f.OnClosing)
		}
		return nil
	}, f.Children)
}
