// Copyright 2012 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wuc656/walkctl"
)

var (
	ErrUnknownControl  = errors.New("unknown control")
	ErrUnknownProperty = errors.New("unknown property")
	ErrDisposed        = errors.New("control is disposed")
)

// property reads one value of a control. Numbers are float64, the only
// numeric type expressions compare.
type property func(r *runner, name string, c walkctl.Control) (any, error)

var properties = map[string]property{
	"Disposed": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		return c.AsControlBase().IsDisposed(), nil
	},
	"Text": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		return c.AsControlBase().Text(), nil
	},
	"Enabled": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		return c.AsControlBase().Enabled(), nil
	},
	"Visible": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		return c.AsControlBase().Visible(), nil
	},
	"Focused": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		return c.AsControlBase().Focused(), nil
	},
	"TabIndex": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		return float64(c.AsControlBase().TabIndex()), nil
	},
	"Clicks": func(r *runner, name string, _ walkctl.Control) (any, error) {
		n, ok := r.clicks[name]
		if !ok {
			return nil, errors.New("not a button")
		}
		return float64(n), nil
	},
	"Checked": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		cb, ok := c.(*walkctl.CheckBox)
		if !ok {
			return nil, errors.New("not a check box")
		}
		return cb.Checked(), nil
	},
	"Length": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		e, ok := c.(*walkctl.Edit)
		if !ok {
			return nil, errors.New("not an edit")
		}
		return float64(e.TextLength()), nil
	},
	"ReadOnly": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		e, ok := c.(*walkctl.Edit)
		if !ok {
			return nil, errors.New("not an edit")
		}
		return e.ReadOnly(), nil
	},
	"Title": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		f, ok := c.(*walkctl.Form)
		if !ok {
			return nil, errors.New("not a form")
		}
		return f.Title(), nil
	},
	"Count": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		switch c := c.(type) {
		case *walkctl.ListView:
			return float64(c.ItemCount()), nil
		case *walkctl.Tab:
			return float64(c.ItemCount()), nil
		case *walkctl.TreeView:
			return float64(c.ItemCount()), nil
		}
		return nil, errors.New("not an item control")
	},
	// Selected is the current index of a tab or list view (-1 for none) and
	// the text of the current tree item ("" for none).
	"Selected": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		switch c := c.(type) {
		case *walkctl.Tab:
			return float64(c.Selected().Index()), nil
		case *walkctl.ListView:
			sel := c.SelectedItems()
			if len(sel) == 0 {
				return float64(-1), nil
			}
			return float64(sel[0].Index()), nil
		case *walkctl.TreeView:
			it := c.Selected()
			if it.ID() == 0 {
				return "", nil
			}
			return it.Text(), nil
		}
		return nil, errors.New("not an item control")
	},
	"Editing": func(_ *runner, _ string, c walkctl.Control) (any, error) {
		switch c := c.(type) {
		case *walkctl.ListView:
			return c.EditState() != walkctl.NotEditing, nil
		case *walkctl.TreeView:
			return c.EditState() != walkctl.NotEditing, nil
		}
		return nil, errors.New("not an editable item control")
	},
}

// Get resolves an expression parameter: focus, or name.Property.
func (r *runner) Get(param string) (any, error) {
	if param == "focus" {
		return r.focusName(), nil
	}

	name, prop, ok := strings.Cut(param, ".")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownControl, param)
	}
	c, ok := r.b.Named(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownControl, name)
	}
	get, ok := properties[prop]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, prop)
	}
	if prop != "Disposed" && prop != "Clicks" && c.AsControlBase().IsDisposed() {
		return nil, fmt.Errorf("%s: %w", name, ErrDisposed)
	}

	v, err := get(r, name, c)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", name, prop, err)
	}
	return v, nil
}

func (r *runner) focusName() string {
	focus := r.s.Focus()
	if focus == 0 {
		return ""
	}
	for name, c := range r.b.Names() {
		if c.AsControlBase().NativeHandle() == focus {
			return name
		}
	}
	return ""
}
