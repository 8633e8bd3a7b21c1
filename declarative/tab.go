// Copyright 2012 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declarative

import "github.com/wuc656/walkctl"

type TabPage struct {
	Text  string `yaml:"text"`
	Image int    `yaml:"image"`
}

type Tab struct {
	ControlProps `yaml:",inline"`

	Pages   []TabPage `yaml:"pages"`
	Current int       `yaml:"current"`

	OnItemSelect func(*walkctl.SelectionEvent[walkctl.TabItem]) `yaml:"-"`
	AssignTo     **walkctl.Tab                                  `yaml:"-"`
}

func (t Tab) Create(b *Builder) error {
	w, err := walkctl.NewTab(b.Parent(), t.Bounds)
	if err != nil {
		return err
	}

	if t.AssignTo != nil {
		*t.AssignTo = w
	}

	return b.InitWidget(t.ControlProps, w, func() error {
		for _, p := range t.Pages {
			if _, err := w.Append(walkctl.TabItemInfo{Text: p.Text, Image: p.Image}); err != nil {
				return err
			}
		}
		if t.Current > 0 {
			w.Select(t.Current)
		}

		if t.OnItemSelect != nil {
			w.OnItemSelect().Attach(t.OnItemSelect)
		}
		return nil
	}, nil)
}
