// Copyright 2012 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declarative

import "github.com/wuc656/walkctl"

type ListViewColumn struct {
	Title string `yaml:"title"`
	Width int    `yaml:"width"`
}

type ListViewItem struct {
	Text     string   `yaml:"text"`
	SubItems []string `yaml:"subItems"`
	Image    int      `yaml:"image"`
	Selected bool     `yaml:"selected"`
}

type ListView struct {
	ControlProps `yaml:",inline"`

	Columns    []ListViewColumn `yaml:"columns"`
	Items      []ListViewItem   `yaml:"items"`
	EditLabels bool             `yaml:"editLabels"`

	OnItemActivate func(*walkctl.ItemEvent[walkctl.ListViewItem])     `yaml:"-"`
	OnTextEdit     func(*walkctl.TextEditEvent[walkctl.ListViewItem]) `yaml:"-"`
	AssignTo       **walkctl.ListView                                 `yaml:"-"`
}

func (lv ListView) Create(b *Builder) error {
	w, err := walkctl.NewListView(b.Parent(), walkctl.ListViewOptions{
		Bounds:     lv.Bounds,
		EditLabels: lv.EditLabels,
	})
	if err != nil {
		return err
	}

	if lv.AssignTo != nil {
		*lv.AssignTo = w
	}

	return b.InitWidget(lv.ControlProps, w, func() error {
		for i, col := range lv.Columns {
			w.InsertColumn(i, col.Title, col.Width)
		}
		for _, it := range lv.Items {
			if _, err := w.Append(walkctl.ListViewItemInfo{
				Text:     it.Text,
				SubItems: it.SubItems,
				Image:    it.Image,
				Selected: it.Selected,
			}); err != nil {
				return err
			}
		}

		if lv.OnItemActivate != nil {
			w.OnItemActivate().Attach(lv.OnItemActivate)
		}
		if lv.OnTextEdit != nil {
			w.OnTextEdit().Attach(lv.OnTextEdit)
		}
		return nil
	}, nil)
}
