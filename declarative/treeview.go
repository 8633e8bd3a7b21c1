// Copyright 2012 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declarative

import "github.com/wuc656/walkctl"

type TreeItem struct {
	Text     string     `yaml:"text"`
	Image    int        `yaml:"image"`
	Expanded bool       `yaml:"expanded"`
	Children []TreeItem `yaml:"children"`
}

func (it TreeItem) info() walkctl.TreeItemInfo {
	info := walkctl.TreeItemInfo{Text: it.Text, Image: it.Image, Expanded: it.Expanded}
	for _, c := range it.Children {
		info.Children = append(info.Children, c.info())
	}
	return info
}

type TreeView struct {
	ControlProps `yaml:",inline"`

	Items      []TreeItem `yaml:"items"`
	EditLabels bool       `yaml:"editLabels"`

	OnItemSelect func(*walkctl.SelectionEvent[walkctl.TreeItem]) `yaml:"-"`
	AssignTo     **walkctl.TreeView                              `yaml:"-"`
}

func (tv TreeView) Create(b *Builder) error {
	w, err := walkctl.NewTreeView(b.Parent(), walkctl.TreeViewOptions{
		Bounds:     tv.Bounds,
		EditLabels: tv.EditLabels,
	})
	if err != nil {
		return err
	}

	if tv.AssignTo != nil {
		*tv.AssignTo = w
	}

	return b.InitWidget(tv.ControlProps, w, func() error {
		for _, it := range tv.Items {
			if _, err := w.Insert(walkctl.TreeItem{}, it.info()); err != nil {
				return err
			}
		}

		if tv.OnItemSelect != nil {
			w.OnItemSelect().Attach(tv.OnItemSelect)
		}
		return nil
	}, nil)
}
