// Copyright 2012 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declarative

import "github.com/wuc656/walkctl"

type Panel struct {
	ControlProps `yaml:",inline"`

	Children Widgets `yaml:"children"`

	AssignTo **walkctl.Panel `yaml:"-"`
}

func (p Panel) Create(b *Builder) error {
	w, err := walkctl.NewPanel(b.Parent(), p.Bounds)
	if err != nil {
		return err
	}

	if p.AssignTo != nil {
		*p.AssignTo = w
	}

	return b.InitWidget(p.ControlProps, w, nil, p.Children)
}
