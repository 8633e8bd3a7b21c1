// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import "github.com/wuc656/walkctl/native"

// Panel is a plain child container.
type Panel struct {
	ControlBase
}

func NewPanel(parent Control, bounds Rectangle) (*Panel, error) {
	p := new(Panel)

	if err := InitControl(p, parent, ControlOptions{
		Class:   native.ClassWindow,
		Style:   native.WsVisible,
		ExStyle: native.WsExControlParent,
		Bounds:  bounds,
	}); err != nil {
		return nil, err
	}

	return p, nil
}
