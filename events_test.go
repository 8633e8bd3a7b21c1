// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wuc656/walkctl"
)

type cancelable interface {
	Canceled() bool
	SetCanceled(bool)
}

func TestTwoGateEvents_OnlyGateIsCancelable(t *testing.T) {
	gates := []any{
		new(walkctl.ItemChangingEvent[walkctl.ListViewItem]),
		new(walkctl.SelectingEvent[walkctl.TabItem]),
		new(walkctl.SelectingEvent[walkctl.TreeItem]),
		new(walkctl.ExpandingEvent[walkctl.TreeItem]),
	}
	for _, e := range gates {
		assert.Implements(t, (*cancelable)(nil), e)
	}

	confirmations := []any{
		new(walkctl.ItemChangeEvent[walkctl.ListViewItem]),
		new(walkctl.SelectionEvent[walkctl.TabItem]),
		new(walkctl.SelectionEvent[walkctl.TreeItem]),
		new(walkctl.ExpandEvent[walkctl.TreeItem]),
	}
	for _, e := range confirmations {
		_, ok := e.(cancelable)
		assert.False(t, ok, "%T", e)
	}
}
