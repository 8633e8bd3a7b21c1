// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import (
	"slices"

	"github.com/wuc656/walkctl/native"
)

// NextControlOptions filters the controls FindNextControl may return.
type NextControlOptions struct {
	// TabStopOnly skips controls without the tab stop style.
	TabStopOnly bool
	// FocusableOnly skips controls that are disabled or hidden, or that
	// have a disabled or hidden ancestor.
	FocusableOnly bool
	// Wrap continues from the other end when the walk runs off the last
	// (or first) control.
	Wrap bool
}

// tabOrderedChildren returns the owned children of c sorted by tab index.
// Equal indexes keep their z-order.
func tabOrderedChildren(c Control) []Control {
	children := c.AsControlBase().Children()
	slices.SortStableFunc(children, func(a, b Control) int {
		return a.AsControlBase().tabIndex - b.AsControlBase().tabIndex
	})
	return children
}

// NextControl returns the control after start in tab order, or before it if
// forward is false. The order is a pre-order walk of the top-level control
// containing start, visiting siblings by (tab index, z-order). The
// top-level control itself is never returned, and nil marks either end.
func NextControl(start Control, forward bool) Control {
	root := start.AsControlBase().TopLevel()
	if forward {
		return nextInTabOrder(root, start)
	}
	return prevInTabOrder(root, start)
}

func nextInTabOrder(root, c Control) Control {
	if children := tabOrderedChildren(c); len(children) > 0 {
		return children[0]
	}

	for c != root {
		parent := c.AsControlBase().Parent()
		if parent == nil {
			return nil
		}
		siblings := tabOrderedChildren(parent)
		if i := slices.Index(siblings, c); i >= 0 && i+1 < len(siblings) {
			return siblings[i+1]
		}
		c = parent
	}
	return nil
}

func prevInTabOrder(root, c Control) Control {
	if c == root {
		return nil
	}

	parent := c.AsControlBase().Parent()
	if parent == nil {
		return nil
	}
	siblings := tabOrderedChildren(parent)
	if i := slices.Index(siblings, c); i > 0 {
		return lastInTabOrder(siblings[i-1])
	}
	if parent == root {
		return nil
	}
	return parent
}

// lastInTabOrder returns the last control of the subtree rooted at c.
func lastInTabOrder(c Control) Control {
	for {
		children := tabOrderedChildren(c)
		if len(children) == 0 {
			return c
		}
		c = children[len(children)-1]
	}
}

// FindNextControl walks the tab order from start like NextControl and
// returns the first control accepted by opts. With Wrap it continues from
// the other end once, and may return start itself. It returns nil if no
// control qualifies.
func FindNextControl(start Control, forward bool, opts NextControlOptions) Control {
	root := start.AsControlBase().TopLevel()

	wrapped := false
	c := start
	for {
		if forward {
			c = nextInTabOrder(root, c)
		} else {
			c = prevInTabOrder(root, c)
		}

		if c == nil {
			if !opts.Wrap || wrapped {
				return nil
			}
			wrapped = true
			if forward {
				c = nextInTabOrder(root, root)
			} else if c = lastInTabOrder(root); c == root {
				c = nil
			}
			if c == nil {
				return nil
			}
		}

		if acceptsTab(root, c, opts) {
			return c
		}
		if c == start {
			return nil
		}
	}
}

func acceptsTab(root, c Control, opts NextControlOptions) bool {
	cb := c.AsControlBase()
	if opts.TabStopOnly && !cb.Handle().HasStyle(native.WsTabStop) {
		return false
	}
	if opts.FocusableOnly {
		for p := c; p != nil; p = p.AsControlBase().Parent() {
			if !p.AsControlBase().Enabled() || !p.AsControlBase().Visible() {
				return false
			}
			if p == root {
				break
			}
		}
	}
	return true
}
