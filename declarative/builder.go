// Copyright 2012 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declarative

import (
	"fmt"

	"golang.org/x/image/colornames"

	"github.com/wuc656/walkctl"
)

// Builder creates live controls from declarations. It tracks the current
// parent while children are created and remembers every named control.
type Builder struct {
	app      *walkctl.Application
	parents  []walkctl.Control
	named    map[string]walkctl.Control
	deferred []func() error
}

func NewBuilder(app *walkctl.Application) *Builder {
	return &Builder{app: app, named: make(map[string]walkctl.Control)}
}

func (b *Builder) Application() *walkctl.Application {
	return b.app
}

// Parent returns the control that children are currently created in, or
// nil outside a container.
func (b *Builder) Parent() walkctl.Control {
	if len(b.parents) == 0 {
		return nil
	}
	return b.parents[len(b.parents)-1]
}

// Named returns the control created for the declaration with the given
// Name.
func (b *Builder) Named(name string) (walkctl.Control, bool) {
	c, ok := b.named[name]
	return c, ok
}

// Names returns every registered name mapped to its control.
func (b *Builder) Names() map[string]walkctl.Control {
	m := make(map[string]walkctl.Control, len(b.named))
	for k, v := range b.named {
		m[k] = v
	}
	return m
}

// Defer queues f to run once the outermost declaration has been created.
func (b *Builder) Defer(f func() error) {
	b.deferred = append(b.deferred, f)
}

// Build creates w and runs the deferred functions.
func (b *Builder) Build(w Widget) error {
	if err := w.Create(b); err != nil {
		return err
	}

	deferred := b.deferred
	b.deferred = nil
	for _, f := range deferred {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}

// InitWidget applies props to c, runs init, and then creates children with
// c as their parent.
func (b *Builder) InitWidget(props ControlProps, c walkctl.Control, init func() error, children Widgets) error {
	cb := c.AsControlBase()

	if props.Name != "" {
		if _, dup := b.named[props.Name]; dup {
			return fmt.Errorf("declarative: duplicate name %q", props.Name)
		}
		b.named[props.Name] = c
	}

	if props.Disabled {
		cb.SetEnabled(false)
	}
	if props.Hidden {
		cb.SetVisible(false)
	}
	if props.TabStop != nil {
		cb.SetTabStop(*props.TabStop)
	}
	if props.TabIndex != nil {
		cb.SetTabIndex(*props.TabIndex)
	}
	if props.Font != nil {
		cb.SetFont(props.Font.Create())
	}
	if props.Background != "" {
		rgba, ok := colornames.Map[props.Background]
		if !ok {
			return fmt.Errorf("declarative: unknown color %q", props.Background)
		}
		cb.SetBackground(walkctl.NewSolidColorBrush(rgba))
	}

	if init != nil {
		if err := init(); err != nil {
			return err
		}
	}

	b.parents = append(b.parents, c)
	defer func() {
		b.parents = b.parents[:len(b.parents)-1]
	}()

	for _, child := range children {
		if err := child.Create(b); err != nil {
			return err
		}
	}
	return nil
}
