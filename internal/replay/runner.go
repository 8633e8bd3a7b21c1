// Copyright 2024 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/wuc656/walkctl"
	"github.com/wuc656/walkctl/declarative"
	"github.com/wuc656/walkctl/native"
	"github.com/wuc656/walkctl/native/sim"
)

type Options struct {
	Settings walkctl.Settings
	Logger   walkctl.Logger
}

type runner struct {
	sc     *Scenario
	s      *sim.Sim
	in     *sim.Input
	app    *walkctl.Application
	b      *declarative.Builder
	form   *walkctl.Form
	clicks map[string]int
	log    walkctl.Logger
}

// Run builds the scenario's form on a fresh simulator, plays the steps and
// evaluates the expectations. A step that cannot be carried out ends the run
// with an error; failed expectations are reported, not returned.
func Run(sc *Scenario, opts Options) (*Report, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	start := time.Now()

	s := sim.New(sim.Options{})
	appOpts := []walkctl.Option{walkctl.WithSettings(opts.Settings)}
	if opts.Logger != nil {
		appOpts = append(appOpts, walkctl.WithLogger(opts.Logger))
	}
	app, err := walkctl.NewApplication(s, appOpts...)
	if err != nil {
		return nil, err
	}

	r := &runner{
		sc:     sc,
		s:      s,
		in:     s.Input(),
		app:    app,
		b:      declarative.NewBuilder(app),
		clicks: make(map[string]int),
		log:    app.Logger(),
	}

	form := sc.Form
	form.AssignTo = &r.form
	if err := r.b.Build(form); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	r.countClicks()
	app.PumpPending()

	for i, st := range sc.Steps {
		r.log.Debug("replay step", "scenario", sc.Name, "step", i+1, "action", st.Action, "target", st.Target)
		if err := r.apply(st); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, st.Action, err)
		}
		app.PumpPending()
	}

	report := &Report{Scenario: sc.Name}
	for _, e := range sc.expectations {
		ok, err := e.Check(r)
		report.Results = append(report.Results, Result{Expect: e.String(), Passed: ok && err == nil, Err: err})
		if !ok {
			r.log.Info("expectation failed", "scenario", sc.Name, "expect", e.String(), "error", err)
		}
	}
	report.Duration = time.Since(start)
	return report, nil
}

func (r *runner) countClicks() {
	for name, c := range r.b.Names() {
		var l *walkctl.Listener[*walkctl.Event]
		switch c := c.(type) {
		case *walkctl.PushButton:
			l = c.OnClicked()
		case *walkctl.CheckBox:
			l = c.OnClicked()
		default:
			continue
		}
		r.clicks[name] = 0
		l.Attach(func(*walkctl.Event) { r.clicks[name]++ })
	}
}

func (r *runner) control(name string) (walkctl.Control, error) {
	c, ok := r.b.Named(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownControl, name)
	}
	if c.AsControlBase().IsDisposed() {
		return nil, fmt.Errorf("%s: %w", name, ErrDisposed)
	}
	return c, nil
}

// target resolves the step's control, or the focused window when the step
// names none.
func (r *runner) target(st Step) (native.Handle, walkctl.Control, error) {
	if st.Target == "" {
		focus := r.s.Focus()
		if focus == 0 {
			return 0, nil, fmt.Errorf("nothing has the focus")
		}
		return focus, nil, nil
	}
	c, err := r.control(st.Target)
	if err != nil {
		return 0, nil, err
	}
	return c.AsControlBase().NativeHandle(), c, nil
}

func (r *runner) point(st Step, c walkctl.Control) walkctl.Point {
	if st.At != nil {
		return *st.At
	}
	cr := c.AsControlBase().ClientBounds()
	return walkctl.Point{X: cr.Width / 2, Y: cr.Height / 2}
}

func (r *runner) apply(st Step) error {
	if st.Action == "close" && st.Target == "" {
		if r.form == nil || r.form.IsDisposed() {
			return fmt.Errorf("form is already closed")
		}
		r.in.Close(r.form.NativeHandle())
		return nil
	}

	h, c, err := r.target(st)
	if err != nil {
		return err
	}

	switch st.Action {
	case "click", "doubleclick":
		btn, _ := parseButton(st.Button)
		pt := r.point(st, c)
		if st.Action == "click" {
			r.in.Click(h, btn, pt)
		} else {
			r.in.DoubleClick(h, btn, pt)
		}

	case "wheel":
		r.in.Wheel(h, st.Delta, r.s.ClientToScreen(h, r.point(st, c)))

	case "type":
		r.in.Type(h, st.Text)

	case "key":
		return r.press(h, st.Key)

	case "focus":
		c.AsControlBase().SetFocus()

	case "settext":
		setter, ok := c.(interface{ SetText(string) error })
		if !ok {
			return fmt.Errorf("%s has no text", st.Target)
		}
		return setter.SetText(st.Text)

	case "select":
		return r.selectItem(st, c)

	case "expand", "collapse":
		tv, ok := c.(*walkctl.TreeView)
		if !ok {
			return fmt.Errorf("%s is not a tree view", st.Target)
		}
		it, err := findTreeItem(tv, st.Path)
		if err != nil {
			return err
		}
		if st.Action == "expand" {
			it.Expand()
		} else {
			it.Collapse()
		}

	case "close":
		r.in.Close(h)

	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// press posts a key chord to h through the message queue, so that the
// application's pre-translation sees it as it would real input.
func (r *runner) press(h native.Handle, chord string) error {
	mods, vk, err := parseKey(chord)
	if err != nil {
		return err
	}

	for _, m := range mods {
		r.s.SetKeyDown(m, true)
	}
	defer func() {
		for _, m := range mods {
			r.s.SetKeyDown(m, false)
		}
	}()

	if err := r.s.PostMessage(h, native.MsgKeyDown, uintptr(vk), 1); err != nil {
		return err
	}
	r.app.PumpPending()

	if r.s.IsWindow(h) {
		if err := r.s.PostMessage(h, native.MsgKeyUp, uintptr(vk), 1|3<<30); err != nil {
			return err
		}
		r.app.PumpPending()
	}
	return nil
}

func (r *runner) selectItem(st Step, c walkctl.Control) error {
	switch c := c.(type) {
	case *walkctl.Tab:
		if st.Index < 0 || st.Index >= c.ItemCount() {
			return fmt.Errorf("tab %d out of range", st.Index)
		}
		c.Select(st.Index)

	case *walkctl.ListView:
		if st.Index < 0 || st.Index >= c.ItemCount() {
			return fmt.Errorf("item %d out of range", st.Index)
		}
		c.Item(st.Index).SetSelected(true)

	case *walkctl.TreeView:
		it, err := findTreeItem(c, st.Path)
		if err != nil {
			return err
		}
		c.Select(it)

	default:
		return fmt.Errorf("%s has no items", st.Target)
	}
	return nil
}

// findTreeItem follows a slash-separated path of item texts from the roots.
func findTreeItem(tv *walkctl.TreeView, path string) (walkctl.TreeItem, error) {
	level := tv.Roots()
	var found walkctl.TreeItem

	for _, part := range strings.Split(path, "/") {
		ok := false
		for _, it := range level {
			if it.Text() == part {
				found, ok = it, true
				break
			}
		}
		if !ok {
			return walkctl.TreeItem{}, fmt.Errorf("no tree item %q", path)
		}
		level = found.Children()
	}
	return found, nil
}
