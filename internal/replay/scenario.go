// Copyright 2024 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replay drives a declared control tree through a scripted input
// sequence on the simulated native layer and checks expectations against
// the resulting state.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wuc656/walkctl"
	"github.com/wuc656/walkctl/declarative"
)

// Scenario is one replay file:
//
//	name: default button
//	form:
//	  title: Login
//	  focus: user
//	  children:
//	    - {type: edit, name: user}
//	    - {type: pushbutton, name: ok, text: OK, default: true}
//	steps:
//	  - {action: type, target: user, text: admin}
//	  - {action: key, key: return}
//	expect:
//	  - "[ok.Clicks] == 1"
type Scenario struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Form        declarative.Form `yaml:"form"`
	Steps       []Step           `yaml:"steps"`
	Expect      []string         `yaml:"expect"`

	expectations []*Expectation
}

type Step struct {
	Action string         `yaml:"action"`
	Target string         `yaml:"target"`
	Text   string         `yaml:"text"`
	Key    string         `yaml:"key"`
	At     *walkctl.Point `yaml:"at"`
	Button string         `yaml:"button"`
	Index  int            `yaml:"index"`
	Path   string         `yaml:"path"`
	Delta  int            `yaml:"delta"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}

// Parse decodes and validates a scenario. Unknown keys outside widget
// declarations are errors.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if err := sc.compile(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) compile() error {
	var errs []error

	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}

	sc.expectations = sc.expectations[:0]
	for _, src := range sc.Expect {
		e, err := NewExpectation(src)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sc.expectations = append(sc.expectations, e)
	}

	return errors.Join(errs...)
}

func (st Step) validate() error {
	switch st.Action {
	case "click", "doubleclick", "wheel", "focus", "select", "settext":
		if st.Target == "" {
			return fmt.Errorf("%s needs a target", st.Action)
		}
	case "expand", "collapse":
		if st.Target == "" || st.Path == "" {
			return fmt.Errorf("%s needs a target and a path", st.Action)
		}
	case "key":
		if _, _, err := parseKey(st.Key); err != nil {
			return err
		}
	case "type", "close":
	case "":
		return errors.New("missing action")
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}

	if _, err := parseButton(st.Button); err != nil {
		return err
	}
	return nil
}
