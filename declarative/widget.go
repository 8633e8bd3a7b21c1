// Copyright 2012 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declarative

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/wuc656/walkctl"
)

type Widget interface {
	Create(b *Builder) error
}

// ControlProps holds the properties shared by every control declaration.
type ControlProps struct {
	Name       string            `yaml:"name"`
	Bounds     walkctl.Rectangle `yaml:"bounds"`
	Disabled   bool              `yaml:"disabled"`
	Hidden     bool              `yaml:"hidden"`
	TabIndex   *int              `yaml:"tabIndex"`
	TabStop    *bool             `yaml:"tabStop"`
	Font       *Font             `yaml:"font"`
	Background string            `yaml:"background"` // a CSS color name
}

// Widgets is a list of child declarations. In YAML each entry names its
// kind in a type key:
//
//	- type: pushbutton
//	  name: ok
//	  text: OK
type Widgets []Widget

func (ws *Widgets) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: children must be a sequence", node.Line)
	}

	list := make(Widgets, 0, len(node.Content))
	for _, item := range node.Content {
		var head struct {
			Type string `yaml:"type"`
		}
		if err := item.Decode(&head); err != nil {
			return err
		}

		w, err := decodeWidget(head.Type, item)
		if err != nil {
			return fmt.Errorf("line %d: %w", item.Line, err)
		}
		list = append(list, w)
	}
	*ws = list
	return nil
}

func decodeWidget(kind string, node *yaml.Node) (Widget, error) {
	switch kind {
	case "panel":
		return decodeAs[Panel](node)
	case "edit":
		return decodeAs[Edit](node)
	case "pushbutton":
		return decodeAs[PushButton](node)
	case "checkbox":
		return decodeAs[CheckBox](node)
	case "listview":
		return decodeAs[ListView](node)
	case "tab":
		return decodeAs[Tab](node)
	case "treeview":
		return decodeAs[TreeView](node)
	case "":
		return nil, fmt.Errorf("missing widget type")
	}
	return nil, fmt.Errorf("unknown widget type %q", kind)
}

func decodeAs[W Widget](node *yaml.Node) (Widget, error) {
	var w W
	if err := node.Decode(&w); err != nil {
		return nil, err
	}
	return w, nil
}
