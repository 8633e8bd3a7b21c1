// Copyright 2024 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"fmt"
	"strings"

	"github.com/wuc656/walkctl/native"
	"github.com/wuc656/walkctl/native/sim"
)

var keyNames = map[string]uint32{
	"back":   native.VkBack,
	"tab":    native.VkTab,
	"return": native.VkReturn,
	"enter":  native.VkReturn,
	"escape": native.VkEscape,
	"esc":    native.VkEscape,
	"space":  native.VkSpace,
	"left":   native.VkLeft,
	"up":     native.VkUp,
	"right":  native.VkRight,
	"down":   native.VkDown,
	"apps":   native.VkApps,
	"f2":     native.VkF2,
}

var modifierNames = map[string]uint32{
	"shift": native.VkShift,
	"ctrl":  native.VkControl,
	"alt":   native.VkMenu,
}

// parseKey splits a chord such as "ctrl+shift+tab" into its modifiers and
// key.
func parseKey(chord string) (mods []uint32, vk uint32, err error) {
	if chord == "" {
		return nil, 0, fmt.Errorf("missing key")
	}

	parts := strings.Split(strings.ToLower(chord), "+")
	for _, p := range parts[:len(parts)-1] {
		m, ok := modifierNames[strings.TrimSpace(p)]
		if !ok {
			return nil, 0, fmt.Errorf("unknown modifier %q in %q", p, chord)
		}
		mods = append(mods, m)
	}

	vk, ok := keyNames[strings.TrimSpace(parts[len(parts)-1])]
	if !ok {
		return nil, 0, fmt.Errorf("unknown key %q", chord)
	}
	return mods, vk, nil
}

func parseButton(name string) (sim.Button, error) {
	switch strings.ToLower(name) {
	case "", "left":
		return sim.Left, nil
	case "right":
		return sim.Right, nil
	case "middle":
		return sim.Middle, nil
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}
