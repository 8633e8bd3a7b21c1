// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import (
	"sync"

	"github.com/wuc656/walkctl/native"
)

// registry maps native handles to the Controls that own them. At most one
// Control owns a handle at a time.
type registry struct {
	mu       sync.RWMutex
	controls map[native.Handle]Control
}

func newRegistry() *registry {
	return &registry{controls: make(map[native.Handle]Control)}
}

func (r *registry) add(h native.Handle, c Control) {
	r.mu.Lock()
	r.controls[h] = c
	r.mu.Unlock()
}

// remove drops h if it is still owned by c.
func (r *registry) remove(h native.Handle, c Control) {
	r.mu.Lock()
	if r.controls[h] == c {
		delete(r.controls, h)
	}
	r.mu.Unlock()
}

func (r *registry) lookup(h native.Handle) Control {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.controls[h]
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.controls)
}
