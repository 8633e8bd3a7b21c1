// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

type listenerEntry[E any] struct {
	fn   func(E)
	once bool
}

// Listener is an ordered list of callbacks for one kind of event. Callbacks
// run in the order they were attached. Slots freed by Detach are never
// reused, so a late subscriber always runs after earlier ones.
type Listener[E any] struct {
	entries []*listenerEntry[E]
	live    int
}

// Attach adds fn and returns a handle for Detach.
func (l *Listener[E]) Attach(fn func(E)) int {
	l.entries = append(l.entries, &listenerEntry[E]{fn: fn})
	l.live++
	return len(l.entries) - 1
}

// Once attaches fn for a single delivery.
func (l *Listener[E]) Once(fn func(E)) int {
	l.entries = append(l.entries, &listenerEntry[E]{fn: fn, once: true})
	l.live++
	return len(l.entries) - 1
}

func (l *Listener[E]) Detach(handle int) {
	if handle < 0 || handle >= len(l.entries) || l.entries[handle] == nil {
		return
	}
	l.entries[handle] = nil
	l.live--
}

// Attached reports whether at least one callback is attached.
func (l *Listener[E]) Attached() bool {
	return l.live > 0
}

// publish runs the callbacks attached before the call started.
func (l *Listener[E]) publish(e E) {
	n := len(l.entries)
	for i := 0; i < n; i++ {
		entry := l.entries[i]
		if entry == nil {
			continue
		}
		if entry.once {
			l.entries[i] = nil
			l.live--
		}
		entry.fn(e)
	}
}
