// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListener_Order(t *testing.T) {
	var l Listener[int]
	var got []string

	l.Attach(func(int) { got = append(got, "a") })
	b := l.Attach(func(int) { got = append(got, "b") })
	l.Attach(func(int) { got = append(got, "c") })

	l.publish(0)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	got = nil
	l.Detach(b)
	l.Attach(func(int) { got = append(got, "d") })
	l.publish(0)
	assert.Equal(t, []string{"a", "c", "d"}, got, "late subscribers run last")
}

func TestListener_Once(t *testing.T) {
	var l Listener[int]
	var calls int

	l.Once(func(int) { calls++ })
	assert.True(t, l.Attached())

	l.publish(0)
	l.publish(0)
	assert.Equal(t, 1, calls)
	assert.False(t, l.Attached())
}

func TestListener_DetachIsIdempotent(t *testing.T) {
	var l Listener[int]

	h := l.Attach(func(int) {})
	l.Detach(h)
	l.Detach(h)
	l.Detach(-1)
	l.Detach(99)

	assert.False(t, l.Attached())
	assert.NotEqual(t, h, l.Attach(func(int) {}), "handles are never reused")
	assert.True(t, l.Attached())
}

func TestListener_ChangesDuringPublish(t *testing.T) {
	var l Listener[int]
	var got []string

	var late int
	l.Attach(func(int) {
		got = append(got, "first")
		l.Detach(late)
		l.Attach(func(int) { got = append(got, "added") })
	})
	late = l.Attach(func(int) { got = append(got, "detached") })

	l.publish(0)
	assert.Equal(t, []string{"first"}, got, "detached entries are skipped and new ones wait")

	got = nil
	l.publish(0)
	assert.Equal(t, []string{"first", "added"}, got)
}
