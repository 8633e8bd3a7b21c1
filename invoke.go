// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import (
	"sync"
	"time"

	"github.com/wuc656/walkctl/native"
)

type invocation struct {
	fn      func()
	target  native.Handle
	done    chan struct{}
	dropped bool
}

// invocationTable holds invocations that were posted but have not started.
// Whoever takes an entry out of the table owns it: the UI thread to run it,
// or a timed-out caller to withdraw it.
type invocationTable struct {
	mu      sync.Mutex
	next    uintptr
	pending map[uintptr]*invocation
}

func (t *invocationTable) add(inv *invocation) uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.pending[t.next] = inv
	return t.next
}

func (t *invocationTable) take(id uintptr) *invocation {
	t.mu.Lock()
	defer t.mu.Unlock()
	inv := t.pending[id]
	delete(t.pending, id)
	return inv
}

// dropTarget removes the invocations posted to h. Synchronous callers still
// waiting on one of them are released.
func (t *invocationTable) dropTarget(h native.Handle) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for id, inv := range t.pending {
		if inv.target != h {
			continue
		}
		delete(t.pending, id)
		inv.dropped = true
		close(inv.done)
		n++
	}
	return n
}

func (t *invocationTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// Invoke runs fn on the thread owning the control. It may be called from
// any goroutine.
//
// An asynchronous invoke posts fn and returns immediately. A synchronous
// invoke waits until fn has run, for at most the configured invoke timeout;
// on timeout an invocation that has not started is withdrawn and never runs,
// and ErrInvokeTimeout is returned. Called synchronously on the owning
// thread, fn runs inline.
//
// Invoke returns ErrDetached if the control has no native window, or if the
// window is destroyed before a synchronous fn got to run. Asynchronous
// invocations still pending when the window goes away are discarded.
func (cb *ControlBase) Invoke(fn func(), synchronous bool) error {
	h := native.Handle(cb.target.Load())
	if h == 0 {
		return ErrDetached
	}
	app := cb.app

	if synchronous && app.IsUIThread() {
		fn()
		return nil
	}

	inv := &invocation{fn: fn, target: h, done: make(chan struct{})}
	id := app.invocations.add(inv)
	if err := app.native.PostMessage(h, app.invokeMsg, id, 0); err != nil {
		if app.invocations.take(id) == nil {
			// The window went away between add and post.
			return ErrDetached
		}
		return newNativeError("Invoke", err)
	}
	if !synchronous {
		return nil
	}

	timeout := app.settings.invokeTimeout()
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-inv.done:
		if inv.dropped {
			return ErrDetached
		}
		return nil
	case <-timer.C:
	}

	if app.invocations.take(id) != nil {
		app.log.Debug("invoke timed out before it started", "hwnd", uintptr(h), "timeout", timeout)
	} else {
		app.log.Debug("invoke timed out while running", "hwnd", uintptr(h), "timeout", timeout)
	}
	return ErrInvokeTimeout
}

func (app *Application) runInvocation(id uintptr) {
	inv := app.invocations.take(id)
	if inv == nil {
		// Withdrawn by a caller that timed out.
		return
	}
	defer close(inv.done)
	inv.fn()
}

// PendingInvocations returns the number of posted invocations that have
// neither run nor been withdrawn.
func (app *Application) PendingInvocations() int {
	return app.invocations.len()
}
