// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoMoreMessages is returned by Application.AllocMessage when its
	// supply of message ids has been exhausted.
	ErrNoMoreMessages = errors.New("message numbering space exhausted")

	// ErrParentingCycle is returned when a reparent would make a control
	// its own ancestor.
	ErrParentingCycle = errors.New("reparenting would create a cycle")

	// ErrInvokeTimeout is returned by a synchronous Invoke that the owning
	// thread did not run in time.
	ErrInvokeTimeout = errors.New("invoke timed out")

	// ErrDetached is returned by Invoke on a control without a native
	// handle.
	ErrDetached = errors.New("control has no native handle")

	// ErrRejected is wrapped in a NativeError when the native control
	// refuses to insert an item.
	ErrRejected = errors.New("native control rejected the request")
)

// PreconditionError reports a programming error such as use of a detached
// handle, a call from the wrong thread or an out-of-range index. It is
// always raised with panic.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("walkctl: %s: %s", e.Op, e.Reason)
}

func precondition(op, format string, args ...any) {
	panic(&PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)})
}

// NativeError wraps a failure reported by the native layer.
type NativeError struct {
	Op  string
	Err error
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("walkctl: %s: %v", e.Op, e.Err)
}

func (e *NativeError) Unwrap() error {
	return e.Err
}

func newNativeError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &NativeError{Op: op, Err: err}
}

// ListenerPanicError carries a panic recovered at a native callback
// boundary together with the panicking stack.
type ListenerPanicError struct {
	Message uint32
	Value   any
	Stack   []byte
}

func (e *ListenerPanicError) Error() string {
	var msg string
	switch v := e.Value.(type) {
	case string:
		msg = v
	case error:
		msg = v.Error()
	case fmt.Stringer:
		msg = v.String()
	default:
		msg = fmt.Sprint(v)
	}

	return strings.Join([]string{fmt.Sprintf("panic while handling message %#x: %s", e.Message, msg), string(e.Stack)}, "\n")
}

func (e *ListenerPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
