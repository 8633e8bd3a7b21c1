// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package native

import "golang.org/x/sys/unix"

// AffinityChecked reports whether CurrentThreadID identifies OS threads on
// this platform.
const AffinityChecked = true

// CurrentThreadID returns the id of the calling OS thread. Callers that
// depend on it must have locked their goroutine to the thread.
func CurrentThreadID() uint32 {
	return uint32(unix.Gettid())
}
