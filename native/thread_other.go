// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !windows

package native

const AffinityChecked = false

// CurrentThreadID always returns 0 here, which matches the owner recorded
// for every window and so disables affinity checks.
func CurrentThreadID() uint32 {
	return 0
}
