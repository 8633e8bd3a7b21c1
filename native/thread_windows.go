// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package native

import "golang.org/x/sys/windows"

const AffinityChecked = true

func CurrentThreadID() uint32 {
	return windows.GetCurrentThreadId()
}
