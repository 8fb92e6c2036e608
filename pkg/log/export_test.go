// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import "time"

// SetNowFunc replaces the clock used during emission and returns a
// function restoring the previous one.
func SetNowFunc(f func() time.Time) (restore func()) {
	prev := now
	now = f
	return func() { now = prev }
}

// SetIsTerminalFunc replaces terminal detection and returns a function
// restoring the previous one.
func SetIsTerminalFunc(f func(fd uintptr) bool) (restore func()) {
	prev := isTerminal
	isTerminal = f
	return func() { isTerminal = prev }
}

// ResetRegistry clears the process wide logger registration so tests can
// exercise Init repeatedly.
func ResetRegistry() {
	mu.Lock()
	defer mu.Unlock()
	global = nil
	globalMax.Store(int32(LevelOff))
}
