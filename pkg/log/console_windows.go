// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package log

import (
	"os"
	"sync"

	"golang.org/x/sys/windows"
)

var consoleOnce sync.Once

// SetUpColorTerminal enables virtual terminal processing on the console
// attached to stdout, so ANSI color sequences render instead of printing
// as garbage. It runs at most once, does nothing when stdout is not a
// terminal, and is called implicitly by Init when colors are enabled.
// Call it directly only when emitting colored output before Init.
func SetUpColorTerminal() {
	consoleOnce.Do(func() {
		fd := os.Stdout.Fd()
		if !isTerminal(fd) {
			return
		}
		handle := windows.Handle(fd)
		var mode uint32
		if err := windows.GetConsoleMode(handle, &mode); err != nil {
			return
		}
		_ = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	})
}
