// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows
// +build !windows

package log

// SetUpColorTerminal prepares the attached console for ANSI escape
// sequences. It is a no-op on platforms whose terminals support them
// natively.
func SetUpColorTerminal() {}
