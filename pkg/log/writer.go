// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	stdlog "log"
)

// RedirectStdLog routes the standard library's global logger through the
// given logger at info severity, with the standard prefix and flags
// cleared so lines are not stamped twice. It returns a function that
// restores the previous state.
func RedirectStdLog(l Logger) func() {
	flags := stdlog.Flags()
	prefix := stdlog.Prefix()
	writer := stdlog.Writer()

	stdlog.SetFlags(0)
	stdlog.SetPrefix("")
	stdlog.SetOutput(l.WriterLevel(LevelInfo))

	return func() {
		stdlog.SetFlags(flags)
		stdlog.SetPrefix(prefix)
		stdlog.SetOutput(writer)
	}
}
