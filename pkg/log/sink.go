// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// now and isTerminal are indirections for tests.
var (
	now = time.Now

	isTerminal = func(fd uintptr) bool {
		return term.IsTerminal(int(fd))
	}
)

// colorEligible decides, once per configuration, whether ANSI colors may
// be used. A nonempty NO_COLOR environment variable always withholds
// them. Under ColorAlwaysCheckStdout eligibility follows os.Stdout being
// a terminal regardless of the destination; under ColorCheckOutputStream
// it follows the destination itself, where a custom sink qualifies only
// when it is an *os.File attached to a terminal.
func colorEligible(policy ColorPolicy, stream Stream, sink io.Writer) bool {
	if v := os.Getenv("NO_COLOR"); v != "" {
		return false
	}
	if policy == ColorAlwaysCheckStdout {
		return isTerminal(os.Stdout.Fd())
	}
	if sink != nil {
		if f, ok := sink.(*os.File); ok {
			return isTerminal(f.Fd())
		}
		return false
	}
	return isTerminal(stream.file().Fd())
}

// output resolves the destination of the next write. Standard streams are
// resolved late so that redirections of os.Stdout and os.Stderr take
// effect.
func (c *config) output() io.Writer {
	if c.sink != nil {
		return c.sink
	}
	return c.stream.file()
}

// emit completes and dispatches the record: the zero time is resolved,
// the goroutine name is attached when thread names are enabled, and the
// rendered line leaves in a single write, newline included. Write errors
// are swallowed; they never reach the caller. The returned error reports
// hook failures only.
func (c *config) emit(r Record) error {
	if r.Time.IsZero() {
		r.Time = now()
	}
	if !c.threads {
		r.Goroutine = ""
	} else if r.Goroutine == "" {
		r.Goroutine = goroutineName(c.goroutineIDs)
	}
	_, _ = c.output().Write(c.fmt.render(r))

	if err := c.levelHooks.fire(r.Level); err != nil {
		return fmt.Errorf("log %s: failed to fire hooks: %w", r.Level, err)
	}
	return nil
}
