// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Logger provides a set of methods that define the behavior of the logger.
type Logger interface {
	// Tracef formats and logs a message at trace severity.
	Tracef(format string, args ...any)

	// Trace logs the concatenation of the given arguments at trace severity.
	Trace(args ...any)

	// Debugf formats and logs a message at debug severity.
	Debugf(format string, args ...any)

	// Debug logs the concatenation of the given arguments at debug severity.
	Debug(args ...any)

	// Infof formats and logs a message at info severity.
	Infof(format string, args ...any)

	// Info logs the concatenation of the given arguments at info severity.
	Info(args ...any)

	// Warningf formats and logs a message at warn severity.
	Warningf(format string, args ...any)

	// Warning logs the concatenation of the given arguments at warn severity.
	Warning(args ...any)

	// Errorf formats and logs a message at error severity.
	Errorf(format string, args ...any)

	// Error logs the concatenation of the given arguments at error severity.
	Error(args ...any)

	// WithName returns a logger whose record target is extended with the
	// given name element. Successive calls append further elements, joined
	// by the "." hierarchy separator. The configuration is shared with the
	// parent and remains frozen.
	WithName(name string) Logger

	// Log emits the given record subject to the configured thresholds.
	// A zero record time is resolved to the current time and an empty
	// target falls back to the logger's own name.
	Log(r Record)

	// Enabled reports whether a record at the given level would be
	// emitted by this logger.
	Enabled(level Level) bool

	// MaxLevel returns the most verbose level that any target can have
	// enabled under the current configuration.
	MaxLevel() Level

	// WriterLevel returns an io.Writer that emits every written line as
	// a record at the given level. The trailing newline of each write is
	// stripped; everything else passes through verbatim.
	WriterLevel(level Level) io.Writer
}

// Record is a single event on its way to the sink. Records are ephemeral;
// they are assembled per call and not retained after emission.
type Record struct {
	// Time is the event time. The zero value is resolved
	// to the current time during emission.
	Time time.Time

	// Level is the severity of the event.
	Level Level

	// Target is the dot separated module path the event is attributed to.
	// An empty target is rendered without a bracket pair.
	Target string

	// Goroutine is the name attributed to the emitting goroutine. It is
	// rendered only when the configuration has thread names enabled; when
	// empty it is resolved from the goroutine name registry.
	Goroutine string

	// Message is the payload, rendered verbatim. It is never truncated,
	// escaped or rewritten.
	Message string
}

// Hook that is fired when logging
// on the associated severity log level.
// Note, the call must be non-blocking.
type Hook interface {
	Fire(Level) error
}

// levelHooks is a helper type for storing and
// help triggering the hooks on a logger instance.
type levelHooks map[Level][]Hook

// fire triggers all the hooks for the given level.
// All hooks are fired; their failures are aggregated.
func (lh levelHooks) fire(level Level) error {
	var merr *multierror.Error
	for _, hook := range lh[level] {
		if err := hook.Fire(level); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}

// clone returns a deep copy of the hook registrations.
func (lh levelHooks) clone() levelHooks {
	if lh == nil {
		return nil
	}
	cp := make(levelHooks, len(lh))
	for l, hooks := range lh {
		cp[l] = append([]Hook(nil), hooks...)
	}
	return cp
}

// Stream selects one of the standard process output streams. The stream is
// resolved to the current os.Stdout or os.Stderr on every write.
type Stream int

const (
	// StreamStdout routes emitted lines to the standard output.
	StreamStdout Stream = iota
	// StreamStderr routes emitted lines to the standard error.
	StreamStderr
)

// file returns the *os.File currently backing the stream.
func (s Stream) file() *os.File {
	if s == StreamStderr {
		return os.Stderr
	}
	return os.Stdout
}

// ColorPolicy decides which stream's terminal capability gates the use of
// ANSI colors.
type ColorPolicy int

const (
	// ColorAlwaysCheckStdout gates colors on os.Stdout being a terminal,
	// no matter where the lines are written. This asymmetry is the
	// historical behavior and remains the default for compatibility.
	ColorAlwaysCheckStdout ColorPolicy = iota

	// ColorCheckOutputStream gates colors on the stream the lines are
	// actually written to.
	ColorCheckOutputStream
)
