// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

var _ Logger = (*logger)(nil)

// logger implements the Logger interface. It is a lightweight view over a
// frozen config; WithName derives further views sharing the same config.
type logger struct {
	// config is the frozen configuration, shared read-only
	// between the root logger and everything derived from it.
	*config

	// name is the record target of this view. The root logger has no
	// name and attributes records to no target.
	name string
}

// Tracef implements the Logger interface Tracef method.
func (l *logger) Tracef(format string, args ...any) {
	l.logf(LevelTrace, format, args...)
}

// Trace implements the Logger interface Trace method.
func (l *logger) Trace(args ...any) {
	l.log(LevelTrace, args...)
}

// Debugf implements the Logger interface Debugf method.
func (l *logger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

// Debug implements the Logger interface Debug method.
func (l *logger) Debug(args ...any) {
	l.log(LevelDebug, args...)
}

// Infof implements the Logger interface Infof method.
func (l *logger) Infof(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

// Info implements the Logger interface Info method.
func (l *logger) Info(args ...any) {
	l.log(LevelInfo, args...)
}

// Warningf implements the Logger interface Warningf method.
func (l *logger) Warningf(format string, args ...any) {
	l.logf(LevelWarn, format, args...)
}

// Warning implements the Logger interface Warning method.
func (l *logger) Warning(args ...any) {
	l.log(LevelWarn, args...)
}

// Errorf implements the Logger interface Errorf method.
func (l *logger) Errorf(format string, args ...any) {
	l.logf(LevelError, format, args...)
}

// Error implements the Logger interface Error method.
func (l *logger) Error(args ...any) {
	l.log(LevelError, args...)
}

// WithName implements the Logger interface WithName method.
func (l *logger) WithName(name string) Logger {
	target := name
	if l.name != "" {
		target = l.name + "." + name
	}
	return &logger{config: l.config, name: target}
}

// Log implements the Logger interface Log method.
func (l *logger) Log(r Record) {
	if r.Target == "" {
		r.Target = l.name
	}
	if !l.config.enabled(r.Target, r.Level) {
		return
	}
	if err := l.config.emit(r); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// Enabled implements the Logger interface Enabled method.
func (l *logger) Enabled(level Level) bool {
	return l.config.enabled(l.name, level)
}

// MaxLevel implements the Logger interface MaxLevel method.
func (l *logger) MaxLevel() Level {
	return l.config.maxLevel
}

// WriterLevel implements the Logger interface WriterLevel method.
func (l *logger) WriterLevel(level Level) io.Writer {
	return &levelWriter{l: l, level: level}
}

// logf renders the format string and emits the result at the given level.
// The render is skipped entirely when the level is filtered out.
func (l *logger) logf(level Level, format string, args ...any) {
	if !l.config.enabled(l.name, level) {
		return
	}
	l.Log(Record{Level: level, Target: l.name, Message: fmt.Sprintf(format, args...)})
}

// log concatenates the arguments and emits the result at the given level.
func (l *logger) log(level Level, args ...any) {
	if !l.config.enabled(l.name, level) {
		return
	}
	l.Log(Record{Level: level, Target: l.name, Message: fmt.Sprint(args...)})
}

// levelWriter adapts a logger to the io.Writer interface at a fixed
// severity, so foreign log producers can write through the sink.
type levelWriter struct {
	l     *logger
	level Level
}

// Write implements the io.Writer interface. Each call emits one record
// carrying the written bytes, trailing newline stripped.
func (w *levelWriter) Write(p []byte) (int, error) {
	msg := bytes.TrimSuffix(p, []byte("\n"))
	w.l.Log(Record{Level: w.level, Message: string(msg)})
	return len(p), nil
}
