// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"io"
	"sync"

	"go.uber.org/atomic"
)

// ErrAlreadyInitialized is returned when a second logger is registered as
// the process wide logger. The first registration stays in effect.
var ErrAlreadyInitialized = errors.New("logger already initialized")

var (
	mu     sync.RWMutex
	global *logger

	// globalMax caches the registered logger's MaxLevel so that the
	// package level helpers can skip disabled calls without taking the
	// lock. It stays at LevelOff until a logger is registered.
	globalMax = atomic.NewInt32(int32(LevelOff))
)

// Init builds the configuration and registers the result as the process
// wide logger used by the package level logging functions. Only one
// registration is possible; any further attempt fails with
// ErrAlreadyInitialized and leaves the registered logger untouched.
// When colors are enabled the console is prepared as with
// SetUpColorTerminal.
func (b Builder) Init() (Logger, error) {
	l := &logger{config: newConfig(b)}

	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		return nil, ErrAlreadyInitialized
	}
	global = l
	globalMax.Store(int32(l.maxLevel))

	if b.colors {
		SetUpColorTerminal()
	}
	return l, nil
}

// Init registers a logger with the default configuration.
func Init() (Logger, error) {
	return New().Init()
}

// InitWithEnv registers a logger with the default configuration after
// consulting the LOG_LEVEL environment variable for the global threshold.
func InitWithEnv() (Logger, error) {
	return New().Env().Init()
}

// InitWithLevel registers a logger with the given global threshold.
func InitWithLevel(level Level) (Logger, error) {
	return New().WithLevel(level).Init()
}

// InitWithLevelAndTargets registers a logger that emits records at the
// given level only for the listed targets and their subtrees; everything
// else is silenced.
func InitWithLevelAndTargets(level Level, targets ...string) (Logger, error) {
	b := New().WithLevel(LevelOff)
	for _, target := range targets {
		b = b.WithModuleLevel(target, level)
	}
	return b.Init()
}

// MaxLevel returns the most verbose level the registered logger can emit,
// or LevelOff when no logger is registered. It is safe to call from the
// hot path of a logging facade.
func MaxLevel() Level {
	return Level(globalMax.Load())
}

// Enabled reports whether the registered logger would emit a record with
// the given target and level.
func Enabled(target string, level Level) bool {
	if !level.enabled(MaxLevel()) {
		return false
	}
	l := registered()
	if l == nil {
		return false
	}
	return l.config.enabled(target, level)
}

// WithName returns a logger derived from the registered one with the
// given record target. Before registration it returns an inert logger
// that discards everything.
func WithName(name string) Logger {
	l := registered()
	if l == nil {
		return nopLogger{}
	}
	return l.WithName(name)
}

// registered returns the process wide logger, or nil before Init.
func registered() *logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// globalLogf routes the package level formatting functions through the
// registered logger. Calls before registration are discarded.
func globalLogf(level Level, format string, args ...any) {
	if !level.enabled(MaxLevel()) {
		return
	}
	if l := registered(); l != nil {
		l.logf(level, format, args...)
	}
}

// globalLog is the concatenating counterpart of globalLogf.
func globalLog(level Level, args ...any) {
	if !level.enabled(MaxLevel()) {
		return
	}
	if l := registered(); l != nil {
		l.log(level, args...)
	}
}

// Tracef formats and logs a message at trace severity
// through the registered logger.
func Tracef(format string, args ...any) { globalLogf(LevelTrace, format, args...) }

// Trace logs the concatenation of the given arguments at trace severity
// through the registered logger.
func Trace(args ...any) { globalLog(LevelTrace, args...) }

// Debugf formats and logs a message at debug severity
// through the registered logger.
func Debugf(format string, args ...any) { globalLogf(LevelDebug, format, args...) }

// Debug logs the concatenation of the given arguments at debug severity
// through the registered logger.
func Debug(args ...any) { globalLog(LevelDebug, args...) }

// Infof formats and logs a message at info severity
// through the registered logger.
func Infof(format string, args ...any) { globalLogf(LevelInfo, format, args...) }

// Info logs the concatenation of the given arguments at info severity
// through the registered logger.
func Info(args ...any) { globalLog(LevelInfo, args...) }

// Warningf formats and logs a message at warn severity
// through the registered logger.
func Warningf(format string, args ...any) { globalLogf(LevelWarn, format, args...) }

// Warning logs the concatenation of the given arguments at warn severity
// through the registered logger.
func Warning(args ...any) { globalLog(LevelWarn, args...) }

// Errorf formats and logs a message at error severity
// through the registered logger.
func Errorf(format string, args ...any) { globalLogf(LevelError, format, args...) }

// Error logs the concatenation of the given arguments at error severity
// through the registered logger.
func Error(args ...any) { globalLog(LevelError, args...) }

var _ Logger = nopLogger{}

// nopLogger keeps callers of WithName operational before registration.
type nopLogger struct{}

func (nopLogger) Tracef(string, ...any) {}

func (nopLogger) Trace(...any) {}

func (nopLogger) Debugf(string, ...any) {}

func (nopLogger) Debug(...any) {}

func (nopLogger) Infof(string, ...any) {}

func (nopLogger) Info(...any) {}

func (nopLogger) Warningf(string, ...any) {}

func (nopLogger) Warning(...any) {}

func (nopLogger) Errorf(string, ...any) {}

func (nopLogger) Error(...any) {}

func (n nopLogger) WithName(string) Logger { return n }

func (nopLogger) Log(Record) {}

func (nopLogger) Enabled(Level) bool { return false }

func (nopLogger) MaxLevel() Level { return LevelOff }

func (nopLogger) WriterLevel(Level) io.Writer { return io.Discard }
