// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLevel is returned when a level name cannot be parsed.
var ErrInvalidLevel = errors.New("invalid log level")

// Level specifies the severity of a log record. Levels are ordered from
// the least to the most verbose; a record is emitted when its level does
// not exceed the threshold it is checked against.
type Level int32

const (
	// LevelOff is a threshold-only value that silences the logger.
	// No record carries this level.
	LevelOff = Level(iota - 1)
	// LevelError designates very serious error messages.
	LevelError
	// LevelWarn designates hazardous situations.
	LevelWarn
	// LevelInfo designates useful information.
	LevelInfo
	// LevelDebug designates lower priority information.
	LevelDebug
	// LevelTrace designates very low priority, often extremely
	// verbose, information.
	LevelTrace
)

// String implements the fmt.Stringer interface.
// The returned labels are stable and appear verbatim in emitted lines.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "OFF"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	}
	return strconv.FormatInt(int64(l), 10)
}

// enabled reports whether a record at level l passes the given threshold.
func (l Level) enabled(threshold Level) bool {
	return l != LevelOff && l <= threshold
}

// ParseLevel returns the Level named by s. Names are matched case
// insensitively; the numeric verbosity digits 0 (silent) through
// 5 (trace) are accepted as aliases.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "off", "silent", "0":
		return LevelOff, nil
	case "error", "1":
		return LevelError, nil
	case "warn", "warning", "2":
		return LevelWarn, nil
	case "info", "3":
		return LevelInfo, nil
	case "debug", "4":
		return LevelDebug, nil
	case "trace", "5":
		return LevelTrace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
