// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"time"
)

// ANSI escape sequences wrapping level labels when colors are in effect.
const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// color returns the ANSI sequence of the level label, or the empty string
// for levels that stay uncolored.
func (l Level) color() string {
	switch l {
	case LevelError:
		return ansiRed
	case LevelWarn:
		return ansiYellow
	case LevelInfo:
		return ansiGreen
	case LevelDebug:
		return ansiCyan
	}
	return ""
}

// fmtOptions carry the rendering half of a frozen configuration.
type fmtOptions struct {
	timestamps      bool
	timestampLayout string
	location        *time.Location
	colored         bool
}

// formatter renders records into their line representation.
type formatter struct {
	opts fmtOptions
}

// newFormatter returns a new formatter with the given options.
func newFormatter(opts fmtOptions) *formatter {
	if opts.timestampLayout == "" {
		opts.timestampLayout = DefaultTimestampLayout
	}
	if opts.location == nil {
		opts.location = time.UTC
	}
	return &formatter{opts: opts}
}

// render produces the line for the given record, trailing newline
// included. The grammar is
//
//	[<timestamp>] <LEVEL> [<goroutine-name>] [<target>] <message>
//
// with single spaces between components; absent optional components are
// dropped together with their separator, so no double spaces appear. The
// same record always renders to the same line. The message is appended
// verbatim, even when empty.
func (f *formatter) render(r Record) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, 64+len(r.Target)+len(r.Message)))
	if f.opts.timestamps {
		buf.WriteString(r.Time.In(f.opts.location).Format(f.opts.timestampLayout))
		buf.WriteByte(' ')
	}
	if c := r.Level.color(); f.opts.colored && c != "" {
		buf.WriteString(c)
		buf.WriteString(r.Level.String())
		buf.WriteString(ansiReset)
	} else {
		buf.WriteString(r.Level.String())
	}
	if r.Goroutine != "" {
		buf.WriteString(" [")
		buf.WriteString(r.Goroutine)
		buf.WriteByte(']')
	}
	if r.Target != "" {
		buf.WriteString(" [")
		buf.WriteString(r.Target)
		buf.WriteByte(']')
	}
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	buf.WriteByte('\n')
	return buf.Bytes()
}
