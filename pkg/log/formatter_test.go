// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var renderTestTime = time.Date(2022, 1, 19, 17, 27, 7, 13874956, time.UTC)

func TestRender(t *testing.T) {
	testCases := []struct {
		name   string
		opts   fmtOptions
		record Record
		want   string
	}{{
		name: "default line",
		opts: fmtOptions{timestamps: true},
		record: Record{
			Time:    renderTestTime,
			Level:   LevelWarn,
			Target:  "logging_example",
			Message: "This is an example message.",
		},
		want: "2022-01-19T17:27:07.013874956Z WARN [logging_example] This is an example message.\n",
	}, {
		name: "goroutine name",
		opts: fmtOptions{timestamps: true},
		record: Record{
			Time:      renderTestTime,
			Level:     LevelWarn,
			Target:    "logging_example",
			Goroutine: "main",
			Message:   "This is an example message.",
		},
		want: "2022-01-19T17:27:07.013874956Z WARN [main] [logging_example] This is an example message.\n",
	}, {
		name: "timestamps disabled",
		opts: fmtOptions{},
		record: Record{
			Time:    renderTestTime,
			Level:   LevelWarn,
			Target:  "logging_example",
			Message: "This is an example message.",
		},
		want: "WARN [logging_example] This is an example message.\n",
	}, {
		name: "empty target",
		opts: fmtOptions{timestamps: true},
		record: Record{
			Time:    renderTestTime,
			Level:   LevelWarn,
			Message: "This is an example message.",
		},
		want: "2022-01-19T17:27:07.013874956Z WARN This is an example message.\n",
	}, {
		name: "empty target and no timestamps",
		opts: fmtOptions{},
		record: Record{
			Time:    renderTestTime,
			Level:   LevelInfo,
			Message: "ready",
		},
		want: "INFO ready\n",
	}, {
		name: "empty message keeps separator",
		opts: fmtOptions{},
		record: Record{
			Time:   renderTestTime,
			Level:  LevelInfo,
			Target: "api",
		},
		want: "INFO [api] \n",
	}, {
		name: "message newlines pass through",
		opts: fmtOptions{},
		record: Record{
			Time:    renderTestTime,
			Level:   LevelError,
			Target:  "api",
			Message: "first line\nsecond line\ttabbed",
		},
		want: "ERROR [api] first line\nsecond line\ttabbed\n",
	}, {
		name: "custom layout",
		opts: fmtOptions{timestamps: true, timestampLayout: "15:04:05"},
		record: Record{
			Time:    renderTestTime,
			Level:   LevelDebug,
			Target:  "api",
			Message: "tick",
		},
		want: "17:27:07 DEBUG [api] tick\n",
	}, {
		name: "fixed zone offset",
		opts: fmtOptions{timestamps: true, location: time.FixedZone("", 2*60*60)},
		record: Record{
			Time:    renderTestTime,
			Level:   LevelWarn,
			Target:  "api",
			Message: "late",
		},
		want: "2022-01-19T19:27:07.013874956+02:00 WARN [api] late\n",
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFormatter(tc.opts)
			have := string(f.render(tc.record))
			if have != tc.want {
				t.Errorf("render(...):\n\twant %q\n\thave %q", tc.want, have)
			}
		})
	}
}

func TestRenderColorWrapping(t *testing.T) {
	testCases := []struct {
		level Level
		color string
	}{
		{level: LevelError, color: ansiRed},
		{level: LevelWarn, color: ansiYellow},
		{level: LevelInfo, color: ansiGreen},
		{level: LevelDebug, color: ansiCyan},
	}

	for _, tc := range testCases {
		t.Run(tc.level.String(), func(t *testing.T) {
			f := newFormatter(fmtOptions{colored: true})
			have := string(f.render(Record{Level: tc.level, Target: "api", Message: "colored"}))
			want := tc.color + tc.level.String() + ansiReset + " [api] colored\n"
			if have != want {
				t.Errorf("render(...):\n\twant %q\n\thave %q", want, have)
			}
			// The label is the only colored substring.
			if n := strings.Count(have, "\x1b["); n != 2 {
				t.Errorf("want exactly 2 escape sequences, have %d in %q", n, have)
			}
		})
	}

	t.Run("TRACE stays plain", func(t *testing.T) {
		f := newFormatter(fmtOptions{colored: true})
		have := string(f.render(Record{Level: LevelTrace, Target: "api", Message: "plain"}))
		want := "TRACE [api] plain\n"
		if have != want {
			t.Errorf("render(...):\n\twant %q\n\thave %q", want, have)
		}
	})

	t.Run("colors disabled", func(t *testing.T) {
		f := newFormatter(fmtOptions{colored: false})
		have := string(f.render(Record{Level: LevelError, Target: "api", Message: "plain"}))
		if strings.Contains(have, "\x1b[") {
			t.Errorf("want no escape sequences, have %q", have)
		}
	})
}

func TestRenderIdempotent(t *testing.T) {
	f := newFormatter(fmtOptions{timestamps: true, colored: true})
	r := Record{
		Time:      renderTestTime,
		Level:     LevelWarn,
		Target:    "logging_example",
		Goroutine: "main",
		Message:   "This is an example message.",
	}

	first := f.render(r)
	second := f.render(r)
	if !bytes.Equal(first, second) {
		t.Errorf("render(...) is not idempotent:\n\tfirst  %q\n\tsecond %q", first, second)
	}
}
