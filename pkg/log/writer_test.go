// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log_test

import (
	"bytes"
	"fmt"
	stdlog "log"
	"testing"

	"github.com/ethersphere/simplelog/pkg/log"
)

func TestWriterLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New().
		WithColors(false).
		WithTimestamps(false).
		WithLevel(log.LevelInfo).
		WithSink(&buf).
		Build().
		WithName("bridge")

	testCases := []struct {
		name  string
		level log.Level
		write string
		want  string
	}{
		{
			name:  "plain line",
			level: log.LevelInfo,
			write: "hello\n",
			want:  "INFO [bridge] hello\n",
		},
		{
			name:  "missing newline is supplied",
			level: log.LevelInfo,
			write: "hello",
			want:  "INFO [bridge] hello\n",
		},
		{
			name:  "interior newlines make one record",
			level: log.LevelWarn,
			write: "first\nsecond\n",
			want:  "WARN [bridge] first\nsecond\n",
		},
		{
			name:  "filtered level drops the line",
			level: log.LevelDebug,
			write: "hidden\n",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			w := logger.WriterLevel(tc.level)
			n, err := w.Write([]byte(tc.write))
			if err != nil {
				t.Fatalf("Write: unexpected error %v", err)
			}
			if n != len(tc.write) {
				t.Errorf("Write: want %d bytes reported, have %d", len(tc.write), n)
			}
			if have := buf.String(); have != tc.want {
				t.Errorf("bridged line:\n\twant %q\n\thave %q", tc.want, have)
			}
		})
	}
}

func TestWriterLevelAsFprintTarget(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New().
		WithColors(false).
		WithTimestamps(false).
		WithSink(&buf).
		Build()

	fmt.Fprintf(logger.WriterLevel(log.LevelError), "%d misplaced shards\n", 3)

	want := "ERROR 3 misplaced shards\n"
	if have := buf.String(); have != want {
		t.Errorf("fprintf through writer: want %q, have %q", want, have)
	}
}

func TestRedirectStdLog(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New().
		WithColors(false).
		WithTimestamps(false).
		WithSink(&buf).
		Build().
		WithName("stdlib")

	wantFlags := stdlog.Flags()
	wantPrefix := stdlog.Prefix()

	restore := log.RedirectStdLog(logger)

	stdlog.Print("routed through the logger")
	if want, have := "INFO [stdlib] routed through the logger\n", buf.String(); have != want {
		t.Errorf("redirected line: want %q, have %q", want, have)
	}
	if stdlog.Flags() != 0 {
		t.Errorf("flags while redirected: want 0, have %d", stdlog.Flags())
	}
	if stdlog.Prefix() != "" {
		t.Errorf("prefix while redirected: want empty, have %q", stdlog.Prefix())
	}

	restore()

	buf.Reset()
	var after bytes.Buffer
	prev := stdlog.Writer()
	stdlog.SetOutput(&after)
	t.Cleanup(func() { stdlog.SetOutput(prev) })

	stdlog.Print("back on the standard writer")
	if have := buf.String(); have != "" {
		t.Errorf("logger sink received %q after restore", have)
	}
	if after.Len() == 0 {
		t.Error("standard writer received nothing after restore")
	}
	if stdlog.Flags() != wantFlags {
		t.Errorf("flags after restore: want %d, have %d", wantFlags, stdlog.Flags())
	}
	if stdlog.Prefix() != wantPrefix {
		t.Errorf("prefix after restore: want %q, have %q", wantPrefix, stdlog.Prefix())
	}
}
