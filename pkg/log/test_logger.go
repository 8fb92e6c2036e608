// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"strings"
	"testing"
)

// NewTestLogger returns a logger used for testing.
// This logger uses t.Log as sink for log outputs.
func NewTestLogger(t *testing.T) Logger {
	t.Helper()

	return New().
		WithTimestamps(false).
		WithColors(false).
		WithSink(&testWriter{t: t}).
		Build().
		WithName(t.Name())
}

type testWriter struct {
	t *testing.T
}

func (tw *testWriter) Write(p []byte) (n int, err error) {
	tw.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
