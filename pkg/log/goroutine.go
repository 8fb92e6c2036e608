// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// goroutineNames maps goroutine ids to names bound with SetGoroutineName.
var goroutineNames sync.Map

// mainGoroutineID is captured during package initialization, which the
// runtime performs on the main goroutine.
var mainGoroutineID = goroutineID()

// SetGoroutineName binds the given name to the calling goroutine. Emitted
// lines carry the name when thread names are enabled. The binding is not
// inherited by goroutines started later and should be removed with
// UnsetGoroutineName before the goroutine exits, since ids are recycled.
func SetGoroutineName(name string) {
	goroutineNames.Store(goroutineID(), name)
}

// UnsetGoroutineName removes the calling goroutine's name binding.
func UnsetGoroutineName() {
	goroutineNames.Delete(goroutineID())
}

// goroutineName resolves the display name of the calling goroutine: the
// bound name when present, "main" for the main goroutine, the decimal id
// when fallbackID is set, otherwise the empty string.
func goroutineName(fallbackID bool) string {
	id := goroutineID()
	if name, ok := goroutineNames.Load(id); ok {
		return name.(string)
	}
	if id == mainGoroutineID {
		return "main"
	}
	if fallbackID {
		return strconv.FormatUint(id, 10)
	}
	return ""
}

// stackBuf pools the small buffers goroutineID hands to runtime.Stack.
var stackBuf = sync.Pool{
	New: func() any {
		buf := make([]byte, 64)
		return &buf
	},
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID returns the id of the calling goroutine as reported at the
// start of runtime stack traces.
func goroutineID() uint64 {
	bp := stackBuf.Get().(*[]byte)
	defer stackBuf.Put(bp)

	// The first stack trace line reads "goroutine 123 [running]:".
	b := (*bp)[:runtime.Stack(*bp, false)]
	b = bytes.TrimPrefix(b, goroutinePrefix)
	i := bytes.IndexByte(b, ' ')
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(b[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
