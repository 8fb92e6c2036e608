// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log_test

import (
	"github.com/ethersphere/simplelog/pkg/log"
)

func Example() {
	logger := log.New().
		WithTimestamps(false).
		Build().
		WithName("logging_example")

	logger.Warning("This is an example message.")

	//Output: WARN [logging_example] This is an example message.
}

func ExampleBuilder_WithLevel() {
	logger := log.New().
		WithTimestamps(false).
		WithLevel(log.LevelWarn).
		Build().
		WithName("api")

	logger.Info("too verbose for the threshold")
	logger.Warning("passes the threshold")

	//Output: WARN [api] passes the threshold
}

func ExampleBuilder_WithModuleLevel() {
	logger := log.New().
		WithTimestamps(false).
		WithLevel(log.LevelWarn).
		WithModuleLevel("api", log.LevelDebug).
		Build()

	logger.WithName("api").Debug("the api subtree is chatty")
	logger.WithName("storage").Debug("everything else is not")
	logger.WithName("storage").Error("unless it matters")

	// Output:
	// DEBUG [api] the api subtree is chatty
	// ERROR [storage] unless it matters
}

func ExampleSetGoroutineName() {
	log.SetGoroutineName("worker-1")
	defer log.UnsetGoroutineName()

	logger := log.New().
		WithTimestamps(false).
		WithThreads(true).
		Build().
		WithName("pipeline")

	logger.Info("shard uploaded")

	//Output: INFO [worker-1] [pipeline] shard uploaded
}
