// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplelog

var (
	version    = "1.0.0" // manually set semantic version number
	commitHash string    // automatically set git commit hash

	// Version is the full version string reported by the library
	// and the demo command.
	Version = func() string {
		if commitHash != "" {
			return version + "-" + commitHash
		}
		return version + "-dev"
	}()
)
