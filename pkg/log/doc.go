// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log implements a minimal console logging backend with a fixed,
// human readable line format:
//
//	2022-01-19T17:27:07.013874956Z WARN [logging_example] This is an example message.
//
// A process assembles a configuration with the Builder, freezes it with
// Build or registers it once with Init, and logs through Logger values or
// the package level functions. Emission is synchronous: every record is
// rendered and written to stdout, stderr or a custom sink in a single
// write. There is no buffering, no background delivery and no structured
// output.
//
// Severity thresholds can be overridden per target subtree with
// WithModuleLevel; the most specific override wins. Level labels are
// colored with ANSI sequences when enabled and the gating stream is an
// interactive terminal.
package log
