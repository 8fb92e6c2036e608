// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"sort"
	"strings"
)

// moduleLevel binds a severity threshold to a target and its subtree.
type moduleLevel struct {
	target string
	level  Level
}

// compileModuleLevels prepares builder supplied overrides for lookup:
// duplicate targets collapse to the last written threshold and the result
// is ordered most specific (longest target) first, so a linear scan stops
// at the winning override.
func compileModuleLevels(entries []moduleLevel) []moduleLevel {
	if len(entries) == 0 {
		return nil
	}
	last := make(map[string]Level, len(entries))
	for _, e := range entries {
		last[e.target] = e.level
	}
	compiled := make([]moduleLevel, 0, len(last))
	for target, level := range last {
		compiled = append(compiled, moduleLevel{target: target, level: level})
	}
	sort.Slice(compiled, func(i, j int) bool {
		if len(compiled[i].target) != len(compiled[j].target) {
			return len(compiled[i].target) > len(compiled[j].target)
		}
		return compiled[i].target < compiled[j].target
	})
	return compiled
}

// covers reports whether the override target covers the record target,
// that is, whether both are equal or the record target is nested under
// the override in the dot separated hierarchy. A target like "a" covers
// "a" and "a.b" but not "ab".
func (ml moduleLevel) covers(target string) bool {
	if !strings.HasPrefix(target, ml.target) {
		return false
	}
	return len(target) == len(ml.target) || target[len(ml.target)] == '.'
}

// threshold resolves the severity threshold of the given target: the most
// specific covering override wins, the global threshold is the fallback.
func (c *config) threshold(target string) Level {
	for _, ml := range c.moduleLevels {
		if ml.covers(target) {
			return ml.level
		}
	}
	return c.level
}

// enabled reports whether a record with the given target and level passes
// the configured thresholds.
func (c *config) enabled(target string, level Level) bool {
	return level.enabled(c.threshold(target))
}
