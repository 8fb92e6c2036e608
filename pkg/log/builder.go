// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultTimestampLayout renders RFC 3339 timestamps with a fixed width,
// nanosecond precision fraction. UTC times render with a trailing "Z".
const DefaultTimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// envLevelVariable is consulted by the Env builder method.
const envLevelVariable = "LOG_LEVEL"

// Builder assembles the immutable configuration of a logger. Builders are
// plain values; every With method returns an updated copy and leaves the
// receiver untouched, so partially applied builders can be reused and
// shared freely. The zero value is not usable, start from New.
type Builder struct {
	level        Level
	moduleLevels []moduleLevel
	colors       bool
	colorPolicy  ColorPolicy
	timestamps   bool
	tsLayout     string
	tsLocation   *time.Location
	threads      bool
	goroutineIDs bool
	stream       Stream
	sink         io.Writer
	levelHooks   levelHooks
	registerer   prometheus.Registerer
}

// New returns a Builder carrying the default configuration: all levels
// enabled, colors on (subject to terminal detection), UTC timestamps in
// the default layout, thread names off, output to stdout.
func New() Builder {
	return Builder{
		level:      LevelTrace,
		colors:     true,
		timestamps: true,
		tsLayout:   DefaultTimestampLayout,
		tsLocation: time.UTC,
		stream:     StreamStdout,
	}
}

// WithLevel sets the global severity threshold. Records above it are
// dropped unless a module override says otherwise.
func (b Builder) WithLevel(level Level) Builder {
	b.level = level
	return b
}

// WithModuleLevel sets the severity threshold for the given target and
// everything nested under it in the dot separated hierarchy. The most
// specific matching override wins; setting the same target again replaces
// the earlier threshold.
func (b Builder) WithModuleLevel(target string, level Level) Builder {
	ml := make([]moduleLevel, len(b.moduleLevels), len(b.moduleLevels)+1)
	copy(ml, b.moduleLevels)
	b.moduleLevels = append(ml, moduleLevel{target: target, level: level})
	return b
}

// WithColors controls whether level labels are wrapped in ANSI color
// sequences. Colors are still withheld when the gating stream is not an
// interactive terminal, see WithColorPolicy.
func (b Builder) WithColors(enable bool) Builder {
	b.colors = enable
	return b
}

// WithColorPolicy selects which stream's terminal capability gates colors.
// The default is ColorAlwaysCheckStdout.
func (b Builder) WithColorPolicy(policy ColorPolicy) Builder {
	b.colorPolicy = policy
	return b
}

// WithTimestamps controls whether emitted lines start with a timestamp.
func (b Builder) WithTimestamps(enable bool) Builder {
	b.timestamps = enable
	return b
}

// WithTimestampFormat sets the timestamp layout. The layout string follows
// the convention of the time package, see the docs for time.Layout.
func (b Builder) WithTimestampFormat(layout string) Builder {
	b.tsLayout = layout
	return b
}

// WithUTCTimestamps renders timestamps in UTC. This is the default.
func (b Builder) WithUTCTimestamps() Builder {
	b.tsLocation = time.UTC
	return b
}

// WithLocalTimestamps renders timestamps in the local time zone.
func (b Builder) WithLocalTimestamps() Builder {
	b.tsLocation = time.Local
	return b
}

// WithTimestampLocation renders timestamps in the given location. Fixed
// offsets can be expressed with time.FixedZone.
func (b Builder) WithTimestampLocation(loc *time.Location) Builder {
	b.tsLocation = loc
	return b
}

// WithThreads controls whether emitted lines carry the name of the
// emitting goroutine. Names are bound with SetGoroutineName; the main
// goroutine is named "main". Goroutines without a name contribute no
// bracket pair unless WithGoroutineIDs is enabled.
func (b Builder) WithThreads(enable bool) Builder {
	b.threads = enable
	return b
}

// WithGoroutineIDs lets the numeric goroutine id stand in for the name of
// goroutines that have none. It has no effect unless WithThreads is
// enabled.
func (b Builder) WithGoroutineIDs(enable bool) Builder {
	b.goroutineIDs = enable
	return b
}

// WithOutput routes emitted lines to the given standard stream.
func (b Builder) WithOutput(stream Stream) Builder {
	b.stream = stream
	return b
}

// WithSink routes emitted lines to the given writer instead of a standard
// stream. The writer should be safe for concurrent use; the logger issues
// exactly one Write per record and never wraps the writer in a lock.
func (b Builder) WithSink(sink io.Writer) Builder {
	b.sink = sink
	return b
}

// WithLevelHooks registers hooks to fire whenever a record of the given
// severity is written.
func (b Builder) WithLevelHooks(level Level, hooks ...Hook) Builder {
	lh := b.levelHooks.clone()
	if lh == nil {
		lh = make(levelHooks, 1)
	}
	lh[level] = append(lh[level], hooks...)
	b.levelHooks = lh
	return b
}

// WithMetrics registers per severity record counters with the given
// registerer and fires them as level hooks. Registration happens during
// Build and panics, per prometheus convention, when a collector with the
// same name is already registered.
func (b Builder) WithMetrics(registerer prometheus.Registerer) Builder {
	b.registerer = registerer
	return b
}

// Env overrides the global severity threshold from the LOG_LEVEL
// environment variable. Unset or unparsable values keep the current
// threshold.
func (b Builder) Env() Builder {
	if v, ok := os.LookupEnv(envLevelVariable); ok {
		if level, err := ParseLevel(v); err == nil {
			b.level = level
		}
	}
	return b
}

// MaxLevel returns the most verbose severity any target can have enabled
// under the assembled configuration.
func (b Builder) MaxLevel() Level {
	max := b.level
	for _, ml := range b.moduleLevels {
		if ml.level > max {
			max = ml.level
		}
	}
	return max
}

// Build freezes the configuration and returns a ready logger. The logger
// is independent of the builder and of the process wide registration; use
// Init to also register it.
func (b Builder) Build() Logger {
	return &logger{config: newConfig(b)}
}

// config is the frozen product of a Builder. It is immutable after
// newConfig returns and is shared read-only between all loggers derived
// from it.
type config struct {
	level        Level
	moduleLevels []moduleLevel // ordered most specific first
	maxLevel     Level
	colored      bool // colors requested and the gating stream is a terminal
	timestamps   bool
	tsLayout     string
	tsLocation   *time.Location
	threads      bool
	goroutineIDs bool
	stream       Stream
	sink         io.Writer
	levelHooks   levelHooks
	fmt          *formatter
}

// newConfig freezes the given builder: module overrides are deduplicated
// and ordered, color eligibility is evaluated once, and the optional
// metrics hook is registered.
func newConfig(b Builder) *config {
	c := &config{
		level:        b.level,
		moduleLevels: compileModuleLevels(b.moduleLevels),
		maxLevel:     b.MaxLevel(),
		colored:      b.colors && colorEligible(b.colorPolicy, b.stream, b.sink),
		timestamps:   b.timestamps,
		tsLayout:     b.tsLayout,
		tsLocation:   b.tsLocation,
		threads:      b.threads,
		goroutineIDs: b.goroutineIDs,
		stream:       b.stream,
		sink:         b.sink,
		levelHooks:   b.levelHooks.clone(),
	}
	if b.registerer != nil {
		m := newLogMetrics()
		b.registerer.MustRegister(m.collectors()...)
		if c.levelHooks == nil {
			c.levelHooks = make(levelHooks, 5)
		}
		for _, l := range []Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace} {
			c.levelHooks[l] = append(c.levelHooks[l], m)
		}
	}
	c.fmt = newFormatter(fmtOptions{
		timestamps:      c.timestamps,
		timestampLayout: c.tsLayout,
		location:        c.tsLocation,
		colored:         c.colored,
	})
	return c
}
