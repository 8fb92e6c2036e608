// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics groups various metrics counters for statistical reasons.
type metrics struct {
	ErrorCount prometheus.Counter
	WarnCount  prometheus.Counter
	InfoCount  prometheus.Counter
	DebugCount prometheus.Counter
	TraceCount prometheus.Counter
}

// Fire implements the Hook interface.
func (m *metrics) Fire(v Level) error {
	switch v {
	case LevelError:
		m.ErrorCount.Inc()
	case LevelWarn:
		m.WarnCount.Inc()
	case LevelInfo:
		m.InfoCount.Inc()
	case LevelDebug:
		m.DebugCount.Inc()
	default:
		m.TraceCount.Inc()
	}
	return nil
}

// collectors returns the counters in registration order.
func (m *metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.ErrorCount,
		m.WarnCount,
		m.InfoCount,
		m.DebugCount,
		m.TraceCount,
	}
}

// newLogMetrics returns pointer to a new metrics instance ready to use.
func newLogMetrics() *metrics {
	const (
		namespace = "simplelog"
		subsystem = "log"
	)

	return &metrics{
		ErrorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "error_count",
			Help:      "Number ERROR log messages.",
		}),
		WarnCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "warn_count",
			Help:      "Number WARN log messages.",
		}),
		InfoCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "info_count",
			Help:      "Number INFO log messages.",
		}),
		DebugCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "debug_count",
			Help:      "Number DEBUG log messages.",
		}),
		TraceCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "trace_count",
			Help:      "Number TRACE log messages.",
		}),
	}
}
