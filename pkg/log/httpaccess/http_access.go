// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package httpaccess provides middleware for logging HTTP request access
// through a log.Logger.
package httpaccess

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"

	"github.com/ethersphere/simplelog/pkg/log"
)

// NewHTTPAccessLogHandler creates a handler that will log a message after a
// request has been served.
func NewHTTPAccessLogHandler(logger log.Logger, message string) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rr, ok := w.(*responseRecorder)
			if !ok { // No need to layer on another responseRecorder.
				rr = &responseRecorder{ResponseWriter: w}
			}

			startTime := time.Now()
			h.ServeHTTP(rr, r)
			if rr.suppressed || !logger.Enabled(log.LevelInfo) {
				return
			}
			duration := time.Since(startTime)

			status := rr.status
			if status == 0 {
				status = http.StatusOK
			}
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			var line strings.Builder
			fmt.Fprintf(&line, "%s %s %s %s %s %d %d %v %s", ip, r.Method, r.Host, r.RequestURI, r.Proto, status, rr.size, duration, message)
			if v := r.Referer(); v != "" {
				fmt.Fprintf(&line, " referrer=%q", v)
			}
			if v := r.UserAgent(); v != "" {
				fmt.Fprintf(&line, " user-agent=%q", v)
			}
			if v := r.Header.Get("X-Forwarded-For"); v != "" {
				fmt.Fprintf(&line, " x-forwarded-for=%q", v)
			}
			if v := r.Header.Get("X-Real-Ip"); v != "" {
				fmt.Fprintf(&line, " x-real-ip=%q", v)
			}

			logger.Info(line.String())
		})
	}
}

// NewHTTPAccessSuppressLogHandler creates a handler that will suppress the
// access log message of an enclosing NewHTTPAccessLogHandler. Use it on
// endpoints that are polled frequently, like health checks.
func NewHTTPAccessSuppressLogHandler() func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rr, ok := w.(*responseRecorder); ok {
				rr.suppressed = true
			}
			h.ServeHTTP(w, r)
		})
	}
}

// NewCombinedLogHandler creates a handler that will log requests in the
// Apache combined log format through the given logger at info severity.
func NewCombinedLogHandler(logger log.Logger) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return handlers.CombinedLoggingHandler(logger.WriterLevel(log.LevelInfo), h)
	}
}

// responseRecorder is an implementation of http.ResponseWriter that records
// the response status and size for the access log line.
type responseRecorder struct {
	http.ResponseWriter

	status     int
	size       int
	suppressed bool
}

// Write implements http.ResponseWriter.
func (rr *responseRecorder) Write(b []byte) (int, error) {
	size, err := rr.ResponseWriter.Write(b)
	rr.size += size
	return size, err
}

// WriteHeader implements http.ResponseWriter.
func (rr *responseRecorder) WriteHeader(s int) {
	rr.ResponseWriter.WriteHeader(s)
	if rr.status == 0 {
		rr.status = s
	}
}

// CloseNotify implements http.CloseNotifier.
func (rr *responseRecorder) CloseNotify() <-chan bool {
	// staticcheck SA1019 CloseNotifier interface is required by gorilla compress handler.
	// nolint:staticcheck
	return rr.ResponseWriter.(http.CloseNotifier).CloseNotify()
}

// Hijack implements http.Hijacker.
func (rr *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return rr.ResponseWriter.(http.Hijacker).Hijack()
}

// Flush implements http.Flusher.
func (rr *responseRecorder) Flush() {
	rr.ResponseWriter.(http.Flusher).Flush()
}

// Push implements http.Pusher.
func (rr *responseRecorder) Push(target string, opts *http.PushOptions) error {
	return rr.ResponseWriter.(http.Pusher).Push(target, opts)
}
