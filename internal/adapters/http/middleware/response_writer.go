// Package middleware holds the inbound HTTP pipeline. The router installs
// it in this order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, RateLimit, Authenticate, Timeout
//
// Timeout wraps route groups rather than the whole router so websocket
// upgrades escape it. Each middleware is a plain func(http.Handler)
// http.Handler handed to chi's Use.
package middleware

import (
	"bufio"
	"net"
	"net/http"
)

// responseWriter observes what a handler sent. Recovery, OpenTelemetry and
// Logging all need the outcome, so they share one instance per request.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

// newResponseWriter returns w itself when an outer middleware already
// wrapped it, so the stack holds one observer however many layers ask.
func newResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader keeps the first status and ignores later calls, as net/http
// does.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode, rw.headerWritten = code, true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach Flush and friends.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Hijack hands the connection to a websocket upgrade. A successful hijack
// is recorded as 101 and counts as a started response.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	conn, brw, err := http.NewResponseController(rw.ResponseWriter).Hijack()
	if err != nil {
		return nil, nil, err
	}
	if !rw.headerWritten {
		rw.statusCode, rw.headerWritten = http.StatusSwitchingProtocols, true
	}
	return conn, brw, nil
}
