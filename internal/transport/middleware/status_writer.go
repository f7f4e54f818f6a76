package middleware

import (
	"context"
	"net/http"
)

// statusWriter wraps http.ResponseWriter to capture the response status code.
// Inner middleware may record the request context it finally ran with, so
// outer middleware can see values attached below them.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	reqCtx      context.Context
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	if sw, ok := w.(*statusWriter); ok {
		return sw
	}
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// recordContext stores ctx on the nearest statusWriter wrapping w.
func recordContext(w http.ResponseWriter, ctx context.Context) {
	for {
		switch t := w.(type) {
		case *statusWriter:
			t.reqCtx = ctx
			return
		case interface{ Unwrap() http.ResponseWriter }:
			w = t.Unwrap()
		default:
			return
		}
	}
}
