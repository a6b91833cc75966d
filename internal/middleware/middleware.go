// Package middleware holds the cross-cutting request wrappers shared by
// every route: logging and panic recovery. A middleware is any
// func(http.Handler) http.Handler; Chain composes them.
package middleware

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Middleware wraps a handler to add behaviour before and/or after it runs.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares right-to-left so the first listed runs outermost:
//
//	Chain(h, mw1, mw2, mw3) ≡ mw1(mw2(mw3(h)))
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// statusWriter captures the status code written downstream. Embedding
// http.ResponseWriter promotes the remaining methods.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Logging records method, path, status, and duration for every request.
func Logging(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start),
			)
		})
	}
}

// Recovery converts a downstream panic into a 500. Without it a panicking
// handler kills the goroutine serving the connection.
func Recovery(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"method", r.Method,
						"path", r.URL.Path,
						"panic", err,
					)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
