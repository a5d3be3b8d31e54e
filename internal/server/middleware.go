package server

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/repositories"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// RequestIDHeader carries the id assigned to each request.
const RequestIDHeader = "X-Request-ID"

type loggerKey struct{}

// LoggerFrom returns the request-scoped logger, or fallback outside a request.
func LoggerFrom(ctx context.Context, fallback *log.Logger) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return fallback
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter { return s.ResponseWriter }

func (s *statusRecorder) code() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

// RequestLogger assigns a request id, stores a child logger in the context,
// and logs one line per request once it completes.
func RequestLogger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			reqLogger := logger.With("request_id", id)
			ctx := context.WithValue(r.Context(), loggerKey{}, reqLogger)

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(rec, r.WithContext(ctx))

			reqLogger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.code(),
				"duration", time.Since(start),
			)
		})
	}
}

// Recover turns a panic into a call to fallback, normally the 500 page.
func Recover(logger *log.Logger, fallback http.Handler) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					if p == http.ErrAbortHandler {
						panic(p)
					}
					LoggerFrom(r.Context(), logger).Error("panic serving request",
						"path", r.URL.Path, "panic", p, "stack", string(debug.Stack()))
					fallback.ServeHTTP(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Sessions scopes one database session to each request.
//
// The session is released when the handler returns, whatever path it took.
// When no connection can be acquired the request is passed to fallback.
func Sessions(db *sqlx.DB, logger *log.Logger, fallback http.Handler) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := repositories.Acquire(r.Context(), db)
			if err != nil {
				LoggerFrom(r.Context(), logger).Error("failed to acquire session", "error", err)
				fallback.ServeHTTP(w, r)
				return
			}
			defer func() {
				if err := session.Close(); err != nil {
					LoggerFrom(r.Context(), logger).Warn("failed to release session", "error", err)
				}
			}()

			next.ServeHTTP(w, r.WithContext(repositories.WithSession(r.Context(), session)))
		})
	}
}
