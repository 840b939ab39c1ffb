package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careerdesk/core/pkg/logger"
)

// Middleware wraps a handler function
type Middleware func(http.HandlerFunc) http.HandlerFunc

// Chain applies middleware so the first listed runs outermost
func Chain(h http.HandlerFunc, m ...Middleware) http.HandlerFunc {
	for i := len(m) - 1; i >= 0; i-- {
		h = m[i](h)
	}
	return h
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}
	return sw.ResponseWriter.Write(b)
}

// RequestLog tags every request with an ID, places a request-scoped logger
// in the context, and emits a completion line with status and duration.
// A caller-supplied X-Request-ID is honored for cross-service tracing.
func RequestLog(log *logger.Logger) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			requestID := strings.TrimSpace(r.Header.Get("X-Request-ID"))
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", requestID)

			reqLog := log.WithRequestID(requestID)
			ctx := reqLog.ToContext(r.Context())

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next(sw, r.WithContext(ctx))

			reqLog.Info().
				Str("action", "http_request").
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status_code", sw.status).
				Dur("duration", time.Since(start)).
				Msg("Request completed")
		}
	}
}
