package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// RequestLogger logs one line per request with status, timing and
// bytes written. Server errors log at Error level, client errors at
// Warn, everything else at Info. Cache hits on the search routes
// carry a cache=HIT attribute.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.written,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", GetRequestID(r.Context()),
			}
			if cache := rec.Header().Get("X-Cache"); cache != "" {
				attrs = append(attrs, "cache", cache)
			}

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("request", attrs...)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("request", attrs...)
			default:
				logger.Info("request", attrs...)
			}
		})
	}
}

// statusRecorder captures the status code and response size while
// passing Flush through for streaming responses.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int64
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.written += int64(n)
	return n, err
}

func (sr *statusRecorder) Flush() {
	if f, ok := sr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
