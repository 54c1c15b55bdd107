package infra

import (
	"net/http"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
)

// HealthCheck returns the application health status. Uptime monitors hit
// this route to keep free-tier hosting awake.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	types.WriteJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"service":     ServiceName,
		"uptime_secs": int64(time.Since(h.StartTime).Seconds()),
	})
}

// Ping is a minimal keep-alive endpoint for services that expect a plain
// text response.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong"))
}
