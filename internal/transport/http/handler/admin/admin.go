// Package admin implements the local usage inspection handlers.
package admin

import (
	"net/http"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/storage"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
)

// Handlers holds the dependencies for admin HTTP handlers.
type Handlers struct {
	Storage   storage.Storage
	StartTime time.Time
}

// New creates a new instance of admin handlers.
func New(store storage.Storage, startTime time.Time) *Handlers {
	return &Handlers{
		Storage:   store,
		StartTime: startTime,
	}
}

// storageReady writes a 503 and returns false when request logging is
// disabled, so the usage routes fail cleanly instead of panicking.
func (h *Handlers) storageReady(w http.ResponseWriter) bool {
	if h.Storage == nil {
		types.WriteError(w, http.StatusServiceUnavailable, "request logging is disabled")
		return false
	}
	return true
}
