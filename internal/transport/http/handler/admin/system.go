package admin

import (
	"net/http"
	"runtime"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/config"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/storage"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
)

// Info handles GET /api/admin/info.
func (h *Handlers) Info(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.StartTime)

	totalRequests, totalTokens := 0, 0
	if h.Storage != nil {
		if stats, err := h.Storage.GetUsageStats(storage.StatsFilter{}); err == nil {
			totalRequests = stats.TotalRequests
			totalTokens = stats.TotalTokens
		}
	}

	types.WriteJSON(w, http.StatusOK, map[string]any{
		"go_version":  runtime.Version(),
		"uptime":      uptime.String(),
		"uptime_secs": int64(uptime.Seconds()),
		"data_dir":    config.DataDir(),
		"stats": map[string]any{
			"total_requests": totalRequests,
			"total_tokens":   totalTokens,
		},
	})
}
