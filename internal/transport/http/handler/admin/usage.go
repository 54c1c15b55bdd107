package admin

import (
	"net/http"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/storage"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
)

// GetUsageStats handles GET /api/admin/usage.
func (h *Handlers) GetUsageStats(w http.ResponseWriter, r *http.Request) {
	if !h.storageReady(w) {
		return
	}

	filter := parseStatsFilter(r)

	stats, err := h.Storage.GetUsageStats(filter)
	if err != nil {
		types.WriteError(w, http.StatusInternalServerError, "failed to get usage stats: "+err.Error())
		return
	}

	types.WriteJSON(w, http.StatusOK, stats)
}

// GetDailyUsage handles GET /api/admin/usage/daily.
func (h *Handlers) GetDailyUsage(w http.ResponseWriter, r *http.Request) {
	if !h.storageReady(w) {
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	// Default to last 30 days if not specified
	if startDate == "" {
		startDate = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	}
	if endDate == "" {
		endDate = time.Now().Format("2006-01-02")
	}

	usage, err := h.Storage.GetDailyUsage(startDate, endDate)
	if err != nil {
		types.WriteError(w, http.StatusInternalServerError, "failed to get daily usage: "+err.Error())
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]any{
		"daily_usage": usage,
		"start_date":  startDate,
		"end_date":    endDate,
	})
}

// parseStatsFilter creates a StatsFilter from query parameters.
func parseStatsFilter(r *http.Request) storage.StatsFilter {
	filter := storage.StatsFilter{}

	if v := r.URL.Query().Get("operation"); v != "" {
		filter.Operation = v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.StartDate = &t
		}
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.EndDate = &t
		}
	}

	return filter
}
