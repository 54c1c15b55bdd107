package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/storage"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
)

// GetRequestLogs handles GET /api/admin/logs.
func (h *Handlers) GetRequestLogs(w http.ResponseWriter, r *http.Request) {
	if !h.storageReady(w) {
		return
	}

	filter := parseLogFilter(r)

	logs, err := h.Storage.GetRequestLogs(filter)
	if err != nil {
		types.WriteError(w, http.StatusInternalServerError, "failed to get request logs: "+err.Error())
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]any{
		"logs":   logs,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})
}

// DeleteRequestLogs handles DELETE /api/admin/logs.
func (h *Handlers) DeleteRequestLogs(w http.ResponseWriter, r *http.Request) {
	if !h.storageReady(w) {
		return
	}

	beforeDate := r.URL.Query().Get("before_date")
	if beforeDate == "" {
		types.WriteError(w, http.StatusBadRequest, "before_date query parameter is required (format: YYYY-MM-DD)")
		return
	}

	if _, err := time.Parse("2006-01-02", beforeDate); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
		return
	}

	deleted, err := h.Storage.DeleteRequestLogs(beforeDate)
	if err != nil {
		types.WriteError(w, http.StatusInternalServerError, "failed to delete logs: "+err.Error())
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]any{
		"deleted_count": deleted,
		"before_date":   beforeDate,
	})
}

// parseLogFilter creates a LogFilter from query parameters.
func parseLogFilter(r *http.Request) storage.LogFilter {
	filter := storage.LogFilter{
		Limit:  50, // default
		Offset: 0,
	}

	if v := r.URL.Query().Get("operation"); v != "" {
		filter.Operation = v
	}
	if v := r.URL.Query().Get("upstream"); v != "" {
		filter.Upstream = v
	}
	if v := r.URL.Query().Get("status_code"); v != "" {
		if code, err := strconv.Atoi(v); err == nil {
			filter.StatusCode = &code
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil && offset >= 0 {
			filter.Offset = offset
		}
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
