package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/storage/models"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/transport/http/middleware"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
)

// searchCacheTTL is how long identical search queries are served from cache.
const searchCacheTTL = 5 * time.Minute

// WebSearch handles POST /api/web-search.
func (h *Handlers) WebSearch(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, models.OperationWebSearch, h.Upstream.WebSearch)
}

// MapSearch handles POST /api/map-search.
func (h *Handlers) MapSearch(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, models.OperationMapSearch, h.Upstream.MapSearch)
}

type searchFunc func(ctx context.Context, w http.ResponseWriter, opts *upstream.Options) (*upstream.Result, error)

func (h *Handlers) search(w http.ResponseWriter, r *http.Request, operation string, forward searchFunc) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		types.WriteError(w, http.StatusInternalServerError, "failed to read request body")
		return
	}

	var req types.SearchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		types.WriteError(w, http.StatusInternalServerError, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		types.WriteError(w, http.StatusInternalServerError, "query is required")
		return
	}

	key := cacheKey(operation, req.Query)

	// 1. Check cache
	if h.Cache != nil {
		if cached, found := h.Cache.Get(key); found {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(cached)
			return
		}
	}

	opts := &upstream.Options{
		RequestID: middleware.GetRequestID(r.Context()),
		Body:      body,
		Query:     req.Query,
	}

	// 2. Forward, capturing the response body so a success can be cached
	cw := &captureWriter{ResponseWriter: w}
	result, _ := forward(r.Context(), cw, opts)

	// 3. Set to cache on success
	if h.Cache != nil && cw.status() == http.StatusOK {
		h.Cache.SetWithTTL(key, cw.body.Bytes(), int64(cw.body.Len()), searchCacheTTL)
	}

	go h.logRequest(opts.RequestID, operation, result, 0)
}

// cacheKey normalizes the query so trivially different spellings share an
// entry.
func cacheKey(operation, query string) string {
	return operation + ":" + strings.ToLower(strings.Join(strings.Fields(query), " "))
}

// captureWriter passes writes through to the underlying ResponseWriter while
// keeping a copy of the body for the cache.
type captureWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (c *captureWriter) WriteHeader(statusCode int) {
	c.statusCode = statusCode
	c.ResponseWriter.WriteHeader(statusCode)
}

func (c *captureWriter) Write(b []byte) (int, error) {
	c.body.Write(b)
	return c.ResponseWriter.Write(b)
}

// Flush implements http.Flusher for relay passthrough.
func (c *captureWriter) Flush() {
	if f, ok := c.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (c *captureWriter) status() int {
	if c.statusCode == 0 {
		return http.StatusOK
	}
	return c.statusCode
}
