package proxy

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/storage/models"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/transport/http/middleware"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
)

// GenerateImage handles POST /api/generate-image.
func (h *Handlers) GenerateImage(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		types.WriteError(w, http.StatusInternalServerError, "failed to read request body")
		return
	}

	var req types.ImageRequest
	if err := json.Unmarshal(body, &req); err != nil {
		types.WriteError(w, http.StatusInternalServerError, "invalid JSON body")
		return
	}
	if req.Prompt == "" {
		types.WriteError(w, http.StatusInternalServerError, "prompt is required")
		return
	}

	opts := &upstream.Options{
		RequestID: middleware.GetRequestID(r.Context()),
		Body:      body,
		Prompt:    req.Prompt,
	}

	result, _ := h.Upstream.GenerateImage(r.Context(), w, opts)
	go h.logRequest(opts.RequestID, models.OperationImage, result, 0)
}
