package proxy

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/storage/models"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/transport/http/middleware"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
)

// tokenCountTimeout is the maximum time to wait for token counting before proceeding.
const tokenCountTimeout = 100 * time.Millisecond

// maxBodySize caps inbound request bodies at 10 MB.
const maxBodySize = 10 << 20

// Chat handles POST /api/chat. Token counting runs in parallel with the
// upstream request to minimize latency.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		types.WriteError(w, http.StatusInternalServerError, "failed to read request body")
		return
	}
	r.Body.Close()

	var req types.ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		types.WriteError(w, http.StatusInternalServerError, "invalid JSON body")
		return
	}
	if len(req.Messages) == 0 {
		types.WriteError(w, http.StatusInternalServerError, "messages is required")
		return
	}

	// Start token counting in background so forwarding never waits on it
	tokensChan := make(chan int, 1)
	go func() {
		defer close(tokensChan)
		if h.Tokenizer != nil {
			if tokens, err := h.Tokenizer.CountRequest(&req); err == nil {
				tokensChan <- tokens
			}
		}
	}()

	opts := &upstream.Options{
		RequestID: middleware.GetRequestID(r.Context()),
		Body:      body,
		Chat:      &req,
	}

	result, _ := h.Upstream.Chat(r.Context(), w, opts)

	// Collect the count with a short grace period; upstream usage metadata
	// takes precedence anyway when present
	var promptTokens int
	select {
	case tokens, ok := <-tokensChan:
		if ok {
			promptTokens = tokens
		}
	case <-time.After(tokenCountTimeout):
	}

	go h.logRequest(opts.RequestID, models.OperationChat, result, promptTokens)
}
