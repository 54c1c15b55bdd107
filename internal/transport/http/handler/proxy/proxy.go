// Package proxy implements the forwarding route handlers.
package proxy

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/storage"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/tokenizer"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
)

// Handlers holds the dependencies for proxy HTTP handlers.
type Handlers struct {
	Upstream  upstream.Upstream
	Storage   storage.Storage
	Tokenizer tokenizer.Tokenizer
	Cache     *ristretto.Cache[string, []byte]
}

// New creates a new instance of proxy handlers.
func New(up upstream.Upstream, store storage.Storage, tok tokenizer.Tokenizer, cache *ristretto.Cache[string, []byte]) *Handlers {
	return &Handlers{
		Upstream:  up,
		Storage:   store,
		Tokenizer: tok,
		Cache:     cache,
	}
}

// logRequest logs a proxied request to storage and updates the daily usage
// aggregate. Called from a goroutine; errors are ignored.
// promptTokens is the local estimate, used when the upstream reported no usage.
func (h *Handlers) logRequest(requestID, operation string, result *upstream.Result, promptTokens int) {
	if h.Storage == nil || result == nil {
		return
	}

	prompt := result.PromptTokens
	if prompt == 0 {
		prompt = promptTokens
	}
	completion := result.CompletionTokens
	total := result.TotalTokens
	if total == 0 {
		total = prompt + completion
	}

	log := &storage.RequestLog{
		RequestID:        requestID,
		Operation:        operation,
		Upstream:         h.Upstream.Name(),
		Model:            result.Model,
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      total,
		IsStreaming:      result.IsStreaming,
		StatusCode:       result.StatusCode,
		ErrorMessage:     result.ErrorMessage,
		DurationMs:       result.Duration.Milliseconds(),
		CreatedAt:        time.Now(),
	}
	_ = h.Storage.LogRequest(log)

	errorCount := 0
	if result.StatusCode >= 400 {
		errorCount = 1
	}

	usage := &storage.DailyUsage{
		Date:             time.Now().Format("2006-01-02"),
		Operation:        operation,
		Model:            result.Model,
		RequestCount:     1,
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      total,
		ErrorCount:       errorCount,
	}
	_ = h.Storage.UpdateDailyUsage(usage)
}
