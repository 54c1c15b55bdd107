// Package upstream defines the interface the proxy handlers speak to,
// implemented by the Supabase edge-function forwarder and the direct
// Gemini client.
package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
)

// Upstream handles the four proxied operations. Each call writes the client
// response (success or error) to w and returns a Result with request
// metadata for logging.
type Upstream interface {
	// Name returns the upstream identifier ("edge" or "gemini").
	Name() string

	// Chat forwards a conversation. The edge upstream relays the raw
	// byte stream; the gemini upstream writes a {"message": ...} body.
	Chat(ctx context.Context, w http.ResponseWriter, opts *Options) (*Result, error)

	// GenerateImage produces {"image": "<data URI>"}.
	GenerateImage(ctx context.Context, w http.ResponseWriter, opts *Options) (*Result, error)

	// WebSearch produces {"content": ..., "sources": [...]}.
	WebSearch(ctx context.Context, w http.ResponseWriter, opts *Options) (*Result, error)

	// MapSearch produces {"locations": [...]}.
	MapSearch(ctx context.Context, w http.ResponseWriter, opts *Options) (*Result, error)
}

// Options contains the parsed inbound request for an upstream call.
type Options struct {
	// RequestID for tracing
	RequestID string

	// Body is the raw inbound JSON body, replayed by the edge forwarder.
	Body []byte

	// Chat is set for chat requests.
	Chat *types.ChatRequest

	// Prompt is set for image generation requests.
	Prompt string

	// Query is set for search requests.
	Query string
}

// Result contains the outcome of an upstream call.
type Result struct {
	// Model used for the request (empty in edge mode)
	Model string

	// Token counts (from upstream usage metadata or pre-calculated)
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int

	// Request metadata
	StatusCode  int
	Duration    time.Duration
	IsStreaming bool

	// Error info (if any)
	Error        error
	ErrorMessage string
}
