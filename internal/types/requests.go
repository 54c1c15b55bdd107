// Package types defines the request and response contracts for the Levao
// AI backend routes.
package types

// Message is a single chat turn sent by the client.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Messages []Message `json:"messages"`

	// Model optionally overrides the configured chat model.
	Model string `json:"model,omitempty"`
}

// ImageRequest is the body of POST /api/generate-image.
type ImageRequest struct {
	Prompt string `json:"prompt"`
}

// SearchRequest is the body of POST /api/web-search and POST /api/map-search.
type SearchRequest struct {
	Query string `json:"query"`
}
