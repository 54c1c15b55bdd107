// Package models defines the persistent record types for request logging.
package models

import "time"

// Operation identifies which proxy route handled a request.
const (
	OperationChat      = "chat"
	OperationImage     = "generate-image"
	OperationWebSearch = "web-search"
	OperationMapSearch = "map-search"
)

// RequestLog represents a logged proxied request
type RequestLog struct {
	ID               string    `json:"id"`
	RequestID        string    `json:"request_id"`
	Operation        string    `json:"operation"`
	Upstream         string    `json:"upstream"`
	Model            string    `json:"model,omitempty"`
	PromptTokens     int       `json:"prompt_tokens"`
	CompletionTokens int       `json:"completion_tokens"`
	TotalTokens      int       `json:"total_tokens"`
	IsStreaming      bool      `json:"is_streaming"`
	StatusCode       int       `json:"status_code"`
	ErrorMessage     string    `json:"error_message,omitempty"`
	DurationMs       int64     `json:"duration_ms"`
	CreatedAt        time.Time `json:"created_at"`
}

// LogFilter contains parameters for filtering request logs
type LogFilter struct {
	Operation  string
	Upstream   string
	StatusCode *int
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}
