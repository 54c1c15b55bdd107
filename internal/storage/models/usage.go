package models

import "time"

// DailyUsage represents aggregated usage stats for a day
type DailyUsage struct {
	Date             string `json:"date"` // YYYY-MM-DD
	Operation        string `json:"operation"`
	Model            string `json:"model,omitempty"`
	RequestCount     int    `json:"request_count"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalTokens      int    `json:"total_tokens"`
	ErrorCount       int    `json:"error_count"`
}

// OperationStats represents usage statistics for a single route
type OperationStats struct {
	Operation    string `json:"operation"`
	RequestCount int    `json:"request_count"`
	TotalTokens  int    `json:"total_tokens"`
	ErrorCount   int    `json:"error_count"`
}

// UsageStats represents aggregated usage statistics
type UsageStats struct {
	TotalRequests         int                        `json:"total_requests"`
	TotalTokens           int                        `json:"total_tokens"`
	TotalPromptTokens     int                        `json:"prompt_tokens"`
	TotalCompletionTokens int                        `json:"completion_tokens"`
	ErrorCount            int                        `json:"error_count"`
	OperationBreakdown    map[string]*OperationStats `json:"operations,omitempty"`
}

// StatsFilter contains parameters for filtering usage statistics
type StatsFilter struct {
	Operation string
	StartDate *time.Time
	EndDate   *time.Time
}
