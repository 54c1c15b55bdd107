// Package infra provides the health and keep-alive handlers.
package infra

import "time"

// ServiceName identifies this backend in health responses.
const ServiceName = "levao-ai-backend"

// Handlers holds the dependencies for infrastructure HTTP handlers.
type Handlers struct {
	StartTime time.Time
}

// New creates a new instance of infrastructure handlers.
func New(startTime time.Time) *Handlers {
	return &Handlers{StartTime: startTime}
}
