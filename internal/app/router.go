// Package app wires the handlers, middleware and HTTP server together.
package app

import (
	"log/slog"
	"net/http"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/transport/http/handler"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/transport/http/middleware"
)

// RouterOptions configures the HTTP router behavior.
type RouterOptions struct {
	Logger *slog.Logger

	// AdminPasswordHash protects the admin routes; empty leaves them open.
	AdminPasswordHash string
}

// NewRouter creates and configures the HTTP router with all application routes.
// Returns an http.Handler with middleware applied.
func NewRouter(repo *handler.Repo, opts *RouterOptions) http.Handler {
	mux := http.NewServeMux()

	// Infrastructure routes
	mux.HandleFunc("GET /health", repo.Infra.HealthCheck)
	mux.HandleFunc("GET /ping", repo.Infra.Ping)

	// Proxy routes
	mux.HandleFunc("POST /api/chat", repo.Proxy.Chat)
	mux.HandleFunc("POST /api/generate-image", repo.Proxy.GenerateImage)
	mux.HandleFunc("POST /api/web-search", repo.Proxy.WebSearch)
	mux.HandleFunc("POST /api/map-search", repo.Proxy.MapSearch)

	// Admin routes
	registerAdminRoutes(mux, repo, opts)

	// Apply middleware chain (order: outer to inner)
	var h http.Handler = mux

	if opts.Logger != nil {
		h = middleware.RequestLogger(opts.Logger)(h)
	}

	h = middleware.RequestID(h)

	// CORS outermost so OPTIONS preflights short-circuit on every route
	h = middleware.CORS(h)

	return h
}

// registerAdminRoutes adds the usage inspection routes to the router.
func registerAdminRoutes(mux *http.ServeMux, repo *handler.Repo, opts *RouterOptions) {
	adminAuth := middleware.AdminAuth(opts.AdminPasswordHash)

	withAuth := func(h http.HandlerFunc) http.Handler {
		return adminAuth(h)
	}

	mux.Handle("GET /api/admin/usage", withAuth(repo.Admin.GetUsageStats))
	mux.Handle("GET /api/admin/usage/daily", withAuth(repo.Admin.GetDailyUsage))
	mux.Handle("GET /api/admin/logs", withAuth(repo.Admin.GetRequestLogs))
	mux.Handle("DELETE /api/admin/logs", withAuth(repo.Admin.DeleteRequestLogs))
	mux.Handle("GET /api/admin/info", withAuth(repo.Admin.Info))
}
