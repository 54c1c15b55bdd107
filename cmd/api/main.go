package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/app"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/auth"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/config"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/storage"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/tokenizer"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/transport/http/handler"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream/edge"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream/gemini"
)

func main() {
	logger := setupLogger()
	slog.SetDefault(logger)

	// 1. Load configuration (env → file → defaults)
	if err := config.EnsureDataDir(); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	if err := config.EnsureConfigFile(); err != nil {
		logger.Warn("failed to write default config file", "error", err)
	}
	cfg := config.Load()

	// 2. Open storage when request logging is enabled
	var store storage.Storage
	if cfg.EnableRequestLog {
		var err error
		store, err = storage.NewSQLiteStorage(config.DBPath())
		if err != nil {
			log.Fatalf("Failed to open storage: %v", err)
		}
		defer store.Close()
	} else {
		logger.Info("request logging disabled")
	}

	// 3. Search response cache
	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 1e5,
		MaxCost:     64 << 20,
		BufferItems: 64,
	})
	if err != nil {
		log.Fatalf("Failed to create cache: %v", err)
	}
	defer cache.Close()

	// 4. Select the upstream from available credentials
	up := selectUpstream(cfg, logger)

	// 5. Hash the admin password once at startup
	adminHash := ""
	if cfg.AdminPassword != "" {
		adminHash, err = auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
	}

	// 6. Compose handlers and router
	repo := handler.NewRepo(up, store, tokenizer.New(), cache)
	router := app.NewRouter(repo, &app.RouterOptions{
		Logger:            logger,
		AdminPasswordHash: adminHash,
	})

	printStartupBanner(cfg, up.Name())

	// 7. Serve until interrupted, then drain in-flight requests
	srv := app.NewServer(cfg, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal(err)
		}
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}
}

// selectUpstream picks the forwarding mode: Supabase edge functions when the
// project credentials are present, direct Gemini otherwise. With neither,
// the server still starts and every proxied route reports the problem.
func selectUpstream(cfg *config.Config, logger *slog.Logger) upstream.Upstream {
	switch {
	case cfg.EdgeConfigured():
		logger.Info("upstream selected", "mode", "edge", "url", cfg.SupabaseURL)
		return edge.New(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	case cfg.GeminiConfigured():
		logger.Info("upstream selected", "mode", "gemini", "chat_model", cfg.ChatModel)
		return gemini.New(cfg)
	default:
		logger.Warn("no upstream credentials configured")
		return upstream.Unconfigured("missing credentials: set SUPABASE_URL and SUPABASE_ANON_KEY, or GEMINI_API_KEY")
	}
}
