package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/config"
)

func setupLogger() *slog.Logger {
	// Use sensible defaults: info level, text format
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

func printStartupBanner(cfg *config.Config, upstreamName string) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintln(os.Stderr, "Levao AI backend")
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "API:       http://localhost%s/api/\n", cfg.ServerPort)
	fmt.Fprintf(os.Stderr, "Health:    http://localhost%s/health\n", cfg.ServerPort)
	fmt.Fprintf(os.Stderr, "Upstream:  %s\n", upstreamName)
	fmt.Fprintf(os.Stderr, "Data:      %s\n", config.DataDir())
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "\n")
}
