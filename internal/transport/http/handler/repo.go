// Package handler composes the HTTP handlers for all route groups.
package handler

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/storage"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/tokenizer"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/transport/http/handler/admin"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/transport/http/handler/infra"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/transport/http/handler/proxy"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
)

// Repo composes all domain-specific handlers.
type Repo struct {
	Proxy *proxy.Handlers
	Infra *infra.Handlers
	Admin *admin.Handlers
}

// NewRepo creates a new instance of the composed handler repository.
func NewRepo(up upstream.Upstream, store storage.Storage, tok tokenizer.Tokenizer, cache *ristretto.Cache[string, []byte]) *Repo {
	startTime := time.Now()
	return &Repo{
		Proxy: proxy.New(up, store, tok, cache),
		Infra: infra.New(startTime),
		Admin: admin.New(store, startTime),
	}
}
