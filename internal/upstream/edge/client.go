// Package edge implements the Supabase edge-function upstream. Each proxied
// operation forwards the inbound JSON body to the matching edge function and
// relays the response; the edge functions own the actual model calls.
package edge

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
)

// Client forwards requests to Supabase edge functions.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// New creates an edge upstream for the given Supabase project.
func New(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		httpClient: &http.Client{
			// DisableCompression required for streaming relay
			Transport: &http.Transport{
				DisableCompression: true,
			},
		},
	}
}

// Name returns the upstream identifier.
func (c *Client) Name() string {
	return "edge"
}

// functionURL builds the invoke URL for a named edge function.
func (c *Client) functionURL(name string) string {
	return c.baseURL + "/functions/v1/" + name
}

// call POSTs the buffered body to an edge function with bearer auth.
func (c *Client) call(ctx context.Context, name string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.functionURL(name), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	return c.httpClient.Do(req)
}

// forward runs an edge function call and relays the response. Chat relays
// the raw byte stream; everything else buffers and relays JSON.
func (c *Client) forward(ctx context.Context, w http.ResponseWriter, name string, body []byte, stream bool) (*upstream.Result, error) {
	startTime := time.Now()
	result := &upstream.Result{IsStreaming: stream}

	resp, err := c.call(ctx, name, body)
	if err != nil {
		result.Error = err
		result.StatusCode = http.StatusInternalServerError
		result.Duration = time.Since(startTime)
		types.WriteError(w, http.StatusInternalServerError, "upstream request failed: "+err.Error())
		return result, err
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode

	if stream && resp.StatusCode < 400 {
		err = relayStream(w, resp, result)
	} else {
		err = relayJSON(w, resp, result)
	}

	result.Duration = time.Since(startTime)
	return result, err
}

// Chat forwards the conversation to the chat edge function and relays the
// byte stream verbatim.
func (c *Client) Chat(ctx context.Context, w http.ResponseWriter, opts *upstream.Options) (*upstream.Result, error) {
	return c.forward(ctx, w, "chat", opts.Body, true)
}

// GenerateImage forwards to the generate-image edge function.
func (c *Client) GenerateImage(ctx context.Context, w http.ResponseWriter, opts *upstream.Options) (*upstream.Result, error) {
	return c.forward(ctx, w, "generate-image", opts.Body, false)
}

// WebSearch forwards to the web-search edge function.
func (c *Client) WebSearch(ctx context.Context, w http.ResponseWriter, opts *upstream.Options) (*upstream.Result, error) {
	return c.forward(ctx, w, "web-search", opts.Body, false)
}

// MapSearch forwards to the map-search edge function.
func (c *Client) MapSearch(ctx context.Context, w http.ResponseWriter, opts *upstream.Options) (*upstream.Result, error) {
	return c.forward(ctx, w, "map-search", opts.Body, false)
}
