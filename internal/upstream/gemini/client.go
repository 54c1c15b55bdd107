// Package gemini implements the direct Gemini upstream over the REST
// generateContent API without pulling in the Google SDK.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/config"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client calls the Gemini API and reshapes responses into the simplified
// route contracts.
type Client struct {
	apiKey      string
	baseURL     string
	chatModel   string
	imageModel  string
	searchModel string
	httpClient  *http.Client
}

// New creates a Gemini upstream from the application config.
func New(cfg *config.Config) *Client {
	return &Client{
		apiKey:      cfg.GeminiAPIKey,
		baseURL:     defaultBaseURL,
		chatModel:   cfg.ChatModel,
		imageModel:  cfg.ImageModel,
		searchModel: cfg.SearchModel,
		httpClient:  &http.Client{Timeout: 5 * time.Minute},
	}
}

// Name returns the upstream identifier.
func (c *Client) Name() string {
	return "gemini"
}

// apiError carries an upstream failure with the message Gemini reported.
type apiError struct {
	StatusCode int
	Message    string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("gemini: upstream status %d: %s", e.StatusCode, e.Message)
}

// generate calls models/{model}:generateContent and decodes the response.
func (c *Client) generate(ctx context.Context, model string, req *wireRequest) (*wireResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var wErr wireError
		message := "request failed"
		if err := json.Unmarshal(body, &wErr); err == nil && wErr.Error.Message != "" {
			message = wErr.Error.Message
		}
		return nil, &apiError{StatusCode: resp.StatusCode, Message: message}
	}

	var out wireResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	return &out, nil
}
