package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
)

// newTestClient points a Client at a stub Gemini server.
func newTestClient(serverURL string) *Client {
	return &Client{
		apiKey:      "test-key",
		baseURL:     serverURL,
		chatModel:   "gemini-2.5-flash",
		imageModel:  "gemini-2.5-flash-image",
		searchModel: "gemini-2.5-flash",
		httpClient:  &http.Client{},
	}
}

// textResponse builds a minimal generateContent JSON body with one text part.
func textResponse(text string) string {
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
		"usageMetadata": map[string]any{
			"promptTokenCount":     7,
			"candidatesTokenCount": 12,
			"totalTokenCount":      19,
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestChat(t *testing.T) {
	var gotPath string
	var gotReq wireRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Error("expected x-goog-api-key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("failed to decode upstream request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(textResponse("Hello from Levao")))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rec := httptest.NewRecorder()

	result, err := client.Chat(context.Background(), rec, &upstream.Options{
		Chat: &types.ChatRequest{
			Messages: []types.Message{
				{Role: "user", Content: "hi"},
				{Role: "assistant", Content: "hello"},
				{Role: "user", Content: "how are you"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if gotPath != "/models/gemini-2.5-flash:generateContent" {
		t.Errorf("unexpected upstream path %q", gotPath)
	}

	// Role mapping: assistant turns become "model"
	if len(gotReq.Contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(gotReq.Contents))
	}
	if gotReq.Contents[1].Role != "model" {
		t.Errorf("expected assistant mapped to model, got %q", gotReq.Contents[1].Role)
	}
	if gotReq.SystemInstruction == nil {
		t.Error("expected a system instruction")
	}

	var resp types.ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Message != "Hello from Levao" {
		t.Errorf("expected reshaped message, got %q", resp.Message)
	}

	if result.TotalTokens != 19 {
		t.Errorf("expected usage from upstream metadata, got %d", result.TotalTokens)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", result.StatusCode)
	}
}

func TestChat_ModelOverride(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(textResponse("ok")))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rec := httptest.NewRecorder()

	_, err := client.Chat(context.Background(), rec, &upstream.Options{
		Chat: &types.ChatRequest{
			Model:    "gemini-2.5-pro",
			Messages: []types.Message{{Role: "user", Content: "hi"}},
		},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if !strings.Contains(gotPath, "gemini-2.5-pro") {
		t.Errorf("expected model override in path, got %q", gotPath)
	}
}

func TestChat_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"Resource exhausted","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rec := httptest.NewRecorder()

	result, err := client.Chat(context.Background(), rec, &upstream.Options{
		Chat: &types.ChatRequest{Messages: []types.Message{{Role: "user", Content: "hi"}}},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}

	var resp types.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON error body: %v", err)
	}
	if resp.Error != "Resource exhausted" {
		t.Errorf("expected upstream error message, got %q", resp.Error)
	}
	if result.ErrorMessage != "Resource exhausted" {
		t.Errorf("expected error message in result, got %q", result.ErrorMessage)
	}
}

func TestGenerateImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role": "model",
						"parts": []any{
							map[string]any{"text": "Here you go"},
							map[string]any{"inlineData": map[string]any{
								"mimeType": "image/png",
								"data":     "aGVsbG8=",
							}},
						},
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rec := httptest.NewRecorder()

	result, err := client.GenerateImage(context.Background(), rec, &upstream.Options{Prompt: "a red bird"})
	if err != nil {
		t.Fatalf("GenerateImage failed: %v", err)
	}

	var resp types.ImageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Image != "data:image/png;base64,aGVsbG8=" {
		t.Errorf("unexpected data URI %q", resp.Image)
	}
	if result.Model != "gemini-2.5-flash-image" {
		t.Errorf("expected image model in result, got %q", result.Model)
	}
}

func TestGenerateImage_NoImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse("I cannot draw that")))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rec := httptest.NewRecorder()

	_, err := client.GenerateImage(context.Background(), rec, &upstream.Options{Prompt: "something"})
	if err != ErrNoImage {
		t.Errorf("expected ErrNoImage, got %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestWebSearch(t *testing.T) {
	var gotReq wireRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": "The Louvre opens at 9am."}},
					},
					"groundingMetadata": map[string]any{
						"groundingChunks": []any{
							map[string]any{"web": map[string]any{
								"uri":   "https://louvre.fr",
								"title": "Louvre",
							}},
							map[string]any{"web": map[string]any{"uri": ""}},
						},
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rec := httptest.NewRecorder()

	_, err := client.WebSearch(context.Background(), rec, &upstream.Options{Query: "louvre opening hours"})
	if err != nil {
		t.Fatalf("WebSearch failed: %v", err)
	}

	if len(gotReq.Tools) != 1 || gotReq.Tools[0].GoogleSearch == nil {
		t.Error("expected googleSearch tool in upstream request")
	}

	var resp types.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Content != "The Louvre opens at 9am." {
		t.Errorf("unexpected content %q", resp.Content)
	}
	if len(resp.Sources) != 1 {
		t.Fatalf("expected 1 source (empty URI skipped), got %d", len(resp.Sources))
	}
	if resp.Sources[0].URL != "https://louvre.fr" {
		t.Errorf("unexpected source URL %q", resp.Sources[0].URL)
	}
}

func TestMapSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		text := "```json\n[{\"name\":\"Louvre\",\"address\":\"Rue de Rivoli, Paris\",\"lat\":48.8606,\"lng\":2.3376,\"description\":\"Art museum\"}]\n```"
		w.Write([]byte(textResponse(text)))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rec := httptest.NewRecorder()

	_, err := client.MapSearch(context.Background(), rec, &upstream.Options{Query: "museums in paris"})
	if err != nil {
		t.Fatalf("MapSearch failed: %v", err)
	}

	var resp types.MapSearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(resp.Locations) != 1 {
		t.Fatalf("expected 1 location, got %d", len(resp.Locations))
	}
	loc := resp.Locations[0]
	if loc.Name != "Louvre" || loc.Lat != 48.8606 {
		t.Errorf("unexpected location %+v", loc)
	}
}

func TestMapSearch_UnparseableReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse("Sorry, I can't help with that.")))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rec := httptest.NewRecorder()

	_, err := client.MapSearch(context.Background(), rec, &upstream.Options{Query: "nothing"})
	if err != ErrNoLocations {
		t.Errorf("expected ErrNoLocations, got %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
