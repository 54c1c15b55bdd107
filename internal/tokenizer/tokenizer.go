// Package tokenizer provides approximate prompt token counting for chat
// requests, used only for usage accounting. Gemini does not publish a local
// tokenizer, so counts use tiktoken encodings as an estimate; upstream
// usage metadata takes precedence when available.
package tokenizer

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
)

// Tokenizer counts tokens for chat requests.
type Tokenizer interface {
	// CountTokens counts tokens in a text string for a given model.
	CountTokens(text string, model string) (int, error)

	// CountRequest counts total prompt tokens for a chat request.
	CountRequest(req *types.ChatRequest) (int, error)
}

// Encoding names used by tiktoken.
const (
	EncodingCL100kBase = "cl100k_base"
	EncodingO200kBase  = "o200k_base"
)

// Per-message overhead and reply priming, following OpenAI's accounting.
// Close enough for estimation across model families.
const (
	messageOverhead    = 3
	replyPrimingTokens = 3
)

// TiktokenTokenizer implements Tokenizer using tiktoken-go.
type TiktokenTokenizer struct {
	mu        sync.RWMutex
	encodings map[string]*tiktoken.Tiktoken
}

// New creates a new TiktokenTokenizer.
func New() *TiktokenTokenizer {
	return &TiktokenTokenizer{
		encodings: make(map[string]*tiktoken.Tiktoken),
	}
}

// getEncoding returns the tiktoken encoding for a model, with caching.
func (t *TiktokenTokenizer) getEncoding(model string) (*tiktoken.Tiktoken, error) {
	encodingName := resolveEncoding(model)

	// Check cache first
	t.mu.RLock()
	enc, ok := t.encodings[encodingName]
	t.mu.RUnlock()
	if ok {
		return enc, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Double-check after acquiring write lock
	if enc, ok = t.encodings[encodingName]; ok {
		return enc, nil
	}

	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	t.encodings[encodingName] = enc
	return enc, nil
}

// resolveEncoding determines the encoding name for a model.
// Gemini and other non-OpenAI models fall back to cl100k_base.
func resolveEncoding(model string) string {
	modelLower := strings.ToLower(model)
	if strings.HasPrefix(modelLower, "gpt-4o") || strings.HasPrefix(modelLower, "o1") {
		return EncodingO200kBase
	}
	return EncodingCL100kBase
}

// CountTokens counts tokens in a text string for a given model.
func (t *TiktokenTokenizer) CountTokens(text string, model string) (int, error) {
	enc, err := t.getEncoding(model)
	if err != nil {
		return 0, err
	}
	tokens := enc.Encode(text, nil, nil)
	return len(tokens), nil
}

// CountRequest counts total prompt tokens for a chat request.
func (t *TiktokenTokenizer) CountRequest(req *types.ChatRequest) (int, error) {
	total := 0

	for _, msg := range req.Messages {
		roleTokens, err := t.CountTokens(msg.Role, req.Model)
		if err != nil {
			return 0, err
		}
		contentTokens, err := t.CountTokens(msg.Content, req.Model)
		if err != nil {
			return 0, err
		}
		total += roleTokens + contentTokens + messageOverhead
	}

	total += replyPrimingTokens
	return total, nil
}
