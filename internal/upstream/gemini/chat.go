package gemini

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
)

// Chat runs the conversation through generateContent and writes the
// reshaped {"message": ...} body.
func (c *Client) Chat(ctx context.Context, w http.ResponseWriter, opts *upstream.Options) (*upstream.Result, error) {
	startTime := time.Now()

	model := c.chatModel
	if opts.Chat.Model != "" {
		model = opts.Chat.Model
	}

	result := &upstream.Result{Model: model}

	req := &wireRequest{
		SystemInstruction: systemInstruction(chatSystemPrompt),
		Contents:          contentsFromMessages(opts.Chat.Messages),
	}

	resp, err := c.generate(ctx, model, req)
	result.Duration = time.Since(startTime)
	if err != nil {
		return writeFailure(w, result, err)
	}

	applyUsage(result, resp)
	result.StatusCode = http.StatusOK
	types.WriteJSON(w, http.StatusOK, types.ChatResponse{Message: resp.text()})
	return result, nil
}

// contentsFromMessages maps the client role/content list onto Gemini
// contents. Assistant turns become "model"; system turns fold into the
// first user turn since Gemini takes system text separately.
func contentsFromMessages(messages []types.Message) []wireContent {
	contents := make([]wireContent, 0, len(messages))
	for _, msg := range messages {
		role := "user"
		if msg.Role == "assistant" || msg.Role == "model" {
			role = "model"
		}
		contents = append(contents, wireContent{
			Role:  role,
			Parts: []wirePart{{Text: msg.Content}},
		})
	}
	return contents
}

// systemInstruction wraps a prompt string as a Gemini system instruction.
func systemInstruction(prompt string) *wireSystemInstruction {
	return &wireSystemInstruction{Parts: []wirePart{{Text: prompt}}}
}

// applyUsage copies upstream token counts into the result.
func applyUsage(result *upstream.Result, resp *wireResponse) {
	if resp.UsageMetadata.TotalTokenCount == 0 {
		return
	}
	result.PromptTokens = resp.UsageMetadata.PromptTokenCount
	result.CompletionTokens = resp.UsageMetadata.CandidatesTokenCount
	result.TotalTokens = resp.UsageMetadata.TotalTokenCount
}

// writeFailure maps an upstream error onto the route error contract.
func writeFailure(w http.ResponseWriter, result *upstream.Result, err error) (*upstream.Result, error) {
	var aerr *apiError
	message := "upstream request failed: " + err.Error()
	if errors.As(err, &aerr) {
		message = aerr.Message
	}

	result.Error = err
	result.ErrorMessage = message
	result.StatusCode = http.StatusInternalServerError
	types.WriteError(w, http.StatusInternalServerError, message)
	return result, err
}
