package gemini

import (
	"context"
	"net/http"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
)

// WebSearch answers the query with the googleSearch tool enabled
// (grounding) and writes {"content": ..., "sources": [...]}.
func (c *Client) WebSearch(ctx context.Context, w http.ResponseWriter, opts *upstream.Options) (*upstream.Result, error) {
	startTime := time.Now()
	result := &upstream.Result{Model: c.searchModel}

	req := &wireRequest{
		SystemInstruction: systemInstruction(webSearchSystemPrompt),
		Contents: []wireContent{{
			Role:  "user",
			Parts: []wirePart{{Text: opts.Query}},
		}},
		Tools: []wireTool{{GoogleSearch: &struct{}{}}},
	}

	resp, err := c.generate(ctx, c.searchModel, req)
	result.Duration = time.Since(startTime)
	if err != nil {
		return writeFailure(w, result, err)
	}

	applyUsage(result, resp)
	result.StatusCode = http.StatusOK
	types.WriteJSON(w, http.StatusOK, types.SearchResponse{
		Content: resp.text(),
		Sources: groundingSources(resp),
	})
	return result, nil
}

// groundingSources extracts web references from grounding metadata.
func groundingSources(resp *wireResponse) []types.Source {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	var sources []types.Source
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		sources = append(sources, types.Source{
			Title: chunk.Web.Title,
			URL:   chunk.Web.URI,
		})
	}
	return sources
}
