package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
)

// ErrNoLocations is returned when the model reply contains no parseable
// location JSON.
var ErrNoLocations = errors.New("upstream returned no parseable locations")

// MapSearch asks the model for matching places as JSON and writes
// {"locations": [...]}. The model is told to answer with bare JSON, but
// replies often arrive wrapped in markdown code fences, so extraction is
// best-effort.
func (c *Client) MapSearch(ctx context.Context, w http.ResponseWriter, opts *upstream.Options) (*upstream.Result, error) {
	startTime := time.Now()
	result := &upstream.Result{Model: c.searchModel}

	req := &wireRequest{
		SystemInstruction: systemInstruction(mapSearchSystemPrompt),
		Contents: []wireContent{{
			Role:  "user",
			Parts: []wirePart{{Text: opts.Query}},
		}},
	}

	resp, err := c.generate(ctx, c.searchModel, req)
	result.Duration = time.Since(startTime)
	if err != nil {
		return writeFailure(w, result, err)
	}

	applyUsage(result, resp)

	locations, err := parseLocations(resp.text())
	if err != nil {
		result.Error = err
		result.ErrorMessage = err.Error()
		result.StatusCode = http.StatusInternalServerError
		types.WriteError(w, http.StatusInternalServerError, err.Error())
		return result, err
	}

	result.StatusCode = http.StatusOK
	types.WriteJSON(w, http.StatusOK, types.MapSearchResponse{Locations: locations})
	return result, nil
}

// parseLocations extracts the location list from freeform model text.
// Accepts a bare JSON array or an object with a "locations" key, with or
// without surrounding markdown fences.
func parseLocations(text string) ([]types.Location, error) {
	raw := ExtractFencedJSON(text)
	if raw == "" {
		return nil, ErrNoLocations
	}

	var locations []types.Location
	if err := json.Unmarshal([]byte(raw), &locations); err == nil {
		return locations, nil
	}

	var wrapped types.MapSearchResponse
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil && wrapped.Locations != nil {
		return wrapped.Locations, nil
	}

	return nil, ErrNoLocations
}
