package gemini

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
)

// ErrNoImage is returned when the model reply contains no image part.
var ErrNoImage = errors.New("upstream returned no image data")

// GenerateImage asks the image-capable model for a picture and writes it
// as {"image": "data:<mime>;base64,<data>"}.
func (c *Client) GenerateImage(ctx context.Context, w http.ResponseWriter, opts *upstream.Options) (*upstream.Result, error) {
	startTime := time.Now()
	result := &upstream.Result{Model: c.imageModel}

	req := &wireRequest{
		Contents: []wireContent{{
			Role:  "user",
			Parts: []wirePart{{Text: opts.Prompt}},
		}},
		GenerationConfig: &wireGenConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}

	resp, err := c.generate(ctx, c.imageModel, req)
	result.Duration = time.Since(startTime)
	if err != nil {
		return writeFailure(w, result, err)
	}

	applyUsage(result, resp)

	inline := resp.inlineData()
	if inline == nil || inline.Data == "" {
		result.Error = ErrNoImage
		result.ErrorMessage = ErrNoImage.Error()
		result.StatusCode = http.StatusInternalServerError
		types.WriteError(w, http.StatusInternalServerError, ErrNoImage.Error())
		return result, ErrNoImage
	}

	mimeType := inline.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}

	result.StatusCode = http.StatusOK
	types.WriteJSON(w, http.StatusOK, types.ImageResponse{
		Image: "data:" + mimeType + ";base64," + inline.Data,
	})
	return result, nil
}
