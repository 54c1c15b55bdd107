package edge

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/upstream"
)

// relayStream forwards the upstream body to the client chunk by chunk,
// preserving the upstream content type (the chat function speaks SSE).
func relayStream(w http.ResponseWriter, resp *http.Response, result *upstream.Result) error {
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/event-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)

	flusher, ok := w.(http.Flusher)
	if !ok {
		// No flushing available; fall back to a plain copy.
		_, err := io.Copy(w, resp.Body)
		if err != nil {
			result.Error = err
		}
		return err
	}

	buf := make([]byte, 1024)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			if _, wErr := w.Write(buf[:n]); wErr != nil {
				result.Error = wErr
				return wErr
			}
			flusher.Flush()
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			result.Error = err
			return err
		}
	}
}

// relayJSON buffers the upstream body and forwards it with the upstream
// status, extracting an error message for logging when present.
func relayJSON(w http.ResponseWriter, resp *http.Response, result *upstream.Result) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Error = err
		types.WriteError(w, http.StatusInternalServerError, "failed to read upstream response")
		result.StatusCode = http.StatusInternalServerError
		return err
	}

	if resp.StatusCode >= 400 {
		var apiErr types.ErrorResponse
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Error != "" {
			result.ErrorMessage = apiErr.Error
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(body)

	return nil
}
