package gemini

// Wire types for the Gemini REST API (generateContent). Only the fields
// this proxy reads or writes are modeled.

type wirePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *wireInline `json:"inlineData,omitempty"`
}

type wireInline struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type wireContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []wirePart `json:"parts"`
}

type wireTool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type wireGenConfig struct {
	Temperature        *float64 `json:"temperature,omitempty"`
	MaxOutputTokens    int      `json:"maxOutputTokens,omitempty"`
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type wireSystemInstruction struct {
	Parts []wirePart `json:"parts"`
}

type wireRequest struct {
	SystemInstruction *wireSystemInstruction `json:"systemInstruction,omitempty"`
	Contents          []wireContent          `json:"contents"`
	Tools             []wireTool             `json:"tools,omitempty"`
	GenerationConfig  *wireGenConfig         `json:"generationConfig,omitempty"`
}

type wireGroundingChunk struct {
	Web *struct {
		URI   string `json:"uri"`
		Title string `json:"title"`
	} `json:"web,omitempty"`
}

type wireGroundingMetadata struct {
	GroundingChunks []wireGroundingChunk `json:"groundingChunks,omitempty"`
}

type wireCandidate struct {
	Content           wireContent            `json:"content"`
	FinishReason      string                 `json:"finishReason,omitempty"`
	GroundingMetadata *wireGroundingMetadata `json:"groundingMetadata,omitempty"`
}

type wireUsage struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type wireResponse struct {
	Candidates    []wireCandidate `json:"candidates"`
	UsageMetadata wireUsage       `json:"usageMetadata"`
}

// wireError is the Gemini API error envelope.
type wireError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// text concatenates the text parts of the first candidate.
func (r *wireResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var out string
	for _, part := range r.Candidates[0].Content.Parts {
		out += part.Text
	}
	return out
}

// inlineData returns the first inline data part of the first candidate.
func (r *wireResponse) inlineData() *wireInline {
	if len(r.Candidates) == 0 {
		return nil
	}
	for _, part := range r.Candidates[0].Content.Parts {
		if part.InlineData != nil {
			return part.InlineData
		}
	}
	return nil
}
