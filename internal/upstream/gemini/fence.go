package gemini

import "strings"

// ExtractFencedJSON isolates a JSON payload embedded in markdown code
// fences. Handles ```json and bare ``` fences; input without fences is
// returned trimmed.
func ExtractFencedJSON(text string) string {
	text = strings.TrimSpace(text)

	start := strings.Index(text, "```")
	if start == -1 {
		return text
	}

	inner := text[start+3:]

	// Drop an optional language tag on the fence line.
	if newline := strings.IndexByte(inner, '\n'); newline != -1 {
		tag := strings.TrimSpace(inner[:newline])
		if tag == "json" || tag == "" {
			inner = inner[newline+1:]
		}
	} else {
		inner = strings.TrimPrefix(inner, "json")
	}

	if end := strings.Index(inner, "```"); end != -1 {
		inner = inner[:end]
	}

	return strings.TrimSpace(inner)
}
