package types

// ChatResponse is the reshaped chat reply (non-streaming mode).
type ChatResponse struct {
	Message string `json:"message"`
}

// ImageResponse carries a generated image as a data URI.
type ImageResponse struct {
	Image string `json:"image"`
}

// Source is a single grounding reference backing a web search answer.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SearchResponse is the reshaped web search answer.
type SearchResponse struct {
	Content string   `json:"content"`
	Sources []Source `json:"sources,omitempty"`
}

// Location is a single place returned by map search.
type Location struct {
	Name        string  `json:"name"`
	Address     string  `json:"address,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
	Description string  `json:"description,omitempty"`
}

// MapSearchResponse is the reshaped map search answer.
type MapSearchResponse struct {
	Locations []Location `json:"locations"`
}
