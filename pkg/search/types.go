package search

// Kind selects the search vertical.
type Kind string

const (
	KindText   Kind = "text"
	KindImages Kind = "images"
	KindNews   Kind = "news"
)

// Request represents a normalized web search request.
type Request struct {
	Query string
	Kind  Kind
	Count int
}

// Result is a normalized search result. ImageURL is set for image results
// only; URL then points at the page hosting the image.
type Result struct {
	Title       string
	URL         string
	Description string
	ImageURL    string
}

// Response is a normalized search response.
type Response struct {
	Query     string
	Provider  string
	Count     int
	TookMs    int64
	Results   []Result
	NoResults bool
}

// URLs returns the result URLs in relevance order, capped at max when max > 0.
// Duplicates are kept as delivered by the engine.
func (r *Response) URLs(max int) []string {
	if r == nil {
		return nil
	}
	urls := make([]string, 0, len(r.Results))
	for _, result := range r.Results {
		if result.URL == "" {
			continue
		}
		urls = append(urls, result.URL)
		if max > 0 && len(urls) >= max {
			break
		}
	}
	return urls
}
