package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/websage/answerd/pkg/shared/stringutil"
)

// ErrorPrefix marks a document whose fetch or parse failed. The sentinel
// flows through the pipeline as ordinary text so that one unreachable URL
// never aborts the fan-out.
const ErrorPrefix = "[Scraping Error]"

// IsError reports whether text is a fetch-failure sentinel.
func IsError(text string) bool {
	return strings.HasPrefix(text, ErrorPrefix)
}

// Fetcher retrieves a URL once and extracts its readable text.
type Fetcher struct {
	cfg    *Config
	client *http.Client
	log    zerolog.Logger
}

// NewFetcher builds a fetcher with a bounded HTTP client.
func NewFetcher(cfg *Config, log zerolog.Logger) *Fetcher {
	cfg = cfg.WithDefaults()
	maxRedirects := cfg.MaxRedirects
	return &Fetcher{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		log: log.With().Str("component", "scrape").Logger(),
	}
}

// Fetch performs a single bounded GET and returns extracted text. Any
// failure yields the error sentinel instead of an error value; there are no
// retries, the pipeline fans out across URLs instead. An empty string means
// a successful fetch with no extractable content.
func (f *Fetcher) Fetch(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return f.failure(url, err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return f.failure(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return f.failure(url, fmt.Errorf("http %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return f.failure(url, err)
	}

	// Anything the Accept header solicits as HTML goes through the
	// extractor, including application/xhtml+xml.
	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "html") || contentType == "" {
		return Extract(string(body), f.cfg.MaxChars)
	}

	text := stringutil.CollapseWhitespace(string(body))
	return truncate(text, f.cfg.MaxChars)
}

func (f *Fetcher) failure(url string, err error) string {
	f.log.Warn().Err(err).Str("url", url).Msg("Fetch failed")
	return fmt.Sprintf("%s %v", ErrorPrefix, err)
}

func truncate(text string, maxChars int) string {
	if maxChars > 0 && len(text) > maxChars {
		return text[:maxChars]
	}
	return text
}
