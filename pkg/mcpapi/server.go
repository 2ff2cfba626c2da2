// Package mcpapi exposes the answering pipeline and the raw search chain as
// MCP tools, so agent frontends can call them over the Model Context
// Protocol.
package mcpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/websage/answerd/pkg/rag"
	"github.com/websage/answerd/pkg/search"
)

// Answerer runs the full answering pipeline.
type Answerer interface {
	Answer(ctx context.Context, req rag.Request) (*rag.Response, error)
}

// Searcher runs a raw web search.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (*search.Response, error)
}

// AskInput is the ask tool input.
type AskInput struct {
	Query    string `json:"query" jsonschema:"The question to answer."`
	Provider string `json:"provider,omitempty" jsonschema:"Optional completion backend: mistral, gemini or anthropic."`
}

// AskOutput mirrors the HTTP answer payload.
type AskOutput struct {
	Content  string   `json:"content"`
	Sources  []string `json:"sources"`
	Provider string   `json:"provider"`
}

// SearchInput is the web_search tool input.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"The search query."`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum number of results, default 5."`
}

// SearchResult is one entry of the search tool outputs. ImageURL is set by
// image_search only; URL then points at the hosting page.
type SearchResult struct {
	Title    string `json:"title,omitempty"`
	URL      string `json:"url"`
	Snippet  string `json:"snippet,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// SearchOutput is the web_search tool output.
type SearchOutput struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

// NewServer builds the MCP server with both tools registered.
func NewServer(pipeline Answerer, searcher Searcher, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "answerd", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question using web search results as grounding material. Returns the answer together with the source URLs consulted.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input AskInput) (*mcp.CallToolResult, AskOutput, error) {
		resp, err := pipeline.Answer(ctx, rag.Request{Content: input.Query, Provider: input.Provider})
		if err != nil {
			return errorResult(err), AskOutput{}, nil
		}
		return nil, AskOutput{
			Content:  resp.Content,
			Sources:  resp.Sources,
			Provider: resp.Provider,
		}, nil
	})

	addSearchTool(server, searcher, &mcp.Tool{
		Name:        "web_search",
		Description: "Perform a raw web text search and return result links with snippets, without generating an answer.",
	}, search.KindText)

	addSearchTool(server, searcher, &mcp.Tool{
		Name:        "image_search",
		Description: "Perform an image search and return image URLs with their hosting pages.",
	}, search.KindImages)

	addSearchTool(server, searcher, &mcp.Tool{
		Name:        "news_search",
		Description: "Perform a news search and return recent article links with snippets.",
	}, search.KindNews)

	return server
}

func addSearchTool(server *mcp.Server, searcher Searcher, tool *mcp.Tool, kind search.Kind) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		if strings.TrimSpace(input.Query) == "" {
			return errorResult(rag.ErrEmptyContent), SearchOutput{}, nil
		}
		resp, err := searcher.Search(ctx, search.Request{Query: input.Query, Kind: kind, Count: input.MaxResults})
		if err != nil {
			return errorResult(err), SearchOutput{}, nil
		}
		results := make([]SearchResult, 0, len(resp.Results))
		for _, entry := range resp.Results {
			results = append(results, SearchResult{
				Title:    entry.Title,
				URL:      entry.URL,
				Snippet:  entry.Description,
				ImageURL: entry.ImageURL,
			})
		}
		return nil, SearchOutput{Query: resp.Query, Results: results}, nil
	})
}

// Handler serves the MCP server over streamable HTTP.
func Handler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
