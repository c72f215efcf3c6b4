package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	tavilygo "github.com/diverged/tavily-go"
	tavilyModels "github.com/diverged/tavily-go/models"
)

// SearchClient wraps the Tavily search API behind the web_search tool.
type SearchClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewSearchClient(apiKey string) *SearchClient {
	return &SearchClient{apiKey: apiKey}
}

// WithBaseURL overrides the Tavily endpoint, used by tests.
func (c *SearchClient) WithBaseURL(baseURL string) *SearchClient {
	c.baseURL = baseURL
	return c
}

func (c *SearchClient) WithHTTPClient(client *http.Client) *SearchClient {
	c.httpClient = client
	return c
}

// Search runs a basic-depth Tavily search and formats the aggregated answer
// plus the individual results as a text block for the tool response.
func (c *SearchClient) Search(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("search query must not be empty")
	}
	if c.apiKey == "" {
		return "", fmt.Errorf("TAVILY_API_KEY is not set")
	}

	client := tavilygo.NewClient(c.apiKey)
	if c.baseURL != "" {
		client.BaseURL = c.baseURL
	}
	if c.httpClient != nil {
		client.HTTPClient = c.httpClient
	}

	resp, err := tavilygo.Search(client, tavilyModels.SearchRequest{
		Query:         query,
		SearchDepth:   "basic",
		IncludeAnswer: true,
	})
	if err != nil {
		return "", fmt.Errorf("tavily search: %w", err)
	}

	var builder strings.Builder
	if resp.Answer != "" {
		fmt.Fprintf(&builder, "ANSWER: %s\n", resp.Answer)
	}
	for _, result := range resp.Results {
		fmt.Fprintf(&builder, "- URL: %s\n", result.URL)
		fmt.Fprintf(&builder, "  TITLE: %s\n", result.Title)
		fmt.Fprintf(&builder, "  SCORE: %f\n", result.Score)
		fmt.Fprintf(&builder, "  CONTENT: %s\n", result.Content)
	}
	if builder.Len() == 0 {
		return "no results found", nil
	}
	return builder.String(), nil
}
