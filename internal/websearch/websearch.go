// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package websearch queries the Bocha web search API and normalizes its
// results into search items for the research loop.
package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/industry-analyst/internal/httputil"
	"github.com/pdiddy/industry-analyst/pkg/types"
)

const (
	defaultEndpoint = "https://api.bochaai.com/v1/web-search"
	defaultCount    = 5
	defaultTimeout  = 45 * time.Second
)

// Client calls one web search endpoint. Construct with New.
type Client struct {
	endpoint   string
	apiKey     string
	count      int
	maxRetries int
	userAgent  string
	httpClient *http.Client
}

// searchRequest is the request body for the web search API. Summary is
// always requested; summaries carry far more signal than snippets.
type searchRequest struct {
	Query   string `json:"query"`
	Summary bool   `json:"summary"`
	Count   int    `json:"count"`
	Page    int    `json:"page"`
}

// searchResponse is the response body from the web search API.
type searchResponse struct {
	Data struct {
		WebPages struct {
			Value []searchPage `json:"value"`
		} `json:"webPages"`
	} `json:"data"`
}

// searchPage is a single result entry.
type searchPage struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
	Snippet string `json:"snippet"`
}

// New builds a Client from cfg, applying defaults for unset fields.
func New(cfg types.SearchConfig) *Client {
	c := &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		count:      cfg.Count,
		maxRetries: cfg.MaxRetries,
		userAgent:  cfg.UserAgent,
	}
	if c.endpoint == "" {
		c.endpoint = defaultEndpoint
	}
	if c.count <= 0 {
		c.count = defaultCount
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c.httpClient = &http.Client{Timeout: timeout}
	return c
}

// Search runs one query and returns the usable results. Entries without
// a URL, or with neither a summary nor a snippet, are dropped.
func (c *Client) Search(ctx context.Context, query string) ([]types.SearchItem, error) {
	reqBody := searchRequest{
		Query:   query,
		Summary: true,
		Count:   c.count,
		Page:    1,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("calling search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search API returned %d: %s", resp.StatusCode, string(body))
	}

	var sResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sResp); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	var items []types.SearchItem
	for _, page := range sResp.Data.WebPages.Value {
		if page.URL == "" || (page.Summary == "" && page.Snippet == "") {
			continue
		}
		items = append(items, types.SearchItem{
			URL:     page.URL,
			Title:   page.Name,
			Summary: page.Summary,
			Snippet: page.Snippet,
		})
	}
	return items, nil
}
