// Package googlebooks is a thin client for the Google Books volumes-search
// API. One logical search is exactly one outbound request; there are no
// retries and no caching.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookshelf/internal/apperr"
)

const defaultBaseURL = "https://www.googleapis.com/books/v1"

// SearchResponse matches the volumes-search document. Upstream omits fields
// inconsistently, so absence decodes to zero values.
type SearchResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

type VolumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	PublishedDate string   `json:"publishedDate"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: userAgent,
	}
}

// Search issues a single volumes-search request for query. An empty query is
// rejected before any network call.
func (c *Client) Search(ctx context.Context, query string) ([]Volume, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperr.Validation("search query must not be empty")
	}

	u := fmt.Sprintf("%s/volumes?q=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, apperr.Import("build volumes request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Import("volumes search", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Import(fmt.Sprintf("volumes search: unexpected status code %d", resp.StatusCode), nil)
	}

	var root SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&root); err != nil {
		return nil, apperr.Import("decode volumes response", err)
	}
	return root.Items, nil
}
