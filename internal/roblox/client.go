// Package roblox implements the client for the public games API that lists
// running server instances of a place.
package roblox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/placerank/placerank/internal/apierr"
	"github.com/placerank/placerank/internal/config"
	"github.com/placerank/placerank/internal/metrics"
	"github.com/placerank/placerank/internal/vars"
	"github.com/rs/zerolog/log"
)

// ServerRecord is one raw server instance exactly as the upstream reports it.
// Optional fields are pointers: absent and JSON null both decode to nil and
// mean the value was not reported.
type ServerRecord struct {
	ID         string   `json:"id"`
	Playing    *int     `json:"playing"`
	MaxPlayers *int     `json:"maxPlayers"`
	FPS        *float64 `json:"fps"`
	Ping       *float64 `json:"ping"`
}

// Page is one slice of the paginated listing. NextPageCursor is empty when
// pagination is exhausted, the upstream sends null on the last page.
type Page struct {
	Data           []ServerRecord `json:"data"`
	NextPageCursor string         `json:"nextPageCursor"`
}

// Client fetches public server pages for a game over HTTPS.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	pageSize  int
}

// NewClient creates a Client configured with the upstream options.
func NewClient(options config.Upstream) *Client {
	return &Client{
		http:      &http.Client{Timeout: options.Timeout},
		baseURL:   options.URL,
		userAgent: vars.UserAgent(),
		pageSize:  options.PageSize,
	}
}

// FetchPage requests one page of public servers for gameID, sorted by the
// upstream in descending order. The cursor parameter is appended only when
// non-empty (the first page has none). A non-success response becomes an
// *apierr.UpstreamError; there are no retries here, a single failed call
// propagates immediately.
func (c *Client) FetchPage(ctx context.Context, gameID, cursor string) (*Page, error) {
	endpoint := fmt.Sprintf("%s/v1/games/%s/servers/Public", c.baseURL, gameID)

	query := url.Values{}
	query.Set("sortOrder", "Desc")
	query.Set("limit", strconv.Itoa(c.pageSize))
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call upstream: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.UpstreamRequests.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apierr.NewUpstreamError(resp.StatusCode, req.URL.Path)
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}

	log.Trace().
		Str("game_id", gameID).
		Int("records", len(page.Data)).
		Bool("more", page.NextPageCursor != "").
		Msg("Fetched upstream page")

	return &page, nil
}
