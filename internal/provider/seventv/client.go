// Package seventv implements the 7TV emote adapter over the unofficial
// GraphQL endpoint the 7tv.app web client uses.
//
// The endpoint is undocumented and has been observed to reject requests
// that do not look like the browser, so Search sends the same headers
// the web client does. That fragility is an accepted operational risk
// of depending on an unofficial API; it stays isolated inside this
// package so the provider can be disabled or swapped without touching
// the rest of the pipeline. Do not "clean up" the headers.
package seventv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"emotebot/internal/emote"
)

// DefaultGQLURL is the endpoint the 7tv.app web client queries.
const DefaultGQLURL = "https://api.7tv.app/v2/gql"

// searchDocument is the exact query the web client sends. Kept verbatim,
// including fields this adapter ignores, so the request stays
// indistinguishable from browser traffic.
const searchDocument = `query($query: String!,$page: Int,$pageSize: Int,$globalState: String,$sortBy: String,$sortOrder: Int,$channel: String,$submitted_by: String,$filter: EmoteFilter) {search_emotes(query: $query,limit: $pageSize,page: $page,pageSize: $pageSize,globalState: $globalState,sortBy: $sortBy,sortOrder: $sortOrder,channel: $channel,submitted_by: $submitted_by,filter: $filter) {id,visibility,owner {id,display_name,role {id,name,color},banned}name,tags}}`

const pageSize = 20

// Client talks to the 7TV GraphQL API.
type Client struct {
	gqlURL string
	http   *http.Client
}

// New creates a client. An empty gqlURL selects the public endpoint.
func New(gqlURL string) *Client {
	if gqlURL == "" {
		gqlURL = DefaultGQLURL
	}
	return &Client{
		gqlURL: gqlURL,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return "7tv" }

// Search posts the emote search document. A response without the
// data.search_emotes envelope contributes zero results.
func (c *Client) Search(ctx context.Context, query string) ([]emote.Emote, error) {
	body, err := json.Marshal(gqlRequest{
		Query: searchDocument,
		Variables: gqlVariables{
			Query:    query,
			Page:     1,
			PageSize: pageSize,
			Limit:    pageSize,
			SortBy:   "popularity",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("7tv: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gqlURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("7tv: build request: %w", err)
	}
	spoofBrowserHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("7tv: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("7tv: unexpected status %d", resp.StatusCode)
	}

	var gr gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("7tv: decoding response: %w", err)
	}
	return mapEmotes(gr.Data.SearchEmotes), nil
}

// spoofBrowserHeaders mimics the 7tv.app web client. See the package
// comment before changing anything here.
func spoofBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:98.0) Gecko/20100101 Firefox/98.0")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.8,ru-RU;q=0.5,ru;q=0.3")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://7tv.app/")
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-site")
	req.Header.Set("Sec-GPC", "1")
}
