// Package bttv implements the BetterTTV emote adapter: shared-emote
// search for the request path and the global-emote fetch used by the
// offline catalog refresh job.
package bttv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"emotebot/internal/emote"
)

// DefaultBaseURL is the public BetterTTV API root.
const DefaultBaseURL = "https://api.betterttv.net/3"

// The shared-search endpoint rejects queries under three characters,
// so shorter queries skip the network call entirely. This is a
// call-volume optimization, not a correctness filter: the static
// catalog still answers short queries.
const minQueryLen = 3

// Client talks to the BetterTTV API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client. An empty baseURL selects the public API.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return "bttv" }

// Search queries the shared-emote search endpoint.
func (c *Client) Search(ctx context.Context, query string) ([]emote.Emote, error) {
	if len([]rune(query)) < minQueryLen {
		return nil, nil
	}
	endpoint := fmt.Sprintf("%s/emotes/shared/search?query=%s", c.baseURL, url.QueryEscape(query))
	entries, err := c.getEmotes(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return mapEmotes(entries), nil
}

// FetchGlobal retrieves the cached global-emote list. Used by the
// refresh job only, never on the request path.
func (c *Client) FetchGlobal(ctx context.Context) ([]emote.Emote, error) {
	entries, err := c.getEmotes(ctx, c.baseURL+"/cached/emotes/global")
	if err != nil {
		return nil, err
	}
	return mapEmotes(entries), nil
}

func (c *Client) getEmotes(ctx context.Context, endpoint string) ([]apiEmote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("bttv: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bttv: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bttv: unexpected status %d", resp.StatusCode)
	}

	var entries []apiEmote
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("bttv: decoding response: %w", err)
	}
	return entries, nil
}
