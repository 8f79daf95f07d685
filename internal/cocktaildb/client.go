// Package cocktaildb is a client for TheCocktailDB JSON API.
//
// API reference: https://www.thecocktaildb.com/api.php
package cocktaildb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/mwhite7112/woodpantry-drinks/internal/metrics"
)

var _ Source = (*Client)(nil)

// Client calls the CocktailDB endpoints over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for baseURL (for example
// https://www.thecocktaildb.com/api/json/v1/1). Every request is bounded by
// timeout in addition to the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// envelope is the wrapper every endpoint answers with. "drinks" is an array
// on success and null, absent, or a string marker such as "no data found"
// when nothing matched.
type envelope struct {
	Drinks json.RawMessage `json:"drinks"`
}

// Search calls search.php?s=<name>.
func (c *Client) Search(ctx context.Context, name string) ([]Drink, error) {
	var drinks []Drink
	if err := c.get(ctx, "search", "/search.php", url.Values{"s": {name}}, &drinks); err != nil {
		return nil, err
	}
	return drinks, nil
}

// Random calls random.php. An empty answer is treated as malformed since the
// endpoint always returns exactly one drink.
func (c *Client) Random(ctx context.Context) (Drink, error) {
	var drinks []Drink
	if err := c.get(ctx, "random", "/random.php", nil, &drinks); err != nil {
		return nil, err
	}
	if len(drinks) == 0 {
		return nil, fmt.Errorf("%w: random returned no drinks", ErrMalformed)
	}
	return drinks[0], nil
}

// FilterByAlcoholic calls filter.php?a=<filter>.
func (c *Client) FilterByAlcoholic(ctx context.Context, filter AlcoholicFilter) ([]DrinkSummary, error) {
	var drinks []DrinkSummary
	if err := c.get(ctx, "filter", "/filter.php", url.Values{"a": {string(filter)}}, &drinks); err != nil {
		return nil, err
	}
	return drinks, nil
}

// get performs one GET and decodes the "drinks" array into out. out is left
// untouched when the upstream reports no match.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) (err error) {
	start := time.Now()
	outcome := "success"
	defer func() {
		if err != nil {
			outcome = "error"
		}
		metrics.UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
		metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cocktaildb %s request failed: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read cocktaildb %s response: %w", endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cocktaildb %s returned status %d", endpoint, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, endpoint, err)
	}

	raw := bytes.TrimSpace(env.Drinks)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")), raw[0] == '"':
		outcome = "empty"
		return nil
	case raw[0] != '[':
		return fmt.Errorf("%w: %s drinks is not an array", ErrMalformed, endpoint)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s drinks: %v", ErrMalformed, endpoint, err)
	}
	return nil
}
