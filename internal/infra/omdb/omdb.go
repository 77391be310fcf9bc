// Package infra_omdb is a thin client for the OMDb metadata provider. The
// provider's JSON envelope is also the service's own response shape, so
// bodies are relayed as raw bytes without reshaping — including the
// provider-native {"Response":"False"} error envelopes, which arrive with
// HTTP 200 and are passed through as-is.
package infra_omdb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/humanbelnik/imdb-explorer/core/internal/config"
)

type Client struct {
	url    string
	apiKey string
	cl     *http.Client
}

func New(cfg config.Omdb, cl *http.Client) *Client {
	if cl == nil {
		cl = http.DefaultClient
	}
	return &Client{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		cl:     cl,
	}
}

// Search looks up movies by free-text query, restricted to the movie media
// type.
func (c *Client) Search(ctx context.Context, query string) (json.RawMessage, error) {
	return c.get(ctx, map[string]string{
		"s":    query,
		"type": "movie",
		"r":    "json",
	})
}

// GetByID fetches one title by its IMDb identifier with the full plot text.
func (c *Client) GetByID(ctx context.Context, imdbID string) (json.RawMessage, error) {
	return c.get(ctx, map[string]string{
		"i":    imdbID,
		"plot": "full",
		"r":    "json",
	})
}

func (c *Client) get(ctx context.Context, params map[string]string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	q := req.URL.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set("apikey", c.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	return raw, nil
}
