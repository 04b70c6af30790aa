// Package catalog talks to the remote Studio Ghibli catalog API.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ghiblihub/catalog-api/internal/api/metrics"
	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 10 << 20
)

// Config captures the remote base URL and the per-request timeout.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client performs single GET round trips against the catalog. It never
// caches and never retries.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client. A default timeout is applied when none is provided.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// URL builds the request URL: an id selects the single-resource path,
// otherwise the collection path with limit (or the default limit).
func (c *Client) URL(endpoint string, q ports.CatalogQuery) string {
	u := c.baseURL + "/" + endpoint
	switch {
	case q.ID != "":
		return u + "/" + url.PathEscape(q.ID)
	case q.Limit > 0:
		return u + "?limit=" + strconv.Itoa(q.Limit)
	default:
		return u + "?limit=" + strconv.Itoa(ports.DefaultCatalogLimit)
	}
}

// Fetch implements ports.CatalogSource.
func (c *Client) Fetch(ctx context.Context, endpoint string, q ports.CatalogQuery) ([]json.RawMessage, error) {
	start := time.Now()
	docs, err := c.fetch(ctx, endpoint, q)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, outcome(err)).Inc()
	return docs, err
}

func (c *Client) fetch(ctx context.Context, endpoint string, q ports.CatalogQuery) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(endpoint, q), nil)
	if err != nil {
		return nil, &domain.UpstreamUnavailableError{Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.UpstreamUnavailableError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &domain.UpstreamStatusError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &domain.UpstreamUnavailableError{Message: fmt.Sprintf("read body: %v", err)}
	}
	return splitDocuments(body)
}

// splitDocuments returns one raw document per record: the elements of a JSON
// array, or the single object wrapped in a one-element slice.
func splitDocuments(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var docs []json.RawMessage
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, &domain.UpstreamUnavailableError{Message: fmt.Sprintf("decode list: %v", err)}
		}
		return docs, nil
	}

	var doc json.RawMessage
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, &domain.UpstreamUnavailableError{Message: fmt.Sprintf("decode object: %v", err)}
	}
	if len(doc) == 0 || doc[0] != '{' {
		return nil, &domain.UpstreamUnavailableError{Message: "unexpected payload"}
	}
	return []json.RawMessage{doc}, nil
}

func outcome(err error) string {
	var statusErr *domain.UpstreamStatusError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &statusErr):
		return "status_error"
	default:
		return "unavailable"
	}
}
