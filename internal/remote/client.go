// Package remote fetches the candidate collection the search runs against.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/akyairhashvil/searchhist/internal/config"
	"github.com/akyairhashvil/searchhist/internal/models"
	"github.com/akyairhashvil/searchhist/internal/util"
)

// ErrFetchFailed marks every failure to obtain the collection.
var ErrFetchFailed = errors.New("remote fetch failed")

// FetchError describes a failed fetch. StatusCode is zero for transport
// and decode failures.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: status %d", ErrFetchFailed, e.StatusCode)
	}
	return fmt.Sprintf("%v: %v", ErrFetchFailed, e.Err)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetchFailed}
	}
	return []error{ErrFetchFailed, e.Err}
}

// Fetcher retrieves the full candidate collection.
//
//go:generate mockgen -source=client.go -destination=../tui/mock_fetcher_test.go -package=tui
type Fetcher interface {
	Fetch(ctx context.Context) ([]models.CandidateItem, error)
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

type Client struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

var _ Fetcher = (*Client)(nil)

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = config.DefaultEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = config.DefaultHTTPTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}
}

// Fetch issues one GET to the endpoint and decodes the JSON array it returns.
// No query parameters are sent; filtering happens on the caller's side.
func (c *Client) Fetch(ctx context.Context) ([]models.CandidateItem, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var items []models.CandidateItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decode response: %w", err)}
	}

	c.logger.Debug("collection fetched",
		zap.String("endpoint", c.endpoint),
		zap.Int("items", len(items)),
		zap.Duration("duration", time.Since(start)),
	)
	return items, nil
}

// Match keeps the items whose title starts with query, exactly and
// case-sensitively, in collection order.
func Match(items []models.CandidateItem, query string) []models.CandidateItem {
	return util.FilterByPrefix(items, query, func(item models.CandidateItem) string {
		return item.Title
	})
}

// Search fetches the collection and filters it by query.
func Search(ctx context.Context, f Fetcher, query string) ([]models.CandidateItem, error) {
	items, err := f.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Match(items, query), nil
}
