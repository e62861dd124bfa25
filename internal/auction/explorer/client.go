// Package explorer implements ledger lookups against the Ergo explorer HTTP API.
package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodnatureofminers/auction-history/internal/auction/chain"
	"github.com/goodnatureofminers/auction-history/internal/auction/model"
	"go.uber.org/ratelimit"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	DefaultAPIURL = "https://api.ergoplatform.com"
	DefaultUIURL  = "https://explorer.ergoplatform.com"

	maxResponseBytes = 8 << 20
)

type (
	// Metrics records metrics for explorer calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// HTTPDoer sends HTTP requests.
	HTTPDoer interface {
		Do(req *http.Request) (*http.Response, error)
	}
)

// Config configures a Client.
type Config struct {
	APIURL string
	UIURL  string
	// Timeout bounds a whole HTTP exchange; zero disables it.
	Timeout time.Duration
	// RPS limits outgoing requests per second; zero disables limiting.
	RPS int
}

// Client performs point lookups against the explorer. It is safe for concurrent use.
type Client struct {
	apiURL  *url.URL
	uiURL   string
	http    HTTPDoer
	limiter ratelimit.Limiter
	metrics Metrics
}

// NewClient constructs an instrumented explorer client.
func NewClient(cfg Config, metrics Metrics) (*Client, error) {
	if metrics == nil {
		return nil, errors.New("explorer metrics is required")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.UIURL == "" {
		cfg.UIURL = DefaultUIURL
	}
	parsed, err := url.Parse(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("parse explorer url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("explorer url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("explorer url missing host")
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	return &Client{
		apiURL:  parsed,
		uiURL:   strings.TrimRight(cfg.UIURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
		metrics: metrics,
	}, nil
}

// TransactionByID returns a confirmed transaction.
func (c *Client) TransactionByID(ctx context.Context, id string) (tx *model.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("transaction_by_id", err, started)
	}()

	var dto transactionDTO
	if err = c.get(ctx, "/api/v1/transactions/"+url.PathEscape(id), &dto); err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", id, err)
	}
	tx, err = convertTransaction(dto)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", id, err)
	}
	return tx, nil
}

// BoxByID returns a box, spent or unspent.
func (c *Client) BoxByID(ctx context.Context, id string) (box *model.Box, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("box_by_id", err, started)
	}()

	var dto outputDTO
	if err = c.get(ctx, "/api/v1/boxes/"+url.PathEscape(id), &dto); err != nil {
		return nil, fmt.Errorf("get box %s: %w", id, err)
	}
	box, err = convertBox(dto)
	if err != nil {
		return nil, fmt.Errorf("box %s: %w", id, err)
	}
	return box, nil
}

// TransactionURL links a transaction in the explorer UI.
func (c *Client) TransactionURL(txID string) string {
	return c.uiURL + "/en/transactions/" + url.PathEscape(txID)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := ctx.Err(); err != nil {
		return transportError(ctx, err)
	}
	c.limiter.Take()

	endpoint := c.apiURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(ctx, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return chain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: unexpected status %d", chain.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return transportError(ctx, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode: %v", chain.ErrMalformedResponse, err)
	}
	return nil
}

func transportError(ctx context.Context, err error) error {
	var netErr interface{ Timeout() bool }
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", chain.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", chain.ErrNetwork, err)
}
