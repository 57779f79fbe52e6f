// Package client fetches and parses the upstream baseball data sources:
// fangraphs leaderboards, retrosheet archives, the retrosplits day-by-day
// files, statcast pitch-level CSVs, and the chadwick player register.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/cache"
	"mlbstats/ingestion/internal/config"
	"mlbstats/ingestion/internal/metrics"
)

var (
	// ErrSourceUnavailable is returned when an upstream source cannot be
	// reached or answers with a non-success status
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrSchemaMismatch is returned when a fetched payload does not have the
	// shape the column contract expects
	ErrSchemaMismatch = errors.New("source schema mismatch")

	// ErrMalformedDate is returned when a source date cell cannot be decoded
	ErrMalformedDate = errors.New("malformed date")
)

// ArchiveCache is the optional payload cache for immutable archive files
type ArchiveCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Client is the shared HTTP client for all upstream sources. Every request
// passes through a single spacing throttle so that no source sees bursts,
// regardless of which adapters are active.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client

	mu          sync.Mutex
	lastRequest time.Time

	archive ArchiveCache
}

// NewClient creates a client from the source configuration. The archive cache
// is optional; pass nil to fetch everything directly.
func NewClient(cfg *config.Config, archive ArchiveCache) *Client {
	return &Client{
		cfg:     cfg,
		archive: archive,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// throttle blocks until the configured spacing since the previous request has
// elapsed. The delay counts from the previous request even when the caller
// sat idle in between.
func (c *Client) throttle(ctx context.Context) error {
	c.mu.Lock()
	wait := c.cfg.RequestSpacing - time.Since(c.lastRequest)
	if wait < 0 {
		wait = 0
	}
	c.lastRequest = time.Now().Add(wait)
	c.mu.Unlock()

	if wait == 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

// get performs a throttled GET and returns the raw body. Network failures and
// non-2xx statuses both map to ErrSourceUnavailable so that callers need a
// single retry policy.
func (c *Client) get(ctx context.Context, source, url string) ([]byte, error) {
	if err := c.throttle(ctx); err != nil {
		return nil, err
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "mlbstats-ingestion/1.0")

	log.Debug().
		Str("source", source).
		Str("url", url).
		Msg("Fetching upstream source")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordFetch(source, "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordFetch(source, "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, url, err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.RecordFetch(source, fmt.Sprintf("%d", resp.StatusCode), time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: %s returned status %d", ErrSourceUnavailable, url, resp.StatusCode)
	}

	metrics.RecordFetch(source, "ok", time.Since(start).Seconds())

	log.Debug().
		Str("source", source).
		Int("size", len(body)).
		Msg("Fetch successful")

	return body, nil
}

// getArchive fetches an immutable archive file, serving from the cache when
// one is configured and the payload is present.
func (c *Client) getArchive(ctx context.Context, source, url string) ([]byte, error) {
	if c.archive != nil {
		data, err := c.archive.Get(ctx, url)
		if err == nil {
			metrics.RecordCacheHit()
			return data, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			log.Warn().Err(err).Str("url", url).Msg("Archive cache read failed, fetching directly")
		}
		metrics.RecordCacheMiss()
	}

	data, err := c.get(ctx, source, url)
	if err != nil {
		return nil, err
	}

	if c.archive != nil {
		if err := c.archive.Set(ctx, url, data, c.cfg.ArchiveCacheTTL); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("Archive cache write failed")
		}
	}

	return data, nil
}
