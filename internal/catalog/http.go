// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/rasoilabs/rasoi/internal/models"
)

// HTTPConfig configures the remote catalog client.
type HTTPConfig struct {
	// URL is the full catalog endpoint returning a JSON array of records.
	URL string `json:"url" koanf:"url"`

	// Timeout bounds a single fetch.
	Timeout time.Duration `json:"timeout" koanf:"timeout"`

	// CacheTTL is how long a fetched catalog is served without refetching.
	CacheTTL time.Duration `json:"cache_ttl" koanf:"cache_ttl"`
}

// DefaultHTTPConfig returns the remote catalog client defaults.
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		Timeout:  10 * time.Second,
		CacheTTL: 5 * time.Minute,
	}
}

// HTTP fetches the catalog from a remote service. A circuit breaker guards
// the upstream and a TTL cache keeps request latency flat between refreshes.
// While the cache holds a live copy, upstream failures are invisible to
// callers; once it expires and the upstream stays down, Foods returns the
// error and the engine reports the catalog unavailable.
type HTTP struct {
	cfg     HTTPConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]models.FoodRecord]
	logger  zerolog.Logger

	mu        sync.RWMutex
	cached    []models.FoodRecord
	fetchedAt time.Time
}

// NewHTTP creates a remote catalog client.
func NewHTTP(cfg HTTPConfig, logger zerolog.Logger) (*HTTP, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("catalog url is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultHTTPConfig().Timeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultHTTPConfig().CacheTTL
	}

	h := &HTTP{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.With().Str("component", "catalog_http").Logger(),
	}

	h.breaker = gobreaker.NewCircuitBreaker[[]models.FoodRecord](gobreaker.Settings{
		Name:        "food-catalog",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			h.logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Catalog circuit breaker state changed")
		},
	})

	return h, nil
}

// Foods returns the cached catalog when fresh, otherwise fetches through the
// circuit breaker.
func (h *HTTP) Foods(ctx context.Context) ([]models.FoodRecord, error) {
	h.mu.RLock()
	if h.cached != nil && time.Since(h.fetchedAt) < h.cfg.CacheTTL {
		foods := h.cached
		h.mu.RUnlock()
		return foods, nil
	}
	h.mu.RUnlock()

	foods, err := h.breaker.Execute(func() ([]models.FoodRecord, error) {
		return h.fetch(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	h.mu.Lock()
	h.cached = foods
	h.fetchedAt = time.Now()
	h.mu.Unlock()

	return foods, nil
}

func (h *HTTP) fetch(ctx context.Context) ([]models.FoodRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.cfg.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) //nolint:errcheck // drain for connection reuse
		return nil, fmt.Errorf("catalog endpoint returned %d", resp.StatusCode)
	}

	var foods []models.FoodRecord
	if err := json.NewDecoder(resp.Body).Decode(&foods); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	h.logger.Debug().Int("records", len(foods)).Msg("Catalog fetched")
	return foods, nil
}
