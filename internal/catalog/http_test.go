// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPRequiresURL(t *testing.T) {
	_, err := NewHTTP(HTTPConfig{}, zerolog.Nop())
	assert.Error(t, err)
}

func TestHTTPFoods(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"f1","name":"Dal","category":"legume_dish","nutrition":{"calories":105}}]`))
	}))
	defer srv.Close()

	provider, err := NewHTTP(HTTPConfig{URL: srv.URL, CacheTTL: time.Minute}, zerolog.Nop())
	require.NoError(t, err)

	foods, err := provider.Foods(context.Background())
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "f1", foods[0].ID)

	// Second call within the TTL is served from cache.
	_, err = provider.Foods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestHTTPFoodsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	provider, err := NewHTTP(HTTPConfig{URL: srv.URL}, zerolog.Nop())
	require.NoError(t, err)

	_, err = provider.Foods(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch catalog")
}

func TestHTTPFoodsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	provider, err := NewHTTP(HTTPConfig{URL: srv.URL}, zerolog.Nop())
	require.NoError(t, err)

	_, err = provider.Foods(context.Background())
	assert.Error(t, err)
}
