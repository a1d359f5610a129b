// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/rasoilabs/rasoi/internal/engine"
	"github.com/rasoilabs/rasoi/internal/metrics"
	"github.com/rasoilabs/rasoi/internal/models"
)

// Handler holds the dependencies of all API endpoints.
type Handler struct {
	engine  *engine.Engine
	catalog engine.CatalogProvider
	logger  zerolog.Logger
	started time.Time
}

// NewHandler creates the API handler set.
func NewHandler(eng *engine.Engine, catalog engine.CatalogProvider, logger zerolog.Logger) *Handler {
	return &Handler{
		engine:  eng,
		catalog: catalog,
		logger:  logger.With().Str("component", "api").Logger(),
		started: time.Now(),
	}
}

// HealthLive reports process liveness.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"}, 0)
}

// HealthReady reports readiness: the catalog must be reachable.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	foods, err := h.catalog.Foods(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "Food catalog is not reachable", err)
		return
	}
	metrics.CatalogSize.Set(float64(len(foods)))
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"status":          "ready",
		"catalog_records": len(foods),
	}, 0)
}

// Health reports overall service health and uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	catalogOK := true
	if _, err := h.catalog.Foods(r.Context()); err != nil {
		status = "degraded"
		catalogOK = false
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"status":         status,
		"catalog":        catalogOK,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	}, 0)
}

// Foods returns the catalog, optionally narrowed by category and region
// query parameters.
func (h *Handler) Foods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.catalog.Foods(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "Food catalog is not reachable", err)
		return
	}

	category := r.URL.Query().Get("category")
	region := r.URL.Query().Get("region")

	if category != "" && !models.FoodCategory(category).Valid() {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown food category", nil)
		return
	}

	out := make([]models.FoodRecord, 0, len(foods))
	for _, f := range foods {
		if category != "" && string(f.Category) != category {
			continue
		}
		if region != "" && !availableIn(f, region) {
			continue
		}
		out = append(out, f)
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"foods": out,
		"total": len(out),
	}, 0)
}

// FoodByID returns a single catalog record.
func (h *Handler) FoodByID(w http.ResponseWriter, r *http.Request) {
	foods, err := h.catalog.Foods(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "Food catalog is not reachable", err)
		return
	}

	id := chi.URLParam(r, "id")
	for _, f := range foods {
		if f.ID == id {
			respondSuccess(w, http.StatusOK, f, 0)
			return
		}
	}
	respondError(w, http.StatusNotFound, "NOT_FOUND", "Food not found", nil)
}

// availableIn reports whether a record is available in the given region,
// matching the primary region or any listed one.
func availableIn(f models.FoodRecord, region string) bool {
	if strings.EqualFold(f.Availability.PrimaryRegion, region) {
		return true
	}
	for _, r := range f.Availability.Regions {
		if strings.EqualFold(r, region) {
			return true
		}
	}
	return false
}
