// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package api

import (
	"net/http"

	"github.com/rasoilabs/rasoi/internal/engine"
	"github.com/rasoilabs/rasoi/internal/logging"
	"github.com/rasoilabs/rasoi/internal/metrics"
	"github.com/rasoilabs/rasoi/internal/models"
)

// recommendationsRequest is the POST /recommendations body. The profile is
// never validated here: sparse profiles are legal and get defaults inside
// the engine.
type recommendationsRequest struct {
	Profile            models.UserProfile `json:"profile"`
	RequestType        string             `json:"request_type" validate:"omitempty,reqtype"`
	MaxCount           int                `json:"max_count" validate:"omitempty,min=1,max=50"`
	MealSlot           string             `json:"meal_slot" validate:"omitempty,mealslot"`
	ExcludeIngredients []string           `json:"exclude_ingredients" validate:"omitempty,max=50,dive,min=1,max=100"`
}

// Recommendations handles POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	result := h.engine.GenerateRecommendations(r.Context(), engine.RecommendationRequest{
		Profile:            req.Profile,
		RequestType:        engine.RequestType(req.RequestType),
		MaxCount:           req.MaxCount,
		MealSlot:           engine.MealSlot(req.MealSlot),
		ExcludeIngredients: req.ExcludeIngredients,
		RequestID:          logging.RequestIDFromContext(r.Context()),
	})

	metrics.RecordEngineOperation("recommendations", req.RequestType, result.Success, len(result.Recommendations))

	if !result.Success {
		respondError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", result.Error, nil)
		return
	}
	respondSuccess(w, http.StatusOK, result, result.LatencyMS)
}

// mealPlansRequest is the POST /meal-plans body.
type mealPlansRequest struct {
	Profile            models.UserProfile `json:"profile"`
	Days               int                `json:"days" validate:"omitempty,min=1,max=14"`
	IncludeSnacks      bool               `json:"include_snacks"`
	ExcludeIngredients []string           `json:"exclude_ingredients" validate:"omitempty,max=50,dive,min=1,max=100"`
}

// MealPlans handles POST /api/v1/meal-plans.
func (h *Handler) MealPlans(w http.ResponseWriter, r *http.Request) {
	var req mealPlansRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	result := h.engine.GenerateMealPlan(r.Context(), engine.MealPlanRequest{
		Profile:            req.Profile,
		Days:               req.Days,
		IncludeSnacks:      req.IncludeSnacks,
		ExcludeIngredients: req.ExcludeIngredients,
		RequestID:          logging.RequestIDFromContext(r.Context()),
	})

	items := 0
	for _, day := range result.Days {
		items += len(day)
	}
	metrics.RecordEngineOperation("meal_plan", "balanced", result.Success, items)

	if !result.Success {
		respondError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", result.Error, nil)
		return
	}
	respondSuccess(w, http.StatusOK, result, result.LatencyMS)
}

// portionsRequest is the POST /portions body. One of food_id or food_name
// must identify the food.
type portionsRequest struct {
	Profile  models.UserProfile `json:"profile"`
	FoodID   string             `json:"food_id" validate:"required_without=FoodName,omitempty,max=100"`
	FoodName string             `json:"food_name" validate:"required_without=FoodID,omitempty,max=200"`
	MealSlot string             `json:"meal_slot" validate:"omitempty,mealslot"`
}

// Portions handles POST /api/v1/portions.
func (h *Handler) Portions(w http.ResponseWriter, r *http.Request) {
	var req portionsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	result := h.engine.GetPortionRecommendation(r.Context(), engine.PortionRequest{
		Profile:   req.Profile,
		FoodID:    req.FoodID,
		FoodName:  req.FoodName,
		MealSlot:  engine.MealSlot(req.MealSlot),
		RequestID: logging.RequestIDFromContext(r.Context()),
	})

	if !result.Success {
		if isCatalogError(result.Error) {
			respondError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", result.Error, nil)
			return
		}
		respondError(w, http.StatusNotFound, "NOT_FOUND", result.Error, nil)
		return
	}
	respondSuccess(w, http.StatusOK, result, 0)
}

// balanceRequest is the POST /balance body.
type balanceRequest struct {
	Profile  models.UserProfile    `json:"profile"`
	Consumed []engine.ConsumedItem `json:"consumed" validate:"omitempty,max=200"`
}

// Balance handles POST /api/v1/balance.
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	var req balanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	analysis := h.engine.AnalyzeNutritionalBalance(engine.BalanceRequest{
		Profile:  req.Profile,
		Consumed: req.Consumed,
	})
	respondSuccess(w, http.StatusOK, analysis, 0)
}

// complementaryRequest is the POST /complementary body.
type complementaryRequest struct {
	Profile        models.UserProfile    `json:"profile"`
	Consumed       []engine.ConsumedItem `json:"consumed" validate:"omitempty,max=200"`
	MaxSuggestions int                   `json:"max_suggestions" validate:"omitempty,min=1,max=50"`
}

// Complementary handles POST /api/v1/complementary.
func (h *Handler) Complementary(w http.ResponseWriter, r *http.Request) {
	var req complementaryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	result := h.engine.GetComplementaryFoods(r.Context(), engine.ComplementaryRequest{
		Profile:        req.Profile,
		Consumed:       req.Consumed,
		MaxSuggestions: req.MaxSuggestions,
		RequestID:      logging.RequestIDFromContext(r.Context()),
	})

	metrics.RecordEngineOperation("complementary", "complementary", result.Success, len(result.Recommendations))
	if result.Success {
		metrics.DeficienciesDetected.Add(float64(len(result.Deficiencies)))
	}

	if !result.Success {
		respondError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", result.Error, nil)
		return
	}
	respondSuccess(w, http.StatusOK, result, 0)
}
