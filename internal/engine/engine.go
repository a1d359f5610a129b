// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rasoilabs/rasoi/internal/models"
)

// CatalogProvider supplies the food catalog. Defined here rather than in the
// catalog package so the engine depends only on behavior, not on a concrete
// source.
type CatalogProvider interface {
	// Foods returns the full catalog. An error means the catalog is
	// unavailable; callers surface that as a failed result, never a panic.
	Foods(ctx context.Context) ([]models.FoodRecord, error)
}

// Engine is the recommendation engine facade. It is stateless between calls
// and safe for concurrent use; all per-request state lives in the request and
// the derived user context.
type Engine struct {
	cfg     *Config
	catalog CatalogProvider
	logger  zerolog.Logger
	now     func() time.Time
}

// New creates an engine with a validated configuration and a catalog
// provider. A nil config gets production defaults.
func New(cfg *Config, catalog CatalogProvider, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	if catalog == nil {
		return nil, errors.New("catalog provider is required")
	}
	return &Engine{
		cfg:     cfg.Clone(),
		catalog: catalog,
		logger:  logger.With().Str("component", "engine").Logger(),
		now:     time.Now,
	}, nil
}

// GenerateRecommendations produces ranked, portioned, justified suggestions
// for the request. The only failure mode is an unavailable catalog; an empty
// recommendation list with Success=true is a valid, distinct outcome.
func (e *Engine) GenerateRecommendations(ctx context.Context, req RecommendationRequest) RecommendationResult {
	start := e.now()
	requestID := ensureRequestID(req.RequestID)
	uc := BuildUserContext(req.Profile, e.cfg)

	reqType := req.RequestType
	if reqType == "" {
		reqType = RequestBalanced
	}

	result := RecommendationResult{
		RequestID:       requestID,
		Recommendations: []Recommendation{},
		Context:         uc,
		GeneratedAt:     start,
	}

	foods, err := e.catalog.Foods(ctx)
	if err != nil {
		e.logger.Error().Err(err).Str("request_id", requestID).Msg("Catalog unavailable")
		result.Error = fmt.Sprintf("food catalog unavailable: %v", err)
		result.LatencyMS = e.sinceMS(start)
		return result
	}

	available := FilterAvailable(foods, uc, req.ExcludeIngredients)
	scored := ScoreAndRank(available, uc, reqType)
	result.Recommendations = SelectRecommendations(scored, uc, reqType, req.MealSlot, req.MaxCount, e.cfg)
	result.Success = true
	result.LatencyMS = e.sinceMS(start)

	e.logger.Debug().
		Str("request_id", requestID).
		Str("request_type", string(reqType)).
		Int("catalog_size", len(foods)).
		Int("candidates", len(available)).
		Int("returned", len(result.Recommendations)).
		Int64("latency_ms", result.LatencyMS).
		Msg("Recommendations generated")

	return result
}

// GenerateMealPlan composes a multi-day plan. Slot selections run
// concurrently; the assembled plan is deterministic for a given catalog and
// profile.
func (e *Engine) GenerateMealPlan(ctx context.Context, req MealPlanRequest) MealPlanResult {
	start := e.now()
	requestID := ensureRequestID(req.RequestID)
	uc := BuildUserContext(req.Profile, e.cfg)

	result := MealPlanResult{
		RequestID:   requestID,
		Days:        map[string][]Recommendation{},
		DayLabels:   []string{},
		Context:     uc,
		GeneratedAt: start,
	}

	foods, err := e.catalog.Foods(ctx)
	if err != nil {
		e.logger.Error().Err(err).Str("request_id", requestID).Msg("Catalog unavailable")
		result.Error = fmt.Sprintf("food catalog unavailable: %v", err)
		result.LatencyMS = e.sinceMS(start)
		return result
	}

	available := FilterAvailable(foods, uc, req.ExcludeIngredients)
	plan, labels, err := ComposePlan(ctx, available, uc, req.Days, req.IncludeSnacks, e.cfg)
	if err != nil {
		result.Error = fmt.Sprintf("meal plan aborted: %v", err)
		result.LatencyMS = e.sinceMS(start)
		return result
	}

	result.Days = plan
	result.DayLabels = labels
	result.Success = true
	result.LatencyMS = e.sinceMS(start)

	e.logger.Debug().
		Str("request_id", requestID).
		Int("days", len(labels)).
		Int("candidates", len(available)).
		Int64("latency_ms", result.LatencyMS).
		Msg("Meal plan generated")

	return result
}

// GetPortionRecommendation resolves a food by ID, name, or alias and computes
// its portion for the requested meal slot.
func (e *Engine) GetPortionRecommendation(ctx context.Context, req PortionRequest) PortionRecommendation {
	requestID := ensureRequestID(req.RequestID)
	uc := BuildUserContext(req.Profile, e.cfg)

	slot := req.MealSlot
	if slot == "" {
		slot = SlotLunch
	}

	result := PortionRecommendation{
		RequestID: requestID,
		MealSlot:  slot,
		Context:   uc,
	}

	foods, err := e.catalog.Foods(ctx)
	if err != nil {
		e.logger.Error().Err(err).Str("request_id", requestID).Msg("Catalog unavailable")
		result.Error = fmt.Sprintf("food catalog unavailable: %v", err)
		return result
	}

	food, ok := resolveFood(foods, req.FoodID, req.FoodName)
	if !ok {
		result.Error = fmt.Sprintf("food not found: %s%s", req.FoodID, req.FoodName)
		return result
	}

	result.FoodID = food.ID
	result.FoodName = food.Name
	result.Portion = PortionFor(food, uc, slot, e.cfg)
	result.DailyCalories = DailyCalorieTarget(uc, e.cfg)
	result.MealCalories = MealCalorieTarget(uc, slot, e.cfg)
	result.Success = true
	return result
}

// AnalyzeNutritionalBalance compares the consumed items against the user's
// daily targets. The analysis never touches the catalog and cannot fail.
func (e *Engine) AnalyzeNutritionalBalance(req BalanceRequest) NutritionalBalanceAnalysis {
	uc := BuildUserContext(req.Profile, e.cfg)
	return AnalyzeBalance(req.Consumed, uc, e.cfg)
}

// GetComplementaryFoods detects nutrient gaps in the consumed items and
// proposes admissible foods to fill them.
func (e *Engine) GetComplementaryFoods(ctx context.Context, req ComplementaryRequest) ComplementaryResult {
	requestID := ensureRequestID(req.RequestID)
	uc := BuildUserContext(req.Profile, e.cfg)

	result := ComplementaryResult{
		RequestID:       requestID,
		Deficiencies:    []NutrientDeficiency{},
		Recommendations: []Recommendation{},
	}

	deficiencies := DetectDeficiencies(req.Consumed, uc, e.cfg)
	result.Deficiencies = deficiencies
	if len(deficiencies) == 0 {
		result.Success = true
		return result
	}

	foods, err := e.catalog.Foods(ctx)
	if err != nil {
		e.logger.Error().Err(err).Str("request_id", requestID).Msg("Catalog unavailable")
		result.Error = fmt.Sprintf("food catalog unavailable: %v", err)
		return result
	}

	available := FilterAvailable(foods, uc, nil)
	result.Recommendations = FindComplementary(available, uc, deficiencies, req.MaxSuggestions, e.cfg)
	result.Success = true

	e.logger.Debug().
		Str("request_id", requestID).
		Int("deficiencies", len(deficiencies)).
		Int("suggestions", len(result.Recommendations)).
		Msg("Complementary foods selected")

	return result
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() *Config {
	return e.cfg.Clone()
}

func (e *Engine) sinceMS(start time.Time) int64 {
	return e.now().Sub(start).Milliseconds()
}

// resolveFood finds a catalog record by ID first, then by case-insensitive
// name or alias match.
func resolveFood(foods []models.FoodRecord, id, name string) (models.FoodRecord, bool) {
	if id != "" {
		for _, f := range foods {
			if f.ID == id {
				return f, true
			}
		}
	}
	if name != "" {
		for _, f := range foods {
			if strings.EqualFold(f.Name, name) {
				return f, true
			}
			for _, alias := range f.Aliases {
				if strings.EqualFold(alias, name) {
					return f, true
				}
			}
		}
	}
	return models.FoodRecord{}, false
}

func ensureRequestID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
