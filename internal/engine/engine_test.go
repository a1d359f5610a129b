// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasoilabs/rasoi/internal/models"
)

func newTestEngine(t *testing.T, provider CatalogProvider) *Engine {
	t.Helper()
	eng, err := New(DefaultConfig(), provider, zerolog.Nop())
	require.NoError(t, err)
	return eng
}

func TestNewValidation(t *testing.T) {
	_, err := New(DefaultConfig(), nil, zerolog.Nop())
	assert.Error(t, err)

	bad := DefaultConfig()
	bad.Limits.DefaultCount = -1
	_, err = New(bad, stubCatalog{}, zerolog.Nop())
	assert.Error(t, err)

	eng, err := New(nil, stubCatalog{}, zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, eng)
}

func TestGenerateRecommendationsSuccess(t *testing.T) {
	eng := newTestEngine(t, stubCatalog{foods: fixtureCatalog()})

	result := eng.GenerateRecommendations(context.Background(), RecommendationRequest{
		Profile:     models.UserProfile{HealthGoals: []string{"weight loss"}},
		RequestType: RequestHealthy,
	})

	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.NotEmpty(t, result.RequestID)
	assert.NotEmpty(t, result.Recommendations)
	assert.LessOrEqual(t, len(result.Recommendations), 5)

	for _, rec := range result.Recommendations {
		assert.Greater(t, rec.Portion.Grams, 0.0)
		assert.NotNil(t, rec.Justifications)
	}

	// Results come back ranked.
	for i := 1; i < len(result.Recommendations); i++ {
		assert.GreaterOrEqual(t, result.Recommendations[i-1].Score, result.Recommendations[i].Score)
	}
}

func TestGenerateRecommendationsEmptyCatalogIsSuccess(t *testing.T) {
	eng := newTestEngine(t, stubCatalog{})

	result := eng.GenerateRecommendations(context.Background(), RecommendationRequest{})

	assert.True(t, result.Success)
	assert.NotNil(t, result.Recommendations)
	assert.Empty(t, result.Recommendations)
}

func TestGenerateRecommendationsCatalogUnavailable(t *testing.T) {
	eng := newTestEngine(t, stubCatalog{err: errors.New("connection refused")})

	result := eng.GenerateRecommendations(context.Background(), RecommendationRequest{})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "food catalog unavailable")
	assert.Empty(t, result.Recommendations)
}

func TestGenerateRecommendationsMaxCountCapped(t *testing.T) {
	eng := newTestEngine(t, stubCatalog{foods: fixtureCatalog()})

	result := eng.GenerateRecommendations(context.Background(), RecommendationRequest{MaxCount: 1000})

	require.True(t, result.Success)
	assert.LessOrEqual(t, len(result.Recommendations), DefaultConfig().Limits.MaxCount)
}

func TestGenerateRecommendationsMealSlotFilter(t *testing.T) {
	eng := newTestEngine(t, stubCatalog{foods: fixtureCatalog()})

	result := eng.GenerateRecommendations(context.Background(), RecommendationRequest{
		MealSlot: SlotSnack,
		MaxCount: 10,
	})

	require.True(t, result.Success)
	for _, rec := range result.Recommendations {
		assert.Equal(t, models.CategorySnack, rec.Food.Category)
	}
}

func TestGenerateRecommendationsRequestIDPreserved(t *testing.T) {
	eng := newTestEngine(t, stubCatalog{foods: fixtureCatalog()})

	result := eng.GenerateRecommendations(context.Background(), RecommendationRequest{RequestID: "trace-1"})

	assert.Equal(t, "trace-1", result.RequestID)
}

func TestGenerateMealPlan(t *testing.T) {
	eng := newTestEngine(t, stubCatalog{foods: fixtureCatalog()})

	result := eng.GenerateMealPlan(context.Background(), MealPlanRequest{
		Days:          3,
		IncludeSnacks: true,
	})

	require.True(t, result.Success)
	assert.Equal(t, []string{"day_1", "day_2", "day_3"}, result.DayLabels)
	assert.Len(t, result.Days, 3)
}

func TestGenerateMealPlanCatalogUnavailable(t *testing.T) {
	eng := newTestEngine(t, stubCatalog{err: errors.New("boom")})

	result := eng.GenerateMealPlan(context.Background(), MealPlanRequest{Days: 2})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "food catalog unavailable")
}

func TestGetPortionRecommendationByName(t *testing.T) {
	foods := fixtureCatalog()
	foods[0].Name = "Moong Dal"
	foods[0].Aliases = []string{"yellow dal"}
	eng := newTestEngine(t, stubCatalog{foods: foods})

	byName := eng.GetPortionRecommendation(context.Background(), PortionRequest{FoodName: "moong dal"})
	require.True(t, byName.Success)
	assert.Equal(t, "dal", byName.FoodID)
	assert.Equal(t, SlotLunch, byName.MealSlot)
	assert.Greater(t, byName.Portion.Grams, 0.0)
	assert.InDelta(t, 2000, byName.DailyCalories, 0.0001)

	byAlias := eng.GetPortionRecommendation(context.Background(), PortionRequest{FoodName: "Yellow Dal"})
	assert.True(t, byAlias.Success)

	byID := eng.GetPortionRecommendation(context.Background(), PortionRequest{FoodID: "rice", MealSlot: SlotDinner})
	require.True(t, byID.Success)
	assert.Equal(t, SlotDinner, byID.MealSlot)
}

func TestGetPortionRecommendationNotFound(t *testing.T) {
	eng := newTestEngine(t, stubCatalog{foods: fixtureCatalog()})

	result := eng.GetPortionRecommendation(context.Background(), PortionRequest{FoodName: "pizza"})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "food not found")
}

func TestAnalyzeNutritionalBalanceNeverFails(t *testing.T) {
	// Balance analysis must work even when the catalog is down.
	eng := newTestEngine(t, stubCatalog{err: errors.New("down")})

	analysis := eng.AnalyzeNutritionalBalance(BalanceRequest{
		Consumed: []ConsumedItem{
			{Name: "dal", Nutrition: models.NutritionFacts{Calories: 105}, QuantityGrams: 150},
		},
	})

	assert.InDelta(t, 157.5, analysis.TotalCalories, 0.0001)
}

func TestGetComplementaryFoods(t *testing.T) {
	eng := newTestEngine(t, stubCatalog{foods: fixtureCatalog()})

	result := eng.GetComplementaryFoods(context.Background(), ComplementaryRequest{
		Consumed: []ConsumedItem{
			{Name: "rice", Nutrition: models.NutritionFacts{Calories: 130, Protein: 2.7, Fiber: 1.8}, QuantityGrams: 150},
		},
	})

	require.True(t, result.Success)
	assert.NotEmpty(t, result.Deficiencies)
	assert.NotEmpty(t, result.Recommendations)
}

func TestGetComplementaryFoodsMaxSuggestions(t *testing.T) {
	eng := newTestEngine(t, stubCatalog{foods: fixtureCatalog()})

	result := eng.GetComplementaryFoods(context.Background(), ComplementaryRequest{
		Consumed: []ConsumedItem{
			{Name: "rice", Nutrition: models.NutritionFacts{Calories: 130, Protein: 2.7, Fiber: 1.8}, QuantityGrams: 150},
		},
		MaxSuggestions: 1,
	})

	require.True(t, result.Success)
	assert.Len(t, result.Recommendations, 1)
}

func TestGetComplementaryFoodsNoGaps(t *testing.T) {
	// A fully adequate day needs no catalog fetch at all.
	eng := newTestEngine(t, stubCatalog{err: errors.New("down")})

	result := eng.GetComplementaryFoods(context.Background(), ComplementaryRequest{
		Consumed: []ConsumedItem{
			{Name: "everything", Nutrition: models.NutritionFacts{Protein: 8, Fiber: 2.6}, QuantityGrams: 1000},
		},
	})

	assert.True(t, result.Success)
	assert.Empty(t, result.Deficiencies)
	assert.Empty(t, result.Recommendations)
}
