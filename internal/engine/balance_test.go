// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasoilabs/rasoi/internal/models"
)

func TestAnalyzeBalanceQuantityScaling(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	items := []ConsumedItem{
		{
			Name:          "dal",
			Nutrition:     models.NutritionFacts{Calories: 100, Protein: 7, Carbs: 14, Fat: 2, Fiber: 4},
			QuantityGrams: 200,
		},
	}

	a := AnalyzeBalance(items, uc, cfg)

	assert.InDelta(t, 200, a.TotalCalories, 0.0001)
	assert.InDelta(t, 14, a.Protein.Current, 0.0001)
	assert.InDelta(t, 28, a.Carbs.Current, 0.0001)
	assert.InDelta(t, 8, a.Fiber.Current, 0.0001)
}

func TestAnalyzeBalanceTargets(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	a := AnalyzeBalance(nil, uc, cfg)

	// 2000 kcal default: 15/55/30 shares at 4/4/9 kcal per gram.
	assert.InDelta(t, 2000, a.TargetCalories, 0.0001)
	assert.InDelta(t, 75, a.Protein.Target, 0.0001)
	assert.InDelta(t, 275, a.Carbs.Target, 0.0001)
	assert.InDelta(t, 66.67, a.Fat.Target, 0.01)
	assert.InDelta(t, 25, a.Fiber.Target, 0.0001)
	assert.InDelta(t, 2300, a.SodiumTargetMG, 0.0001)
}

func TestAnalyzeBalancePercentClamping(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	items := []ConsumedItem{
		{
			Name:          "feast",
			Nutrition:     models.NutritionFacts{Calories: 900, Protein: 50},
			QuantityGrams: 1000,
		},
	}

	a := AnalyzeBalance(items, uc, cfg)

	assert.InDelta(t, 200, a.CaloriePercent, 0.0001)
	assert.InDelta(t, 200, a.Protein.Percent, 0.0001)
}

func TestAnalyzeBalanceMicronutrients(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	items := []ConsumedItem{
		{
			Name: "palak",
			Nutrition: models.NutritionFacts{
				Vitamins: map[string]float64{"vitamin_c": 45, "mystery_vitamin": 10},
				Minerals: map[string]float64{"iron": 9},
			},
			QuantityGrams: 200,
		},
	}

	a := AnalyzeBalance(items, uc, cfg)

	byName := map[string]MicronutrientAnalysis{}
	for _, m := range a.Micronutrients {
		byName[m.Name] = m
	}

	// Unknown nutrients are skipped; tracked ones are scaled by quantity.
	require.NotContains(t, byName, "mystery_vitamin")

	vc := byName["vitamin_c"]
	assert.InDelta(t, 90, vc.Current, 0.0001)
	assert.InDelta(t, 100, vc.Percent, 0.0001)
	assert.Equal(t, "adequate", vc.Status)

	iron := byName["iron"]
	assert.InDelta(t, 18, iron.Current, 0.0001)
	assert.Equal(t, "adequate", iron.Status)
}

func TestAnalyzeBalanceSuggestions(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	// Nothing consumed: every macro is deficient.
	a := AnalyzeBalance(nil, uc, cfg)

	assert.Contains(t, a.Suggestions, "Add protein-rich foods like dals, paneer, or sprouts")
	assert.Contains(t, a.Suggestions, "Increase vegetables, fruits, and whole grains for fiber")
}

func TestAnalyzeBalanceCalorieSuggestion(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	// A day at roughly 10% of the calorie target must flag total intake,
	// not just the individual macros.
	items := []ConsumedItem{
		{
			Name:          "light snack",
			Nutrition:     models.NutritionFacts{Calories: 100, Protein: 2, Carbs: 15, Fat: 2, Fiber: 1},
			QuantityGrams: 200,
		},
	}

	a := AnalyzeBalance(items, uc, cfg)

	require.Less(t, a.CaloriePercent, cfg.DeficiencyThresholdPct)
	assert.Contains(t, a.Suggestions, calorieSuggestion)

	// A day at target carries no calorie suggestion.
	full := []ConsumedItem{
		{
			Name:          "full day",
			Nutrition:     models.NutritionFacts{Calories: 100},
			QuantityGrams: 2000,
		},
	}
	a = AnalyzeBalance(full, uc, cfg)
	assert.NotContains(t, a.Suggestions, calorieSuggestion)
}

func TestClampPercent(t *testing.T) {
	assert.Zero(t, clampPercent(50, 0))
	assert.Zero(t, clampPercent(-10, 100))
	assert.InDelta(t, 50, clampPercent(50, 100), 0.0001)
	assert.InDelta(t, 200, clampPercent(500, 100), 0.0001)
}
