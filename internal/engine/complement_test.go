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

func TestRichIn(t *testing.T) {
	nf := models.NutritionFacts{
		Protein:  12,
		Fiber:    3,
		Vitamins: map[string]float64{"vitamin_c": 20},
		Minerals: map[string]float64{"iron": 2.5},
	}

	assert.True(t, richIn(nf, "protein"))
	assert.False(t, richIn(nf, "fiber"))
	assert.True(t, richIn(nf, "iron"))
	assert.True(t, richIn(nf, "vitamin_c"))
	assert.False(t, richIn(nf, "calcium"))
}

func TestDetectDeficienciesSeverity(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	// 40g protein of a 75g target is ~53%: mild. Zero fiber: moderate.
	// 20mg vitamin C of a 90mg target is ~22%, but micros are always mild.
	items := []ConsumedItem{
		{
			Name: "paneer",
			Nutrition: models.NutritionFacts{
				Protein:  20,
				Vitamins: map[string]float64{"vitamin_c": 10},
			},
			QuantityGrams: 200,
		},
	}

	deficiencies := DetectDeficiencies(items, uc, cfg)

	byNutrient := map[string]NutrientDeficiency{}
	for _, d := range deficiencies {
		byNutrient[d.Nutrient] = d
	}

	require.Contains(t, byNutrient, "protein")
	assert.Equal(t, SeverityMild, byNutrient["protein"].Severity)

	require.Contains(t, byNutrient, "fiber")
	assert.Equal(t, SeverityModerate, byNutrient["fiber"].Severity)

	require.Contains(t, byNutrient, "vitamin_c")
	assert.Equal(t, SeverityMild, byNutrient["vitamin_c"].Severity)
}

func TestDetectDeficienciesNoneAboveThreshold(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	items := []ConsumedItem{
		{
			Name:          "full day",
			Nutrition:     models.NutritionFacts{Protein: 8, Fiber: 2.6},
			QuantityGrams: 1000,
		},
	}

	deficiencies := DetectDeficiencies(items, uc, cfg)
	assert.Empty(t, deficiencies)
}

func TestFindComplementaryFillsGaps(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	catalog := []models.FoodRecord{
		testFood("protein-a", models.CategoryLegumeDish, models.NutritionFacts{Protein: 18}),
		testFood("protein-b", models.CategoryCurry, models.NutritionFacts{Protein: 15}),
		testFood("protein-c", models.CategorySnack, models.NutritionFacts{Protein: 12}),
		testFood("fiber-a", models.CategoryVegetableDish, models.NutritionFacts{Fiber: 8}),
		testFood("neither", models.CategoryBeverage, models.NutritionFacts{Calories: 30}),
	}

	deficiencies := []NutrientDeficiency{
		{Nutrient: "protein", Severity: SeverityModerate},
		{Nutrient: "fiber", Severity: SeverityModerate},
	}

	out := FindComplementary(catalog, uc, deficiencies, 0, cfg)

	require.NotEmpty(t, out)
	ids := make([]string, 0, len(out))
	for _, rec := range out {
		ids = append(ids, rec.Food.ID)
	}

	// Two protein sources (ranked order), then the fiber source.
	assert.Contains(t, ids, "protein-a")
	assert.Contains(t, ids, "fiber-a")
	assert.NotContains(t, ids, "neither")
	assert.NotContains(t, ids, "protein-c", "per-nutrient cap is 2")
	assert.LessOrEqual(t, len(out), cfg.Limits.DefaultCount)
}

func TestFindComplementaryDeduplicates(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	// One food rich in both deficient nutrients appears once.
	catalog := []models.FoodRecord{
		testFood("both", models.CategoryLegumeDish, models.NutritionFacts{Protein: 18, Fiber: 8}),
	}
	deficiencies := []NutrientDeficiency{
		{Nutrient: "protein"},
		{Nutrient: "fiber"},
	}

	out := FindComplementary(catalog, uc, deficiencies, 0, cfg)

	require.Len(t, out, 1)
	assert.Equal(t, "both", out[0].Food.ID)
}

func TestFindComplementaryMaxSuggestions(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	catalog := []models.FoodRecord{
		testFood("protein-a", models.CategoryLegumeDish, models.NutritionFacts{Protein: 18}),
		testFood("protein-b", models.CategoryCurry, models.NutritionFacts{Protein: 15}),
		testFood("fiber-a", models.CategoryVegetableDish, models.NutritionFacts{Fiber: 8}),
	}
	deficiencies := []NutrientDeficiency{
		{Nutrient: "protein"},
		{Nutrient: "fiber"},
	}

	out := FindComplementary(catalog, uc, deficiencies, 1, cfg)
	require.Len(t, out, 1)

	// Zero falls back to the configured default count.
	out = FindComplementary(catalog, uc, deficiencies, 0, cfg)
	assert.Len(t, out, 3)

	// Oversized requests are capped at the configured maximum.
	out = FindComplementary(catalog, uc, deficiencies, cfg.Limits.MaxCount+10, cfg)
	assert.LessOrEqual(t, len(out), cfg.Limits.MaxCount)
}

func TestFindComplementaryNoDeficiencies(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	out := FindComplementary(fixtureCatalog(), uc, nil, 0, cfg)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}
