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

func TestDailyCalorieTargetWithoutWeight(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	assert.InDelta(t, 2000, DailyCalorieTarget(uc, cfg), 0.0001)
}

func TestDailyCalorieTargetHarrisBenedict(t *testing.T) {
	cfg := DefaultConfig()
	age := 25
	height := 175.0
	weight := 70.0

	tests := []struct {
		name     string
		gender   string
		activity string
		want     float64
	}{
		// BMR male: 88.362 + 13.397*70 + 4.799*175 - 5.677*25 = 1724.052
		{"male moderate", "male", "moderate", 1724.052 * 1.55},
		{"male sedentary", "male", "sedentary", 1724.052 * 1.2},
		// BMR female formula: 447.593 + 9.247*70 + 3.098*175 - 4.330*25
		{"female moderate", "female", "moderate", (447.593 + 9.247*70 + 3.098*175 - 4.330*25) * 1.55},
		{"unknown activity falls back to moderate", "male", "couch", 1724.052 * 1.55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := BuildUserContext(models.UserProfile{
				Age:           &age,
				Gender:        tt.gender,
				HeightCM:      &height,
				WeightKG:      &weight,
				ActivityLevel: tt.activity,
			}, cfg)
			assert.InDelta(t, tt.want, DailyCalorieTarget(uc, cfg), 0.01)
		})
	}
}

func TestDailyCalorieTargetHeightDefaults(t *testing.T) {
	cfg := DefaultConfig()
	weight := 70.0

	male := BuildUserContext(models.UserProfile{Gender: "male", WeightKG: &weight}, cfg)
	other := BuildUserContext(models.UserProfile{WeightKG: &weight}, cfg)

	// Heights default by gender (175 male, 165 otherwise), so the two
	// targets must differ.
	assert.NotEqual(t, DailyCalorieTarget(male, cfg), DailyCalorieTarget(other, cfg))
}

func TestMealCalorieTargetFractions(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	assert.InDelta(t, 500, MealCalorieTarget(uc, SlotBreakfast, cfg), 0.0001)
	assert.InDelta(t, 700, MealCalorieTarget(uc, SlotLunch, cfg), 0.0001)
	assert.InDelta(t, 600, MealCalorieTarget(uc, SlotDinner, cfg), 0.0001)
	assert.InDelta(t, 200, MealCalorieTarget(uc, SlotSnack, cfg), 0.0001)
}

func TestPortionForLunchRice(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	rice := testFood("rice", models.CategoryStapleGrain, models.NutritionFacts{Calories: 130})
	rice.Portions = models.PortionGuide{}

	p := PortionFor(rice, uc, SlotLunch, cfg)

	// 700 kcal lunch, 40% from this food: 280 / 1.3 = 215.38 -> 215g.
	assert.InDelta(t, 215, p.Grams, 0.5)
	assert.InDelta(t, 280, p.Calories, 1.0)
	assert.Equal(t, "bowl", p.Unit)
	assert.InDelta(t, 1.5, p.UnitQuantity, 0.0001)
	assert.Equal(t, "Balanced portion for lunch", p.Rationale)
}

func TestPortionForUsesPortionGuideUnit(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	roti := testFood("roti", models.CategoryFlatbread, models.NutritionFacts{Calories: 297})
	roti.Portions = models.PortionGuide{
		Units:               map[string]float64{"piece": 30},
		DefaultServingGrams: 60,
	}

	p := PortionFor(roti, uc, SlotBreakfast, cfg)

	// 500 kcal breakfast, 40% share: 200 / 2.97 = 67.3 -> 67g -> 2.0 pieces.
	assert.Equal(t, "piece", p.Unit)
	assert.InDelta(t, 2.0, p.UnitQuantity, 0.26)
}

func TestPortionForZeroCalorieFood(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	water := testFood("water", models.CategoryBeverage, models.NutritionFacts{})
	water.Portions = models.PortionGuide{DefaultServingGrams: 200}

	p := PortionFor(water, uc, SlotSnack, cfg)

	assert.InDelta(t, 200, p.Grams, 0.0001)
	assert.Zero(t, p.Calories)
}

func TestPortionRationaleFollowsDominantGoal(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{HealthGoals: []string{"weight loss"}}, cfg)

	assert.Equal(t, "Portion adjusted for weight loss goals", portionRationale(uc, SlotLunch))
}

func TestStandardPortionDefaults(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	food := testFood("x", models.CategorySnack, models.NutritionFacts{Calories: 100})
	food.Portions = models.PortionGuide{}

	p := standardPortion(food, uc, cfg)

	require.InDelta(t, 100, p.Grams, 0.0001)
	assert.InDelta(t, 100, p.Calories, 0.0001)
	assert.Equal(t, "Standard serving", p.Rationale)
}

func TestPortionForAppliesPreparationMultiplier(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	rice := testFood("rice", models.CategoryStapleGrain, models.NutritionFacts{Calories: 130})
	fried := testFood("fried-rice", models.CategoryStapleGrain, models.NutritionFacts{Calories: 130})
	fried.Preparation.NutritionMultiplier = 2.0

	plain := PortionFor(rice, uc, SlotLunch, cfg)
	denser := PortionFor(fried, uc, SlotLunch, cfg)

	// Doubled calorie density halves the recommended weight while the
	// portion still supplies the same slot calorie share.
	assert.InDelta(t, 215, plain.Grams, 0.5)
	assert.InDelta(t, 108, denser.Grams, 0.5)
	assert.InDelta(t, plain.Calories, denser.Calories, 2)
}
