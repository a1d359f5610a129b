// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/rasoilabs/rasoi/internal/models"
)

// activityFactors maps an activity level to its daily-calorie multiplier.
// Single source of truth; unknown levels fall back to moderate.
var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// slotCalorieFractions allocates the daily calorie target across meal slots.
var slotCalorieFractions = map[MealSlot]float64{
	SlotBreakfast: 0.25,
	SlotLunch:     0.35,
	SlotDinner:    0.30,
	SlotSnack:     0.10,
}

// categoryUnitDefault is a fallback regional unit for records without a
// portion guide.
type categoryUnitDefault struct {
	unit  string
	grams float64
}

// categoryUnitDefaults maps food categories to their fallback serving units.
var categoryUnitDefaults = map[models.FoodCategory]categoryUnitDefault{
	models.CategoryStapleGrain:   {unit: "bowl", grams: 150},
	models.CategoryLegumeDish:    {unit: "bowl", grams: 150},
	models.CategoryFlatbread:     {unit: "piece", grams: 30},
	models.CategoryVegetableDish: {unit: "katori", grams: 100},
	models.CategoryCurry:         {unit: "katori", grams: 100},
}

// DailyCalorieTarget computes the user's daily calorie need. With a known
// weight it applies a Harris-Benedict BMR (height defaulting by gender, age
// from the context) times the activity factor; without a weight it returns
// the configured flat default, since the formula would be meaningless.
func DailyCalorieTarget(uc UserContext, cfg *Config) float64 {
	if uc.WeightKG <= 0 {
		return cfg.Defaults.DailyCalories
	}

	height := uc.HeightCM
	var bmr float64
	if uc.Gender == "male" {
		if height <= 0 {
			height = cfg.Defaults.MaleHeightCM
		}
		bmr = 88.362 + 13.397*uc.WeightKG + 4.799*height - 5.677*float64(uc.Age)
	} else {
		if height <= 0 {
			height = cfg.Defaults.FemaleHeightCM
		}
		bmr = 447.593 + 9.247*uc.WeightKG + 3.098*height - 4.330*float64(uc.Age)
	}

	factor, ok := activityFactors[uc.ActivityLevel]
	if !ok {
		factor = activityFactors["moderate"]
	}

	daily := bmr * factor
	if daily < 0 {
		daily = 0
	}
	return daily
}

// MealCalorieTarget returns the calorie allocation for one meal slot.
func MealCalorieTarget(uc UserContext, slot MealSlot, cfg *Config) float64 {
	fraction, ok := slotCalorieFractions[slot]
	if !ok {
		fraction = slotCalorieFractions[SlotLunch]
	}
	return DailyCalorieTarget(uc, cfg) * fraction
}

// PortionFor computes the recommended portion of a food for a meal slot: the
// food should supply the configured share (default 40%) of the slot's
// calorie target. Grams and calories are always non-negative.
func PortionFor(food models.FoodRecord, uc UserContext, slot MealSlot, cfg *Config) Portion {
	mealTarget := MealCalorieTarget(uc, slot, cfg)
	nf := food.EffectiveNutrition()

	grams := food.Portions.DefaultServingGrams
	if nf.Calories > 0 {
		grams = (mealTarget * cfg.SlotCalorieShare) / (nf.Calories / 100)
	}
	if grams < 0 {
		grams = 0
	}
	grams = math.Round(grams)

	unit, qty := toRegionalUnit(food, grams)

	return Portion{
		Grams:        grams,
		Unit:         unit,
		UnitQuantity: qty,
		Calories:     math.Round(grams * nf.Calories / 100),
		Rationale:    portionRationale(uc, slot),
	}
}

// standardPortion returns the record's default serving, used when no
// slot-specific calculation was requested.
func standardPortion(food models.FoodRecord, uc UserContext, cfg *Config) Portion {
	grams := food.Portions.DefaultServingGrams
	if grams <= 0 {
		grams = 100
	}

	unit, qty := toRegionalUnit(food, grams)

	return Portion{
		Grams:        grams,
		Unit:         unit,
		UnitQuantity: qty,
		Calories:     math.Round(grams * food.EffectiveNutrition().Calories / 100),
		Rationale:    "Standard serving",
	}
}

// toRegionalUnit converts a gram weight to a culturally familiar serving
// unit. The food's own portion guide wins; category defaults cover the rest;
// otherwise the portion stays in raw grams. Quantities are rounded to the
// nearest half unit with a floor of one half.
func toRegionalUnit(food models.FoodRecord, grams float64) (string, float64) {
	if unit, perUnit, ok := guideUnit(food.Portions); ok {
		return unit, roundHalf(grams / perUnit)
	}
	if def, ok := categoryUnitDefaults[food.Category]; ok {
		return def.unit, roundHalf(grams / def.grams)
	}
	return "grams", grams
}

// guideUnit picks the food's regional unit deterministically: the first unit
// name in sorted order. Guides typically carry a single unit.
func guideUnit(guide models.PortionGuide) (string, float64, bool) {
	if len(guide.Units) == 0 {
		return "", 0, false
	}
	names := make([]string, 0, len(guide.Units))
	for name, perUnit := range guide.Units {
		if perUnit > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", 0, false
	}
	sort.Strings(names)
	return names[0], guide.Units[names[0]], true
}

// roundHalf rounds to the nearest 0.5 with a floor of 0.5 for any positive
// quantity.
func roundHalf(q float64) float64 {
	if q <= 0 {
		return 0
	}
	rounded := math.Round(q*2) / 2
	if rounded < 0.5 {
		return 0.5
	}
	return rounded
}

// goalRationales maps a dominant health goal to its portion rationale.
var goalRationales = map[string]string{
	"weight loss":     "Portion adjusted for weight loss goals",
	"weight gain":     "Larger portion to support weight gain",
	"muscle building": "Protein-focused portion for muscle building",
}

// portionRationale keys the sizing explanation to the user's dominant goal.
func portionRationale(uc UserContext, slot MealSlot) string {
	if r, ok := goalRationales[uc.DominantGoal()]; ok {
		return r
	}
	return fmt.Sprintf("Balanced portion for %s", slot)
}
