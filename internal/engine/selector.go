// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"github.com/rasoilabs/rasoi/internal/models"
)

// coarseSlot is the intermediate slot class a category maps to before
// matching against a requested meal slot.
type coarseSlot string

const (
	coarseMain    coarseSlot = "main"
	coarseSnack   coarseSlot = "snack"
	coarseDessert coarseSlot = "dessert"
	coarseDrink   coarseSlot = "drink"
)

// categorySlots maps each food category to its coarse meal-slot class.
// Lookup-table dispatch keeps the mapping exhaustively testable.
var categorySlots = map[models.FoodCategory]coarseSlot{
	models.CategoryStapleGrain:   coarseMain,
	models.CategoryLegumeDish:    coarseMain,
	models.CategoryVegetableDish: coarseMain,
	models.CategoryFlatbread:     coarseMain,
	models.CategoryCurry:         coarseMain,
	models.CategorySnack:         coarseSnack,
	models.CategoryDessert:       coarseDessert,
	models.CategoryBeverage:      coarseDrink,
}

// slotAccepts reports whether a food in the given coarse class fits the
// requested meal slot. Mains serve breakfast, lunch, and dinner alike.
func slotAccepts(requested MealSlot, class coarseSlot) bool {
	switch requested {
	case SlotBreakfast, SlotLunch, SlotDinner:
		return class == coarseMain
	case SlotSnack:
		return class == coarseSnack
	default:
		return string(requested) == string(class)
	}
}

// categoryTips maps a food category to its default cooking tip, if any.
var categoryTips = map[models.FoodCategory]string{
	models.CategoryVegetableDish: "Steam or sauté lightly to preserve nutrients",
	models.CategoryLegumeDish:    "Soak well and pressure-cook for easier digestion",
	models.CategoryStapleGrain:   "Prefer whole-grain or hand-pounded varieties",
}

// conditionTips maps a medical condition to condition-specific cooking
// advice attached to every recommendation.
var conditionTips = map[string]string{
	"diabetes":     "Cook with minimal oil and no added sugar",
	"hypertension": "Use herbs and spices instead of salt",
}

// SelectRecommendations ranks scored candidates, optionally restricts them to
// a meal slot, truncates to limit, and constructs the final recommendations
// with portions, justifications, and cooking tips. A zero limit falls back to
// the configured default; limits are capped at the configured maximum.
func SelectRecommendations(scored []ScoredCandidate, uc UserContext, reqType RequestType, slot MealSlot, limit int, cfg *Config) []Recommendation {
	if limit <= 0 {
		limit = cfg.Limits.DefaultCount
	}
	if limit > cfg.Limits.MaxCount {
		limit = cfg.Limits.MaxCount
	}

	out := make([]Recommendation, 0, limit)
	for _, cand := range scored {
		if len(out) >= limit {
			break
		}
		if slot != "" && !slotAccepts(slot, categorySlots[cand.Food.Category]) {
			continue
		}
		out = append(out, buildRecommendation(cand, uc, slot, cfg))
	}
	return out
}

// buildRecommendation assembles one immutable Recommendation. The portion is
// slot-aware when a slot is requested and falls back to the record's standard
// serving otherwise.
func buildRecommendation(cand ScoredCandidate, uc UserContext, slot MealSlot, cfg *Config) Recommendation {
	var portion Portion
	if slot != "" {
		portion = PortionFor(cand.Food, uc, slot, cfg)
	} else {
		portion = standardPortion(cand.Food, uc, cfg)
	}

	return Recommendation{
		Food:           cand.Food,
		Portion:        portion,
		Score:          cand.Score,
		Justifications: justifications(cand.Food, uc),
		CookingTips:    cookingTips(cand.Food, uc),
	}
}

// cookingTips combines the default preparation description with category and
// condition-specific advice.
func cookingTips(food models.FoodRecord, uc UserContext) []string {
	tips := make([]string, 0, 3)
	if desc := food.Preparation.Description; desc != "" {
		tips = append(tips, desc)
	}
	if tip, ok := categoryTips[food.Category]; ok {
		tips = append(tips, tip)
	}
	for _, cond := range uc.MedicalConditions {
		if tip, ok := conditionTips[cond]; ok {
			tips = append(tips, tip)
		}
	}
	return tips
}
