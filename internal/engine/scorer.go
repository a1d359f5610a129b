// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rasoilabs/rasoi/internal/models"
)

// Scoring is additive over five independent contributions. Every rule here
// is a pure function of (facts, context, request type); nothing is mutated.
// Unmatched goal or condition strings contribute exactly zero.

// goalRules maps a normalized health-goal string to its scoring rule.
// Table-driven so new goals are a single entry, and tests can iterate it.
var goalRules = map[string]func(nf models.NutritionFacts) float64{
	"weight loss": func(nf models.NutritionFacts) float64 {
		if nf.Calories < 150 && nf.Fiber > 3 {
			return 2.0
		}
		return 0
	},
	"weight gain": func(nf models.NutritionFacts) float64 {
		if nf.Calories > 200 && nf.Protein > 8 {
			return 2.0
		}
		return 0
	},
	"muscle building": func(nf models.NutritionFacts) float64 {
		switch {
		case nf.Protein > 15:
			return 3.0
		case nf.Protein > 10:
			return 2.0
		default:
			return 0
		}
	},
	"heart health": func(nf models.NutritionFacts) float64 {
		if nf.Fiber > 4 {
			return 2.0
		}
		return 0
	},
	"blood sugar control": func(nf models.NutritionFacts) float64 {
		if nf.Fiber > 5 && nf.Calories < 150 {
			return 2.0
		}
		return 0
	},
}

// conditionRules maps a medical condition to its scoring adjustment.
// Rules may both reward and penalize the same item (diabetes does).
var conditionRules = map[string]func(nf models.NutritionFacts) float64{
	"diabetes": func(nf models.NutritionFacts) float64 {
		adj := 0.0
		if nf.Fiber > 3 {
			adj += 1.5
		}
		if nf.Calories > 200 {
			adj -= 1.0
		}
		return adj
	},
	"hypertension": func(nf models.NutritionFacts) float64 {
		if nf.Calories < 150 {
			return 1.5
		}
		return 0
	},
	"high cholesterol": func(nf models.NutritionFacts) float64 {
		if nf.Fiber > 4 {
			return 1.0
		}
		return 0
	},
}

// densityScore rewards protein, fiber, and micronutrient breadth.
func densityScore(nf models.NutritionFacts) float64 {
	s := 0.0
	switch {
	case nf.Protein > 10:
		s += 2.0
	case nf.Protein > 5:
		s += 1.0
	}
	switch {
	case nf.Fiber > 5:
		s += 2.0
	case nf.Fiber > 2:
		s += 1.0
	}
	s += 0.1 * float64(len(nf.Vitamins)+len(nf.Minerals))
	return s
}

// ScoreFood computes the total desirability score for one candidate. Scoring
// reads the preparation-adjusted facts, so a rich preparation of an otherwise
// lean food is scored as eaten, not as listed.
func ScoreFood(food models.FoodRecord, uc UserContext, reqType RequestType) float64 {
	nf := food.EffectiveNutrition()

	density := densityScore(nf)
	densityMultiplier := 1.0
	flat := 0.0
	switch reqType {
	case RequestHealthy:
		densityMultiplier = 1.5
	case RequestIndulgent:
		if nf.Calories > 250 {
			flat = 1.5
		}
	case RequestComplementary:
		flat = 1.0
	case RequestBalanced:
		// No modifier.
	}

	total := density * densityMultiplier

	for _, goal := range uc.HealthGoals {
		if rule, ok := goalRules[goal]; ok {
			total += rule(nf)
		}
	}

	for _, cond := range uc.MedicalConditions {
		if rule, ok := conditionRules[cond]; ok {
			total += rule(nf)
		}
	}

	if strings.EqualFold(food.Availability.PrimaryRegion, uc.PreferredRegion) {
		total += 1.5
	}

	return total + flat
}

// ScoreAndRank scores every candidate and returns them sorted descending by
// score. The sort is stable, so equal-score candidates keep their catalog
// order.
func ScoreAndRank(candidates []models.FoodRecord, uc UserContext, reqType RequestType) []ScoredCandidate {
	scored := make([]ScoredCandidate, len(candidates))
	for i, food := range candidates {
		scored[i] = ScoredCandidate{Food: food, Score: ScoreFood(food, uc, reqType)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// justifications generates the human-readable rationale for a candidate from
// the same triggers the scorer uses, so a justification never appears
// without the score contribution that earned it.
func justifications(food models.FoodRecord, uc UserContext) []string {
	nf := food.EffectiveNutrition()
	out := make([]string, 0, 4)

	if nf.Protein > 10 {
		out = append(out, fmt.Sprintf("High in protein (%.0fg)", nf.Protein))
	} else if nf.Protein > 5 {
		out = append(out, fmt.Sprintf("Good source of protein (%.0fg)", nf.Protein))
	}
	if nf.Fiber > 5 {
		out = append(out, fmt.Sprintf("High in fiber (%.0fg)", nf.Fiber))
	} else if nf.Fiber > 2 {
		out = append(out, fmt.Sprintf("Good source of fiber (%.0fg)", nf.Fiber))
	}

	for _, goal := range uc.HealthGoals {
		if rule, ok := goalRules[goal]; ok && rule(nf) > 0 {
			out = append(out, fmt.Sprintf("Supports your %s goal", goal))
		}
	}

	for _, cond := range uc.MedicalConditions {
		if rule, ok := conditionRules[cond]; ok && rule(nf) > 0 {
			out = append(out, fmt.Sprintf("Suitable with %s", cond))
		}
	}

	if strings.EqualFold(food.Availability.PrimaryRegion, uc.PreferredRegion) {
		out = append(out, fmt.Sprintf("Popular in %s cuisine", food.Availability.PrimaryRegion))
	}

	return out
}
