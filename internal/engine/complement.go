// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"github.com/rasoilabs/rasoi/internal/models"
)

// richInRules maps a nutrient name to the predicate deciding whether a food
// meaningfully contributes to it. Nutrients without an explicit rule fall
// back to presence in the food's vitamin or mineral maps.
var richInRules = map[string]func(nf models.NutritionFacts) bool{
	"protein": func(nf models.NutritionFacts) bool { return nf.Protein > 10 },
	"fiber":   func(nf models.NutritionFacts) bool { return nf.Fiber > 5 },
	"iron":    func(nf models.NutritionFacts) bool { return nf.Minerals["iron"] > 2.0 },
}

// richIn reports whether a food is a meaningful source of the nutrient.
func richIn(nf models.NutritionFacts, nutrient string) bool {
	if rule, ok := richInRules[nutrient]; ok {
		return rule(nf)
	}
	return nf.Vitamins[nutrient] > 0 || nf.Minerals[nutrient] > 0
}

// DetectDeficiencies runs the balance analysis over the consumed items and
// flags every nutrient below the deficiency threshold. Protein and fiber are
// graded by how far intake fell (below half the target counts as moderate);
// a deficient micronutrient is always flagged as mild.
func DetectDeficiencies(items []ConsumedItem, uc UserContext, cfg *Config) []NutrientDeficiency {
	analysis := AnalyzeBalance(items, uc, cfg)

	out := []NutrientDeficiency{}
	for _, macro := range []MacroBalance{analysis.Protein, analysis.Fiber} {
		if macro.Percent < cfg.DeficiencyThresholdPct {
			out = append(out, NutrientDeficiency{
				Nutrient: macro.Name,
				Severity: severityFor(macro.Percent),
				Percent:  macro.Percent,
			})
		}
	}
	for _, micro := range analysis.Micronutrients {
		if micro.Percent < cfg.DeficiencyThresholdPct {
			out = append(out, NutrientDeficiency{
				Nutrient: micro.Name,
				Severity: SeverityMild,
				Percent:  micro.Percent,
			})
		}
	}
	return out
}

// severityFor grades a below-threshold macro percentage.
func severityFor(pct float64) DeficiencySeverity {
	if pct < 50 {
		return SeverityModerate
	}
	return SeverityMild
}

// FindComplementary proposes foods that fill the detected gaps: candidates
// are scored with the complementary bias, and for each deficient nutrient the
// top rich-in candidates are taken in rank order. A food filling several gaps
// appears once. The overall list is capped at maxSuggestions; a non-positive
// value falls back to the configured default count, and any value is capped
// at the configured maximum.
func FindComplementary(catalog []models.FoodRecord, uc UserContext, deficiencies []NutrientDeficiency, maxSuggestions int, cfg *Config) []Recommendation {
	if len(deficiencies) == 0 {
		return []Recommendation{}
	}

	if maxSuggestions <= 0 {
		maxSuggestions = cfg.Limits.DefaultCount
	}
	if maxSuggestions > cfg.Limits.MaxCount {
		maxSuggestions = cfg.Limits.MaxCount
	}

	ranked := ScoreAndRank(catalog, uc, RequestComplementary)

	seen := make(map[string]bool, maxSuggestions)
	out := make([]Recommendation, 0, maxSuggestions)
	for _, def := range deficiencies {
		taken := 0
		for _, cand := range ranked {
			if taken >= cfg.PerNutrientSuggestions || len(out) >= maxSuggestions {
				break
			}
			if !richIn(cand.Food.EffectiveNutrition(), def.Nutrient) {
				continue
			}
			if seen[cand.Food.ID] {
				taken++
				continue
			}
			seen[cand.Food.ID] = true
			out = append(out, buildRecommendation(cand, uc, "", cfg))
			taken++
		}
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out
}
