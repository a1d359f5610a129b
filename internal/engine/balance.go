// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"fmt"
	"sort"
)

// micronutrientTargets holds daily reference intakes for the vitamins and
// minerals the catalog tracks. Keys are the lowercased nutrient names used in
// NutritionFacts maps. Units follow the catalog convention (mg unless the
// nutrient is conventionally mcg).
var micronutrientTargets = map[string]float64{
	"vitamin_a":   900,
	"vitamin_c":   90,
	"vitamin_d":   15,
	"vitamin_b12": 2.4,
	"folate":      400,
	"iron":        18,
	"calcium":     1000,
	"magnesium":   400,
	"potassium":   3500,
	"zinc":        11,
}

// macroSuggestions maps a below-threshold macro to its dietary suggestion.
var macroSuggestions = map[string]string{
	"protein": "Add protein-rich foods like dals, paneer, or sprouts",
	"carbs":   "Include whole grains like brown rice or millets",
	"fat":     "Add healthy fats like ghee, nuts, or seeds in moderation",
	"fiber":   "Increase vegetables, fruits, and whole grains for fiber",
}

// calorieSuggestion is emitted when total intake falls below the deficiency
// threshold of the daily calorie target.
const calorieSuggestion = "Increase overall food intake to meet your daily calorie needs"

// micronutrientSuggestions maps a below-threshold micronutrient to its
// dietary suggestion.
var micronutrientSuggestions = map[string]string{
	"iron":      "Include iron-rich foods like spinach, rajma, or jaggery",
	"calcium":   "Add dairy, ragi, or sesame seeds for calcium",
	"vitamin_c": "Add citrus fruits, amla, or guava for vitamin C",
	"vitamin_a": "Include carrots, pumpkin, or leafy greens for vitamin A",
}

// AnalyzeBalance aggregates the day's consumed items and compares them
// against the user's calculated daily targets. Percentages are clamped to
// [0, 200] so a single outlier meal cannot distort the report. A sodium
// target is reported but sodium intake is not accumulated.
func AnalyzeBalance(items []ConsumedItem, uc UserContext, cfg *Config) NutritionalBalanceAnalysis {
	var calories, protein, carbs, fat, fiber float64
	micros := map[string]float64{}

	for _, item := range items {
		factor := item.QuantityGrams / 100
		if factor < 0 {
			factor = 0
		}
		calories += item.Nutrition.Calories * factor
		protein += item.Nutrition.Protein * factor
		carbs += item.Nutrition.Carbs * factor
		fat += item.Nutrition.Fat * factor
		fiber += item.Nutrition.Fiber * factor
		for name, amount := range item.Nutrition.Vitamins {
			micros[name] += amount * factor
		}
		for name, amount := range item.Nutrition.Minerals {
			micros[name] += amount * factor
		}
	}

	daily := DailyCalorieTarget(uc, cfg)
	proteinTarget := daily * cfg.Targets.ProteinShare / 4
	carbTarget := daily * cfg.Targets.CarbShare / 4
	fatTarget := daily * cfg.Targets.FatShare / 9

	analysis := NutritionalBalanceAnalysis{
		TotalCalories:  calories,
		TargetCalories: daily,
		CaloriePercent: clampPercent(calories, daily),
		Carbs:          macroBalance("carbs", carbs, carbTarget),
		Protein:        macroBalance("protein", protein, proteinTarget),
		Fat:            macroBalance("fat", fat, fatTarget),
		Fiber:          macroBalance("fiber", fiber, cfg.Targets.FiberGrams),
		SodiumTargetMG: cfg.Targets.SodiumMG,
		Micronutrients: analyzeMicronutrients(micros),
		Suggestions:    []string{},
	}

	analysis.Suggestions = buildSuggestions(analysis, cfg)
	return analysis
}

// macroBalance builds one macro's intake-vs-target comparison.
func macroBalance(name string, current, target float64) MacroBalance {
	return MacroBalance{
		Name:    name,
		Current: current,
		Target:  target,
		Percent: clampPercent(current, target),
	}
}

// analyzeMicronutrients compares accumulated micronutrients against the
// reference table, sorted by nutrient name for a stable report. Nutrients
// without a reference target are skipped.
func analyzeMicronutrients(micros map[string]float64) []MicronutrientAnalysis {
	names := make([]string, 0, len(micros))
	for name := range micros {
		if _, ok := micronutrientTargets[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]MicronutrientAnalysis, 0, len(names))
	for _, name := range names {
		target := micronutrientTargets[name]
		pct := clampPercent(micros[name], target)
		out = append(out, MicronutrientAnalysis{
			Name:    name,
			Current: micros[name],
			Target:  target,
			Percent: pct,
			Status:  micronutrientStatus(pct),
		})
	}
	return out
}

// micronutrientStatus labels a clamped percentage.
func micronutrientStatus(pct float64) string {
	switch {
	case pct < 80:
		return "deficient"
	case pct > 120:
		return "high"
	default:
		return "adequate"
	}
}

// buildSuggestions emits one suggestion per shortfall that fell below the
// deficiency threshold: calories first, then macros and micronutrients in
// report order.
func buildSuggestions(a NutritionalBalanceAnalysis, cfg *Config) []string {
	out := []string{}
	if a.CaloriePercent < cfg.DeficiencyThresholdPct {
		out = append(out, calorieSuggestion)
	}
	for _, macro := range []MacroBalance{a.Carbs, a.Protein, a.Fat, a.Fiber} {
		if macro.Percent < cfg.DeficiencyThresholdPct {
			if s, ok := macroSuggestions[macro.Name]; ok {
				out = append(out, s)
			}
		}
	}
	for _, micro := range a.Micronutrients {
		if micro.Percent < cfg.DeficiencyThresholdPct {
			if s, ok := micronutrientSuggestions[micro.Name]; ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprintf("Consider foods richer in %s", micro.Name))
			}
		}
	}
	return out
}

// clampPercent returns current/target as a percentage clamped to [0, 200].
// A non-positive target yields zero rather than a division artifact.
func clampPercent(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	pct := current / target * 100
	if pct < 0 {
		return 0
	}
	if pct > 200 {
		return 200
	}
	return pct
}
