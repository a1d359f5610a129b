// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"fmt"
)

// Config contains the operational configuration for the engine. The scoring
// rule weights and thresholds themselves are fixed product behavior and live
// in the scorer; Config covers limits, profile defaults, and daily targets.
type Config struct {
	// Limits contains result-count limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`

	// Defaults contains the substitutions applied to sparse profiles.
	Defaults DefaultsConfig `json:"defaults" koanf:"defaults"`

	// Targets contains the daily nutrient target parameters.
	Targets TargetsConfig `json:"targets" koanf:"targets"`

	// SlotCalorieShare is the fraction of a meal slot's calories a single
	// recommended food should supply.
	SlotCalorieShare float64 `json:"slot_calorie_share" koanf:"slot_calorie_share"`

	// DeficiencyThresholdPct is the actual-to-target percentage below which
	// a nutrient counts as deficient.
	DeficiencyThresholdPct float64 `json:"deficiency_threshold_pct" koanf:"deficiency_threshold_pct"`

	// PerNutrientSuggestions is how many gap-filling foods are proposed
	// per deficient nutrient before the overall cap applies.
	PerNutrientSuggestions int `json:"per_nutrient_suggestions" koanf:"per_nutrient_suggestions"`
}

// LimitsConfig contains result-count limits.
type LimitsConfig struct {
	// DefaultCount is used when a request leaves MaxCount unset.
	DefaultCount int `json:"default_count" koanf:"default_count"`

	// MaxCount caps any request's result count.
	MaxCount int `json:"max_count" koanf:"max_count"`
}

// DefaultsConfig contains the substitutions applied to sparse profiles.
type DefaultsConfig struct {
	// Age substitutes a missing age.
	Age int `json:"age" koanf:"age"`

	// Gender substitutes a missing gender.
	Gender string `json:"gender" koanf:"gender"`

	// ActivityLevel substitutes a missing activity level.
	ActivityLevel string `json:"activity_level" koanf:"activity_level"`

	// Region substitutes a missing preferred region.
	Region string `json:"region" koanf:"region"`

	// DailyCalories is the flat daily target used when weight is unknown.
	DailyCalories float64 `json:"daily_calories" koanf:"daily_calories"`

	// MaleHeightCM substitutes a missing height for male-identified users.
	MaleHeightCM float64 `json:"male_height_cm" koanf:"male_height_cm"`

	// FemaleHeightCM substitutes a missing height for everyone else.
	FemaleHeightCM float64 `json:"female_height_cm" koanf:"female_height_cm"`
}

// TargetsConfig contains daily nutrient target parameters. The macro shares
// are fractions of daily calories converted at 4/4/9 kcal per gram.
type TargetsConfig struct {
	// ProteinShare is the fraction of calories from protein.
	ProteinShare float64 `json:"protein_share" koanf:"protein_share"`

	// CarbShare is the fraction of calories from carbohydrate.
	CarbShare float64 `json:"carb_share" koanf:"carb_share"`

	// FatShare is the fraction of calories from fat.
	FatShare float64 `json:"fat_share" koanf:"fat_share"`

	// FiberGrams is the fixed daily fiber target.
	FiberGrams float64 `json:"fiber_grams" koanf:"fiber_grams"`

	// SodiumMG is the fixed daily sodium target. Reported in analyses;
	// intake accumulation is a known gap.
	SodiumMG float64 `json:"sodium_mg" koanf:"sodium_mg"`
}

// DefaultConfig returns the engine configuration with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultCount: 5,
			MaxCount:     50,
		},
		Defaults: DefaultsConfig{
			Age:            25,
			Gender:         "unknown",
			ActivityLevel:  "moderate",
			Region:         "North Indian",
			DailyCalories:  2000,
			MaleHeightCM:   175,
			FemaleHeightCM: 165,
		},
		Targets: TargetsConfig{
			ProteinShare: 0.15,
			CarbShare:    0.55,
			FatShare:     0.30,
			FiberGrams:   25,
			SodiumMG:     2300,
		},
		SlotCalorieShare:       0.4,
		DeficiencyThresholdPct: 80,
		PerNutrientSuggestions: 2,
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Limits.DefaultCount <= 0 {
		return fmt.Errorf("limits.default_count must be positive, got %d", c.Limits.DefaultCount)
	}
	if c.Limits.MaxCount < c.Limits.DefaultCount {
		return fmt.Errorf("limits.max_count %d below default_count %d", c.Limits.MaxCount, c.Limits.DefaultCount)
	}
	if c.Defaults.Age <= 0 {
		return fmt.Errorf("defaults.age must be positive, got %d", c.Defaults.Age)
	}
	if c.Defaults.DailyCalories <= 0 {
		return fmt.Errorf("defaults.daily_calories must be positive, got %g", c.Defaults.DailyCalories)
	}
	sum := c.Targets.ProteinShare + c.Targets.CarbShare + c.Targets.FatShare
	if sum < 0.99 || sum > 1.01 {
		return fmt.Errorf("macro shares must sum to 1.0, got %g", sum)
	}
	if c.SlotCalorieShare <= 0 || c.SlotCalorieShare > 1 {
		return fmt.Errorf("slot_calorie_share must be in (0, 1], got %g", c.SlotCalorieShare)
	}
	if c.DeficiencyThresholdPct <= 0 || c.DeficiencyThresholdPct > 100 {
		return fmt.Errorf("deficiency_threshold_pct must be in (0, 100], got %g", c.DeficiencyThresholdPct)
	}
	if c.PerNutrientSuggestions <= 0 {
		return fmt.Errorf("per_nutrient_suggestions must be positive, got %d", c.PerNutrientSuggestions)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
