// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package models

// UserProfile is the raw profile supplied by the caller. Optional numeric
// fields are pointers so that "unset" is distinguishable from zero; the
// engine's context builder substitutes documented defaults for anything
// missing. A sparse or empty profile is never an error.
type UserProfile struct {
	// Age in years. Nil means unknown.
	Age *int `json:"age,omitempty"`

	// Gender is free-form ("male", "female", or anything else).
	Gender string `json:"gender,omitempty"`

	// HeightCM is height in centimeters. Nil means unknown.
	HeightCM *float64 `json:"height_cm,omitempty"`

	// WeightKG is weight in kilograms. Nil means unknown.
	WeightKG *float64 `json:"weight_kg,omitempty"`

	// ActivityLevel is one of sedentary, light, moderate, active, very_active.
	ActivityLevel string `json:"activity_level,omitempty"`

	// HealthGoals lists self-reported goals (e.g., "weight loss").
	HealthGoals []string `json:"health_goals,omitempty"`

	// MedicalConditions lists self-reported conditions. Used only to bias
	// suggestions, never to validate medical safety.
	MedicalConditions []string `json:"medical_conditions,omitempty"`

	// Allergies lists allergy terms matched against ingredients.
	Allergies []string `json:"allergies,omitempty"`

	// DietaryRestrictions lists restriction tags (e.g., "vegan").
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`

	// DislikedFoods lists terms matched against food names and ingredients.
	DislikedFoods []string `json:"disliked_foods,omitempty"`

	// CulturalPreferences holds free-form preferences such as
	// "region" or "spice_level".
	CulturalPreferences map[string]string `json:"cultural_preferences,omitempty"`

	// Premium marks a premium-tier subscriber. The engine carries the flag
	// through to the decision context; tier gating itself happens upstream.
	Premium bool `json:"premium,omitempty"`
}
