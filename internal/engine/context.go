// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"strings"

	"github.com/rasoilabs/rasoi/internal/models"
)

// BuildUserContext normalizes a raw profile into the canonical decision
// context. Every downstream component can assume a fully-populated context:
// missing scalars get the configured defaults, list fields become empty
// (never nil) lowercased slices, and BMI is computed when height and weight
// are both present. This step cannot fail.
func BuildUserContext(profile models.UserProfile, cfg *Config) UserContext {
	uc := UserContext{
		Age:                 cfg.Defaults.Age,
		Gender:              cfg.Defaults.Gender,
		ActivityLevel:       cfg.Defaults.ActivityLevel,
		HealthGoals:         normalizeTerms(profile.HealthGoals),
		MedicalConditions:   normalizeTerms(profile.MedicalConditions),
		Allergies:           normalizeTerms(profile.Allergies),
		DietaryRestrictions: normalizeTerms(profile.DietaryRestrictions),
		DislikedFoods:       normalizeTerms(profile.DislikedFoods),
		Preferences:         map[string]string{},
		PreferredRegion:     cfg.Defaults.Region,
		Premium:             profile.Premium,
	}

	if profile.Age != nil && *profile.Age > 0 {
		uc.Age = *profile.Age
	}
	if g := strings.TrimSpace(profile.Gender); g != "" {
		uc.Gender = strings.ToLower(g)
	}
	if a := strings.TrimSpace(profile.ActivityLevel); a != "" {
		uc.ActivityLevel = strings.ToLower(a)
	}

	for k, v := range profile.CulturalPreferences {
		uc.Preferences[k] = v
	}
	if region := strings.TrimSpace(uc.Preferences["region"]); region != "" {
		uc.PreferredRegion = region
	}

	if profile.HeightCM != nil && *profile.HeightCM > 0 {
		uc.HeightCM = *profile.HeightCM
	}
	if profile.WeightKG != nil && *profile.WeightKG > 0 {
		uc.WeightKG = *profile.WeightKG
	}
	if uc.HeightCM > 0 && uc.WeightKG > 0 {
		meters := uc.HeightCM / 100
		uc.BMI = uc.WeightKG / (meters * meters)
		uc.HasBMI = true
	}

	return uc
}

// normalizeTerms lowercases and trims terms, dropping empties. Always returns
// a non-nil slice so downstream range loops need no nil checks.
func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
