// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"time"

	"github.com/rasoilabs/rasoi/internal/models"
)

// RequestType selects the scoring bias for a recommendation request.
type RequestType string

const (
	// RequestHealthy boosts nutritional density (density contribution x1.5).
	RequestHealthy RequestType = "healthy"
	// RequestBalanced applies no request-type modifier.
	RequestBalanced RequestType = "balanced"
	// RequestIndulgent rewards richer, higher-calorie items.
	RequestIndulgent RequestType = "indulgent"
	// RequestComplementary is used when filling nutrient gaps; the
	// fine-grained nutrient selection happens in the complementary finder.
	RequestComplementary RequestType = "complementary"
)

// Valid reports whether t is a known request type.
func (t RequestType) Valid() bool {
	switch t {
	case RequestHealthy, RequestBalanced, RequestIndulgent, RequestComplementary:
		return true
	default:
		return false
	}
}

// MealSlot is the coarse time-of-day category used to filter recommendations.
type MealSlot string

const (
	// SlotBreakfast is the morning meal.
	SlotBreakfast MealSlot = "breakfast"
	// SlotLunch is the midday meal.
	SlotLunch MealSlot = "lunch"
	// SlotDinner is the evening meal.
	SlotDinner MealSlot = "dinner"
	// SlotSnack is a between-meal item.
	SlotSnack MealSlot = "snack"
)

// Valid reports whether s is a known meal slot.
func (s MealSlot) Valid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	default:
		return false
	}
}

// UserContext is the canonical, fully-defaulted decision context derived from
// a raw profile. It is built fresh per request and never mutated afterwards;
// derivations construct new values instead.
type UserContext struct {
	// Age in years. Defaults to 25 when the profile leaves it unset.
	Age int `json:"age"`

	// Gender as reported; defaults to "unknown".
	Gender string `json:"gender"`

	// ActivityLevel is one of sedentary, light, moderate, active,
	// very_active. Defaults to "moderate".
	ActivityLevel string `json:"activity_level"`

	// HealthGoals lists self-reported goals, lowercased.
	HealthGoals []string `json:"health_goals"`

	// MedicalConditions lists self-reported conditions, lowercased.
	MedicalConditions []string `json:"medical_conditions"`

	// Allergies lists allergy terms, lowercased.
	Allergies []string `json:"allergies"`

	// DietaryRestrictions lists restriction tags, lowercased.
	DietaryRestrictions []string `json:"dietary_restrictions"`

	// DislikedFoods lists disliked terms, lowercased.
	DislikedFoods []string `json:"disliked_foods"`

	// Preferences holds free-form cultural preferences.
	Preferences map[string]string `json:"preferences"`

	// PreferredRegion is Preferences["region"] or the configured default.
	PreferredRegion string `json:"preferred_region"`

	// HeightCM is height in centimeters; zero means unknown.
	HeightCM float64 `json:"height_cm,omitempty"`

	// WeightKG is weight in kilograms; zero means unknown.
	WeightKG float64 `json:"weight_kg,omitempty"`

	// BMI is computed from height and weight when both are present.
	BMI float64 `json:"bmi,omitempty"`

	// HasBMI reports whether BMI was computable.
	HasBMI bool `json:"has_bmi"`

	// Premium marks a premium-tier subscriber.
	Premium bool `json:"premium"`
}

// DominantGoal returns the first health goal, or empty when none are set.
func (c UserContext) DominantGoal() string {
	if len(c.HealthGoals) == 0 {
		return ""
	}
	return c.HealthGoals[0]
}

// HasCondition reports whether the context carries the given condition.
func (c UserContext) HasCondition(name string) bool {
	for _, cond := range c.MedicalConditions {
		if cond == name {
			return true
		}
	}
	return false
}

// ScoredCandidate pairs a food record with its computed desirability score.
// Candidates are ephemeral, produced and consumed within one scoring pass.
type ScoredCandidate struct {
	Food  models.FoodRecord `json:"food"`
	Score float64           `json:"score"`
}

// Portion is a computed serving for a specific food and meal slot.
// Gram and calorie values are always non-negative.
type Portion struct {
	// Grams is the recommended weight.
	Grams float64 `json:"grams"`

	// Unit is the regional serving unit name (e.g., "katori", "piece"),
	// or "grams" when no unit conversion applies.
	Unit string `json:"unit"`

	// UnitQuantity is the portion expressed in Unit.
	UnitQuantity float64 `json:"unit_quantity"`

	// Calories is the estimated energy of the portion.
	Calories float64 `json:"calories"`

	// Rationale explains the sizing in terms of the user's dominant goal.
	Rationale string `json:"rationale"`
}

// Recommendation is a ranked, portioned, and justified suggestion.
// Immutable output value.
type Recommendation struct {
	Food           models.FoodRecord `json:"food"`
	Portion        Portion           `json:"portion"`
	Score          float64           `json:"score"`
	Justifications []string          `json:"justifications"`
	CookingTips    []string          `json:"cooking_tips"`
}

// RecommendationRequest carries the parameters of a single
// generate-recommendations call.
type RecommendationRequest struct {
	// Profile is the raw user profile; sparse fields are defaulted.
	Profile models.UserProfile `json:"profile"`

	// RequestType selects the scoring bias. Defaults to balanced.
	RequestType RequestType `json:"request_type,omitempty"`

	// MaxCount limits the number of recommendations returned.
	// Defaults to Config.Limits.DefaultCount, capped at MaxCount.
	MaxCount int `json:"max_count,omitempty"`

	// MealSlot optionally restricts results to one meal slot.
	MealSlot MealSlot `json:"meal_slot,omitempty"`

	// ExcludeIngredients lists extra ingredient terms to screen out.
	ExcludeIngredients []string `json:"exclude_ingredients,omitempty"`

	// RequestID is a unique identifier for tracing; generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// MealPlanRequest carries the parameters of a meal-plan call.
type MealPlanRequest struct {
	// Profile is the raw user profile; sparse fields are defaulted.
	Profile models.UserProfile `json:"profile"`

	// Days is the plan length. Defaults to 3, capped at 14.
	Days int `json:"days,omitempty"`

	// IncludeSnacks adds a snack course to each day.
	IncludeSnacks bool `json:"include_snacks,omitempty"`

	// ExcludeIngredients lists extra ingredient terms to screen out.
	ExcludeIngredients []string `json:"exclude_ingredients,omitempty"`

	// RequestID is a unique identifier for tracing; generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// PortionRequest identifies a food, by ID or by name, for a portion lookup.
type PortionRequest struct {
	Profile   models.UserProfile `json:"profile"`
	FoodID    string             `json:"food_id,omitempty"`
	FoodName  string             `json:"food_name,omitempty"`
	MealSlot  MealSlot           `json:"meal_slot"`
	RequestID string             `json:"request_id,omitempty"`
}

// BalanceRequest carries a day's consumed items for analysis.
type BalanceRequest struct {
	Profile   models.UserProfile `json:"profile"`
	Consumed  []ConsumedItem     `json:"consumed"`
	RequestID string             `json:"request_id,omitempty"`
}

// ComplementaryRequest carries consumed items for gap-filling suggestions.
type ComplementaryRequest struct {
	Profile  models.UserProfile `json:"profile"`
	Consumed []ConsumedItem     `json:"consumed"`

	// MaxSuggestions limits the overall number of gap-filling foods.
	// Defaults to Config.Limits.DefaultCount, capped at MaxCount.
	MaxSuggestions int `json:"max_suggestions,omitempty"`

	RequestID string `json:"request_id,omitempty"`
}

// RecommendationResult is the outcome of a generate-recommendations call.
// Success=false means the catalog was unavailable; an empty recommendation
// list with Success=true is a valid, distinct outcome.
type RecommendationResult struct {
	RequestID       string           `json:"request_id"`
	Success         bool             `json:"success"`
	Error           string           `json:"error,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
	Context         UserContext      `json:"context"`
	GeneratedAt     time.Time        `json:"generated_at"`
	LatencyMS       int64            `json:"latency_ms"`
}

// MealPlanResult maps day labels ("day_1"...) to the day's ordered
// recommendations (breakfast, lunch, dinner, then snacks when enabled).
type MealPlanResult struct {
	RequestID   string                      `json:"request_id"`
	Success     bool                        `json:"success"`
	Error       string                      `json:"error,omitempty"`
	Days        map[string][]Recommendation `json:"days"`
	DayLabels   []string                    `json:"day_labels"`
	Context     UserContext                 `json:"context"`
	GeneratedAt time.Time                   `json:"generated_at"`
	LatencyMS   int64                       `json:"latency_ms"`
}

// PortionRecommendation is the outcome of a portion lookup for one food.
type PortionRecommendation struct {
	RequestID     string      `json:"request_id"`
	Success       bool        `json:"success"`
	Error         string      `json:"error,omitempty"`
	FoodID        string      `json:"food_id,omitempty"`
	FoodName      string      `json:"food_name,omitempty"`
	MealSlot      MealSlot    `json:"meal_slot"`
	Portion       Portion     `json:"portion"`
	DailyCalories float64     `json:"daily_calories"`
	MealCalories  float64     `json:"meal_calories"`
	Context       UserContext `json:"context"`
}

// ConsumedItem is one consumed or planned food quantity carrying its own
// nutrition facts.
type ConsumedItem struct {
	// Name identifies the item for suggestions and logging.
	Name string `json:"name"`

	// Nutrition holds the item's per-100g facts.
	Nutrition models.NutritionFacts `json:"nutrition"`

	// QuantityGrams is the actual quantity consumed.
	QuantityGrams float64 `json:"quantity_grams"`
}

// MacroBalance compares one macronutrient's intake against its target.
// Percent is current/target x100, clamped to [0, 200].
type MacroBalance struct {
	Name    string  `json:"name"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

// MicronutrientAnalysis compares one vitamin or mineral against its
// reference target.
type MicronutrientAnalysis struct {
	Name    string  `json:"name"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
	Status  string  `json:"status"`
}

// NutritionalBalanceAnalysis is the aggregate intake-vs-target report.
// Sodium carries a target only; consumed items do not report sodium, so
// intake is never accumulated for it.
type NutritionalBalanceAnalysis struct {
	TotalCalories  float64                 `json:"total_calories"`
	TargetCalories float64                 `json:"target_calories"`
	CaloriePercent float64                 `json:"calorie_percent"`
	Carbs          MacroBalance            `json:"carbs"`
	Protein        MacroBalance            `json:"protein"`
	Fat            MacroBalance            `json:"fat"`
	Fiber          MacroBalance            `json:"fiber"`
	SodiumTargetMG float64                 `json:"sodium_target_mg"`
	Micronutrients []MicronutrientAnalysis `json:"micronutrients"`
	Suggestions    []string                `json:"suggestions"`
}

// DeficiencySeverity qualifies how far below target a nutrient falls.
type DeficiencySeverity string

const (
	// SeverityMild marks macro intake between 50% and 80% of target, and
	// every deficient micronutrient.
	SeverityMild DeficiencySeverity = "mild"
	// SeverityModerate marks macro intake below 50% of target.
	SeverityModerate DeficiencySeverity = "moderate"
)

// NutrientDeficiency names a nutrient whose intake fell below the
// deficiency threshold.
type NutrientDeficiency struct {
	Nutrient string             `json:"nutrient"`
	Severity DeficiencySeverity `json:"severity"`
	Percent  float64            `json:"percent"`
}

// ComplementaryResult is the outcome of a complementary-foods lookup.
type ComplementaryResult struct {
	RequestID       string               `json:"request_id"`
	Success         bool                 `json:"success"`
	Error           string               `json:"error,omitempty"`
	Deficiencies    []NutrientDeficiency `json:"deficiencies"`
	Recommendations []Recommendation     `json:"recommendations"`
}
