// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package models

// FoodCategory classifies a food record into one of the fixed catalog
// categories. The category drives meal-slot mapping, cooking tips, and
// default portion weights.
type FoodCategory string

const (
	// CategoryStapleGrain covers rice, millets, and other cooked grains.
	CategoryStapleGrain FoodCategory = "staple_grain"
	// CategoryLegumeDish covers dals, sambhar, chole, and similar.
	CategoryLegumeDish FoodCategory = "legume_dish"
	// CategoryVegetableDish covers dry and gravy vegetable preparations.
	CategoryVegetableDish FoodCategory = "vegetable_dish"
	// CategoryFlatbread covers rotis, parathas, and other breads.
	CategoryFlatbread FoodCategory = "flatbread"
	// CategoryCurry covers gravy-based mains.
	CategoryCurry FoodCategory = "curry"
	// CategorySnack covers between-meal items.
	CategorySnack FoodCategory = "snack"
	// CategoryDessert covers sweets.
	CategoryDessert FoodCategory = "dessert"
	// CategoryBeverage covers drinks.
	CategoryBeverage FoodCategory = "beverage"
)

// Valid reports whether the category is one of the fixed enumeration values.
func (c FoodCategory) Valid() bool {
	switch c {
	case CategoryStapleGrain, CategoryLegumeDish, CategoryVegetableDish,
		CategoryFlatbread, CategoryCurry, CategorySnack, CategoryDessert, CategoryBeverage:
		return true
	default:
		return false
	}
}

// String returns the category tag.
func (c FoodCategory) String() string {
	return string(c)
}

// NutritionFacts holds per-reference-serving (100g) nutrition values.
type NutritionFacts struct {
	// Calories is the energy in kcal per 100g.
	Calories float64 `json:"calories"`

	// Protein is grams of protein per 100g.
	Protein float64 `json:"protein"`

	// Carbs is grams of carbohydrate per 100g.
	Carbs float64 `json:"carbs"`

	// Fat is grams of fat per 100g.
	Fat float64 `json:"fat"`

	// Fiber is grams of dietary fiber per 100g.
	Fiber float64 `json:"fiber"`

	// Vitamins maps vitamin name to amount per 100g.
	Vitamins map[string]float64 `json:"vitamins,omitempty"`

	// Minerals maps mineral name to amount per 100g.
	Minerals map[string]float64 `json:"minerals,omitempty"`
}

// PreparationMethod describes how a food is prepared by default.
type PreparationMethod struct {
	// Name is the preparation name (e.g., "steamed", "tadka").
	Name string `json:"name"`

	// Description is a short human-readable cooking description.
	Description string `json:"description"`

	// Ingredients lists the ingredient terms used for dietary screening.
	Ingredients []string `json:"ingredients"`

	// NutritionMultiplier is applied to the base facts when this
	// preparation is used. 1.0 means no adjustment.
	NutritionMultiplier float64 `json:"nutrition_multiplier"`
}

// RegionalAvailability describes where a food is commonly found.
type RegionalAvailability struct {
	// PrimaryRegion is the region the food is most associated with.
	PrimaryRegion string `json:"primary_region"`

	// Regions lists all regions the food appears in.
	Regions []string `json:"regions,omitempty"`
}

// PortionGuide maps culturally familiar serving units to gram weights.
type PortionGuide struct {
	// Units maps a regional unit name (e.g., "katori", "piece") to
	// grams per unit.
	Units map[string]float64 `json:"units,omitempty"`

	// DefaultServingGrams is the standard serving weight in grams.
	DefaultServingGrams float64 `json:"default_serving_grams"`
}

// FoodRecord is an immutable catalog entry. Records are never mutated after
// load; scoring and portioning derive new values instead.
type FoodRecord struct {
	// ID uniquely identifies the record within the catalog.
	ID string `json:"id"`

	// Name is the canonical food name.
	Name string `json:"name"`

	// Aliases lists alternate names used for search.
	Aliases []string `json:"aliases,omitempty"`

	// Nutrition holds the per-100g nutrition facts.
	Nutrition NutritionFacts `json:"nutrition"`

	// Preparation is the default preparation method.
	Preparation PreparationMethod `json:"preparation"`

	// Category is the catalog category tag.
	Category FoodCategory `json:"category"`

	// Availability describes regional availability.
	Availability RegionalAvailability `json:"availability"`

	// Portions is the regional portion guide.
	Portions PortionGuide `json:"portions"`
}

// EffectiveNutrition returns the nutrition facts with the default
// preparation's multiplier applied. A missing or non-positive multiplier
// means no adjustment. The receiver is never mutated; scaled maps are copies.
func (f FoodRecord) EffectiveNutrition() NutritionFacts {
	m := f.Preparation.NutritionMultiplier
	if m <= 0 || m == 1 {
		return f.Nutrition
	}

	nf := f.Nutrition
	nf.Calories *= m
	nf.Protein *= m
	nf.Carbs *= m
	nf.Fat *= m
	nf.Fiber *= m
	if len(f.Nutrition.Vitamins) > 0 {
		nf.Vitamins = make(map[string]float64, len(f.Nutrition.Vitamins))
		for name, amount := range f.Nutrition.Vitamins {
			nf.Vitamins[name] = amount * m
		}
	}
	if len(f.Nutrition.Minerals) > 0 {
		nf.Minerals = make(map[string]float64, len(f.Nutrition.Minerals))
		for name, amount := range f.Nutrition.Minerals {
			nf.Minerals[name] = amount * m
		}
	}
	return nf
}
