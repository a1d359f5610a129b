// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"strings"

	"github.com/rasoilabs/rasoi/internal/models"
)

// restrictionExclusions maps a dietary-restriction tag to the ingredient
// terms it excludes. Matching is case-insensitive substring, so "milk" also
// rejects "buttermilk" and "butter" rejects "peanut butter".
var restrictionExclusions = map[string][]string{
	"vegan": {
		"cream", "butter", "milk", "paneer", "ghee", "curd", "yogurt",
		"dahi", "khoya", "honey", "egg", "chicken", "mutton", "fish", "prawn", "meat",
	},
	"vegetarian": {
		"chicken", "mutton", "fish", "prawn", "egg", "meat", "keema",
	},
	"gluten-free": {
		"wheat", "flour", "maida", "atta", "sooji", "semolina", "rava", "barley", "vermicelli",
	},
	"lactose-free": {
		"milk", "cream", "paneer", "curd", "yogurt", "dahi", "khoya", "butter",
	},
	"jain": {
		"onion", "garlic", "potato", "carrot", "beetroot", "radish", "ginger",
	},
	"nut-free": {
		"peanut", "cashew", "almond", "pistachio", "walnut", "groundnut",
	},
}

// FilterAvailable narrows the catalog to records compatible with the user's
// dietary restrictions, allergies, dislikes, and any caller-supplied
// ingredient exclusions. The result preserves catalog order. Filtering never
// fails; an empty result is valid. Running the filter twice yields the same
// set as running it once.
func FilterAvailable(catalog []models.FoodRecord, uc UserContext, excludeIngredients []string) []models.FoodRecord {
	exclusions := normalizeTerms(excludeIngredients)

	out := make([]models.FoodRecord, 0, len(catalog))
	for _, food := range catalog {
		if admissible(food, uc, exclusions) {
			out = append(out, food)
		}
	}
	return out
}

// admissible applies the four rejection rules from the availability filter.
func admissible(food models.FoodRecord, uc UserContext, exclusions []string) bool {
	ingredients := lowerIngredients(food)
	name := strings.ToLower(food.Name)

	for _, tag := range uc.DietaryRestrictions {
		for _, term := range restrictionExclusions[tag] {
			if anyContains(ingredients, term) {
				return false
			}
		}
	}

	for _, allergy := range uc.Allergies {
		if anyContains(ingredients, allergy) {
			return false
		}
	}

	for _, dislike := range uc.DislikedFoods {
		if strings.Contains(name, dislike) || anyContains(ingredients, dislike) {
			return false
		}
	}

	for _, term := range exclusions {
		if anyContains(ingredients, term) {
			return false
		}
	}

	return true
}

// lowerIngredients returns the default preparation's ingredient terms,
// lowercased.
func lowerIngredients(food models.FoodRecord) []string {
	out := make([]string, len(food.Preparation.Ingredients))
	for i, ing := range food.Preparation.Ingredients {
		out[i] = strings.ToLower(ing)
	}
	return out
}

// anyContains reports whether any haystack entry contains the needle.
func anyContains(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
