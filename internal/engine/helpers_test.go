// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"context"

	"github.com/rasoilabs/rasoi/internal/models"
)

// stubCatalog is a CatalogProvider returning fixed foods or a fixed error.
type stubCatalog struct {
	foods []models.FoodRecord
	err   error
}

func (s stubCatalog) Foods(_ context.Context) ([]models.FoodRecord, error) {
	return s.foods, s.err
}

// testFood builds a minimal record; tests override what they care about.
func testFood(id string, category models.FoodCategory, nf models.NutritionFacts) models.FoodRecord {
	return models.FoodRecord{
		ID:        id,
		Name:      id,
		Nutrition: nf,
		Preparation: models.PreparationMethod{
			Name:                "steamed",
			Ingredients:         []string{"vegetables", "salt"},
			NutritionMultiplier: 1.0,
		},
		Category:     category,
		Availability: models.RegionalAvailability{PrimaryRegion: "North Indian"},
		Portions:     models.PortionGuide{DefaultServingGrams: 100},
	}
}

// fixtureCatalog spans every coarse slot class so slot-filtered selection
// always has candidates.
func fixtureCatalog() []models.FoodRecord {
	dal := testFood("dal", models.CategoryLegumeDish, models.NutritionFacts{
		Calories: 105, Protein: 7, Carbs: 14, Fat: 2.5, Fiber: 4.1,
		Minerals: map[string]float64{"iron": 1.8},
	})
	dal.Preparation.Ingredients = []string{"moong dal", "turmeric", "ghee"}

	rice := testFood("rice", models.CategoryStapleGrain, models.NutritionFacts{
		Calories: 130, Protein: 2.7, Carbs: 25.6, Fat: 1, Fiber: 1.8,
	})
	rice.Preparation.Ingredients = []string{"rice", "water"}

	palak := testFood("palak", models.CategoryVegetableDish, models.NutritionFacts{
		Calories: 65, Protein: 3.5, Carbs: 6.8, Fat: 2.8, Fiber: 3.4,
		Vitamins: map[string]float64{"vitamin_a": 469, "vitamin_c": 28},
		Minerals: map[string]float64{"iron": 2.7},
	})
	palak.Preparation.Ingredients = []string{"spinach", "garlic", "oil"}

	sprouts := testFood("sprouts", models.CategorySnack, models.NutritionFacts{
		Calories: 95, Protein: 7.5, Carbs: 14, Fat: 1, Fiber: 6.2,
		Minerals: map[string]float64{"iron": 2.2},
	})
	sprouts.Preparation.Ingredients = []string{"moong sprouts", "onion", "lemon"}

	kheer := testFood("kheer", models.CategoryDessert, models.NutritionFacts{
		Calories: 143, Protein: 3.8, Carbs: 22, Fat: 4.5, Fiber: 0.3,
	})
	kheer.Preparation.Ingredients = []string{"rice", "milk", "sugar"}

	chaas := testFood("chaas", models.CategoryBeverage, models.NutritionFacts{
		Calories: 35, Protein: 2, Carbs: 3.5, Fat: 1.2,
	})
	chaas.Preparation.Ingredients = []string{"curd", "water", "cumin"}

	paneer := testFood("paneer-curry", models.CategoryCurry, models.NutritionFacts{
		Calories: 280, Protein: 11.5, Carbs: 9, Fat: 22, Fiber: 1.8,
	})
	paneer.Preparation.Ingredients = []string{"paneer", "butter", "cream", "tomato"}

	return []models.FoodRecord{dal, rice, palak, sprouts, kheer, chaas, paneer}
}
