// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package catalog

import (
	"github.com/rasoilabs/rasoi/internal/models"
)

// defaultFoods is the built-in food database. Nutrition values are per 100g
// of the prepared dish. The set spans every category so slot-filtered
// requests always have candidates.
var defaultFoods = []models.FoodRecord{
	{
		ID:      "staple-brown-rice",
		Name:    "Brown Rice",
		Aliases: []string{"bhura chawal"},
		Nutrition: models.NutritionFacts{
			Calories: 130, Protein: 2.7, Carbs: 25.6, Fat: 1.0, Fiber: 1.8,
			Vitamins: map[string]float64{"vitamin_b12": 0},
			Minerals: map[string]float64{"magnesium": 44, "iron": 0.5},
		},
		Preparation: models.PreparationMethod{
			Name:                "steamed",
			Description:         "Rinse and steam with a 1:2 rice-to-water ratio",
			Ingredients:         []string{"brown rice", "water", "salt"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryStapleGrain,
		Availability: models.RegionalAvailability{PrimaryRegion: "South Indian", Regions: []string{"South Indian", "North Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"bowl": 150}, DefaultServingGrams: 150},
	},
	{
		ID:      "staple-ragi-mudde",
		Name:    "Ragi Mudde",
		Aliases: []string{"finger millet ball"},
		Nutrition: models.NutritionFacts{
			Calories: 110, Protein: 3.1, Carbs: 22.0, Fat: 0.5, Fiber: 3.6,
			Minerals: map[string]float64{"calcium": 344, "iron": 3.9},
		},
		Preparation: models.PreparationMethod{
			Name:                "boiled",
			Description:         "Cook ragi flour in boiling water and shape into balls",
			Ingredients:         []string{"ragi flour", "water", "salt"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryStapleGrain,
		Availability: models.RegionalAvailability{PrimaryRegion: "South Indian", Regions: []string{"South Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"ball": 120}, DefaultServingGrams: 120},
	},
	{
		ID:      "legume-moong-dal",
		Name:    "Moong Dal Tadka",
		Aliases: []string{"yellow dal", "moong dal"},
		Nutrition: models.NutritionFacts{
			Calories: 105, Protein: 7.0, Carbs: 14.5, Fat: 2.5, Fiber: 4.1,
			Vitamins: map[string]float64{"folate": 159},
			Minerals: map[string]float64{"iron": 1.8, "potassium": 270},
		},
		Preparation: models.PreparationMethod{
			Name:                "tadka",
			Description:         "Pressure-cook and temper with cumin and turmeric",
			Ingredients:         []string{"moong dal", "turmeric", "cumin", "ghee", "salt"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryLegumeDish,
		Availability: models.RegionalAvailability{PrimaryRegion: "North Indian", Regions: []string{"North Indian", "West Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"katori": 120}, DefaultServingGrams: 120},
	},
	{
		ID:      "legume-chana-masala",
		Name:    "Chana Masala",
		Aliases: []string{"chole"},
		Nutrition: models.NutritionFacts{
			Calories: 164, Protein: 8.9, Carbs: 22.5, Fat: 4.2, Fiber: 7.6,
			Vitamins: map[string]float64{"folate": 172, "vitamin_c": 4},
			Minerals: map[string]float64{"iron": 2.9, "magnesium": 48},
		},
		Preparation: models.PreparationMethod{
			Name:                "masala",
			Description:         "Simmer soaked chickpeas in an onion-tomato masala",
			Ingredients:         []string{"chickpeas", "onion", "tomato", "ginger", "garlic", "spices"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryLegumeDish,
		Availability: models.RegionalAvailability{PrimaryRegion: "North Indian", Regions: []string{"North Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"katori": 130}, DefaultServingGrams: 130},
	},
	{
		ID:      "legume-sambhar",
		Name:    "Sambhar",
		Aliases: []string{"sambar"},
		Nutrition: models.NutritionFacts{
			Calories: 85, Protein: 4.3, Carbs: 12.0, Fat: 2.2, Fiber: 3.8,
			Vitamins: map[string]float64{"vitamin_a": 210, "vitamin_c": 11},
			Minerals: map[string]float64{"iron": 1.4, "potassium": 310},
		},
		Preparation: models.PreparationMethod{
			Name:                "stewed",
			Description:         "Simmer toor dal with vegetables and sambhar powder",
			Ingredients:         []string{"toor dal", "tamarind", "drumstick", "tomato", "sambhar powder"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryLegumeDish,
		Availability: models.RegionalAvailability{PrimaryRegion: "South Indian", Regions: []string{"South Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"katori": 150}, DefaultServingGrams: 150},
	},
	{
		ID:      "veg-palak-sabzi",
		Name:    "Palak Sabzi",
		Aliases: []string{"spinach stir-fry"},
		Nutrition: models.NutritionFacts{
			Calories: 65, Protein: 3.5, Carbs: 6.8, Fat: 2.8, Fiber: 3.4,
			Vitamins: map[string]float64{"vitamin_a": 469, "vitamin_c": 28, "folate": 194},
			Minerals: map[string]float64{"iron": 2.7, "calcium": 99, "magnesium": 79},
		},
		Preparation: models.PreparationMethod{
			Name:                "stir-fried",
			Description:         "Sauté spinach with garlic and a pinch of spices",
			Ingredients:         []string{"spinach", "garlic", "oil", "cumin", "salt"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryVegetableDish,
		Availability: models.RegionalAvailability{PrimaryRegion: "North Indian", Regions: []string{"North Indian", "East Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"katori": 100}, DefaultServingGrams: 100},
	},
	{
		ID:      "veg-bhindi-masala",
		Name:    "Bhindi Masala",
		Aliases: []string{"okra masala"},
		Nutrition: models.NutritionFacts{
			Calories: 90, Protein: 2.0, Carbs: 9.5, Fat: 5.0, Fiber: 3.2,
			Vitamins: map[string]float64{"vitamin_c": 21, "folate": 60},
			Minerals: map[string]float64{"magnesium": 57, "potassium": 299},
		},
		Preparation: models.PreparationMethod{
			Name:                "masala",
			Description:         "Stir-fry okra with onion and dry spices",
			Ingredients:         []string{"okra", "onion", "oil", "spices", "salt"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryVegetableDish,
		Availability: models.RegionalAvailability{PrimaryRegion: "North Indian", Regions: []string{"North Indian", "West Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"katori": 100}, DefaultServingGrams: 100},
	},
	{
		ID:   "flatbread-roti",
		Name: "Whole Wheat Roti",
		Aliases: []string{
			"chapati", "phulka",
		},
		Nutrition: models.NutritionFacts{
			Calories: 297, Protein: 11.0, Carbs: 58.0, Fat: 4.2, Fiber: 11.0,
			Minerals: map[string]float64{"iron": 3.0, "magnesium": 120},
		},
		Preparation: models.PreparationMethod{
			Name:                "roasted",
			Description:         "Roll thin and roast on a dry tawa",
			Ingredients:         []string{"whole wheat flour", "water", "salt"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryFlatbread,
		Availability: models.RegionalAvailability{PrimaryRegion: "North Indian", Regions: []string{"North Indian", "West Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"piece": 30}, DefaultServingGrams: 60},
	},
	{
		ID:      "flatbread-jowar-bhakri",
		Name:    "Jowar Bhakri",
		Aliases: []string{"sorghum flatbread"},
		Nutrition: models.NutritionFacts{
			Calories: 260, Protein: 9.0, Carbs: 55.0, Fat: 2.5, Fiber: 8.5,
			Minerals: map[string]float64{"iron": 3.4, "magnesium": 123},
		},
		Preparation: models.PreparationMethod{
			Name:                "roasted",
			Description:         "Pat jowar dough flat by hand and roast on a tawa",
			Ingredients:         []string{"jowar flour", "water", "salt"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryFlatbread,
		Availability: models.RegionalAvailability{PrimaryRegion: "West Indian", Regions: []string{"West Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"piece": 45}, DefaultServingGrams: 45},
	},
	{
		ID:      "curry-paneer-butter-masala",
		Name:    "Paneer Butter Masala",
		Aliases: []string{"paneer makhani"},
		Nutrition: models.NutritionFacts{
			Calories: 280, Protein: 11.5, Carbs: 9.0, Fat: 22.0, Fiber: 1.8,
			Vitamins: map[string]float64{"vitamin_a": 180},
			Minerals: map[string]float64{"calcium": 280},
		},
		Preparation: models.PreparationMethod{
			Name:                "gravy",
			Description:         "Simmer paneer in a tomato-cashew-butter gravy",
			Ingredients:         []string{"paneer", "butter", "cream", "tomato", "cashew", "spices"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryCurry,
		Availability: models.RegionalAvailability{PrimaryRegion: "North Indian", Regions: []string{"North Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"katori": 125}, DefaultServingGrams: 125},
	},
	{
		ID:      "curry-chicken-curry",
		Name:    "Home-Style Chicken Curry",
		Aliases: []string{"murgh curry"},
		Nutrition: models.NutritionFacts{
			Calories: 190, Protein: 17.5, Carbs: 5.0, Fat: 11.0, Fiber: 1.2,
			Vitamins: map[string]float64{"vitamin_b12": 0.4},
			Minerals: map[string]float64{"iron": 1.3, "zinc": 1.8},
		},
		Preparation: models.PreparationMethod{
			Name:                "gravy",
			Description:         "Brown chicken and simmer in an onion-tomato gravy",
			Ingredients:         []string{"chicken", "onion", "tomato", "ginger", "garlic", "oil", "spices"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryCurry,
		Availability: models.RegionalAvailability{PrimaryRegion: "North Indian", Regions: []string{"North Indian", "South Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"katori": 150}, DefaultServingGrams: 150},
	},
	{
		ID:      "snack-sprouts-chaat",
		Name:    "Moong Sprouts Chaat",
		Aliases: []string{"sprouts salad"},
		Nutrition: models.NutritionFacts{
			Calories: 95, Protein: 7.5, Carbs: 14.0, Fat: 1.0, Fiber: 6.2,
			Vitamins: map[string]float64{"vitamin_c": 18, "folate": 120},
			Minerals: map[string]float64{"iron": 2.2, "potassium": 310},
		},
		Preparation: models.PreparationMethod{
			Name:                "raw",
			Description:         "Toss steamed sprouts with onion, tomato, and lemon",
			Ingredients:         []string{"moong sprouts", "onion", "tomato", "lemon", "chaat masala"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategorySnack,
		Availability: models.RegionalAvailability{PrimaryRegion: "West Indian", Regions: []string{"West Indian", "North Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"bowl": 100}, DefaultServingGrams: 100},
	},
	{
		ID:      "snack-samosa",
		Name:    "Samosa",
		Aliases: []string{},
		Nutrition: models.NutritionFacts{
			Calories: 308, Protein: 5.0, Carbs: 32.0, Fat: 17.5, Fiber: 2.5,
			Minerals: map[string]float64{"iron": 1.2},
		},
		Preparation: models.PreparationMethod{
			Name:                "deep-fried",
			Description:         "Stuff spiced potato filling in maida pastry and deep-fry",
			Ingredients:         []string{"maida", "potato", "peas", "oil", "spices"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategorySnack,
		Availability: models.RegionalAvailability{PrimaryRegion: "North Indian", Regions: []string{"North Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"piece": 85}, DefaultServingGrams: 85},
	},
	{
		ID:      "dessert-kheer",
		Name:    "Rice Kheer",
		Aliases: []string{"payasam"},
		Nutrition: models.NutritionFacts{
			Calories: 143, Protein: 3.8, Carbs: 22.0, Fat: 4.5, Fiber: 0.3,
			Minerals: map[string]float64{"calcium": 120},
		},
		Preparation: models.PreparationMethod{
			Name:                "simmered",
			Description:         "Simmer rice in milk with cardamom and sugar",
			Ingredients:         []string{"rice", "milk", "sugar", "cardamom", "cashew"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryDessert,
		Availability: models.RegionalAvailability{PrimaryRegion: "North Indian", Regions: []string{"North Indian", "South Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"katori": 100}, DefaultServingGrams: 100},
	},
	{
		ID:      "dessert-gajar-halwa",
		Name:    "Gajar Ka Halwa",
		Aliases: []string{"carrot halwa"},
		Nutrition: models.NutritionFacts{
			Calories: 285, Protein: 4.2, Carbs: 35.0, Fat: 14.0, Fiber: 2.4,
			Vitamins: map[string]float64{"vitamin_a": 835},
			Minerals: map[string]float64{"calcium": 95},
		},
		Preparation: models.PreparationMethod{
			Name:                "slow-cooked",
			Description:         "Slow-cook grated carrot in milk, ghee, and sugar",
			Ingredients:         []string{"carrot", "milk", "ghee", "sugar", "khoya", "almond"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryDessert,
		Availability: models.RegionalAvailability{PrimaryRegion: "North Indian", Regions: []string{"North Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"katori": 100}, DefaultServingGrams: 100},
	},
	{
		ID:      "beverage-masala-chaas",
		Name:    "Masala Chaas",
		Aliases: []string{"spiced buttermilk"},
		Nutrition: models.NutritionFacts{
			Calories: 35, Protein: 2.0, Carbs: 3.5, Fat: 1.2, Fiber: 0,
			Minerals: map[string]float64{"calcium": 85, "potassium": 130},
		},
		Preparation: models.PreparationMethod{
			Name:                "blended",
			Description:         "Whisk curd with water, roasted cumin, and mint",
			Ingredients:         []string{"curd", "water", "cumin", "mint", "salt"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryBeverage,
		Availability: models.RegionalAvailability{PrimaryRegion: "West Indian", Regions: []string{"West Indian", "North Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"glass": 200}, DefaultServingGrams: 200},
	},
	{
		ID:      "beverage-nimbu-pani",
		Name:    "Nimbu Pani",
		Aliases: []string{"lemon water", "shikanji"},
		Nutrition: models.NutritionFacts{
			Calories: 25, Protein: 0.1, Carbs: 6.5, Fat: 0, Fiber: 0.1,
			Vitamins: map[string]float64{"vitamin_c": 12},
		},
		Preparation: models.PreparationMethod{
			Name:                "mixed",
			Description:         "Mix lemon juice with water and a pinch of salt",
			Ingredients:         []string{"lemon", "water", "sugar", "salt"},
			NutritionMultiplier: 1.0,
		},
		Category:     models.CategoryBeverage,
		Availability: models.RegionalAvailability{PrimaryRegion: "North Indian", Regions: []string{"North Indian", "West Indian", "South Indian"}},
		Portions:     models.PortionGuide{Units: map[string]float64{"glass": 200}, DefaultServingGrams: 200},
	},
}
