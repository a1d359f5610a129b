// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

// Package models defines the shared data types for the recommendation
// service.
//
// Catalog types:
//   - FoodRecord: an immutable catalog entry with nutrition facts, a default
//     preparation method, category tag, regional availability, and a portion
//     guide
//   - NutritionFacts: per-100g macro and micronutrient values
//   - FoodCategory: fixed category enumeration
//
// Profile types:
//   - UserProfile: the raw, possibly sparse profile supplied by the caller;
//     optional numerics are pointers so unset is distinguishable from zero
//
// HTTP types:
//   - APIResponse: standard response envelope
//   - APIError: structured error details
//
// Everything in this package is a plain value type with no behavior beyond
// small helpers; the decision logic lives in the engine package.
package models
