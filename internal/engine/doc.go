// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

// Package engine implements the personalized nutrition recommendation engine.
//
// # Architecture
//
// The engine is a synchronous, stateless pipeline over an immutable food
// catalog:
//
//   - User Context Builder: normalizes a raw profile into a fully-defaulted
//     decision context
//   - Availability Filter: screens the catalog against dietary rules,
//     allergies, dislikes, and caller exclusions
//   - Food Scorer: sums five independent weighted contributions per candidate
//   - Recommendation Selector: ranks, slot-filters, truncates, and attaches
//     portions, justifications, and cooking tips
//   - Meal Plan Composer: drives the selector across days and meal slots
//   - Portion Calculator: Harris-Benedict calorie targets converted to
//     regional serving units
//   - Nutritional Balance Analyzer: aggregates intake against computed targets
//   - Complementary Food Finder: proposes items that fill detected gaps
//
// # Design Principles
//
//   - Deterministic: stable sorts, catalog order as tie-break
//   - Pure: scoring never mutates a FoodRecord or UserContext
//   - Total: sparse input is defaulted, never rejected; the only failure any
//     public operation reports is an unavailable catalog, surfaced as a
//     result object with Success=false
//   - Observable: structured zerolog fields on every operation
//
// # Usage
//
//	eng, err := engine.New(engine.DefaultConfig(), provider, logger)
//	res := eng.GenerateRecommendations(ctx, engine.RecommendationRequest{
//	    Profile:     profile,
//	    RequestType: engine.RequestHealthy,
//	    MaxCount:    5,
//	})
//
// # Thread Safety
//
// The engine owns no mutable state between calls; every operation is a pure
// function of (catalog snapshot, user context, request parameters). It is
// safe for concurrent use without locks. The per-slot selections inside
// meal-plan composition run as a task-parallel fan-out with deterministic
// result assembly.
package engine
