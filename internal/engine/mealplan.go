// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rasoilabs/rasoi/internal/models"
)

const (
	defaultPlanDays = 3
	maxPlanDays     = 14
)

// planSlots is the fixed slot order within a day.
var planSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner}

// slotMealCounts is how many recommendations each slot receives per day.
var slotMealCounts = map[MealSlot]int{
	SlotBreakfast: 2,
	SlotLunch:     3,
	SlotDinner:    3,
	SlotSnack:     2,
}

// ComposePlan builds a multi-day meal plan from a pre-filtered catalog. Main
// meals score with the balanced bias; snacks score with the healthy bias.
// Every day receives the top-ranked candidates for each slot, so the same
// foods repeat across days; the per-slot selections are independent and run
// concurrently, with deterministic assembly.
func ComposePlan(ctx context.Context, catalog []models.FoodRecord, uc UserContext, days int, includeSnacks bool, cfg *Config) (map[string][]Recommendation, []string, error) {
	if days <= 0 {
		days = defaultPlanDays
	}
	if days > maxPlanDays {
		days = maxPlanDays
	}

	slots := planSlots
	if includeSnacks {
		slots = append(append([]MealSlot{}, planSlots...), SlotSnack)
	}

	picks := make([][]Recommendation, len(slots))
	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range slots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reqType := RequestBalanced
			if slot == SlotSnack {
				reqType = RequestHealthy
			}
			ranked := ScoreAndRank(catalog, uc, reqType)
			picks[i] = SelectRecommendations(ranked, uc, reqType, slot, slotMealCounts[slot], cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var dayMeals []Recommendation
	for _, slotPicks := range picks {
		dayMeals = append(dayMeals, slotPicks...)
	}

	plan := make(map[string][]Recommendation, days)
	labels := make([]string, days)
	for day := 0; day < days; day++ {
		label := fmt.Sprintf("day_%d", day+1)
		labels[day] = label
		plan[label] = append([]Recommendation{}, dayMeals...)
	}
	return plan, labels, nil
}
