// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasoilabs/rasoi/internal/models"
)

func TestComposePlanShape(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	plan, labels, err := ComposePlan(context.Background(), fixtureCatalog(), uc, 3, false, cfg)

	require.NoError(t, err)
	require.Equal(t, []string{"day_1", "day_2", "day_3"}, labels)
	require.Len(t, plan, 3)

	for _, label := range labels {
		day := plan[label]
		// 2 breakfast + 3 lunch + 3 dinner (capped by eligible mains).
		assert.NotEmpty(t, day, "day %s must have meals", label)
		for _, rec := range day {
			assert.NotEmpty(t, rec.Food.ID)
			assert.Greater(t, rec.Portion.Grams, 0.0)
		}
	}
}

func TestComposePlanDefaultsAndCaps(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	_, labels, err := ComposePlan(context.Background(), fixtureCatalog(), uc, 0, false, cfg)
	require.NoError(t, err)
	assert.Len(t, labels, defaultPlanDays)

	_, labels, err = ComposePlan(context.Background(), fixtureCatalog(), uc, 100, false, cfg)
	require.NoError(t, err)
	assert.Len(t, labels, maxPlanDays)
}

func TestComposePlanIncludeSnacks(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	without, _, err := ComposePlan(context.Background(), fixtureCatalog(), uc, 1, false, cfg)
	require.NoError(t, err)
	with, _, err := ComposePlan(context.Background(), fixtureCatalog(), uc, 1, true, cfg)
	require.NoError(t, err)

	assert.Greater(t, len(with["day_1"]), len(without["day_1"]))

	found := false
	for _, rec := range with["day_1"] {
		if rec.Food.Category == models.CategorySnack {
			found = true
		}
	}
	assert.True(t, found, "snack course expected in plan")
}

func TestComposePlanDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	a, _, err := ComposePlan(context.Background(), fixtureCatalog(), uc, 3, true, cfg)
	require.NoError(t, err)
	b, _, err := ComposePlan(context.Background(), fixtureCatalog(), uc, 3, true, cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestComposePlanEmptyCatalog(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)

	plan, labels, err := ComposePlan(context.Background(), nil, uc, 2, true, cfg)

	require.NoError(t, err)
	require.Len(t, labels, 2)
	for _, label := range labels {
		assert.Empty(t, plan[label])
	}
}

func TestComposePlanRepeatsTopRankedAcrossDays(t *testing.T) {
	cfg := DefaultConfig()
	uc := BuildUserContext(models.UserProfile{}, cfg)
	catalog := fixtureCatalog()

	plan, labels, err := ComposePlan(context.Background(), catalog, uc, 3, false, cfg)
	require.NoError(t, err)

	// Each day greedily takes the same top-ranked candidates per slot.
	assert.Equal(t, plan[labels[0]], plan[labels[1]])
	assert.Equal(t, plan[labels[0]], plan[labels[2]])

	ranked := ScoreAndRank(catalog, uc, RequestBalanced)
	breakfast := SelectRecommendations(ranked, uc, RequestBalanced, SlotBreakfast, slotMealCounts[SlotBreakfast], cfg)
	require.NotEmpty(t, breakfast)
	assert.Equal(t, breakfast[0].Food.ID, plan[labels[1]][0].Food.ID)
}
