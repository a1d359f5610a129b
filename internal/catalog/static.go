// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package catalog

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/rasoilabs/rasoi/internal/models"
)

// Static serves a fixed in-memory catalog. Safe for concurrent use; the
// backing slice is never mutated after construction.
type Static struct {
	foods []models.FoodRecord
}

// NewStatic creates a provider over the given records.
func NewStatic(foods []models.FoodRecord) *Static {
	return &Static{foods: foods}
}

// NewDefault creates a provider over the built-in food database.
func NewDefault() *Static {
	return &Static{foods: defaultFoods}
}

// LoadFile creates a provider from a JSON catalog file. Records with an
// empty ID or an unknown category are rejected so a malformed catalog fails
// at startup, not at request time.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var foods []models.FoodRecord
	if err := json.Unmarshal(data, &foods); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	for i, f := range foods {
		if f.ID == "" {
			return nil, fmt.Errorf("catalog record %d has no id", i)
		}
		if !f.Category.Valid() {
			return nil, fmt.Errorf("catalog record %s has unknown category %q", f.ID, f.Category)
		}
	}

	return &Static{foods: foods}, nil
}

// Foods returns the catalog snapshot.
func (s *Static) Foods(_ context.Context) ([]models.FoodRecord, error) {
	return s.foods, nil
}

// Len returns the catalog size.
func (s *Static) Len() int {
	return len(s.foods)
}
