// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

/*
Package api provides the HTTP REST API layer for Rasoi.

The API exposes the recommendation engine's operations over JSON:

  - POST /api/v1/recommendations: ranked food suggestions for a profile
  - POST /api/v1/meal-plans: multi-day meal plans
  - POST /api/v1/portions: portion sizing for a specific food
  - POST /api/v1/balance: intake-vs-target analysis
  - POST /api/v1/complementary: gap-filling food suggestions
  - GET /api/v1/foods: the food catalog, with optional filters
  - GET /api/v1/health: liveness and readiness probes
  - GET /metrics: Prometheus metrics

All responses use the models.APIResponse envelope. Request bodies are
validated before reaching the engine; validation failures return 400 with a
VALIDATION_ERROR code, catalog outages return 503 with CATALOG_UNAVAILABLE.
*/
package api
