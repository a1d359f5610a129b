// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

// Package catalog provides food catalog sources for the recommendation
// engine.
//
// Three providers are available:
//
//   - Static: an in-memory catalog, seeded with the built-in food database
//     or loaded from a JSON file. Used in production for the bundled catalog
//     and in tests.
//   - HTTP: fetches the catalog from a remote service, with a circuit
//     breaker and a short-lived cache so a flapping upstream does not take
//     every request down with it.
//
// All providers return immutable snapshots; callers must not mutate the
// returned records.
package catalog
