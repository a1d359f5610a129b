// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

/*
Package metrics provides Prometheus metrics collection for observability.

Metrics are registered at package load via promauto and exposed through the
/metrics endpoint:

  - API request latency, throughput, and rate limit rejections
  - Engine operation volume per request type and outcome
  - Catalog availability and size

Metrics record aggregate behavior only; no user profile data is ever used as
a label value.
*/
package metrics
