// Package metrics defines and registers all custom Prometheus metrics for the
// rest-shop commerce API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at package
// load; the /metrics route is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failure covers unknown email and wrong password alike)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the token middleware.
var AuthRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected for a missing or invalid auth token.",
	},
)

// UsersDeletedTotal counts deleted accounts.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of accounts deleted by their owner.",
	},
)

// ── Catalogue metrics ─────────────────────────────────────────────────────────

// ProductsCreatedTotal counts catalogue items added.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products added to the catalogue.",
	},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts orders placed.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	},
)

// OrderIdempotencyTotal counts idempotency-key decisions on order placement.
// Label:
//   - result: "hit" (replayed, no new order) or "miss" (new order created)
var OrderIdempotencyTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_idempotency_total",
		Help:      "Total number of idempotency-key checks on order placement, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
