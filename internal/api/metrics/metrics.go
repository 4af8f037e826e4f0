// Package metrics defines and registers all custom Prometheus metrics for
// the storefront gateway. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Cart metrics ──────────────────────────────────────────────────────────────

// CartOperationsTotal counts cart mutations.
// Label:
//   - op: "add", "set_quantity", "remove", or "clear"
var CartOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Total number of cart mutations, by operation.",
	},
	[]string{"op"},
)

// ── Checkout metrics ──────────────────────────────────────────────────────────

// OrdersCreatedTotal counts orders successfully created at the backend
// during checkout.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created through checkout.",
	},
)

// PaymentsPreparedTotal counts payment sessions opened.
// Label:
//   - provider: "redirect" or "widget"
var PaymentsPreparedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_prepared_total",
		Help:      "Total number of payment sessions prepared, by provider.",
	},
	[]string{"provider"},
)

// PaymentsConfirmedTotal counts confirmation outcomes.
// Labels:
//   - provider: "redirect" or "widget"
//   - result: "success" or "failure"
var PaymentsConfirmedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_confirmed_total",
		Help:      "Total number of payment confirmation attempts, by provider and result.",
	},
	[]string{"provider", "result"},
)

// PaymentConfirmDuration measures the confirmation round trip end-to-end.
// Label:
//   - provider: "redirect" or "widget"
var PaymentConfirmDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_confirm_duration_seconds",
		Help:      "Duration of payment confirmation from request to journal update.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"provider"},
)
