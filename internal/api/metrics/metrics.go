// Package metrics defines and registers all custom Prometheus metrics for the
// FitRack API. It is the single source of truth for metric names, labels, and
// help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fitrack"

// ── Gate metrics ──────────────────────────────────────────────────────────────

// AuthRejectionsTotal counts requests rejected by the access control gate.
// Label:
//   - reason: "missing_header", "invalid_token", "self_mismatch",
//     "unknown_user", or "insufficient_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// TokensIssuedTotal counts bearer credentials minted by the issuer.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentIntentsTotal counts payment-intent creations against the gateway.
// Label:
//   - result: "ok" or "error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent creations, by result.",
	},
	[]string{"result"},
)

// PaymentsRecordedTotal counts persisted payment records.
var PaymentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payments recorded.",
	},
)

// ── Community metrics ─────────────────────────────────────────────────────────

// ForumVotesTotal counts accepted forum votes.
// Label:
//   - direction: "up" or "down"
var ForumVotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forum_votes_total",
		Help:      "Total number of accepted forum votes, by direction.",
	},
	[]string{"direction"},
)
