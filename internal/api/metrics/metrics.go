// Package metrics defines and registers all custom Prometheus metrics for the
// petfinder API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto at package load time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "petfinder"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "queued" (verification mail enqueued) or "duplicate_email"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// VerificationsTotal counts verification-link submissions.
// Label:
//   - result: "created", "replayed", or "invalid_token"
var VerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verifications_total",
		Help:      "Total number of verification-link submissions, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "not_verified"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Mail metrics ──────────────────────────────────────────────────────────────

// MailSentTotal counts verification mails handed to the transport.
// Label:
//   - result: "sent", "throttled", or "error"
var MailSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_sent_total",
		Help:      "Total number of verification mail deliveries, by result.",
	},
	[]string{"result"},
)

// MailDeliveryDuration measures how long a single delivery takes end-to-end.
var MailDeliveryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mail_delivery_duration_seconds",
		Help:      "Duration of verification mail delivery from dequeue to transport ack.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Ad metrics ────────────────────────────────────────────────────────────────

// AdsCreatedTotal counts newly created listings.
// Label:
//   - status: "lost" or "found"
var AdsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ads_created_total",
		Help:      "Total number of ads created, by listing status.",
	},
	[]string{"status"},
)
