package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collectors for the webhook pipeline. Outcome labels match the domain
// disposition names; failure kinds distinguish transport errors, non-2xx
// responses, and application-level rejections so both failure classes stay
// visible in telemetry.
var (
	WebhooksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhooks_received_total",
			Help: "Webhook deliveries by terminal outcome",
		},
		[]string{"outcome"},
	)

	ForwardFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forward_failures_total",
			Help: "Failed delivery attempts to the events API by failure kind",
		},
		[]string{"kind"},
	)

	ForwardDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "forward_duration_seconds",
			Help:    "Outbound delivery duration including endpoint failover",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(WebhooksTotal)
	prometheus.MustRegister(ForwardFailuresTotal)
	prometheus.MustRegister(ForwardDuration)
}
