package royalmail

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "royalmail_client",
			Name:      "requests_total",
			Help:      "Tracking API calls issued, by operation.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "royalmail_client",
			Name:      "request_failures_total",
			Help:      "Tracking API calls that raised a classified error, by operation and kind.",
		},
		[]string{"operation", "kind"},
	)
)

// observe records one call and, when it failed, the classified kind. Errors
// that are not SDK errors (context cancellation) count under "other".
func observe(operation string, err error) {
	requestsTotal.WithLabelValues(operation).Inc()
	if err == nil {
		return
	}
	kind := "other"
	if k, ok := KindOf(err); ok {
		kind = k.String()
	}
	requestFailuresTotal.WithLabelValues(operation, kind).Inc()
}
