package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments the forwarding pipeline.
type Metrics struct {
	Requests        *prometheus.CounterVec   // served requests by route and status
	UpstreamLatency *prometheus.HistogramVec // outbound call duration per upstream
	UpstreamErrors  *prometheus.CounterVec   // unreachable upstreams
}

// NewMetrics registers the gateway collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "requests_total",
			Help:      "Requests served, by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
		UpstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gateway",
			Name:      "upstream_seconds",
			Help:      "Duration of outbound upstream calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service"}),
		UpstreamErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "upstream_errors_total",
			Help:      "Outbound calls that got no response from the upstream.",
		}, []string{"service"}),
	}
}
