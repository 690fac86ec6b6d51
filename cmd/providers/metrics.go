package providers

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/modaluna/gateway/pkg/gateway"
)

// NewMetrics registers the gateway collectors on the default
// Prometheus registry, exposed on /metrics.
func NewMetrics() *gateway.Metrics {
	return gateway.NewMetrics(prometheus.DefaultRegisterer)
}
