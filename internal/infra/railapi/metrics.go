package railapi

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "railinfo_api_requests_total",
			Help: "Number of requests issued to the rail API",
		}, []string{"api"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "railinfo_api_errors_total",
			Help: "Number of rail API requests that failed, by error kind",
		}, []string{"api", "kind"}),
	}
	m.registry.MustRegister(m.requests, m.errors)
	return m
}
