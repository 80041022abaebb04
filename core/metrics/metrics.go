package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes reported by the image proxy.
const (
	RoutePublic   = "public"
	RoutePrivate  = "private"
	RouteRejected = "rejected"
	RouteError    = "error"
)

// Metrics owns a private Prometheus registry and the image proxy collectors.
type Metrics struct {
	reg       *prometheus.Registry
	responses *prometheus.CounterVec
	probes    *prometheus.CounterVec
}

// New creates a Metrics instance with a fresh registry and registers collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	responses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "image_proxy",
		Name:      "responses_total",
		Help:      "Image proxy responses, partitioned by retrieval route and status code.",
	}, []string{"route", "code"})
	probes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "image_proxy",
		Name:      "public_probes_total",
		Help:      "Public URL probes, partitioned by outcome.",
	}, []string{"outcome"})

	reg.MustRegister(responses, probes)

	return &Metrics{
		reg:       reg,
		responses: responses,
		probes:    probes,
	}
}

// Handler returns an http.Handler serving the internal registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Registry exposes the registry for tests and additional collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Responses exposes the response counter.
func (m *Metrics) Responses() *prometheus.CounterVec {
	return m.responses
}

// ObserveResponse counts one response. A nil receiver is a no-op.
func (m *Metrics) ObserveResponse(route string, code int) {
	if m == nil {
		return
	}
	m.responses.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// ObserveProbe counts one public probe outcome (hit, miss, error).
func (m *Metrics) ObserveProbe(outcome string) {
	if m == nil {
		return
	}
	m.probes.WithLabelValues(outcome).Inc()
}
