package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"image-proxy/core/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()

	m.ObserveResponse(metrics.RoutePublic, 302)
	m.ObserveResponse(metrics.RoutePublic, 302)
	m.ObserveResponse(metrics.RoutePrivate, 200)
	m.ObserveProbe("miss")

	count, err := testutil.GatherAndCount(m.Registry(), "image_proxy_responses_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `image_proxy_responses_total{code="302",route="public"} 2`)
	assert.Contains(t, string(body), `image_proxy_public_probes_total{outcome="miss"} 1`)
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveResponse(metrics.RouteError, 500)
		m.ObserveProbe("error")
	})
}
