package metrics_test

import (
	"testing"

	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	m.RoutesProcessed.WithLabelValues("success").Inc()
	m.RoutesProcessed.WithLabelValues("success").Inc()
	m.APIErrors.Inc()
	m.RouteMeters.Observe(1312792.76)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.RoutesProcessed.WithLabelValues("success")), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.APIErrors), 0)

	count, err := testutil.GatherAndCount(reg, "meridian_route_distance_meters")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewMetrics(reg)

	assert.Panics(t, func() { metrics.NewMetrics(reg) })
}
