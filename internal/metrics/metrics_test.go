package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelcore/voxelblocks/internal/metrics"
)

func TestNewCollectorRegistersAllMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.CacheHits.Inc()
	c.CacheHits.Inc()
	c.CacheMisses.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	var hits float64
	found := false
	for _, f := range families {
		if f.GetName() == "voxelblocks_cache_hits_total" {
			found = true
			hits = f.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.True(t, found, "hits_total metric not registered")
	assert.Equal(t, 2.0, hits)
}
