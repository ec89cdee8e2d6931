// Package metrics defines the Prometheus instrumentation for the
// compressible chunk backend's cache tier. Collector never starts its own
// HTTP server or registers against the global registry: the caller
// supplies a *prometheus.Registry and exposes it however its embedding
// program sees fit.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector holds the counters exported by a CompressibleBackend.
type Collector struct {
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	Promotions     prometheus.Counter
	Evictions      prometheus.Counter
	ColdStoreBytes prometheus.Gauge
}

// NewCollector builds and registers a Collector's metrics against reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxelblocks",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Chunk reads served from the hot LRU tier.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxelblocks",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Chunk reads for keys held in neither the hot LRU tier nor the cold store.",
		}),
		Promotions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxelblocks",
			Subsystem: "cache",
			Name:      "promotions_total",
			Help:      "Chunks moved from the cold store back into the hot LRU tier.",
		}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxelblocks",
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Chunks compressed out of the hot LRU tier into the cold store.",
		}),
		ColdStoreBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxelblocks",
			Subsystem: "cache",
			Name:      "cold_store_bytes",
			Help:      "Total compressed bytes currently held in the cold store.",
		}),
	}
	reg.MustRegister(c.CacheHits, c.CacheMisses, c.Promotions, c.Evictions, c.ColdStoreBytes)
	return c
}
