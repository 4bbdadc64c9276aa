// Package prom exports lpmap statistics as Prometheus metrics.
//
// The collector reads Stats on every scrape, so it costs nothing between
// scrapes and always reports the current state of the map.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/homier/lpmap"
)

// StatsSource is anything that can report map statistics.
// *lpmap.Map and *lpmap.Set both satisfy it.
type StatsSource interface {
	Stats() lpmap.Stats
}

// Collector implements prometheus.Collector for a single map.
type Collector struct {
	src StatsSource

	size       *prometheus.Desc
	tombstones *prometheus.Desc
	capacity   *prometheus.Desc
	loadFactor *prometheus.Desc
	resizes    *prometheus.Desc
}

// NewCollector creates a collector whose metrics carry a constant "map"
// label set to name, so several maps can share one registry.
func NewCollector(namespace, name string, src StatsSource) *Collector {
	labels := prometheus.Labels{"map": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "lpmap", metric),
			help,
			nil,
			labels,
		)
	}

	return &Collector{
		src:        src,
		size:       desc("entries", "Number of live entries in the map"),
		tombstones: desc("tombstones", "Number of deleted slots not yet reclaimed by a rehash"),
		capacity:   desc("capacity_slots", "Number of allocated slots"),
		loadFactor: desc("load_factor", "Ratio of live and deleted slots to capacity"),
		resizes:    desc("rehashes_total", "Total number of rehashes since the map was created"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.tombstones
	ch <- c.capacity
	ch <- c.loadFactor
	ch <- c.resizes
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()

	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(s.Size))
	ch <- prometheus.MustNewConstMetric(c.tombstones, prometheus.GaugeValue, float64(s.Tombstones))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
	ch <- prometheus.MustNewConstMetric(c.loadFactor, prometheus.GaugeValue, float64(s.LoadFactor))
	ch <- prometheus.MustNewConstMetric(c.resizes, prometheus.CounterValue, float64(s.Resizes))
}
