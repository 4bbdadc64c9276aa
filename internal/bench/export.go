package bench

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/homier/lpmap/prom"
)

// Metric is a single gathered sample.
type Metric struct {
	Name  string
	Value float64
}

// Export registers a collector for src in a private registry and gathers it.
func Export(namespace, name string, src prom.StatsSource) ([]Metric, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(prom.NewCollector(namespace, name, src)); err != nil {
		return nil, fmt.Errorf("register collector: %w", err)
	}

	families, err := reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var metrics []Metric
	for _, f := range families {
		for _, m := range f.GetMetric() {
			var value float64

			switch {
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			default:
				continue
			}

			metrics = append(metrics, Metric{Name: f.GetName(), Value: value})
		}
	}

	return metrics, nil
}
