// Package metrics exposes Prometheus counters for the generation engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Generation counts per-pair generation outcomes, labelled by entry point
// ("order", "asset", "refresh"). Label cardinality is bounded by the three
// entry points.
type Generation struct {
	Generated *prometheus.CounterVec
	Skipped   *prometheus.CounterVec
	Failed    *prometheus.CounterVec
}

// NewGeneration creates and registers the generation counters on reg.
func NewGeneration(reg prometheus.Registerer) *Generation {
	g := &Generation{
		Generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pubtag_scripts_generated_total",
			Help: "Tracking scripts created, by entry point",
		}, []string{"entry"}),
		Skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pubtag_scripts_skipped_total",
			Help: "Generation attempts skipped because an active script already covered the pair",
		}, []string{"entry"}),
		Failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pubtag_scripts_failed_total",
			Help: "Per-pair generation failures that did not abort the batch",
		}, []string{"entry"}),
	}
	reg.MustRegister(g.Generated, g.Skipped, g.Failed)
	return g
}
