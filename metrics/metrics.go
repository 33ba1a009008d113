// Package metrics defines the prometheus instrumentation for a qstore
// Store, grounded on graph/kv/metrics.go's use of
// github.com/prometheus/client_golang/prometheus/promauto. Unlike the
// teacher, which registers against the process-global default registry,
// metrics here are registered against a caller-supplied
// prometheus.Registerer so multiple Store instances in one process never
// collide on metric names (see DESIGN.md).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters and gauges a Store reports.
type Metrics struct {
	Nodes           prometheus.Gauge
	Quads           prometheus.Gauge
	ArenaFreeList   prometheus.Gauge
	PlannerDispatch *prometheus.CounterVec
}

// New registers and returns a fresh Metrics against reg. If reg is nil, a
// private prometheus.NewRegistry() is used so the caller never needs to
// worry about collisions with the process-global default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metrics{
		Nodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "qstore",
			Name:      "nodes",
			Help:      "Number of live entries in the node table.",
		}),
		Quads: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "qstore",
			Name:      "quads",
			Help:      "Number of quads currently indexed.",
		}),
		ArenaFreeList: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "qstore",
			Name:      "node_arena_free_list_depth",
			Help:      "Number of reusable ids currently on the node table's free list.",
		}),
		PlannerDispatch: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "qstore",
			Name:      "planner_dispatch_total",
			Help:      "Number of Search calls dispatched per bind mask.",
		}, []string{"mask"}),
	}
}
