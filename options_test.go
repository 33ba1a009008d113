package qstore

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestWithArenaCapacityHintPreSizesWithoutChangingBehavior(t *testing.T) {
	s := New(WithArenaCapacityHint(1024))
	id, err := s.NewURIRef("http://example.org/ns#a")
	require.NoError(t, err)
	require.NotZero(t, id)
}

func TestWithMetricsRegistersAgainstCallerRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := New(WithMetrics(reg))

	a, _ := s.NewURIRef("http://example.org/ns#a")
	p, _ := s.NewURIRef("http://example.org/ns#p")
	b, _ := s.NewURIRef("http://example.org/ns#b")
	s.AddTriple(a, p, b)
	s.FindNodes(BoundNode(a), AnyNode, AnyNode, AnyNode)

	families, err := reg.Gather()
	require.NoError(t, err)

	var sawNodes, sawQuads, sawDispatch bool
	for _, f := range families {
		switch f.GetName() {
		case "qstore_nodes":
			sawNodes = true
			require.NotZero(t, f.GetMetric()[0].GetGauge().GetValue())
		case "qstore_quads":
			sawQuads = true
			require.Equal(t, float64(1), f.GetMetric()[0].GetGauge().GetValue())
		case "qstore_planner_dispatch_total":
			sawDispatch = true
			var total float64
			for _, m := range f.GetMetric() {
				total += m.GetCounter().GetValue()
			}
			require.NotZero(t, total)
		}
	}
	require.True(t, sawNodes, "qstore_nodes gauge should be registered")
	require.True(t, sawQuads, "qstore_quads gauge should be registered")
	require.True(t, sawDispatch, "qstore_planner_dispatch_total counter should be registered")
}

// TestTwoStoresWithDefaultRegistryDoNotCollide guards against the private-registry-per-store
// design regressing to a shared global registry, which would panic on
// the second Store's duplicate metric registration.
func TestTwoStoresWithDefaultRegistryDoNotCollide(t *testing.T) {
	require.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}
