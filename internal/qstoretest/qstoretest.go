// Package qstoretest provides a reusable property-test suite exercising
// the testable properties of a qstore.Store, grounded on
// graph/graphtest/graphtest.go's TestAll harness pattern: a single
// entry point a package's own tests call with a constructor, so the same
// suite can be rerun against a store built with different options.
package qstoretest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/qstore"
)

// TestAll runs the full qstoretest suite against stores produced by new.
func TestAll(t *testing.T, new func() *qstore.Store) {
	t.Run("DefaultGraphIsNodeZero", func(t *testing.T) { testDefaultGraphIsNodeZero(t, new) })
	t.Run("InterningIsIdempotent", func(t *testing.T) { testInterningIsIdempotent(t, new) })
	t.Run("AddRemoveQuad", func(t *testing.T) { testAddRemoveQuad(t, new) })
	t.Run("FindNodesUnknownIsEmpty", func(t *testing.T) { testFindNodesUnknownIsEmpty(t, new) })
	t.Run("QueryEveryBindMask", func(t *testing.T) { testQueryEveryBindMask(t, new) })
}

func testDefaultGraphIsNodeZero(t *testing.T, newStore func() *qstore.Store) {
	s := newStore()
	require.Equal(t, qstore.NodeID(0), s.DefaultGraph())
}

func testInterningIsIdempotent(t *testing.T, newStore func() *qstore.Store) {
	s := newStore()
	id1, err := s.NewURIRef("http://example.org/ns#a")
	require.NoError(t, err)
	id2, err := s.NewURIRef("http://example.org/ns#a")
	require.NoError(t, err)
	require.Equal(t, id1, id2)
}

func testAddRemoveQuad(t *testing.T, newStore func() *qstore.Store) {
	s := newStore()
	a, _ := s.NewURIRef("http://example.org/ns#a")
	p, _ := s.NewURIRef("http://example.org/ns#p")
	b, _ := s.NewURIRef("http://example.org/ns#b")

	require.True(t, s.AddTriple(a, p, b))
	require.True(t, s.HasQuad(qstore.Quad{Subject: a, Predicate: p, Object: b, Graph: s.DefaultGraph()}))
	require.True(t, s.RemoveTriple(a, p, b))
	require.False(t, s.HasQuad(qstore.Quad{Subject: a, Predicate: p, Object: b, Graph: s.DefaultGraph()}))
	require.False(t, s.RemoveTriple(a, p, b), "removing an already-removed triple should report false")
}

func testFindNodesUnknownIsEmpty(t *testing.T, newStore func() *qstore.Store) {
	s := newStore()
	res := s.FindNodes(qstore.BoundNode(1<<62), qstore.AnyNode, qstore.AnyNode, qstore.AnyNode)
	require.Empty(t, res)
}

// testQueryEveryBindMask exercises all 16 bind-mask dispatch cases named
// in spec.md §4.5, including the four residual-filter cases.
func testQueryEveryBindMask(t *testing.T, newStore func() *qstore.Store) {
	s := newStore()
	mk := func(name string) qstore.NodeID {
		id, err := s.NewURIRef("http://example.org/ns#" + name)
		require.NoError(t, err)
		return id
	}
	s1, p1, o1, g1 := mk("s1"), mk("p1"), mk("o1"), mk("g1")
	s2, p2, o2, g2 := mk("s2"), mk("p2"), mk("o2"), mk("g2")

	require.True(t, s.AddQuad(qstore.Quad{Subject: s1, Predicate: p1, Object: o1, Graph: g1}))
	require.True(t, s.AddQuad(qstore.Quad{Subject: s2, Predicate: p2, Object: o2, Graph: g2}))

	any := qstore.AnyNode
	bound := qstore.BoundNode

	cases := []struct {
		name             string
		sub, pred, obj, g qstore.NodePattern
		wantLen          int
	}{
		{"none", any, any, any, any, 2},
		{"S", bound(s1), any, any, any, 1},
		{"P", any, bound(p1), any, any, 1},
		{"O", any, any, bound(o1), any, 1},
		{"G", any, any, any, bound(g1), 1},
		{"SP", bound(s1), bound(p1), any, any, 1},
		{"SO", bound(s1), any, bound(o1), any, 1},
		{"SG", bound(s1), any, any, bound(g1), 1},
		{"PO", any, bound(p1), bound(o1), any, 1},
		{"PG", any, bound(p1), any, bound(g1), 1},
		{"OG", any, any, bound(o1), bound(g1), 1},
		{"SPO", bound(s1), bound(p1), bound(o1), any, 1},
		{"SPG", bound(s1), bound(p1), any, bound(g1), 1},
		{"SOG", bound(s1), any, bound(o1), bound(g1), 1},
		{"POG", any, bound(p1), bound(o1), bound(g1), 1},
		{"SPOG", bound(s1), bound(p1), bound(o1), bound(g1), 1},
	}
	for _, c := range cases {
		res := s.FindNodes(c.sub, c.pred, c.obj, c.g)
		require.Lenf(t, res, c.wantLen, "bind mask %s", c.name)
	}
}
