package qstore

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"
)

func TestAddValueQuadRoundTripsThroughValueOf(t *testing.T) {
	s := New()

	q, err := s.AddValueQuad(quad.Quad{
		Subject:   quad.IRI("http://example.org/ns#alice"),
		Predicate: quad.IRI("http://example.org/ns#knows"),
		Object:    quad.String("bob"),
	})
	require.NoError(t, err)
	require.Equal(t, s.DefaultGraph(), q.Graph, "a nil Label should land in the default graph")

	got := s.QuadValueOf(q)
	require.Equal(t, quad.IRI("http://example.org/ns#alice"), got.Subject)
	require.Equal(t, quad.IRI("http://example.org/ns#knows"), got.Predicate)
	require.Equal(t, quad.String("bob"), got.Object)
	require.Nil(t, got.Label)
}

func TestAddValueQuadWithLabelIsNotDefaultGraph(t *testing.T) {
	s := New()

	q, err := s.AddValueQuad(quad.Quad{
		Subject:   quad.IRI("http://example.org/ns#alice"),
		Predicate: quad.IRI("http://example.org/ns#knows"),
		Object:    quad.IRI("http://example.org/ns#bob"),
		Label:     quad.IRI("http://example.org/ns#graph1"),
	})
	require.NoError(t, err)
	require.NotEqual(t, s.DefaultGraph(), q.Graph)

	got := s.QuadValueOf(q)
	require.Equal(t, quad.IRI("http://example.org/ns#graph1"), got.Label)
}

func TestAddValueQuadIsIdempotent(t *testing.T) {
	s := New()
	qv := quad.Quad{
		Subject:   quad.IRI("http://example.org/ns#a"),
		Predicate: quad.IRI("http://example.org/ns#p"),
		Object:    quad.IRI("http://example.org/ns#b"),
	}
	q1, err := s.AddValueQuad(qv)
	require.NoError(t, err)
	q2, err := s.AddValueQuad(qv)
	require.NoError(t, err)
	require.Equal(t, q1, q2)
	require.Equal(t, 1, s.QuadCount())
}

func TestValueOfLangStringAndTypedString(t *testing.T) {
	s := New()

	en := "en"
	id, err := s.NewLiteral("hello", nil, &en)
	require.NoError(t, err)
	v, ok := s.ValueOf(id)
	require.True(t, ok)
	require.Equal(t, quad.LangString{Value: "hello", Lang: "en"}, v)

	dt := "http://example.org/ns#custom"
	id, err = s.NewLiteral("42", &dt, nil)
	require.NoError(t, err)
	v, ok = s.ValueOf(id)
	require.True(t, ok)
	require.Equal(t, quad.TypedString{Value: "42", Type: quad.IRI(dt)}, v)
}

func TestValueOfBlankNodeRoundTrips(t *testing.T) {
	s := New()
	name := "b1"
	id, err := s.NewBlank(&name)
	require.NoError(t, err)

	v, ok := s.ValueOf(id)
	require.True(t, ok)
	require.Equal(t, quad.BNode("b1"), v)
}

func TestFindValueNodesDefaultsLabelToDefaultGraph(t *testing.T) {
	s := New()
	_, err := s.AddValueQuad(quad.Quad{
		Subject:   quad.IRI("http://example.org/ns#a"),
		Predicate: quad.IRI("http://example.org/ns#p"),
		Object:    quad.IRI("http://example.org/ns#b"),
	})
	require.NoError(t, err)

	res := s.FindValueNodes(quad.IRI("http://example.org/ns#a"), nil, nil, nil)
	require.Len(t, res, 1)
	require.Equal(t, quad.IRI("http://example.org/ns#p"), res[0].Predicate)
}

func TestFindValueNodesOnUnknownValueIsEmpty(t *testing.T) {
	s := New()
	before := s.nodes.Len()
	res := s.FindValueNodes(quad.IRI("http://example.org/ns#missing"), nil, nil, nil)
	require.Empty(t, res)

	require.Equal(t, before, s.nodes.Len(), "FindValueNodes must never intern nodes")
}

func TestFindValueNodesRoundTripsBlankNode(t *testing.T) {
	s := New()
	name := "anon1"
	blank, err := s.NewBlank(&name)
	require.NoError(t, err)
	a, err := s.NewURIRef("http://example.org/ns#p")
	require.NoError(t, err)
	require.True(t, s.AddTriple(blank, a, blank))

	res := s.FindValueNodes(quad.BNode("anon1"), nil, nil, nil)
	require.Len(t, res, 1)
	require.Equal(t, quad.BNode("anon1"), res[0].Subject)
	require.Equal(t, quad.BNode("anon1"), res[0].Object)
}
