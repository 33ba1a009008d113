package qstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/qstore/internal/uriintern"
	"github.com/cayleygraph/qstore/qerrors"
)

func TestDefaultGraphIsNodeZero(t *testing.T) {
	s := New()
	require.Equal(t, NodeID(0), s.DefaultGraph())

	n, ok := s.Lookup(0)
	require.True(t, ok)
	require.True(t, n.IsURI())

	uri, ok := s.MaterializeURI(n.URI)
	require.True(t, ok)
	require.Equal(t, DefaultGraphURI, uri)
}

func TestNewURIRefIsIdempotent(t *testing.T) {
	s := New()
	id1, err := s.NewURIRef("http://example.org/ns#a")
	require.NoError(t, err)
	id2, err := s.NewURIRef("http://example.org/ns#a")
	require.NoError(t, err)
	require.Equal(t, id1, id2)
}

func TestFindURIRefDoesNotIntern(t *testing.T) {
	s := New()
	_, ok := s.FindURIRef("http://example.org/ns#missing")
	require.False(t, ok)
}

func TestNewLiteralDefaultsToXSDString(t *testing.T) {
	s := New()
	id, err := s.NewLiteral("hello", nil, nil)
	require.NoError(t, err)

	n, ok := s.Lookup(id)
	require.True(t, ok)
	require.True(t, n.IsLiteral())
	require.Equal(t, "hello", n.Lexical)
	require.False(t, n.HasLang)

	dt, ok := s.MaterializeURI(n.URI)
	require.True(t, ok)
	require.Equal(t, XSDStringURI, dt)
}

func TestNewLiteralWithLangDefaultsDatatype(t *testing.T) {
	s := New()
	en := "en"
	id, err := s.NewLiteral("hello", nil, &en)
	require.NoError(t, err)

	n, ok := s.Lookup(id)
	require.True(t, ok)
	require.True(t, n.HasLang)
	require.Equal(t, "en", n.Lang)

	dt, ok := s.MaterializeURI(n.URI)
	require.True(t, ok)
	require.Equal(t, RDFLangStringURI, dt)
}

func TestNewLiteralInconsistentDatatypeAndLang(t *testing.T) {
	s := New()
	en := "en"
	dt := "http://example.org/ns#custom"
	_, err := s.NewLiteral("hello", &dt, &en)
	require.Error(t, err)
	var target *qerrors.InconsistentLiteralError
	require.ErrorAs(t, err, &target)
}

func TestNewBlankGeneratesUUIDWhenNoIdentifierGiven(t *testing.T) {
	s := New()
	id1, err := s.NewBlank(nil)
	require.NoError(t, err)
	id2, err := s.NewBlank(nil)
	require.NoError(t, err)
	require.NotEqual(t, id1, id2, "two anonymous blank nodes should get distinct generated identifiers")

	ident1, err := s.BlankIdentifier(id1)
	require.NoError(t, err)
	require.NotEmpty(t, ident1)
}

func TestNewBlankWithIdentifierIsIdempotent(t *testing.T) {
	s := New()
	name := "b1"
	id1, err := s.NewBlank(&name)
	require.NoError(t, err)
	id2, err := s.NewBlank(&name)
	require.NoError(t, err)
	require.Equal(t, id1, id2)

	ident, err := s.BlankIdentifier(id1)
	require.NoError(t, err)
	require.Equal(t, "b1", ident)
}

func TestBlankIdentifierOfNonBlankNodeErrors(t *testing.T) {
	s := New()
	id, err := s.NewURIRef("http://example.org/ns#a")
	require.NoError(t, err)

	_, err = s.BlankIdentifier(id)
	require.Error(t, err)
}

func TestAddQuadAndFindNodes(t *testing.T) {
	s := New()
	a, _ := s.NewURIRef("http://example.org/ns#a")
	p, _ := s.NewURIRef("http://example.org/ns#follows")
	b, _ := s.NewURIRef("http://example.org/ns#b")

	require.True(t, s.AddTriple(a, p, b))
	require.False(t, s.AddTriple(a, p, b), "re-adding the same triple should report false")

	res := s.FindNodes(BoundNode(a), AnyNode, AnyNode, AnyNode)
	require.Len(t, res, 1)
	require.Equal(t, Quad{Subject: a, Predicate: p, Object: b, Graph: s.DefaultGraph()}, res[0])
}

func TestRemoveTriple(t *testing.T) {
	s := New()
	a, _ := s.NewURIRef("http://example.org/ns#a")
	p, _ := s.NewURIRef("http://example.org/ns#follows")
	b, _ := s.NewURIRef("http://example.org/ns#b")

	require.True(t, s.AddTriple(a, p, b))
	require.True(t, s.RemoveTriple(a, p, b))
	require.False(t, s.HasQuad(Quad{Subject: a, Predicate: p, Object: b, Graph: s.DefaultGraph()}))
}

func TestFindNodesOnUnknownNodeIsEmptyNotError(t *testing.T) {
	s := New()
	res := s.FindNodes(BoundNode(999999), AnyNode, AnyNode, AnyNode)
	require.Empty(t, res)
}

func TestFindByNodeResolvesValuesWithoutInterning(t *testing.T) {
	s := New()
	a, _ := s.NewURIRef("http://example.org/ns#a")
	p, _ := s.NewURIRef("http://example.org/ns#follows")
	b, _ := s.NewURIRef("http://example.org/ns#b")
	require.True(t, s.AddTriple(a, p, b))

	subject, ok := s.Lookup(a)
	require.True(t, ok)

	before := s.nodes.Len()
	res := s.FindByNode(&subject, nil, nil, nil)
	require.Len(t, res, 1)
	require.Equal(t, Quad{Subject: a, Predicate: p, Object: b, Graph: s.DefaultGraph()}, res[0])
	require.Equal(t, before, s.nodes.Len(), "FindByNode must never intern nodes")
}

func TestFindByNodeOnUnknownNodeIsEmpty(t *testing.T) {
	s := New()
	unknown := Node{Kind: KindURI, URI: uriintern.CompactID{Prefix: 1 << 20, Suffix: 1 << 20}}
	res := s.FindByNode(&unknown, nil, nil, nil)
	require.Empty(t, res)
}
