// Package qstore implements an in-memory RDF-like quad store: URI
// interning, a dense node table with id reuse, four mirrored ordered
// quad indices, and a planner that picks the cheapest index for a given
// (subject, predicate, object, graph) query pattern.
//
// The store is not safe for concurrent use and does not persist to disk;
// see DESIGN.md and SPEC_FULL.md for the full list of non-goals.
package qstore

import (
	"github.com/google/uuid"

	"github.com/cayleygraph/qstore/internal/qindex"
	"github.com/cayleygraph/qstore/internal/qlog"
	"github.com/cayleygraph/qstore/internal/uriintern"
	"github.com/cayleygraph/qstore/metrics"
	"github.com/cayleygraph/qstore/qerrors"
)

// Store is the façade gluing URI interning, the node table, and the
// quad indices together.
type Store struct {
	interner *uriintern.Interner
	nodes    *NodeTable
	idx      *qindex.Set

	defaultGraph NodeID
	metrics      *metrics.Metrics
}

// New creates an empty Store. The reserved default-graph URI
// (DefaultGraphURI) is interned first, so it is guaranteed to receive
// NodeID 0, matching original_source/src/store.rs's bootstrap invariant.
func New(opts ...Option) *Store {
	var o options
	for _, apply := range opts {
		apply(&o)
	}

	s := &Store{
		interner: uriintern.New(),
		nodes:    newNodeTable(),
		idx:      qindex.NewSet(),
		metrics:  metrics.New(o.registerer),
	}
	if o.capacityHint > 0 {
		s.nodes.Grow(o.capacityHint)
	}

	id, err := s.internURIRefNode(DefaultGraphURI)
	if err != nil {
		// DefaultGraphURI always splits cleanly ("http://internal/" + "graph")
		// and is the very first insertion into a fresh arena, which always
		// admits id 0, so this cannot fail in practice.
		panic("qstore: failed to bootstrap default graph: " + err.Error())
	}
	if id != 0 {
		panic("qstore: default graph did not receive NodeID 0")
	}
	s.defaultGraph = id
	return s
}

// DefaultGraph returns the NodeID of the reserved default graph.
func (s *Store) DefaultGraph() NodeID { return s.defaultGraph }

// internURIRefNode interns uri and finds-or-adds the corresponding
// KindURI node, returning its NodeID.
func (s *Store) internURIRefNode(uri string) (NodeID, error) {
	cid, err := s.interner.Intern(uri)
	if err != nil {
		return 0, err
	}
	return s.nodes.FindOrAdd(Node{Kind: KindURI, URI: cid})
}

// NewURIRef interns uri and returns the NodeID of its URI reference node,
// allocating one if it doesn't already exist. This is the write path.
func (s *Store) NewURIRef(uri string) (NodeID, error) {
	id, err := s.internURIRefNode(uri)
	if err != nil {
		qlog.Errorf("qstore: failed to intern URI %q: %v", uri, err)
		return 0, err
	}
	s.refreshGauges()
	return id, nil
}

// FindURIRef returns the NodeID of uri's URI reference node without
// interning it. This is the read path: it never mutates the store.
func (s *Store) FindURIRef(uri string) (NodeID, bool) {
	cid, ok := s.interner.Lookup(uri)
	if !ok {
		return 0, false
	}
	return s.nodes.Find(Node{Kind: KindURI, URI: cid})
}

// NewLiteral finds-or-adds a literal node with the given lexical form,
// datatype, and language tag, applying original_source/src/literal.rs's
// datatype-default resolution. datatype and lang may be nil.
func (s *Store) NewLiteral(lexical string, datatype, lang *string) (NodeID, error) {
	resolvedDatatype, resolvedLang, hasLang, err := resolveLiteralDatatypeAndLang(datatype, lang)
	if err != nil {
		qlog.Errorf("qstore: failed to resolve literal %q: %v", lexical, err)
		return 0, err
	}
	dtID, err := s.interner.Intern(resolvedDatatype)
	if err != nil {
		qlog.Errorf("qstore: failed to intern literal datatype %q: %v", resolvedDatatype, err)
		return 0, err
	}
	id, err := s.nodes.FindOrAdd(Node{
		Kind:    KindLiteral,
		URI:     dtID,
		Lexical: lexical,
		Lang:    resolvedLang,
		HasLang: hasLang,
	})
	if err != nil {
		qlog.Errorf("qstore: failed to intern literal %q: %v", lexical, err)
		return 0, err
	}
	s.refreshGauges()
	return id, nil
}

// FindLiteral returns the NodeID of the given literal without interning
// it. This is the read path: it never mutates the store.
func (s *Store) FindLiteral(lexical string, datatype, lang *string) (NodeID, bool) {
	resolvedDatatype, resolvedLang, hasLang, err := resolveLiteralDatatypeAndLang(datatype, lang)
	if err != nil {
		return 0, false
	}
	dtID, ok := s.interner.Lookup(resolvedDatatype)
	if !ok {
		return 0, false
	}
	return s.nodes.Find(Node{
		Kind:    KindLiteral,
		URI:     dtID,
		Lexical: lexical,
		Lang:    resolvedLang,
		HasLang: hasLang,
	})
}

// NewBlank finds-or-adds a blank node. If identifier is nil, a fresh
// lexical form is generated via uuid.NewString(), matching
// original_source/src/blank.rs's use of Uuid::new_v4(). The blank node's
// identity is an interned Literal with datatype BlankDatatypeURI; see
// DESIGN.md's "Open Question: blank node representation".
func (s *Store) NewBlank(identifier *string) (NodeID, error) {
	lexical := ""
	if identifier != nil {
		lexical = *identifier
	} else {
		lexical = uuid.NewString()
	}
	blankDatatype := BlankDatatypeURI
	literalID, err := s.NewLiteral(lexical, &blankDatatype, nil)
	if err != nil {
		return 0, err
	}
	id, err := s.nodes.FindOrAdd(Node{Kind: KindBlank, Blank: literalID})
	if err != nil {
		qlog.Errorf("qstore: failed to intern blank node %q: %v", lexical, err)
		return 0, err
	}
	s.refreshGauges()
	return id, nil
}

// BlankIdentifier returns the lexical form identifying the blank node id,
// dereferencing through its underlying literal entry. It returns
// qerrors.ErrUnsupportedBlankShape if id is not a KindBlank node, or
// qerrors.ErrNotFound if id is not a live node at all.
func (s *Store) BlankIdentifier(id NodeID) (string, error) {
	n, ok := s.nodes.Lookup(id)
	if !ok {
		return "", qerrors.ErrNotFound
	}
	if n.Kind != KindBlank {
		return "", qerrors.ErrUnsupportedBlankShape
	}
	lit, ok := s.nodes.Lookup(n.Blank)
	if !ok || lit.Kind != KindLiteral {
		return "", qerrors.ErrUnsupportedBlankShape
	}
	return lit.Lexical, nil
}

// Lookup returns the Node value for id, if id is currently live.
func (s *Store) Lookup(id NodeID) (Node, bool) {
	return s.nodes.Lookup(id)
}

// MaterializeURI reconstructs the URI string for a KindURI node's compact
// id, or a KindLiteral node's datatype.
func (s *Store) MaterializeURI(cid uriintern.CompactID) (string, bool) {
	return s.interner.Materialize(cid)
}

func (s *Store) refreshGauges() {
	s.metrics.Nodes.Set(float64(s.nodes.Len()))
	s.metrics.Quads.Set(float64(s.idx.Len()))
	s.metrics.ArenaFreeList.Set(float64(s.nodes.FreeListLen()))
}
