package qstore

import "github.com/cayleygraph/qstore/internal/qindex"

// AddQuad inserts a quad into the store, returning false if it was
// already present. The subject, predicate, object, and graph must
// already be live NodeIds (obtained from NewURIRef/NewLiteral/NewBlank).
func (s *Store) AddQuad(q Quad) bool {
	ok := s.idx.Add(toIndexQuad(q))
	if ok {
		s.refreshGauges()
	}
	return ok
}

// AddTriple inserts a quad in the default graph.
func (s *Store) AddTriple(subject, predicate, object NodeID) bool {
	return s.AddQuad(Quad{Subject: subject, Predicate: predicate, Object: object, Graph: s.defaultGraph})
}

// RemoveQuad deletes a quad, returning false if it was not present. It
// does not garbage-collect nodes left unreferenced by the removal --
// node-level GC is out of scope (see spec §9).
func (s *Store) RemoveQuad(q Quad) bool {
	ok := s.idx.Remove(toIndexQuad(q))
	if ok {
		s.refreshGauges()
	}
	return ok
}

// RemoveTriple deletes a quad from the default graph.
func (s *Store) RemoveTriple(subject, predicate, object NodeID) bool {
	return s.RemoveQuad(Quad{Subject: subject, Predicate: predicate, Object: object, Graph: s.defaultGraph})
}

// HasQuad reports whether q is present.
func (s *Store) HasQuad(q Quad) bool {
	return s.idx.Has(toIndexQuad(q))
}

// QuadCount returns the number of quads currently indexed.
func (s *Store) QuadCount() int { return s.idx.Len() }

// NodePattern is a single component of a FindNodes query: either a
// specific NodeID (Bound=true) or a wildcard matching any value.
type NodePattern struct {
	ID    NodeID
	Bound bool
}

// BoundNode constructs a NodePattern that matches exactly id.
func BoundNode(id NodeID) NodePattern { return NodePattern{ID: id, Bound: true} }

// AnyNode is the wildcard NodePattern, matching any value in its
// position.
var AnyNode = NodePattern{}

// FindNodes returns every quad matching the given pattern, dispatching
// through the planner's 16-case bind-mask table (see
// internal/qindex.Set.Search) so that at least two of the four
// components being bound always uses an index prefix scan rather than a
// full scan. Unknown NodeIds never error; they simply match nothing.
func (s *Store) FindNodes(subject, predicate, object, graph NodePattern) []Quad {
	s.metrics.PlannerDispatch.WithLabelValues(bindMaskLabel(subject, predicate, object, graph)).Inc()
	res := s.idx.Search(
		toQIndexBound(subject),
		toQIndexBound(predicate),
		toQIndexBound(object),
		toQIndexBound(graph),
	)
	out := make([]Quad, len(res))
	for i, q := range res {
		out[i] = fromIndexQuad(q)
	}
	return out
}

// FindByNode mirrors the façade operation named in spec.md §4.6: each
// argument is an optional Node value (nil means unbound). Provided nodes
// are resolved via NodeTable.Find, never FindOrAdd -- if any resolves to
// nothing, the result is empty immediately, without consulting the
// planner at all.
func (s *Store) FindByNode(subject, predicate, object, graph *Node) []Quad {
	sp, ok := s.resolvePattern(subject)
	if !ok {
		return nil
	}
	pp, ok := s.resolvePattern(predicate)
	if !ok {
		return nil
	}
	op, ok := s.resolvePattern(object)
	if !ok {
		return nil
	}
	gp, ok := s.resolvePattern(graph)
	if !ok {
		return nil
	}
	return s.FindNodes(sp, pp, op, gp)
}

func (s *Store) resolvePattern(n *Node) (NodePattern, bool) {
	if n == nil {
		return AnyNode, true
	}
	id, ok := s.nodes.Find(*n)
	if !ok {
		return NodePattern{}, false
	}
	return BoundNode(id), true
}

// bindMaskLabel renders the bound positions as a stable label for the
// planner-dispatch counter, e.g. "SPOG", "S", "" (nothing bound).
func bindMaskLabel(subject, predicate, object, graph NodePattern) string {
	label := ""
	if subject.Bound {
		label += "S"
	}
	if predicate.Bound {
		label += "P"
	}
	if object.Bound {
		label += "O"
	}
	if graph.Bound {
		label += "G"
	}
	return label
}

func toIndexQuad(q Quad) qindex.Quad {
	return qindex.Quad{S: q.Subject, P: q.Predicate, O: q.Object, G: q.Graph}
}

func fromIndexQuad(q qindex.Quad) Quad {
	return Quad{Subject: q.S, Predicate: q.P, Object: q.O, Graph: q.G}
}

func toQIndexBound(p NodePattern) qindex.Bound {
	if !p.Bound {
		return qindex.Unbound
	}
	return qindex.BoundID(p.ID)
}
