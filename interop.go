package qstore

import (
	"github.com/cayleygraph/quad"
)

// This file bridges qstore's own Node/Quad types to
// github.com/cayleygraph/quad's Value/Quad types, the RDF term model the
// teacher's memstore backend (graph/memstore/quadstore.go's resolveVal,
// lookupVal, resolveQuad, lookupQuadDirs) is built on. spec.md §1 frames
// the core's only legitimate external consumer as "a client that submits
// node triples/quads and consumes result iterators" -- these helpers are
// that submission path, letting a caller work in quad.Value/quad.Quad
// terms instead of pre-resolving NodeIds by hand.

// valueForNode converts the quad.Value the write path allocates a NodeID
// for, mirroring resolveVal(add=true)'s per-kind dispatch. Unrecognized
// concrete Value implementations fall back through TypedStringer (the
// same fallback quad.Value's native types use for their own TypedString
// conversion) and finally to a plain string literal.
func (s *Store) valueForNode(v quad.Value) (NodeID, error) {
	switch val := v.(type) {
	case quad.IRI:
		return s.NewURIRef(string(val))
	case quad.BNode:
		ident := string(val)
		return s.NewBlank(&ident)
	case quad.String:
		return s.NewLiteral(string(val), nil, nil)
	case quad.TypedString:
		dt := string(val.Type)
		return s.NewLiteral(string(val.Value), &dt, nil)
	case quad.LangString:
		lang := val.Lang
		return s.NewLiteral(string(val.Value), nil, &lang)
	}
	if ts, ok := v.(quad.TypedStringer); ok {
		typed := ts.TypedString()
		dt := string(typed.Type)
		return s.NewLiteral(string(typed.Value), &dt, nil)
	}
	return s.NewLiteral(v.String(), nil, nil)
}

// findValueNode is the read-path counterpart of valueForNode: it never
// interns, mirroring resolveVal(add=false).
func (s *Store) findValueNode(v quad.Value) (NodeID, bool) {
	switch val := v.(type) {
	case quad.IRI:
		return s.FindURIRef(string(val))
	case quad.BNode:
		blankDatatype := BlankDatatypeURI
		litID, ok := s.FindLiteral(string(val), &blankDatatype, nil)
		if !ok {
			return 0, false
		}
		return s.nodes.Find(Node{Kind: KindBlank, Blank: litID})
	case quad.String:
		return s.FindLiteral(string(val), nil, nil)
	case quad.TypedString:
		dt := string(val.Type)
		return s.FindLiteral(string(val.Value), &dt, nil)
	case quad.LangString:
		lang := val.Lang
		return s.FindLiteral(string(val.Value), nil, &lang)
	}
	if ts, ok := v.(quad.TypedStringer); ok {
		typed := ts.TypedString()
		dt := string(typed.Type)
		return s.FindLiteral(string(typed.Value), &dt, nil)
	}
	return s.FindLiteral(v.String(), nil, nil)
}

// ValueOf reconstructs the quad.Value a live NodeID represents, mirroring
// quadstore.go's lookupVal. It returns false if id is not a live node, or
// if id is a KindBlank node whose identity does not resolve to an
// interned literal (see qerrors.ErrUnsupportedBlankShape).
func (s *Store) ValueOf(id NodeID) (quad.Value, bool) {
	n, ok := s.nodes.Lookup(id)
	if !ok {
		return nil, false
	}
	return s.valueOfNode(n)
}

func (s *Store) valueOfNode(n Node) (quad.Value, bool) {
	switch n.Kind {
	case KindURI:
		uri, ok := s.MaterializeURI(n.URI)
		if !ok {
			return nil, false
		}
		return quad.IRI(uri), true
	case KindLiteral:
		dt, ok := s.MaterializeURI(n.URI)
		if !ok {
			return nil, false
		}
		switch {
		case n.HasLang:
			return quad.LangString{Value: quad.String(n.Lexical), Lang: n.Lang}, true
		case dt == XSDStringURI:
			return quad.String(n.Lexical), true
		default:
			return quad.TypedString{Value: quad.String(n.Lexical), Type: quad.IRI(dt)}, true
		}
	case KindBlank:
		lit, ok := s.nodes.Lookup(n.Blank)
		if !ok || lit.Kind != KindLiteral {
			return nil, false
		}
		return quad.BNode(lit.Lexical), true
	default:
		return nil, false
	}
}

// AddValueQuad finds-or-adds q's subject, predicate, object, and label
// (quad.Value; label may be nil, meaning the default graph) to NodeIds
// and inserts the resulting quad, mirroring
// graph/memstore/quadstore.go's resolveQuad(add=true) followed by
// AddQuad.
func (s *Store) AddValueQuad(q quad.Quad) (Quad, error) {
	sub, err := s.valueForNode(q.Subject)
	if err != nil {
		return Quad{}, err
	}
	pred, err := s.valueForNode(q.Predicate)
	if err != nil {
		return Quad{}, err
	}
	obj, err := s.valueForNode(q.Object)
	if err != nil {
		return Quad{}, err
	}
	graph := s.defaultGraph
	if q.Label != nil {
		graph, err = s.valueForNode(q.Label)
		if err != nil {
			return Quad{}, err
		}
	}
	out := Quad{Subject: sub, Predicate: pred, Object: obj, Graph: graph}
	s.AddQuad(out)
	return out, nil
}

// FindValueNodes mirrors graph/memstore/quadstore.go's
// resolveQuad(add=false) read path: any of subject, predicate, object,
// label may be nil (unbound) or a quad.Value. A label of nil matches
// only the default graph's NodeID, exactly as quad.IRI(DefaultGraphURI)
// does; the label position cannot be left unbound through this function.
// An unrecognized Value never interns; it simply matches nothing, same
// as FindByNode.
func (s *Store) FindValueNodes(subject, predicate, object, label quad.Value) []quad.Quad {
	resolve := func(v quad.Value) (NodePattern, bool) {
		if v == nil {
			return AnyNode, true
		}
		id, ok := s.findValueNode(v)
		if !ok {
			return NodePattern{}, false
		}
		return BoundNode(id), true
	}
	sp, ok := resolve(subject)
	if !ok {
		return nil
	}
	pp, ok := resolve(predicate)
	if !ok {
		return nil
	}
	op, ok := resolve(object)
	if !ok {
		return nil
	}
	var gp NodePattern
	if label == nil {
		gp = BoundNode(s.defaultGraph)
	} else {
		gp, ok = resolve(label)
		if !ok {
			return nil
		}
	}

	matches := s.FindNodes(sp, pp, op, gp)
	out := make([]quad.Quad, 0, len(matches))
	for _, m := range matches {
		out = append(out, s.quadValueOf(m))
	}
	return out
}

// QuadValueOf reconstructs the quad.Quad for q, mirroring
// lookupQuadDirs. Label is left nil when q is in the default graph.
func (s *Store) QuadValueOf(q Quad) quad.Quad {
	return s.quadValueOf(q)
}

func (s *Store) quadValueOf(q Quad) quad.Quad {
	sub, _ := s.ValueOf(q.Subject)
	pred, _ := s.ValueOf(q.Predicate)
	obj, _ := s.ValueOf(q.Object)
	out := quad.Quad{Subject: sub, Predicate: pred, Object: obj}
	if q.Graph != s.defaultGraph {
		out.Label, _ = s.ValueOf(q.Graph)
	}
	return out
}
