// Package qindex implements the four mirrored ordered quad indices
// (SPOG, GSPO, POSG, OSPG) backed by github.com/petar/GoLLRB/llrb trees.
// It is grounded on original_source/src/indexed_quad_set.rs: each index
// is a BTreeSet-like ordered set of a 4-tuple permutation of
// (subject, predicate, object, graph), supporting N-bound prefix ranges
// (N in 1..3) and exact match; only the SPOG index offers a full-range
// scan.
//
// qindex knows nothing about nodes, URIs, or literals -- it operates on
// plain uint64 ids, mirroring the fact that the original's IndexOrder
// trait is generic over InternalID regardless of which quad position it
// labels.
package qindex

import "github.com/petar/GoLLRB/llrb"

// ID is a raw node id, as stored in a quad index. qstore.NodeID is
// defined as this same underlying type.
type ID = uint64

// Quad is a plain 4-tuple of ids in subject/predicate/object/graph order,
// the canonical representation every index converts to and from.
type Quad struct {
	S, P, O, G ID
}

// entry is implemented by the four permutation structs below; each wraps
// a Quad reordered into the index's own sort order and knows how to
// recover the canonical Quad.
type entry interface {
	llrb.Item
	quad() Quad
}

const (
	minID ID = 0
	maxID ID = ^ID(0)
)

// ---- SPOG ----

type spogEntry struct{ s, p, o, g ID }

func newSPOG(q Quad) spogEntry { return spogEntry{q.S, q.P, q.O, q.G} }
func (e spogEntry) quad() Quad { return Quad{e.s, e.p, e.o, e.g} }
func (e spogEntry) Less(than llrb.Item) bool {
	o := than.(spogEntry)
	if e.s != o.s {
		return e.s < o.s
	}
	if e.p != o.p {
		return e.p < o.p
	}
	if e.o != o.o {
		return e.o < o.o
	}
	return e.g < o.g
}

// ---- GSPO ----

type gspoEntry struct{ g, s, p, o ID }

func newGSPO(q Quad) gspoEntry { return gspoEntry{q.G, q.S, q.P, q.O} }
func (e gspoEntry) quad() Quad { return Quad{e.s, e.p, e.o, e.g} }
func (e gspoEntry) Less(than llrb.Item) bool {
	o := than.(gspoEntry)
	if e.g != o.g {
		return e.g < o.g
	}
	if e.s != o.s {
		return e.s < o.s
	}
	if e.p != o.p {
		return e.p < o.p
	}
	return e.o < o.o
}

// ---- POSG ----

type posgEntry struct{ p, o, s, g ID }

func newPOSG(q Quad) posgEntry { return posgEntry{q.P, q.O, q.S, q.G} }
func (e posgEntry) quad() Quad { return Quad{e.s, e.p, e.o, e.g} }
func (e posgEntry) Less(than llrb.Item) bool {
	o := than.(posgEntry)
	if e.p != o.p {
		return e.p < o.p
	}
	if e.o != o.o {
		return e.o < o.o
	}
	if e.s != o.s {
		return e.s < o.s
	}
	return e.g < o.g
}

// ---- OSPG ----

type ospgEntry struct{ o, s, p, g ID }

func newOSPG(q Quad) ospgEntry { return ospgEntry{q.O, q.S, q.P, q.G} }
func (e ospgEntry) quad() Quad { return Quad{e.s, e.p, e.o, e.g} }
func (e ospgEntry) Less(than llrb.Item) bool {
	o := than.(ospgEntry)
	if e.o != o.o {
		return e.o < o.o
	}
	if e.s != o.s {
		return e.s < o.s
	}
	if e.p != o.p {
		return e.p < o.p
	}
	return e.g < o.g
}
