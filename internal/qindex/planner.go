package qindex

// Set holds the four mirrored ordered quad indices and dispatches
// queries to whichever one gives the longest bound prefix, applying at
// most one residual equality filter when no index's prefix covers every
// bound position. The 16-case dispatch table is grounded on
// original_source/src/indexed_quad_set.rs: each index only offers
// full/one/two/three-bound range constructors over its own field order,
// so a bound set that isn't a contiguous prefix of any one index falls
// back to the longest prefix available plus a filter.
type Set struct {
	spog *SPOGIndex
	gspo *GSPOIndex
	posg *POSGIndex
	ospg *OSPGIndex
}

// NewSet creates an empty index set.
func NewSet() *Set {
	return &Set{
		spog: NewSPOGIndex(),
		gspo: NewGSPOIndex(),
		posg: NewPOSGIndex(),
		ospg: NewOSPGIndex(),
	}
}

// Add inserts q into all four indices. Returns false if q was already
// present (the indices are kept in lockstep, so checking any one
// suffices).
func (s *Set) Add(q Quad) bool {
	if !s.spog.Add(q) {
		return false
	}
	s.gspo.Add(q)
	s.posg.Add(q)
	s.ospg.Add(q)
	return true
}

// Remove deletes q from all four indices. Returns false if q was not
// present.
func (s *Set) Remove(q Quad) bool {
	if !s.spog.Remove(q) {
		return false
	}
	s.gspo.Remove(q)
	s.posg.Remove(q)
	s.ospg.Remove(q)
	return true
}

// Has reports whether q is present.
func (s *Set) Has(q Quad) bool { return s.spog.Has(q) }

// Len returns the number of quads indexed.
func (s *Set) Len() int { return s.spog.Len() }

// Bound is a single query component: either a specific id (Bound=true)
// or a wildcard (Bound=false).
type Bound struct {
	Value ID
	Bound bool
}

func bound(id ID) Bound { return Bound{Value: id, Bound: true} }

// Unbound is the wildcard Bound value.
var Unbound = Bound{}

// Search returns every quad matching the given (possibly partial)
// pattern. A Bound with Bound==false matches any value in that position.
func (s *Set) Search(sub, pred, obj, graph Bound) []Quad {
	mask := bitmask(sub, pred, obj, graph)
	var out []Quad
	visit := func(q Quad) bool { out = append(out, q); return true }

	switch mask {
	case 0b0000: // nothing bound: full scan
		s.spog.ScanAll(visit)
	case 0b1000: // S
		s.spog.ScanPrefix1(sub.Value, visit)
	case 0b0100: // P
		s.posg.ScanPrefix1(pred.Value, visit)
	case 0b0010: // O
		s.ospg.ScanPrefix1(obj.Value, visit)
	case 0b0001: // G
		s.gspo.ScanPrefix1(graph.Value, visit)
	case 0b1100: // S,P
		s.spog.ScanPrefix2(sub.Value, pred.Value, visit)
	case 0b1010: // S,O
		s.ospg.ScanPrefix2(obj.Value, sub.Value, visit)
	case 0b1001: // S,G
		s.gspo.ScanPrefix2(graph.Value, sub.Value, visit)
	case 0b0110: // P,O
		s.posg.ScanPrefix2(pred.Value, obj.Value, visit)
	case 0b0101: // P,G: no index has {P,G} as a two-prefix; scan by P, filter G
		s.posg.ScanPrefix1(pred.Value, func(q Quad) bool {
			if q.G == graph.Value {
				out = append(out, q)
			}
			return true
		})
	case 0b0011: // O,G: no index has {O,G} as a two-prefix; scan by O, filter G
		s.ospg.ScanPrefix1(obj.Value, func(q Quad) bool {
			if q.G == graph.Value {
				out = append(out, q)
			}
			return true
		})
	case 0b1110: // S,P,O
		s.spog.ScanPrefix3(sub.Value, pred.Value, obj.Value, visit)
	case 0b1101: // S,P,G
		s.gspo.ScanPrefix3(graph.Value, sub.Value, pred.Value, visit)
	case 0b1011: // S,O,G: no index has this as a three-prefix; scan by (O,S), filter G
		s.ospg.ScanPrefix2(obj.Value, sub.Value, func(q Quad) bool {
			if q.G == graph.Value {
				out = append(out, q)
			}
			return true
		})
	case 0b0111: // P,O,G: no index has this as a three-prefix; scan by (P,O), filter G
		s.posg.ScanPrefix2(pred.Value, obj.Value, func(q Quad) bool {
			if q.G == graph.Value {
				out = append(out, q)
			}
			return true
		})
	case 0b1111: // all bound: exact match
		q := Quad{S: sub.Value, P: pred.Value, O: obj.Value, G: graph.Value}
		if s.spog.Has(q) {
			out = append(out, q)
		}
	}
	return out
}

func bitmask(s, p, o, g Bound) int {
	mask := 0
	if s.Bound {
		mask |= 0b1000
	}
	if p.Bound {
		mask |= 0b0100
	}
	if o.Bound {
		mask |= 0b0010
	}
	if g.Bound {
		mask |= 0b0001
	}
	return mask
}

// BoundID is a convenience constructor for a bound query component.
func BoundID(id ID) Bound { return bound(id) }
