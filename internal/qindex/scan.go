package qindex

import "github.com/petar/GoLLRB/llrb"

// scanRange walks tree in ascending order from low (inclusive) and calls
// visit for each item until high (inclusive) is passed or visit returns
// false. low and high must be comparable via the same Less implementation
// as the items stored in tree.
func scanRange(tree *llrb.LLRB, low, high llrb.Item, visit func(llrb.Item) bool) {
	tree.AscendGreaterOrEqual(low, func(item llrb.Item) bool {
		if high.Less(item) {
			return false
		}
		return visit(item)
	})
}

// SPOGIndex orders quads by (subject, predicate, object, graph).
type SPOGIndex struct{ tree *llrb.LLRB }

// NewSPOGIndex creates an empty SPOG index.
func NewSPOGIndex() *SPOGIndex { return &SPOGIndex{tree: llrb.New()} }

// Add inserts q, returning false if it was already present.
func (idx *SPOGIndex) Add(q Quad) bool {
	e := newSPOG(q)
	if idx.tree.Has(e) {
		return false
	}
	idx.tree.ReplaceOrInsert(e)
	return true
}

// Remove deletes q, returning false if it was not present.
func (idx *SPOGIndex) Remove(q Quad) bool {
	e := newSPOG(q)
	return idx.tree.Delete(e) != nil
}

// Has reports whether q is present.
func (idx *SPOGIndex) Has(q Quad) bool { return idx.tree.Has(newSPOG(q)) }

// Len returns the number of quads indexed.
func (idx *SPOGIndex) Len() int { return idx.tree.Len() }

// ScanAll visits every quad in index order.
func (idx *SPOGIndex) ScanAll(visit func(Quad) bool) {
	low := spogEntry{minID, minID, minID, minID}
	high := spogEntry{maxID, maxID, maxID, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}

// ScanPrefix1 visits every quad with the given subject.
func (idx *SPOGIndex) ScanPrefix1(s ID, visit func(Quad) bool) {
	low := spogEntry{s, minID, minID, minID}
	high := spogEntry{s, maxID, maxID, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}

// ScanPrefix2 visits every quad with the given subject and predicate.
func (idx *SPOGIndex) ScanPrefix2(s, p ID, visit func(Quad) bool) {
	low := spogEntry{s, p, minID, minID}
	high := spogEntry{s, p, maxID, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}

// ScanPrefix3 visits every quad with the given subject, predicate, object.
func (idx *SPOGIndex) ScanPrefix3(s, p, o ID, visit func(Quad) bool) {
	low := spogEntry{s, p, o, minID}
	high := spogEntry{s, p, o, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}

// GSPOIndex orders quads by (graph, subject, predicate, object).
type GSPOIndex struct{ tree *llrb.LLRB }

// NewGSPOIndex creates an empty GSPO index.
func NewGSPOIndex() *GSPOIndex { return &GSPOIndex{tree: llrb.New()} }

func (idx *GSPOIndex) Add(q Quad) bool {
	e := newGSPO(q)
	if idx.tree.Has(e) {
		return false
	}
	idx.tree.ReplaceOrInsert(e)
	return true
}

func (idx *GSPOIndex) Remove(q Quad) bool { return idx.tree.Delete(newGSPO(q)) != nil }
func (idx *GSPOIndex) Has(q Quad) bool    { return idx.tree.Has(newGSPO(q)) }
func (idx *GSPOIndex) Len() int           { return idx.tree.Len() }

// ScanPrefix1 visits every quad in the given graph.
func (idx *GSPOIndex) ScanPrefix1(g ID, visit func(Quad) bool) {
	low := gspoEntry{g, minID, minID, minID}
	high := gspoEntry{g, maxID, maxID, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}

// ScanPrefix2 visits every quad in the given graph with the given subject.
func (idx *GSPOIndex) ScanPrefix2(g, s ID, visit func(Quad) bool) {
	low := gspoEntry{g, s, minID, minID}
	high := gspoEntry{g, s, maxID, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}

// ScanPrefix3 visits every quad in the given graph with the given subject
// and predicate.
func (idx *GSPOIndex) ScanPrefix3(g, s, p ID, visit func(Quad) bool) {
	low := gspoEntry{g, s, p, minID}
	high := gspoEntry{g, s, p, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}

// POSGIndex orders quads by (predicate, object, subject, graph).
type POSGIndex struct{ tree *llrb.LLRB }

// NewPOSGIndex creates an empty POSG index.
func NewPOSGIndex() *POSGIndex { return &POSGIndex{tree: llrb.New()} }

func (idx *POSGIndex) Add(q Quad) bool {
	e := newPOSG(q)
	if idx.tree.Has(e) {
		return false
	}
	idx.tree.ReplaceOrInsert(e)
	return true
}

func (idx *POSGIndex) Remove(q Quad) bool { return idx.tree.Delete(newPOSG(q)) != nil }
func (idx *POSGIndex) Has(q Quad) bool    { return idx.tree.Has(newPOSG(q)) }
func (idx *POSGIndex) Len() int           { return idx.tree.Len() }

// ScanPrefix1 visits every quad with the given predicate.
func (idx *POSGIndex) ScanPrefix1(p ID, visit func(Quad) bool) {
	low := posgEntry{p, minID, minID, minID}
	high := posgEntry{p, maxID, maxID, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}

// ScanPrefix2 visits every quad with the given predicate and object.
func (idx *POSGIndex) ScanPrefix2(p, o ID, visit func(Quad) bool) {
	low := posgEntry{p, o, minID, minID}
	high := posgEntry{p, o, maxID, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}

// ScanPrefix3 visits every quad with the given predicate, object, subject.
func (idx *POSGIndex) ScanPrefix3(p, o, s ID, visit func(Quad) bool) {
	low := posgEntry{p, o, s, minID}
	high := posgEntry{p, o, s, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}

// OSPGIndex orders quads by (object, subject, predicate, graph).
type OSPGIndex struct{ tree *llrb.LLRB }

// NewOSPGIndex creates an empty OSPG index.
func NewOSPGIndex() *OSPGIndex { return &OSPGIndex{tree: llrb.New()} }

func (idx *OSPGIndex) Add(q Quad) bool {
	e := newOSPG(q)
	if idx.tree.Has(e) {
		return false
	}
	idx.tree.ReplaceOrInsert(e)
	return true
}

func (idx *OSPGIndex) Remove(q Quad) bool { return idx.tree.Delete(newOSPG(q)) != nil }
func (idx *OSPGIndex) Has(q Quad) bool    { return idx.tree.Has(newOSPG(q)) }
func (idx *OSPGIndex) Len() int           { return idx.tree.Len() }

// ScanPrefix1 visits every quad with the given object.
func (idx *OSPGIndex) ScanPrefix1(o ID, visit func(Quad) bool) {
	low := ospgEntry{o, minID, minID, minID}
	high := ospgEntry{o, maxID, maxID, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}

// ScanPrefix2 visits every quad with the given object and subject.
func (idx *OSPGIndex) ScanPrefix2(o, s ID, visit func(Quad) bool) {
	low := ospgEntry{o, s, minID, minID}
	high := ospgEntry{o, s, maxID, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}

// ScanPrefix3 visits every quad with the given object, subject, predicate.
func (idx *OSPGIndex) ScanPrefix3(o, s, p ID, visit func(Quad) bool) {
	low := ospgEntry{o, s, p, minID}
	high := ospgEntry{o, s, p, maxID}
	scanRange(idx.tree, low, high, func(i llrb.Item) bool { return visit(i.(entry).quad()) })
}
