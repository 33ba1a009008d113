package qstore

import (
	"github.com/cayleygraph/qstore/internal/idarena"
)

// NodeTable is the dense, 64-bit id table mapping Node values to NodeIds
// and back, built on internal/idarena.Arena[Node]. It is the Go
// analogue of the original's ObjectMap (an IndexedIDHashMap<StoreNode,
// SixtyFourBitID>).
type NodeTable struct {
	arena *idarena.Arena[Node]
}

func newNodeTable() *NodeTable {
	return &NodeTable{arena: idarena.New[Node](idarena.Width64)}
}

// FindOrAdd interns n, allocating a fresh or reused NodeID if it is not
// already present. This is the write path.
func (t *NodeTable) FindOrAdd(n Node) (NodeID, error) {
	return t.arena.FindOrAdd(n)
}

// Find returns the NodeID for n without interning it. This is the read
// path: it never mutates the table.
func (t *NodeTable) Find(n Node) (NodeID, bool) {
	return t.arena.Find(n)
}

// Lookup returns the Node for id, if id is currently live.
func (t *NodeTable) Lookup(id NodeID) (Node, bool) {
	return t.arena.Get(id)
}

// Remove clears id's slot and returns its id to the free list. Node-level
// garbage collection (detecting when a node is no longer referenced by
// any quad) is out of scope; callers decide when a node is truly unused.
func (t *NodeTable) Remove(id NodeID) {
	t.arena.RemoveByID(id)
}

// Len returns the number of live nodes.
func (t *NodeTable) Len() int { return t.arena.Len() }

// FreeListLen returns the number of freed NodeIds currently awaiting reuse.
func (t *NodeTable) FreeListLen() int { return t.arena.FreeLen() }

// Grow pre-sizes the dense backing storage for at least n entries.
func (t *NodeTable) Grow(n int) { t.arena.Grow(n) }
