// Package idarena implements a dense, append-mostly id table with
// free-list-based id reuse, generalizing the original Rust
// IndexedIDHashMap<K, V> (see original_source/src/indexed_hash_map.rs):
// a forward map from id to key, a reverse map from key to id, and a LIFO
// pool of ids freed by RemoveByID/RemoveByKey available for reuse before
// any new id is minted.
package idarena

import (
	"github.com/cayleygraph/qstore/internal/qlog"
	"github.com/cayleygraph/qstore/qerrors"
)

// Width bounds the id space an Arena will allocate into, mirroring the
// original's distinction between ThirtyTwoBitID (URI prefix/suffix ids)
// and SixtyFourBitID (node ids).
type Width uint64

const (
	// Width32 bounds allocation to the 32-bit unsigned range, used for
	// URI prefix/suffix interning.
	Width32 Width = 1<<32 - 1
	// Width64 bounds allocation to the maximum uint64 value, used for
	// the node table.
	Width64 Width = 1<<64 - 1
)

// Arena is a generic dense id table keyed by any comparable type. It is
// not safe for concurrent use; qstore is single-threaded (see spec's
// concurrency model).
type Arena[K comparable] struct {
	max     Width
	byID    []K   // dense: index i holds the key for id i, if live[i]
	live    []bool
	byKey   map[K]uint64
	freeIDs []uint64 // LIFO free list
}

// New creates an empty Arena bounded to max ids.
func New[K comparable](max Width) *Arena[K] {
	return &Arena[K]{
		max:   max,
		byKey: make(map[K]uint64),
	}
}

// Lookup returns the id for key, if key is currently live.
func (a *Arena[K]) Lookup(key K) (uint64, bool) {
	id, ok := a.byKey[key]
	return id, ok
}

// Get returns the key for id, if id is currently live.
func (a *Arena[K]) Get(id uint64) (K, bool) {
	if id >= uint64(len(a.byID)) || !a.live[id] {
		var zero K
		return zero, false
	}
	return a.byID[id], true
}

// FindOrAdd returns the id for key, interning it (allocating a fresh or
// reused id) if it is not already present. This is the write path.
func (a *Arena[K]) FindOrAdd(key K) (uint64, error) {
	if id, ok := a.byKey[key]; ok {
		return id, nil
	}
	id, err := a.alloc()
	if err != nil {
		return 0, err
	}
	a.set(id, key)
	a.byKey[key] = id
	return id, nil
}

// Find returns the id for key without interning it. This is the read
// path: it never mutates the arena.
func (a *Arena[K]) Find(key K) (uint64, bool) {
	return a.Lookup(key)
}

// RemoveByID clears id's slot and returns its id to the free list. It is
// a no-op if id is not live.
func (a *Arena[K]) RemoveByID(id uint64) {
	if id >= uint64(len(a.byID)) || !a.live[id] {
		return
	}
	key := a.byID[id]
	a.live[id] = false
	var zero K
	a.byID[id] = zero
	delete(a.byKey, key)
	a.freeIDs = append(a.freeIDs, id)
}

// RemoveByKey clears key's slot, if present, and returns its id to the
// free list.
func (a *Arena[K]) RemoveByKey(key K) {
	if id, ok := a.byKey[key]; ok {
		a.RemoveByID(id)
	}
}

// Len returns the number of currently live entries.
func (a *Arena[K]) Len() int {
	return len(a.byKey)
}

// FreeLen returns the number of freed ids currently awaiting reuse.
func (a *Arena[K]) FreeLen() int {
	return len(a.freeIDs)
}

// Grow pre-sizes the backing storage for at least n entries, avoiding
// repeated reallocation on known-size bulk loads.
func (a *Arena[K]) Grow(n int) {
	if cap(a.byID) >= n {
		return
	}
	byID := make([]K, len(a.byID), n)
	copy(byID, a.byID)
	a.byID = byID
	live := make([]bool, len(a.live), n)
	copy(live, a.live)
	a.live = live
}

func (a *Arena[K]) alloc() (uint64, error) {
	if n := len(a.freeIDs); n > 0 {
		id := a.freeIDs[n-1]
		a.freeIDs = a.freeIDs[:n-1]
		qlog.Warningf("idarena: reusing freed id %d (%d id(s) still on free list)", id, n-1)
		return id, nil
	}
	id := uint64(len(a.byID))
	if id > uint64(a.max) {
		return 0, qerrors.ErrOverflow
	}
	return id, nil
}

func (a *Arena[K]) set(id uint64, key K) {
	if id == uint64(len(a.byID)) {
		a.byID = append(a.byID, key)
		a.live = append(a.live, true)
		return
	}
	a.byID[id] = key
	a.live[id] = true
}
