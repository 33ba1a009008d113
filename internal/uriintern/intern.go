// Package uriintern interns URI strings into compact 32+32 bit ids,
// splitting each URI into a prefix and a suffix so that URIs sharing a
// common namespace (e.g. "http://example.org/ns#foo", "http://example.org/ns#bar")
// share a single interned prefix entry. Grounded on
// original_source/src/uri.rs (RDFUri, from_string, from_string_if_exist,
// to_string) and original_source/src/identifiers.rs (InternalUriID as a
// pair of ThirtyTwoBitID).
package uriintern

import (
	"strings"

	"github.com/cayleygraph/qstore/internal/idarena"
	"github.com/cayleygraph/qstore/qerrors"
)

// CompactID is the interned representation of a URI: a prefix id and a
// suffix id, each independently interned so namespaces are shared across
// many URIs.
type CompactID struct {
	Prefix uint32
	Suffix uint32
}

// Interner interns and materializes URI strings.
type Interner struct {
	prefixes *idarena.Arena[string]
	suffixes *idarena.Arena[string]
}

// New creates an empty Interner.
func New() *Interner {
	return &Interner{
		prefixes: idarena.New[string](idarena.Width32),
		suffixes: idarena.New[string](idarena.Width32),
	}
}

// split divides a URI into prefix and suffix at the last '#', if any,
// else the last '/'. The prefix includes the separator. A URI containing
// neither separator is malformed.
func split(uri string) (prefix, suffix string, err error) {
	if i := strings.LastIndexByte(uri, '#'); i >= 0 {
		return uri[:i+1], uri[i+1:], nil
	}
	if i := strings.LastIndexByte(uri, '/'); i >= 0 {
		return uri[:i+1], uri[i+1:], nil
	}
	return "", "", qerrors.ErrMalformedURI
}

// Intern interns uri, allocating prefix/suffix ids as needed. This is the
// write path.
func (in *Interner) Intern(uri string) (CompactID, error) {
	prefix, suffix, err := split(uri)
	if err != nil {
		return CompactID{}, err
	}
	p, err := in.prefixes.FindOrAdd(prefix)
	if err != nil {
		return CompactID{}, err
	}
	s, err := in.suffixes.FindOrAdd(suffix)
	if err != nil {
		return CompactID{}, err
	}
	return CompactID{Prefix: uint32(p), Suffix: uint32(s)}, nil
}

// Lookup returns the CompactID for uri without interning it. This is the
// read path: it never mutates the interner.
func (in *Interner) Lookup(uri string) (CompactID, bool) {
	prefix, suffix, err := split(uri)
	if err != nil {
		return CompactID{}, false
	}
	p, ok := in.prefixes.Find(prefix)
	if !ok {
		return CompactID{}, false
	}
	s, ok := in.suffixes.Find(suffix)
	if !ok {
		return CompactID{}, false
	}
	return CompactID{Prefix: uint32(p), Suffix: uint32(s)}, true
}

// Materialize reconstructs the original URI string for id.
func (in *Interner) Materialize(id CompactID) (string, bool) {
	prefix, ok := in.prefixes.Get(uint64(id.Prefix))
	if !ok {
		return "", false
	}
	suffix, ok := in.suffixes.Get(uint64(id.Suffix))
	if !ok {
		return "", false
	}
	return prefix + suffix, true
}
