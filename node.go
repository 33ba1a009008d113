package qstore

import "github.com/cayleygraph/qstore/internal/uriintern"

// NodeID identifies a live entry in the node table. It is a dense,
// 64-bit id assigned by NodeTable.FindOrAdd and reused (LIFO) after a
// RemoveByID call, per original_source/src/indexed_hash_map.rs.
type NodeID = uint64

// NodeKind discriminates the three node shapes the store recognizes.
type NodeKind uint8

const (
	// KindURI is a URI reference.
	KindURI NodeKind = iota
	// KindLiteral is a literal value (lexical form, datatype, optional
	// language tag).
	KindLiteral
	// KindBlank is a blank node. Its identity is the NodeID of an
	// interned Literal entry whose datatype is BlankDatatypeURI -- see
	// DESIGN.md's "Open Question: blank node representation".
	KindBlank
)

// Reserved sentinel URIs, matching original_source/src/store.rs and
// original_source/src/blank.rs. DefaultGraphURI must be the first URI
// interned by a new Store so that its node receives NodeID 0.
const (
	DefaultGraphURI  = "http://internal/graph"
	BlankDatatypeURI = "http://internal/blank"
	XSDStringURI     = "http://www.w3.org/2001/XMLSchema#string"
	RDFLangStringURI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

// Node is the sum type stored in the node table: a URI reference, a
// literal, or a blank node. It is comparable so it can key NodeTable's
// underlying idarena.Arena[Node] directly, mirroring how the original's
// StoreNode derives Hash/Eq for use as a BTreeMap/HashMap key.
type Node struct {
	Kind NodeKind

	// URI holds the compact id for a KindURI node, or for a KindLiteral
	// node's datatype.
	URI uriintern.CompactID

	// Lexical and Lang/HasLang are valid for KindLiteral.
	Lexical string
	Lang    string
	HasLang bool

	// Blank is valid for KindBlank: the NodeID of the underlying
	// interned Literal node.
	Blank NodeID
}

// IsURI reports whether n is a URI reference.
func (n Node) IsURI() bool { return n.Kind == KindURI }

// IsLiteral reports whether n is a literal.
func (n Node) IsLiteral() bool { return n.Kind == KindLiteral }

// IsBlank reports whether n is a blank node.
func (n Node) IsBlank() bool { return n.Kind == KindBlank }
