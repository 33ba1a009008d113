// Copyright 2014 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package qerrors defines the error kinds surfaced by qstore's write and
// lookup paths. Query paths never return these: a query against unknown
// nodes yields an empty iterator, never an error.
package qerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedURI is returned by the URI interner when a URI contains
	// neither '#' nor '/' and so cannot be split into prefix and suffix.
	ErrMalformedURI = errors.New("qerrors: URI has no '#' or '/' to split on")

	// ErrOverflow is returned when an id arena (32-bit URI arena or 64-bit
	// node table) has no ids left to allocate.
	ErrOverflow = errors.New("qerrors: id space exhausted")

	// ErrNotFound is returned by id-lookup level operations (not query
	// operations, which return empty results instead) when an id or node
	// is not present.
	ErrNotFound = errors.New("qerrors: id or node not found")

	// ErrUnsupportedBlankShape is returned when a blank node's identity
	// resolves to something other than an interned literal -- e.g. a
	// URI-identified blank node, which this store does not implement.
	// See spec §9's open question: the original source leaves this
	// unimplemented, and this module surfaces a defensive error instead
	// of undefined behavior.
	ErrUnsupportedBlankShape = errors.New("qerrors: blank node identifier must resolve to an interned literal")
)

// InconsistentLiteralError is returned when a literal is constructed with
// both a lang tag and a datatype that isn't rdf:langString.
type InconsistentLiteralError struct {
	Datatype string
	Lang     string
}

func (e *InconsistentLiteralError) Error() string {
	return fmt.Sprintf("qerrors: literal has lang %q but datatype %q is not rdf:langString", e.Lang, e.Datatype)
}
