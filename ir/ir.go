// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

// Package ir defines the resolved, graph-shaped intermediate
// representation the resolver produces and the emitter consumes.
package ir

// Kind discriminates the shape of a TypeDecl.
type Kind int

const (
	KindPrimitive Kind = iota
	KindStruct
	KindVariant
	KindAlias
)

// Modifier is a single wrapper in a field's modifier chain, applied
// outermost-first.
type Modifier int

const (
	ModNone Modifier = iota
	ModArray
	ModOptional
	ModExtension
)

func (m Modifier) String() string {
	switch m {
	case ModArray:
		return "array"
	case ModOptional:
		return "optional"
	case ModExtension:
		return "extension"
	default:
		return "none"
	}
}

// TypeRef is a resolved reference to a base type plus the ordered chain of
// modifiers applied at a particular use site (a field, a variant case).
// Modifiers[0] is applied outermost; the last entry wraps the bare base
// type directly.
type TypeRef struct {
	Base      *TypeDecl
	Modifiers []Modifier
	// RawLen is only meaningful when Base.Kind == KindPrimitive and
	// Base.Name == "raw": the fixed byte width of the blob.
	RawLen int
}

// IsArray reports whether the outermost modifier is an array.
func (r TypeRef) IsArray() bool {
	return len(r.Modifiers) > 0 && r.Modifiers[0] == ModArray
}

// String renders the full type expression r resolves from: the base
// name followed by its modifier suffixes, outermost-first, e.g.
// "uint32[]?" or "raw(32)". Used to distinguish variant cases that share
// a base type but differ in their modifier chain.
func (r TypeRef) String() string {
	name := ""
	if r.Base != nil {
		name = r.Base.Name
	}
	if r.Base != nil && r.Base.Kind == KindPrimitive && r.Base.Name == "raw" {
		name = "raw(" + itoa(r.RawLen) + ")"
	}
	suffixes := make([]string, len(r.Modifiers))
	for i, m := range r.Modifiers {
		switch m {
		case ModArray:
			suffixes[i] = "[]"
		case ModOptional:
			suffixes[i] = "?"
		case ModExtension:
			suffixes[i] = "$"
		}
	}
	// Modifiers are stored outermost-first but rendered innermost-first,
	// so a "?[]" chain (optional-of-array) prints as "[]?".
	for i, j := 0, len(suffixes)-1; i < j; i, j = i+1, j-1 {
		suffixes[i], suffixes[j] = suffixes[j], suffixes[i]
	}
	out := name
	for _, s := range suffixes {
		out += s
	}
	return out
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}

// FieldDecl is one struct field: a name plus its resolved type.
type FieldDecl struct {
	Name string
	Type TypeRef
}

// TypeDecl is a single node in the IR graph: either a primitive, a
// struct, a variant, or an alias. Exactly the fields relevant to Kind are
// populated.
type TypeDecl struct {
	Name string
	Kind Kind

	// KindStruct
	Base   *TypeDecl // nil if no base
	Fields []FieldDecl

	// KindVariant
	Cases []TypeRef

	// KindAlias
	AliasTarget TypeRef
}

// AllFields returns the struct's base fields (recursively) followed by
// its own declared fields, in encode/decode order.
func (d *TypeDecl) AllFields() []FieldDecl {
	if d.Kind != KindStruct {
		return nil
	}
	var out []FieldDecl
	if d.Base != nil {
		out = append(out, d.Base.AllFields()...)
	}
	out = append(out, d.Fields...)
	return out
}

// Graph is the complete set of resolved type declarations, keyed by name.
// It is read-only once resolution completes.
type Graph struct {
	Types map[string]*TypeDecl
	// Order lists every type name once, in the order it was first added.
	// The resolver adds primitives in a fixed order but structs, variants
	// and aliases in map iteration order, so Order is not stable between
	// runs; the emitter sorts a copy before emitting.
	Order []string
}

func NewGraph() *Graph {
	return &Graph{Types: make(map[string]*TypeDecl)}
}

func (g *Graph) Add(d *TypeDecl) {
	if _, exists := g.Types[d.Name]; !exists {
		g.Order = append(g.Order, d.Name)
	}
	g.Types[d.Name] = d
}

func (g *Graph) Lookup(name string) (*TypeDecl, bool) {
	d, ok := g.Types[name]
	return d, ok
}
