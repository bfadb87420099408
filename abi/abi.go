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

// Package abi defines the external contract the resolver consumes: a view
// over a schema's structs, variants and aliases. A minimal in-memory
// implementation and a convenience JSON decoder are provided; a fully
// validating front-end is an explicit non-goal of this module.
package abi

// Field is a single struct field: a name and a type expression string,
// e.g. "uint32", "test_struct?", "uint8[]$".
type Field struct {
	Name string
	Type string
}

// Struct is a named, ordered sequence of fields with an optional base.
type Struct struct {
	Name   string
	Base   string // empty if no base
	Fields []Field
}

// Variant is a named, ordered sequence of case type expressions.
type Variant struct {
	Name  string
	Types []string
}

// Alias binds a new type name to a target type expression.
type Alias struct {
	Name string
	Type string
}

// Action references a type by name, along with the Antelope action name it
// is dispatched under. Carried through for completeness; the core pipeline
// does not interpret it.
type Action struct {
	Name              string
	Type              string
	RicardianContract string
}

// Table references an indexed type. Carried through for completeness.
type Table struct {
	Name      string
	KeyNames  []string
	KeyTypes  []string
	IndexType string
	Type      string
}

// View is the contract the resolver depends on. It deliberately exposes
// nothing about JSON, file I/O or schema versioning: those concerns live
// in front-ends that build a View, not in the View itself.
type View interface {
	Structs() []Struct
	Variants() []Variant
	Aliases() []Alias
	Actions() []Action
	Tables() []Table
}

// StaticView is a trivial in-memory View, used by tests and by the minimal
// JSON loader.
type StaticView struct {
	StructList  []Struct
	VariantList []Variant
	AliasList   []Alias
	ActionList  []Action
	TableList   []Table
}

var _ View = (*StaticView)(nil)

func (v *StaticView) Structs() []Struct    { return v.StructList }
func (v *StaticView) Variants() []Variant  { return v.VariantList }
func (v *StaticView) Aliases() []Alias     { return v.AliasList }
func (v *StaticView) Actions() []Action    { return v.ActionList }
func (v *StaticView) Tables() []Table      { return v.TableList }
