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

// Package testutil holds shared test helpers: assertions, and a small
// fluent builder for synthetic ABI schemas so resolver/emitter tests
// don't each hand-roll an abi.StaticView literal.
package testutil

import "github.com/openrepublic/go-jitabi/abi"

// SchemaBuilder accumulates structs, variants and aliases, then produces
// an abi.View via Build.
type SchemaBuilder struct {
	view abi.StaticView
}

func NewSchema() *SchemaBuilder {
	return &SchemaBuilder{}
}

func (b *SchemaBuilder) Struct(name, base string, fields ...abi.Field) *SchemaBuilder {
	b.view.StructList = append(b.view.StructList, abi.Struct{
		Name: name, Base: base, Fields: fields,
	})
	return b
}

func (b *SchemaBuilder) Variant(name string, types ...string) *SchemaBuilder {
	b.view.VariantList = append(b.view.VariantList, abi.Variant{
		Name: name, Types: types,
	})
	return b
}

func (b *SchemaBuilder) Alias(name, target string) *SchemaBuilder {
	b.view.AliasList = append(b.view.AliasList, abi.Alias{Name: name, Type: target})
	return b
}

func (b *SchemaBuilder) Build() abi.View {
	return &b.view
}

// F is shorthand for constructing an abi.Field literal.
func F(name, typeExpr string) abi.Field {
	return abi.Field{Name: name, Type: typeExpr}
}
