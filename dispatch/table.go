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

package dispatch

import (
	"strings"

	jitabi "github.com/openrepublic/go-jitabi"
	"github.com/openrepublic/go-jitabi/errs"
	"github.com/openrepublic/go-jitabi/ir"
)

// Table is the exported name -> codec mapping generated code builds once
// at init() time and holds for the lifetime of the process. It is safe
// for concurrent use by multiple goroutines on distinct inputs.
type Table struct {
	graph *ir.Graph
}

// NewTable builds a Table bound to a resolved graph.
func NewTable(graph *ir.Graph) *Table {
	return &Table{graph: graph}
}

// PackNamed encodes v as the named type into dst, starting at offset 0.
// It is the routine the emitter's per-type pack_<name> wrappers delegate
// to.
func (t *Table) PackNamed(name string, v jitabi.Value, dst []byte) (int, error) {
	decl, ok := t.graph.Lookup(name)
	if !ok {
		return 0, errs.New(errs.PhaseDispatch, errs.KindUnknownType).Path(name).Build()
	}
	return encodeBase(t.graph, ir.TypeRef{Base: decl}, v, dst, 0)
}

// UnpackNamed decodes the named type from the front of buf.
func (t *Table) UnpackNamed(name string, buf []byte) (jitabi.Value, int, error) {
	decl, ok := t.graph.Lookup(name)
	if !ok {
		return nil, 0, errs.New(errs.PhaseDispatch, errs.KindUnknownType).Path(name).Build()
	}
	return decodeBase(t.graph, ir.TypeRef{Base: decl}, buf, 0)
}

// Pack encodes value as typeName, recognizing a trailing "[]" as a
// top-level array modifier, and growing its internal buffer as needed
// (see GrowAndPack). This is the entry point intended for host code; the
// per-type pack_<name> functions the emitter generates take a
// caller-owned buffer directly and do not grow it.
func (t *Table) Pack(typeName string, value jitabi.Value) ([]byte, error) {
	ref, err := t.resolveDispatchName(typeName)
	if err != nil {
		return nil, err
	}
	return GrowAndPack(func(dst []byte) (int, error) {
		return encode(t.graph, ref, value, dst, 0)
	})
}

// Unpack decodes buf as typeName, recognizing a trailing "[]".
func (t *Table) Unpack(typeName string, buf []byte) (jitabi.Value, int, error) {
	ref, err := t.resolveDispatchName(typeName)
	if err != nil {
		return nil, 0, err
	}
	return decode(t.graph, ref, buf, 0)
}

func (t *Table) resolveDispatchName(typeName string) (ir.TypeRef, error) {
	stem := typeName
	var mods []ir.Modifier
	if strings.HasSuffix(typeName, "[]") {
		stem = typeName[:len(typeName)-2]
		mods = []ir.Modifier{ir.ModArray}
	}
	decl, ok := t.graph.Lookup(stem)
	if !ok {
		return ir.TypeRef{}, errs.New(errs.PhaseDispatch, errs.KindUnknownType).
			Path(typeName).Build()
	}
	return ir.TypeRef{Base: decl, Modifiers: mods}, nil
}
