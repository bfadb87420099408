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

// Package dispatch is the runtime support library linked into every
// generated codec package: a shared traversal engine over a resolved
// ir.Graph, plus the top-level Pack/Unpack entry points and the growing
// output buffer wrapper.
package dispatch

import (
	jitabi "github.com/openrepublic/go-jitabi"
	"github.com/openrepublic/go-jitabi/errs"
	"github.com/openrepublic/go-jitabi/ir"
	"github.com/openrepublic/go-jitabi/wire"
)

// encode writes v to dst at off per ref's modifier chain and base type,
// returning the number of bytes written.
func encode(graph *ir.Graph, ref ir.TypeRef, v jitabi.Value, dst []byte, off int) (int, error) {
	if len(ref.Modifiers) > 0 {
		return encodeModifier(graph, ref, ref.Modifiers[0], v, dst, off)
	}
	return encodeBase(graph, ref, v, dst, off)
}

func encodeModifier(graph *ir.Graph, ref ir.TypeRef, mod ir.Modifier, v jitabi.Value, dst []byte, off int) (int, error) {
	inner := ir.TypeRef{Base: ref.Base, Modifiers: ref.Modifiers[1:], RawLen: ref.RawLen}

	switch mod {
	case ir.ModOptional:
		if _, absent := v.(jitabi.Absent); absent {
			n, err := wire.PutUint8(dst, off, 0)
			return n, err
		}
		n, err := wire.PutUint8(dst, off, 1)
		if err != nil {
			return 0, err
		}
		m, err := encode(graph, inner, v, dst, off+n)
		if err != nil {
			return 0, err
		}
		return n + m, nil

	case ir.ModExtension:
		if _, absent := v.(jitabi.Absent); absent {
			return 0, nil
		}
		return encode(graph, inner, v, dst, off)

	case ir.ModArray:
		list, ok := v.(jitabi.List)
		if !ok {
			return 0, errs.New(errs.PhasePack, errs.KindWrongHostType).
				Detail("expected jitabi.List, got %T", v).Build()
		}
		n, err := wire.PutVaruint32(dst, off, uint64(len(list)))
		if err != nil {
			return 0, err
		}
		total := n
		for i, item := range list {
			m, err := encode(graph, inner, item, dst, off+total)
			if err != nil {
				return 0, errs.New(errs.PhasePack, errs.KindWrongHostType).
					Path(indexPath(i)).Cause(err).Build()
			}
			total += m
		}
		return total, nil
	}
	return 0, errs.New(errs.PhasePack, errs.KindMalformedModifier).Build()
}

func indexPath(i int) string {
	return "[" + itoa(i) + "]"
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

func encodeBase(graph *ir.Graph, ref ir.TypeRef, v jitabi.Value, dst []byte, off int) (int, error) {
	decl := ref.Base
	switch decl.Kind {
	case ir.KindPrimitive:
		return encodePrimitive(decl.Name, ref.RawLen, v, dst, off)
	case ir.KindStruct:
		return encodeStruct(graph, decl, v, dst, off)
	case ir.KindVariant:
		return encodeVariant(graph, decl, v, dst, off)
	case ir.KindAlias:
		return encode(graph, decl.AliasTarget, v, dst, off)
	}
	return 0, errs.New(errs.PhasePack, errs.KindUnknownType).Path(decl.Name).Build()
}

func encodePrimitive(name string, rawLen int, v jitabi.Value, dst []byte, off int) (int, error) {
	wrongType := func() (int, error) {
		return 0, errs.New(errs.PhasePack, errs.KindWrongHostType).
			Path(name).Detail("unexpected value %T", v).Build()
	}
	switch name {
	case "bool":
		b, ok := v.(jitabi.Bool)
		if !ok {
			return wrongType()
		}
		var u uint8
		if b {
			u = 1
		}
		return wire.PutUint8(dst, off, u)
	case "uint8", "uint16", "uint32", "uint64":
		u, ok := v.(jitabi.Uint)
		if !ok {
			return wrongType()
		}
		return putUint(name, uint64(u), dst, off)
	case "int8", "int16", "int32", "int64":
		i, ok := v.(jitabi.Int)
		if !ok {
			return wrongType()
		}
		return putInt(name, int64(i), dst, off)
	case "uint128":
		b, ok := v.(jitabi.BigUint)
		if !ok {
			return wrongType()
		}
		return wire.PutUint128(dst, off, b.V)
	case "int128":
		b, ok := v.(jitabi.BigInt)
		if !ok {
			return wrongType()
		}
		return wire.PutInt128(dst, off, b.V)
	case "varuint32":
		u, ok := v.(jitabi.Uint)
		if !ok {
			return wrongType()
		}
		return wire.PutVaruint32(dst, off, uint64(u))
	case "varint32":
		i, ok := v.(jitabi.Int)
		if !ok {
			return wrongType()
		}
		return wire.PutVarint32(dst, off, int32(i))
	case "float32":
		f, ok := v.(jitabi.Float32)
		if !ok {
			return wrongType()
		}
		return wire.PutFloat32(dst, off, float32(f))
	case "float64":
		f, ok := v.(jitabi.Float64)
		if !ok {
			return wrongType()
		}
		return wire.PutFloat64(dst, off, float64(f))
	case "bytes":
		b, ok := v.(jitabi.Bytes)
		if !ok {
			return wrongType()
		}
		return wire.PutBytes(dst, off, b)
	case "string":
		s, ok := v.(jitabi.String)
		if !ok {
			return wrongType()
		}
		return wire.PutString(dst, off, string(s))
	case "raw":
		b, ok := v.(jitabi.Bytes)
		if !ok {
			return wrongType()
		}
		if len(b) != rawLen {
			return 0, errs.New(errs.PhasePack, errs.KindOutOfRange).
				Detail("raw(%d): got %d bytes", rawLen, len(b)).Build()
		}
		return wire.PutRaw(dst, off, b)
	}
	return 0, errs.New(errs.PhasePack, errs.KindUnknownType).Path(name).Build()
}

func putUint(name string, v uint64, dst []byte, off int) (int, error) {
	switch name {
	case "uint8":
		if v > 0xFF {
			return 0, outOfRange(name, v)
		}
		return wire.PutUint8(dst, off, uint8(v))
	case "uint16":
		if v > 0xFFFF {
			return 0, outOfRange(name, v)
		}
		return wire.PutUint16(dst, off, uint16(v))
	case "uint32":
		if v > 0xFFFFFFFF {
			return 0, outOfRange(name, v)
		}
		return wire.PutUint32(dst, off, uint32(v))
	default: // uint64
		return wire.PutUint64(dst, off, v)
	}
}

func putInt(name string, v int64, dst []byte, off int) (int, error) {
	switch name {
	case "int8":
		if v < -128 || v > 127 {
			return 0, outOfRange(name, v)
		}
		return wire.PutInt8(dst, off, int8(v))
	case "int16":
		if v < -32768 || v > 32767 {
			return 0, outOfRange(name, v)
		}
		return wire.PutInt16(dst, off, int16(v))
	case "int32":
		if v < -(1<<31) || v > (1<<31)-1 {
			return 0, outOfRange(name, v)
		}
		return wire.PutInt32(dst, off, int32(v))
	default: // int64
		return wire.PutInt64(dst, off, v)
	}
}

func outOfRange(name string, v any) error {
	return errs.New(errs.PhasePack, errs.KindOutOfRange).
		Path(name).Detail("value %v out of range", v).Build()
}

func encodeStruct(graph *ir.Graph, decl *ir.TypeDecl, v jitabi.Value, dst []byte, off int) (int, error) {
	rec, ok := v.(*jitabi.Record)
	if !ok {
		return 0, errs.New(errs.PhasePack, errs.KindWrongHostType).
			Path(decl.Name).Detail("expected *jitabi.Record, got %T", v).Build()
	}
	total := 0
	for _, f := range decl.AllFields() {
		val, present := rec.Get(f.Name)
		if !present {
			isExt := len(f.Type.Modifiers) > 0 && f.Type.Modifiers[0] == ir.ModExtension
			if isExt {
				val = jitabi.Absent{}
			} else {
				return 0, errs.New(errs.PhasePack, errs.KindFieldMissing).
					Path(decl.Name).Path(f.Name).Build()
			}
		}
		n, err := encode(graph, f.Type, val, dst, off+total)
		if err != nil {
			return 0, errs.New(errs.PhasePack, errs.KindWrongHostType).
				Path(decl.Name).Path(f.Name).Cause(err).Build()
		}
		total += n
	}
	return total, nil
}

func encodeVariant(graph *ir.Graph, decl *ir.TypeDecl, v jitabi.Value, dst []byte, off int) (int, error) {
	idx, payload, err := classifyVariant(decl, v)
	if err != nil {
		return 0, err
	}
	n, err := wire.PutVaruint32(dst, off, uint64(idx))
	if err != nil {
		return 0, err
	}
	m, err := encode(graph, decl.Cases[idx], payload, dst, off+n)
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// classifyVariant selects a case index for v, either from an explicit
// {type, value} record or, for a bare payload, by matching the first case
// of the payload's host-type category. This preserves the "first match
// wins" behavior for ambiguous variants rather than rejecting them.
func classifyVariant(decl *ir.TypeDecl, v jitabi.Value) (int, jitabi.Value, error) {
	if rec, ok := v.(*jitabi.Record); ok {
		if typeVal, ok := rec.Get("type"); ok {
			name, ok := typeVal.(jitabi.String)
			if !ok {
				return 0, nil, errs.New(errs.PhasePack, errs.KindWrongHostType).
					Path(decl.Name).Detail("'type' field must be a string").Build()
			}
			for i, c := range decl.Cases {
				if c.Base != nil && c.String() == string(name) {
					payload, _ := rec.Get("value")
					return i, payload, nil
				}
			}
			return 0, nil, errs.New(errs.PhasePack, errs.KindUnknownVariantCase).
				Path(decl.Name).Detail("no case named %q", name).Build()
		}
	}

	category := hostCategory(v)
	if category == "" {
		return 0, nil, errs.New(errs.PhasePack, errs.KindUnknownVariant).
			Path(decl.Name).Build()
	}
	for i, c := range decl.Cases {
		if caseCategory(c) == category {
			return i, v, nil
		}
	}
	return 0, nil, errs.New(errs.PhasePack, errs.KindUnknownVariant).
		Path(decl.Name).Detail("no case matches host type %T", v).Build()
}

func hostCategory(v jitabi.Value) string {
	switch v.(type) {
	case jitabi.Bool:
		return "bool"
	case jitabi.Uint, jitabi.BigUint:
		return "uint"
	case jitabi.Int, jitabi.BigInt:
		return "int"
	case jitabi.Float32, jitabi.Float64:
		return "float"
	case jitabi.Bytes:
		return "bytes"
	case jitabi.String:
		return "string"
	}
	return ""
}

func caseCategory(ref ir.TypeRef) string {
	if len(ref.Modifiers) > 0 || ref.Base == nil {
		return ""
	}
	switch ref.Base.Kind {
	case ir.KindPrimitive:
		switch ref.Base.Name {
		case "bool":
			return "bool"
		case "uint8", "uint16", "uint32", "uint64", "uint128", "varuint32":
			return "uint"
		case "int8", "int16", "int32", "int64", "int128", "varint32":
			return "int"
		case "float32", "float64":
			return "float"
		case "bytes", "raw":
			return "bytes"
		case "string":
			return "string"
		}
	}
	return ""
}
