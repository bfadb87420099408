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
	jitabi "github.com/openrepublic/go-jitabi"
	"github.com/openrepublic/go-jitabi/errs"
	"github.com/openrepublic/go-jitabi/ir"
	"github.com/openrepublic/go-jitabi/wire"
)

// decode reads a value matching ref from src at off, returning the
// decoded value and the number of bytes consumed.
func decode(graph *ir.Graph, ref ir.TypeRef, src []byte, off int) (jitabi.Value, int, error) {
	if len(ref.Modifiers) > 0 {
		return decodeModifier(graph, ref, ref.Modifiers[0], src, off)
	}
	return decodeBase(graph, ref, src, off)
}

func decodeModifier(graph *ir.Graph, ref ir.TypeRef, mod ir.Modifier, src []byte, off int) (jitabi.Value, int, error) {
	inner := ir.TypeRef{Base: ref.Base, Modifiers: ref.Modifiers[1:], RawLen: ref.RawLen}

	switch mod {
	case ir.ModOptional:
		flag, n, err := wire.GetUint8(src, off)
		if err != nil {
			return nil, 0, err
		}
		if flag == 0 {
			return jitabi.Absent{}, n, nil
		}
		v, m, err := decode(graph, inner, src, off+n)
		if err != nil {
			return nil, 0, err
		}
		return v, n + m, nil

	case ir.ModExtension:
		if off >= len(src) {
			return jitabi.Absent{}, 0, nil
		}
		return decode(graph, inner, src, off)

	case ir.ModArray:
		count, n, err := wire.GetVaruint32(src, off)
		if err != nil {
			return nil, 0, err
		}
		if count > uint64(jitabi.MaxArrayLen) {
			return nil, 0, errs.New(errs.PhaseUnpack, errs.KindOutOfRange).
				Detail("array length %d exceeds maximum", count).Build()
		}
		list := make(jitabi.List, 0, count)
		total := n
		for i := uint64(0); i < count; i++ {
			v, m, err := decode(graph, inner, src, off+total)
			if err != nil {
				return nil, 0, errs.New(errs.PhaseUnpack, errs.KindTruncatedBuffer).
					Path(indexPath(int(i))).Cause(err).Build()
			}
			list = append(list, v)
			total += m
		}
		return list, total, nil
	}
	return nil, 0, errs.New(errs.PhaseUnpack, errs.KindMalformedModifier).Build()
}

func decodeBase(graph *ir.Graph, ref ir.TypeRef, src []byte, off int) (jitabi.Value, int, error) {
	decl := ref.Base
	switch decl.Kind {
	case ir.KindPrimitive:
		return decodePrimitive(decl.Name, ref.RawLen, src, off)
	case ir.KindStruct:
		return decodeStruct(graph, decl, src, off)
	case ir.KindVariant:
		return decodeVariant(graph, decl, src, off)
	case ir.KindAlias:
		return decode(graph, decl.AliasTarget, src, off)
	}
	return nil, 0, errs.New(errs.PhaseUnpack, errs.KindUnknownType).Path(decl.Name).Build()
}

func decodePrimitive(name string, rawLen int, src []byte, off int) (jitabi.Value, int, error) {
	switch name {
	case "bool":
		u, n, err := wire.GetUint8(src, off)
		if err != nil {
			return nil, 0, err
		}
		return jitabi.Bool(u != 0), n, nil
	case "uint8":
		u, n, err := wire.GetUint8(src, off)
		return jitabi.Uint(u), n, err
	case "uint16":
		u, n, err := wire.GetUint16(src, off)
		return jitabi.Uint(u), n, err
	case "uint32":
		u, n, err := wire.GetUint32(src, off)
		return jitabi.Uint(u), n, err
	case "uint64":
		u, n, err := wire.GetUint64(src, off)
		return jitabi.Uint(u), n, err
	case "int8":
		i, n, err := wire.GetInt8(src, off)
		return jitabi.Int(i), n, err
	case "int16":
		i, n, err := wire.GetInt16(src, off)
		return jitabi.Int(i), n, err
	case "int32":
		i, n, err := wire.GetInt32(src, off)
		return jitabi.Int(i), n, err
	case "int64":
		i, n, err := wire.GetInt64(src, off)
		return jitabi.Int(i), n, err
	case "uint128":
		b, n, err := wire.GetUint128(src, off)
		if err != nil {
			return nil, 0, err
		}
		return jitabi.BigUint{V: b}, n, nil
	case "int128":
		b, n, err := wire.GetInt128(src, off)
		if err != nil {
			return nil, 0, err
		}
		return jitabi.BigInt{V: b}, n, nil
	case "varuint32":
		u, n, err := wire.GetVaruint32(src, off)
		return jitabi.Uint(u), n, err
	case "varint32":
		i, n, err := wire.GetVarint32(src, off)
		return jitabi.Int(i), n, err
	case "float32":
		f, n, err := wire.GetFloat32(src, off)
		return jitabi.Float32(f), n, err
	case "float64":
		f, n, err := wire.GetFloat64(src, off)
		return jitabi.Float64(f), n, err
	case "bytes":
		b, n, err := wire.GetBytes(src, off)
		return jitabi.Bytes(b), n, err
	case "string":
		s, n, err := wire.GetString(src, off)
		return jitabi.String(s), n, err
	case "raw":
		b, n, err := wire.GetRaw(src, off, rawLen)
		return jitabi.Bytes(b), n, err
	}
	return nil, 0, errs.New(errs.PhaseUnpack, errs.KindUnknownType).Path(name).Build()
}

func decodeStruct(graph *ir.Graph, decl *ir.TypeDecl, src []byte, off int) (jitabi.Value, int, error) {
	rec := jitabi.NewRecord()
	total := 0
	for _, f := range decl.AllFields() {
		v, n, err := decode(graph, f.Type, src, off+total)
		if err != nil {
			return nil, 0, errs.New(errs.PhaseUnpack, errs.KindTruncatedBuffer).
				Path(decl.Name).Path(f.Name).Cause(err).Build()
		}
		rec.Set(f.Name, v)
		total += n
	}
	return rec, total, nil
}

func decodeVariant(graph *ir.Graph, decl *ir.TypeDecl, src []byte, off int) (jitabi.Value, int, error) {
	idx, n, err := wire.GetVaruint32(src, off)
	if err != nil {
		return nil, 0, err
	}
	if int(idx) >= len(decl.Cases) {
		return nil, 0, errs.New(errs.PhaseUnpack, errs.KindUnknownVariant).
			Path(decl.Name).Detail("index %d out of range (%d cases)", idx, len(decl.Cases)).Build()
	}
	caseName := caseDeclName(decl, int(idx))
	payload, m, err := decode(graph, decl.Cases[idx], src, off+n)
	if err != nil {
		return nil, 0, errs.New(errs.PhaseUnpack, errs.KindTruncatedBuffer).
			Path(decl.Name).Cause(err).Build()
	}
	return jitabi.VariantRecord(caseName, payload), n + m, nil
}

func caseDeclName(decl *ir.TypeDecl, idx int) string {
	return decl.Cases[idx].String()
}
