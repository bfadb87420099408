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

package abi

// Primitives lists every built-in wire primitive name, i.e. the set of
// base type names the resolver accepts without any struct/variant/alias
// declaration. "raw" is handled separately since it is parametrized by a
// byte count (raw(N)).
var Primitives = []string{
	"bool",
	"uint8", "uint16", "uint32", "uint64", "uint128",
	"int8", "int16", "int32", "int64", "int128",
	"varuint32", "varint32",
	"float32", "float64",
	"bytes", "string",
}

// IsPrimitive reports whether name is one of Primitives.
func IsPrimitive(name string) bool {
	for _, p := range Primitives {
		if p == name {
			return true
		}
	}
	return false
}

// BuiltinStructs are the extra structs present in every ABI, ported from
// the Antelope abi_serializer's built-in type table.
func BuiltinStructs() []Struct {
	return []Struct{
		{
			Name: "asset",
			Fields: []Field{
				{Name: "amount", Type: "int64"},
				{Name: "symbol", Type: "symbol"},
			},
		},
		{
			Name: "extended_asset",
			Fields: []Field{
				{Name: "quantity", Type: "asset"},
				{Name: "contract", Type: "name"},
			},
		},
	}
}

// BuiltinAliases are the extra type aliases present in every ABI.
func BuiltinAliases() []Alias {
	return []Alias{
		{Name: "float128", Type: "raw(16)"},
		{Name: "name", Type: "uint64"},
		{Name: "account_name", Type: "uint64"},
		{Name: "symbol", Type: "uint64"},
		{Name: "symbol_code", Type: "uint64"},
		{Name: "rd160", Type: "raw(20)"},
		{Name: "checksum160", Type: "raw(20)"},
		{Name: "sha256", Type: "raw(32)"},
		{Name: "checksum256", Type: "raw(32)"},
		{Name: "checksum512", Type: "raw(64)"},
		{Name: "time_point", Type: "uint64"},
		{Name: "time_point_sec", Type: "uint32"},
		{Name: "block_timestamp_type", Type: "uint32"},
		{Name: "public_key", Type: "raw(34)"},
		{Name: "signature", Type: "raw(66)"},
	}
}

// RawSizes enumerates the fixed byte widths a raw(N) primitive may be
// parametrized with, matching the widths the built-in aliases above
// actually use (16, 20, 32, 34, 64, 66).
var RawSizes = []int{16, 20, 32, 34, 64, 66}

// IsValidRawSize reports whether n is one of RawSizes.
func IsValidRawSize(n int) bool {
	for _, s := range RawSizes {
		if s == n {
			return true
		}
	}
	return false
}
