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

package jitabi

import "math/big"

// Value is the closed tagged sum exchanged across the pack/unpack
// boundary. Every concrete type below implements isValue(); switching on
// the dynamic type is the only supported form of dispatch.
type Value interface {
	isValue()
}

// Absent marks an optional or extension field with no payload. It is a
// distinct Value, never a nil interface or pointer.
type Absent struct{}

func (Absent) isValue() {}

type Bool bool

func (Bool) isValue() {}

// Uint holds any unsigned integer narrower than 128 bits.
type Uint uint64

func (Uint) isValue() {}

// Int holds any signed integer narrower than 128 bits.
type Int int64

func (Int) isValue() {}

// BigUint holds a 128-bit unsigned integer.
type BigUint struct{ V *big.Int }

func (BigUint) isValue() {}

// BigInt holds a 128-bit signed integer.
type BigInt struct{ V *big.Int }

func (BigInt) isValue() {}

type Float32 float32

func (Float32) isValue() {}

type Float64 float64

func (Float64) isValue() {}

// Bytes holds an opaque byte string: length-prefixed bytes, or a raw(N)
// fixed-size blob.
type Bytes []byte

func (Bytes) isValue() {}

type String string

func (String) isValue() {}

// Record is an ordered, name-keyed struct value. Order matches declaration
// order (base fields first), and is preserved across Keys().
type Record struct {
	keys   []string
	values map[string]Value
}

func (*Record) isValue() {}

// NewRecord returns an empty Record ready for Set calls in field order.
func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

func (r *Record) Set(key string, v Value) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *Record) Keys() []string {
	return r.keys
}

func (r *Record) Len() int {
	return len(r.keys)
}

// List is an ordered sequence of values, the decoded form of an array
// modifier.
type List []Value

func (List) isValue() {}

// VariantRecord builds the canonical {type, value} decoded form of a
// variant, per the documented round-trip contract: unpack always produces
// this shape, while pack additionally accepts a bare payload.
func VariantRecord(caseName string, payload Value) *Record {
	r := NewRecord()
	r.Set("type", String(caseName))
	r.Set("value", payload)
	return r
}
