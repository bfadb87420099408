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
	"testing"

	jitabi "github.com/openrepublic/go-jitabi"
	"github.com/openrepublic/go-jitabi/internal/testutil"
	"github.com/openrepublic/go-jitabi/resolver"
)

func buildTable(t *testing.T, build func(*testutil.SchemaBuilder) *testutil.SchemaBuilder) *Table {
	t.Helper()
	view := build(testutil.NewSchema()).Build()
	graph, err := resolver.Resolve(view)
	testutil.AssertNoError(t, err)
	return NewTable(graph)
}

func TestPackUnpackUint32Scenario(t *testing.T) {
	table := buildTable(t, func(b *testutil.SchemaBuilder) *testutil.SchemaBuilder { return b })

	buf, err := table.Pack("uint32", jitabi.Uint(0x78563412))
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{0x12, 0x34, 0x56, 0x78}, buf)

	v, n, err := table.Unpack("uint32", buf)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 4, n)
	testutil.ExpectEq(t, jitabi.Uint(0x78563412), v.(jitabi.Uint))
}

func TestPackUnpackStringScenario(t *testing.T) {
	table := buildTable(t, func(b *testutil.SchemaBuilder) *testutil.SchemaBuilder { return b })

	buf, err := table.Pack("string", jitabi.String("hi"))
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{0x02, 'h', 'i'}, buf)

	v, n, err := table.Unpack("string", buf)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 3, n)
	testutil.ExpectEq(t, jitabi.String("hi"), v.(jitabi.String))
}

func TestPackUnpackStructWithBase(t *testing.T) {
	table := buildTable(t, func(b *testutil.SchemaBuilder) *testutil.SchemaBuilder {
		return b.
			Struct("base", "", testutil.F("a", "uint8")).
			Struct("derived", "base", testutil.F("b", "uint8"))
	})

	rec := jitabi.NewRecord()
	rec.Set("a", jitabi.Uint(1))
	rec.Set("b", jitabi.Uint(2))

	buf, err := table.Pack("derived", rec)
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{1, 2}, buf)

	v, n, err := table.Unpack("derived", buf)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 2, n)
	got := v.(*jitabi.Record)
	a, _ := got.Get("a")
	bb, _ := got.Get("b")
	testutil.ExpectEq(t, jitabi.Uint(1), a.(jitabi.Uint))
	testutil.ExpectEq(t, jitabi.Uint(2), bb.(jitabi.Uint))
}

func TestPackUnpackOptionalPresent(t *testing.T) {
	table := buildTable(t, func(b *testutil.SchemaBuilder) *testutil.SchemaBuilder {
		return b.Struct("s", "", testutil.F("x", "uint8?"))
	})

	rec := jitabi.NewRecord()
	rec.Set("x", jitabi.Uint(7))

	buf, err := table.Pack("s", rec)
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{1, 7}, buf)

	v, _, err := table.Unpack("s", buf)
	testutil.AssertNoError(t, err)
	x, _ := v.(*jitabi.Record).Get("x")
	testutil.ExpectEq(t, jitabi.Uint(7), x.(jitabi.Uint))
}

func TestPackUnpackOptionalAbsent(t *testing.T) {
	table := buildTable(t, func(b *testutil.SchemaBuilder) *testutil.SchemaBuilder {
		return b.Struct("s", "", testutil.F("x", "uint8?"))
	})

	rec := jitabi.NewRecord()
	rec.Set("x", jitabi.Absent{})

	buf, err := table.Pack("s", rec)
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{0}, buf)

	v, n, err := table.Unpack("s", buf)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 1, n)
	x, _ := v.(*jitabi.Record).Get("x")
	_, isAbsent := x.(jitabi.Absent)
	testutil.ExpectTrue(t, isAbsent)
}

func TestPackUnpackExtensionTail(t *testing.T) {
	table := buildTable(t, func(b *testutil.SchemaBuilder) *testutil.SchemaBuilder {
		return b.Struct("s", "", testutil.F("a", "uint8"), testutil.F("b", "uint8$"))
	})

	rec := jitabi.NewRecord()
	rec.Set("a", jitabi.Uint(9))
	rec.Set("b", jitabi.Absent{})

	buf, err := table.Pack("s", rec)
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{9}, buf)

	v, n, err := table.Unpack("s", buf)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 1, n)
	b, _ := v.(*jitabi.Record).Get("b")
	_, isAbsent := b.(jitabi.Absent)
	testutil.ExpectTrue(t, isAbsent)
}

func TestPackUnpackVariantByIndex(t *testing.T) {
	table := buildTable(t, func(b *testutil.SchemaBuilder) *testutil.SchemaBuilder {
		return b.Variant("v", "uint32", "string")
	})

	buf, err := table.Pack("v", jitabi.String("hi"))
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{1, 0x02, 'h', 'i'}, buf)

	v, n, err := table.Unpack("v", buf)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 4, n)
	rec := v.(*jitabi.Record)
	typeName, _ := rec.Get("type")
	testutil.ExpectEq(t, jitabi.String("string"), typeName.(jitabi.String))
}

func TestPackVariantExplicitRecord(t *testing.T) {
	table := buildTable(t, func(b *testutil.SchemaBuilder) *testutil.SchemaBuilder {
		return b.Variant("v", "uint32", "string")
	})

	buf, err := table.Pack("v", jitabi.VariantRecord("uint32", jitabi.Uint(5)))
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{0, 5, 0, 0, 0}, buf)
}

func TestPackUnpackArray(t *testing.T) {
	table := buildTable(t, func(b *testutil.SchemaBuilder) *testutil.SchemaBuilder { return b })

	buf, err := table.Pack("uint8[]", jitabi.List{jitabi.Uint(1), jitabi.Uint(2), jitabi.Uint(3)})
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{3, 1, 2, 3}, buf)

	v, n, err := table.Unpack("uint8[]", buf)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 4, n)
	testutil.ExpectEq(t, 3, len(v.(jitabi.List)))
}

func TestPackUnknownTypeFails(t *testing.T) {
	table := buildTable(t, func(b *testutil.SchemaBuilder) *testutil.SchemaBuilder { return b })
	_, err := table.Pack("not_a_type", jitabi.Uint(1))
	testutil.AssertError(t, err)
}
