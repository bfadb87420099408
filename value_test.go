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

import (
	"math/big"
	"strings"
	"testing"

	"github.com/openrepublic/go-jitabi/internal/testutil"
)

func TestRecordPreservesInsertionOrder(t *testing.T) {
	rec := NewRecord()
	rec.Set("b", Uint(1))
	rec.Set("a", Uint(2))
	rec.Set("b", Uint(3)) // overwrite shouldn't move it

	testutil.ExpectSliceEq(t, []string{"b", "a"}, rec.Keys())
	v, ok := rec.Get("b")
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, Uint(3), v.(Uint))
	testutil.ExpectEq(t, 2, rec.Len())
}

func TestRecordMissingKey(t *testing.T) {
	rec := NewRecord()
	_, ok := rec.Get("missing")
	testutil.ExpectFalse(t, ok)
}

func TestVariantRecordShape(t *testing.T) {
	rec := VariantRecord("uint32", Uint(7))
	typeVal, _ := rec.Get("type")
	valueVal, _ := rec.Get("value")
	testutil.ExpectEq(t, String("uint32"), typeVal.(String))
	testutil.ExpectEq(t, Uint(7), valueVal.(Uint))
}

func TestTextRendersPrimitives(t *testing.T) {
	testutil.ExpectEq(t, "true\n", Text(Bool(true)))
	testutil.ExpectEq(t, "42\n", Text(Uint(42)))
	testutil.ExpectEq(t, "-1\n", Text(Int(-1)))
	testutil.ExpectEq(t, "<absent>\n", Text(Absent{}))
}

func TestTextRendersBigInts(t *testing.T) {
	v := BigUint{V: big.NewInt(123456789)}
	testutil.ExpectEq(t, "123456789\n", Text(v))
}

func TestTextEscapesStrings(t *testing.T) {
	got := Text(String("a\"b\tc"))
	testutil.ExpectTrue(t, strings.Contains(got, `\"`))
	testutil.ExpectTrue(t, strings.Contains(got, `\t`))
}

func TestTextRendersRecordAndList(t *testing.T) {
	rec := NewRecord()
	rec.Set("x", Uint(1))
	rec.Set("y", List{Uint(2), Uint(3)})

	got := Text(rec)
	testutil.ExpectTrue(t, strings.Contains(got, "x ="))
	testutil.ExpectTrue(t, strings.Contains(got, "y ="))
	testutil.ExpectTrue(t, strings.Contains(got, "["))
}

func TestTextRendersBytes(t *testing.T) {
	got := Text(Bytes{0x01, 0xFF})
	testutil.ExpectEq(t, "[0x01, 0xFF]\n", got)
}
