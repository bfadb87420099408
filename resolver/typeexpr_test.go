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

package resolver

import (
	"testing"

	"github.com/openrepublic/go-jitabi/internal/testutil"
	"github.com/openrepublic/go-jitabi/ir"
)

func TestSplitModifiersBareStem(t *testing.T) {
	stem, mods, err := splitModifiers("uint32")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "uint32", stem)
	testutil.ExpectEq(t, 0, len(mods))
}

func TestSplitModifiersArray(t *testing.T) {
	stem, mods, err := splitModifiers("uint32[]")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "uint32", stem)
	testutil.ExpectSliceEq(t, []ir.Modifier{ir.ModArray}, mods)
}

func TestSplitModifiersOptionalThenArrayOutermostFirst(t *testing.T) {
	// "uint8[]?" means optional-of-array: "?" binds outermost, so it must
	// be peeled first.
	stem, mods, err := splitModifiers("uint8[]?")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "uint8", stem)
	testutil.ExpectSliceEq(t, []ir.Modifier{ir.ModOptional, ir.ModArray}, mods)
}

func TestSplitModifiersExtension(t *testing.T) {
	stem, mods, err := splitModifiers("uint8$")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "uint8", stem)
	testutil.ExpectSliceEq(t, []ir.Modifier{ir.ModExtension}, mods)
}

func TestSplitModifiersRejectsFixedSizeArray(t *testing.T) {
	_, _, err := splitModifiers("uint8[32]")
	testutil.AssertError(t, err)
}

func TestSplitModifiersLeavesRawStemAlone(t *testing.T) {
	stem, mods, err := splitModifiers("raw(32)")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "raw(32)", stem)
	testutil.ExpectEq(t, 0, len(mods))
}

func TestParseRawLen(t *testing.T) {
	n, ok := parseRawLen("raw(20)")
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, 20, n)

	_, ok = parseRawLen("uint8")
	testutil.ExpectFalse(t, ok)
}
