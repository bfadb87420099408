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

package wire

import (
	"testing"

	"github.com/openrepublic/go-jitabi/internal/testutil"
)

func TestBytesRoundTrip(t *testing.T) {
	v := []byte{0xde, 0xad, 0xbe, 0xef}
	buf := make([]byte, 16)
	n, err := PutBytes(buf, 0, v)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 5, n)

	got, n, err := GetBytes(buf, 0)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 5, n)
	testutil.ExpectBytesEq(t, v, got)
}

func TestBytesEmpty(t *testing.T) {
	buf := make([]byte, 4)
	n, err := PutBytes(buf, 0, nil)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 1, n)
	testutil.ExpectBytesEq(t, []byte{0}, buf[:1])
}

func TestGetBytesDecodeCopiesNotAliasesSource(t *testing.T) {
	src := []byte{2, 'h', 'i'}
	got, _, err := GetBytes(src, 0)
	testutil.AssertNoError(t, err)
	got[0] = 'X'
	testutil.ExpectEq(t, byte('h'), src[1])
}

func TestStringRoundTripAscii(t *testing.T) {
	buf := make([]byte, 16)
	n, err := PutString(buf, 0, "hello")
	testutil.AssertNoError(t, err)
	got, m, err := GetString(buf, 0)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, n, m)
	testutil.ExpectEq(t, "hello", got)
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	buf := []byte{2, 0xff, 0xfe}
	_, _, err := GetString(buf, 0)
	testutil.AssertError(t, err)
}

func TestGetBytesTruncated(t *testing.T) {
	buf := []byte{10, 1, 2}
	_, _, err := GetBytes(buf, 0)
	testutil.AssertError(t, err)
}
