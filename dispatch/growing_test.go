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

	"github.com/openrepublic/go-jitabi/errs"
	"github.com/openrepublic/go-jitabi/internal/testutil"
)

func TestGrowAndPackFitsFirstTry(t *testing.T) {
	buf, err := GrowAndPack(func(dst []byte) (int, error) {
		dst[0] = 1
		dst[1] = 2
		return 2, nil
	})
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{1, 2}, buf)
}

func TestGrowAndPackGrowsUntilItFits(t *testing.T) {
	attempts := 0
	want := initialBufferSize*4 + 1
	buf, err := GrowAndPack(func(dst []byte) (int, error) {
		attempts++
		if len(dst) < want {
			return 0, errs.New(errs.PhasePack, errs.KindBufferTooSmall).Build()
		}
		return want, nil
	})
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, want, len(buf))
	testutil.ExpectTrue(t, attempts >= 1)
}

func TestGrowAndPackExhaustsAttempts(t *testing.T) {
	_, err := GrowAndPack(func(dst []byte) (int, error) {
		return 0, errs.New(errs.PhasePack, errs.KindBufferTooSmall).Build()
	})
	testutil.AssertError(t, err)
	testutil.ExpectTrue(t, errs.Is(err, errs.KindResizeExhausted))
}

func TestGrowAndPackAbortsOnOtherError(t *testing.T) {
	calls := 0
	_, err := GrowAndPack(func(dst []byte) (int, error) {
		calls++
		return 0, errs.New(errs.PhasePack, errs.KindWrongHostType).Build()
	})
	testutil.AssertError(t, err)
	testutil.ExpectEq(t, 1, calls)
}
