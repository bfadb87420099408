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

// Package wire implements the little-endian, LEB128-based binary encoding
// shared by every generated pack/unpack routine.
package wire

import (
	"math/bits"

	"github.com/openrepublic/go-jitabi/errs"
)

// errBufferTooSmall builds the KindBufferTooSmall error every Put* helper
// returns when dst does not have enough remaining length. The dispatch package's growing
// buffer wrapper watches for this specific Kind.
func errBufferTooSmall(need, have int) *errs.Error {
	return errs.New(errs.PhasePack, errs.KindBufferTooSmall).
		Detail("need %d bytes, have %d", need, have).Build()
}

func errTruncated(need, have int) *errs.Error {
	return errs.New(errs.PhaseUnpack, errs.KindTruncatedBuffer).
		Detail("need %d bytes, have %d", need, have).Build()
}

// PutVaruint32 appends the unsigned LEB128 encoding of v to dst, least
// significant group first, returning the number of bytes written. Despite
// the name (kept for consistency with the ABI's own "varuint32" type
// name), the value itself is a full 64-bit unsigned integer: up to 10
// groups are written for the largest values.
func PutVaruint32(dst []byte, off int, v uint64) (int, error) {
	n := 0
	for {
		if off+n >= len(dst) {
			return 0, errBufferTooSmall(off+n+1, len(dst))
		}
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst[off+n] = b
		n++
		if v == 0 {
			return n, nil
		}
	}
}

// GetVaruint32 decodes an unsigned LEB128 value starting at off, returning
// the value and the number of bytes consumed. Accepts up to 10 groups (the
// width a full 64-bit value needs); an 11th continuation byte, or a 10th
// byte carrying bits beyond bit 63, is rejected as overflow.
func GetVaruint32(src []byte, off int) (uint64, int, error) {
	var result uint64
	var shift uint
	n := 0
	for {
		if off+n >= len(src) {
			return 0, 0, errTruncated(off+n+1, len(src))
		}
		if n >= 10 {
			return 0, 0, errs.New(errs.PhaseUnpack, errs.KindVarintOverflow).
				Detail("varuint32 longer than 10 bytes").Build()
		}
		b := src[off+n]
		n++
		if shift == 63 && b > 1 {
			return 0, 0, errs.New(errs.PhaseUnpack, errs.KindVarintOverflow).
				Detail("varuint32 overflows 64 bits").Build()
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, n, nil
		}
		shift += 7
	}
}

// PutVarint32 appends the signed LEB128 encoding of v to dst.
func PutVarint32(dst []byte, off int, v int32) (int, error) {
	n := 0
	more := true
	for more {
		if off+n >= len(dst) {
			return 0, errBufferTooSmall(off+n+1, len(dst))
		}
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			more = false
		} else {
			b |= 0x80
		}
		dst[off+n] = b
		n++
	}
	return n, nil
}

// GetVarint32 decodes a signed LEB128 value starting at off. Encodings
// longer than 5 bytes (the natural width for a 32-bit signed varint) are
// rejected as overflow rather than accepted indefinitely.
func GetVarint32(src []byte, off int) (int32, int, error) {
	var result int32
	var shift uint
	var b byte
	n := 0
	for {
		if off+n >= len(src) {
			return 0, 0, errTruncated(off+n+1, len(src))
		}
		if n >= 5 {
			return 0, 0, errs.New(errs.PhaseUnpack, errs.KindVarintOverflow).
				Detail("varint32 longer than 5 bytes").Build()
		}
		b = src[off+n]
		n++
		result |= int32(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
	}
	if shift < 32 && b&0x40 != 0 {
		result |= ^int32(0) << shift
	}
	return result, n, nil
}

// VaruintLen returns the number of bytes PutVaruint32 would write for v,
// used by callers sizing a buffer ahead of time.
func VaruintLen(v uint64) int {
	if v == 0 {
		return 1
	}
	return (bits.Len64(v) + 6) / 7
}
