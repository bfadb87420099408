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
	"encoding/binary"
	"math"
	"math/big"

	"github.com/openrepublic/go-jitabi/errs"
)

// putBytes copies b verbatim into dst at off, failing with a
// KindBufferTooSmall error when dst is too short.
func putBytes(dst []byte, off int, b []byte) (int, error) {
	if off+len(b) > len(dst) {
		return 0, errBufferTooSmall(off+len(b), len(dst))
	}
	copy(dst[off:], b)
	return len(b), nil
}

func getBytes(src []byte, off, n int) ([]byte, int, error) {
	if n < 0 || n > len(src)-off {
		return nil, 0, errTruncated(off+n, len(src))
	}
	return src[off : off+n], n, nil
}

func PutUint8(dst []byte, off int, v uint8) (int, error) {
	return putBytes(dst, off, []byte{v})
}

func GetUint8(src []byte, off int) (uint8, int, error) {
	b, n, err := getBytes(src, off, 1)
	if err != nil {
		return 0, 0, err
	}
	return b[0], n, nil
}

func PutUint16(dst []byte, off int, v uint16) (int, error) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return putBytes(dst, off, b[:])
}

func GetUint16(src []byte, off int) (uint16, int, error) {
	b, n, err := getBytes(src, off, 2)
	if err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint16(b), n, nil
}

func PutUint32(dst []byte, off int, v uint32) (int, error) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return putBytes(dst, off, b[:])
}

func GetUint32(src []byte, off int) (uint32, int, error) {
	b, n, err := getBytes(src, off, 4)
	if err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint32(b), n, nil
}

func PutUint64(dst []byte, off int, v uint64) (int, error) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return putBytes(dst, off, b[:])
}

func GetUint64(src []byte, off int) (uint64, int, error) {
	b, n, err := getBytes(src, off, 8)
	if err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint64(b), n, nil
}

func PutInt8(dst []byte, off int, v int8) (int, error)  { return PutUint8(dst, off, uint8(v)) }
func PutInt16(dst []byte, off int, v int16) (int, error) { return PutUint16(dst, off, uint16(v)) }
func PutInt32(dst []byte, off int, v int32) (int, error) { return PutUint32(dst, off, uint32(v)) }
func PutInt64(dst []byte, off int, v int64) (int, error) { return PutUint64(dst, off, uint64(v)) }

func GetInt8(src []byte, off int) (int8, int, error) {
	v, n, err := GetUint8(src, off)
	return int8(v), n, err
}

func GetInt16(src []byte, off int) (int16, int, error) {
	v, n, err := GetUint16(src, off)
	return int16(v), n, err
}

func GetInt32(src []byte, off int) (int32, int, error) {
	v, n, err := GetUint32(src, off)
	return int32(v), n, err
}

func GetInt64(src []byte, off int) (int64, int, error) {
	v, n, err := GetUint64(src, off)
	return int64(v), n, err
}

// PutUint128 writes the 128-bit value as two little-endian 64-bit halves,
// low half first, per the protocol's representation of wide integers.
func PutUint128(dst []byte, off int, v *big.Int) (int, error) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return 0, errs.New(errs.PhasePack, errs.KindOutOfRange).
			Detail("value %v out of range for uint128", v).Build()
	}
	var buf [16]byte
	bs := v.Bytes() // big-endian, no sign
	for i := 0; i < len(bs) && i < 16; i++ {
		buf[i] = bs[len(bs)-1-i]
	}
	return putBytes(dst, off, buf[:])
}

func GetUint128(src []byte, off int) (*big.Int, int, error) {
	b, n, err := getBytes(src, off, 16)
	if err != nil {
		return nil, 0, err
	}
	rev := make([]byte, 16)
	for i := 0; i < 16; i++ {
		rev[i] = b[15-i]
	}
	return new(big.Int).SetBytes(rev), n, nil
}

// PutInt128 writes the two's-complement 128-bit representation of v.
func PutInt128(dst []byte, off int, v *big.Int) (int, error) {
	if (v.Sign() >= 0 && v.BitLen() > 127) || (v.Sign() < 0 && new(big.Int).Not(v).BitLen() > 127) {
		return 0, errs.New(errs.PhasePack, errs.KindOutOfRange).
			Detail("value %v out of range for int128", v).Build()
	}
	u := twosComplement128(v)
	return PutUint128(dst, off, u)
}

func GetInt128(src []byte, off int) (*big.Int, int, error) {
	u, n, err := GetUint128(src, off)
	if err != nil {
		return nil, 0, err
	}
	return fromTwosComplement128(u), n, nil
}

func twosComplement128(v *big.Int) *big.Int {
	if v.Sign() >= 0 {
		return new(big.Int).Set(v)
	}
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	return new(big.Int).Add(mod, v)
}

func fromTwosComplement128(u *big.Int) *big.Int {
	half := new(big.Int).Lsh(big.NewInt(1), 127)
	if u.Cmp(half) < 0 {
		return new(big.Int).Set(u)
	}
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	return new(big.Int).Sub(u, mod)
}

func PutFloat32(dst []byte, off int, v float32) (int, error) {
	return PutUint32(dst, off, math.Float32bits(v))
}

func GetFloat32(src []byte, off int) (float32, int, error) {
	bits, n, err := GetUint32(src, off)
	if err != nil {
		return 0, 0, err
	}
	return math.Float32frombits(bits), n, nil
}

func PutFloat64(dst []byte, off int, v float64) (int, error) {
	return PutUint64(dst, off, math.Float64bits(v))
}

func GetFloat64(src []byte, off int) (float64, int, error) {
	bits, n, err := GetUint64(src, off)
	if err != nil {
		return 0, 0, err
	}
	return math.Float64frombits(bits), n, nil
}

// PutRaw writes exactly len(v) bytes verbatim, for raw(N) fixed-size blobs.
func PutRaw(dst []byte, off int, v []byte) (int, error) {
	return putBytes(dst, off, v)
}

func GetRaw(src []byte, off, n int) ([]byte, int, error) {
	b, consumed, err := getBytes(src, off, n)
	if err != nil {
		return nil, 0, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, consumed, nil
}

var errInvalidUTF8 = errs.New(errs.PhaseUnpack, errs.KindInvalidUTF8).Build()

// ErrInvalidUTF8 is returned when a decoded string is not valid UTF-8.
func ErrInvalidUTF8() *errs.Error { return errInvalidUTF8 }
