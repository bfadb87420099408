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

import "unicode/utf8"

// PutBytes writes a varuint32 length prefix followed by the raw bytes of v.
func PutBytes(dst []byte, off int, v []byte) (int, error) {
	n, err := PutVaruint32(dst, off, uint64(len(v)))
	if err != nil {
		return 0, err
	}
	m, err := putBytes(dst, off+n, v)
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// GetBytes decodes a varuint32 length prefix followed by that many raw
// bytes, returning a freshly allocated copy.
func GetBytes(src []byte, off int) ([]byte, int, error) {
	length, n, err := GetVaruint32(src, off)
	if err != nil {
		return nil, 0, err
	}
	b, m, err := getBytes(src, off+n, int(length))
	if err != nil {
		return nil, 0, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, n + m, nil
}

// PutString writes a varuint32 length prefix followed by the UTF-8 bytes
// of v.
func PutString(dst []byte, off int, v string) (int, error) {
	return PutBytes(dst, off, []byte(v))
}

// GetString decodes a length-prefixed UTF-8 string, rejecting invalid
// encodings.
func GetString(src []byte, off int) (string, int, error) {
	b, n, err := GetBytes(src, off)
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(b) {
		return "", 0, ErrInvalidUTF8()
	}
	return string(b), n, nil
}
