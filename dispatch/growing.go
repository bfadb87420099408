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

import "github.com/openrepublic/go-jitabi/errs"

const (
	initialBufferSize = 128
	maxGrowAttempts   = 5
)

// GrowAndPack calls encode against a buffer that starts at
// initialBufferSize and doubles on every KindBufferTooSmall failure, up to
// maxGrowAttempts tries, returning the buffer trimmed to the bytes
// actually written. Any other failure aborts immediately.
func GrowAndPack(encode func(dst []byte) (int, error)) ([]byte, error) {
	size := initialBufferSize
	var lastErr error
	for attempt := 0; attempt < maxGrowAttempts; attempt++ {
		dst := make([]byte, size)
		n, err := encode(dst)
		if err == nil {
			return dst[:n], nil
		}
		if !errs.Is(err, errs.KindBufferTooSmall) {
			return nil, err
		}
		lastErr = err
		size *= 2
	}
	return nil, errs.New(errs.PhasePack, errs.KindResizeExhausted).
		Cause(lastErr).Detail("exceeded %d grow attempts", maxGrowAttempts).Build()
}
