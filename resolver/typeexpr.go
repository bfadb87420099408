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
	"strconv"
	"strings"

	"github.com/openrepublic/go-jitabi/errs"
	"github.com/openrepublic/go-jitabi/ir"
)

// splitModifiers peels off every recognised trailing modifier from name,
// outermost first, returning the bare stem and the modifier chain in
// outer-to-inner order. A `raw(N)` stem is left untouched here; callers
// resolve it after alias-following.
func splitModifiers(name string) (string, []ir.Modifier, error) {
	var mods []ir.Modifier
	for {
		switch {
		case strings.HasSuffix(name, "[]"):
			mods = append(mods, ir.ModArray)
			name = name[:len(name)-2]
			continue
		case strings.HasSuffix(name, "?"):
			mods = append(mods, ir.ModOptional)
			name = name[:len(name)-1]
			continue
		case strings.HasSuffix(name, "$"):
			mods = append(mods, ir.ModExtension)
			name = name[:len(name)-1]
			continue
		}
		if strings.HasSuffix(name, "]") {
			if lb := strings.LastIndexByte(name, '['); lb != -1 {
				inner := name[lb+1 : len(name)-1]
				if _, err := strconv.Atoi(inner); err == nil {
					return "", nil, errs.New(errs.PhaseResolve, errs.KindMalformedModifier).
						Detail("fixed-size arrays %q are not supported", name[lb:]).Build()
				}
			}
		}
		break
	}
	return name, mods, nil
}

// parseRawLen extracts N from a stem of the form "raw(N)", returning
// ok=false if name is not of that shape.
func parseRawLen(name string) (int, bool) {
	if !strings.HasPrefix(name, "raw(") || !strings.HasSuffix(name, ")") {
		return 0, false
	}
	inner := name[len("raw(") : len(name)-1]
	n, err := strconv.Atoi(strings.TrimSpace(inner))
	if err != nil {
		return 0, false
	}
	return n, true
}
