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

package emitter

import "github.com/openrepublic/go-jitabi/ir"

// emitAlias writes delegating pack_/unpack_ functions for a transparent
// alias, under its own name, so callers never need to know whether a
// given type name is "really" a struct, variant, or alias.
func (c *codegen) emitAlias(decl *ir.TypeDecl) {
	if c.opts.WithPack {
		c.printf("func %s(v jitabi.Value, dst []byte) (int, error) {\n", packFnName(decl.Name))
		c.printf("\treturn Table.PackNamed(%q, v, dst)\n}\n\n", decl.Name)
	}
	if c.opts.WithUnpack {
		c.printf("func %s(buf []byte) (jitabi.Value, int, error) {\n", unpackFnName(decl.Name))
		c.printf("\treturn Table.UnpackNamed(%q, buf)\n}\n\n", decl.Name)
	}
}
