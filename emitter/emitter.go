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

// Package emitter walks a resolved ir.Graph and writes Go source text
// defining a pack_<name>/unpack_<name> routine pair for every struct,
// variant and alias, plus a dispatch table wiring them together.
package emitter

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/openrepublic/go-jitabi/ir"
)

// Options controls which routines are emitted and how the output package
// is framed.
type Options struct {
	PackageName string
	WithPack    bool
	WithUnpack  bool
}

// codegen accumulates emitted Go source text, mirroring the teacher's own
// codegen{schema, output []byte} shape.
type codegen struct {
	graph   *ir.Graph
	abiJSON []byte
	opts    Options
	output  bytes.Buffer
}

// Emit renders graph as a complete Go source file implementing
// pack/unpack for every named type, per opts. abiJSON is the exact ABI
// document graph was resolved from; it is embedded verbatim so the
// generated package can rebuild its dispatch table without depending on
// the resolver at call time.
func Emit(graph *ir.Graph, abiJSON []byte, opts Options) ([]byte, error) {
	c := &codegen{graph: graph, abiJSON: abiJSON, opts: opts}
	if err := c.emitFile(); err != nil {
		return nil, err
	}
	return c.output.Bytes(), nil
}

func (c *codegen) printf(format string, args ...any) {
	fmt.Fprintf(&c.output, format, args...)
}

func (c *codegen) emitFile() error {
	pkg := c.opts.PackageName
	if pkg == "" {
		pkg = "generated"
	}

	c.printf("// Code generated by jitabi codegen. DO NOT EDIT.\n\n")
	c.printf("package %s\n\n", pkg)
	c.printf("import (\n")
	c.printf("\tjitabi \"github.com/openrepublic/go-jitabi\"\n")
	c.printf("\t\"github.com/openrepublic/go-jitabi/abi\"\n")
	c.printf("\t\"github.com/openrepublic/go-jitabi/dispatch\"\n")
	c.printf("\t\"github.com/openrepublic/go-jitabi/resolver\"\n")
	c.printf(")\n\n")

	c.printf("const schemaJSON = `%s`\n\n", escapeBackquotes(c.abiJSON))
	c.printf("var Table *dispatch.Table\n\n")
	c.printf("func init() {\n")
	c.printf("\tview, err := abi.DecodeJSON([]byte(schemaJSON))\n")
	c.printf("\tif err != nil {\n\t\tpanic(err)\n\t}\n")
	c.printf("\tgraph, err := resolver.Resolve(view)\n")
	c.printf("\tif err != nil {\n\t\tpanic(err)\n\t}\n")
	c.printf("\tTable = dispatch.NewTable(graph)\n")
	c.printf("}\n\n")

	c.printf("// Pack encodes value as typeName, growing its buffer as needed.\n")
	c.printf("func Pack(typeName string, value jitabi.Value) ([]byte, error) {\n")
	c.printf("\treturn Table.Pack(typeName, value)\n}\n\n")

	c.printf("// Unpack decodes buf as typeName.\n")
	c.printf("func Unpack(typeName string, buf []byte) (jitabi.Value, int, error) {\n")
	c.printf("\treturn Table.Unpack(typeName, buf)\n}\n\n")

	names := make([]string, len(c.graph.Order))
	copy(names, c.graph.Order)
	sort.Strings(names)

	for _, name := range names {
		decl := c.graph.Types[name]
		switch decl.Kind {
		case ir.KindStruct:
			if err := c.emitStruct(decl); err != nil {
				return err
			}
		case ir.KindVariant:
			if err := c.emitVariant(decl); err != nil {
				return err
			}
		case ir.KindAlias:
			c.emitAlias(decl)
		}
	}

	c.emitDispatchTable(names)
	return nil
}

// packFnName and unpackFnName return the generated pack/unpack function
// names for a declared type: the type name with a "pack_" or "unpack_"
// prefix.
func packFnName(typeName string) string   { return "pack_" + typeName }
func unpackFnName(typeName string) string { return "unpack_" + typeName }

// escapeBackquotes splits any backquote in data so it can be embedded in
// a Go raw string literal: each "`" is replaced by `+"`"+` (close the raw
// literal, concatenate an interpreted "`", reopen it). ABI JSON never
// contains backquotes in practice, but this keeps the generator correct
// if it ever does.
func escapeBackquotes(data []byte) string {
	var out []byte
	for _, b := range data {
		if b == '`' {
			out = append(out, []byte("`+\"`\"+`")...)
			continue
		}
		out = append(out, b)
	}
	return string(out)
}
