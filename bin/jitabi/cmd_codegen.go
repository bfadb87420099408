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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/openrepublic/go-jitabi/abi"
	"github.com/openrepublic/go-jitabi/emitter"
	"github.com/openrepublic/go-jitabi/resolver"
)

type cmdCodegen struct {
	outPath     string
	packageName string
	withPack    bool
	withUnpack  bool
}

func (*cmdCodegen) help() *commandHelp {
	return &commandHelp{
		usage:   "codegen ABI_JSON",
		summary: "Generate a Go package implementing pack/unpack for an ABI",
	}
}

func (cmd *cmdCodegen) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.outPath, "output", "o", "", "write generated source here instead of stdout")
	flags.StringVar(&cmd.packageName, "package", "generated", "package name for the generated file")
	flags.BoolVar(&cmd.withPack, "with-pack", true, "emit pack_<name> routines")
	flags.BoolVar(&cmd.withUnpack, "with-unpack", true, "emit unpack_<name> routines")
}

func (cmd *cmdCodegen) run(ctx context.Context, argv []string) int {
	if len(argv) < 1 {
		fmt.Fprintln(os.Stderr, "usage: jitabi codegen [options] ABI_JSON")
		return 1
	}

	abiPath := argv[0]
	abiData, err := os.ReadFile(abiPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	view, err := abi.DecodeJSON(abiData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] decoding %s: %v\n", abiPath, err)
		return 1
	}

	graph, err := resolver.Resolve(view)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		return 1
	}

	src, err := emitter.Emit(graph, abiData, emitter.Options{
		PackageName: cmd.packageName,
		WithPack:    cmd.withPack,
		WithUnpack:  cmd.withUnpack,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		return 1
	}

	if cmd.outPath == "" {
		os.Stdout.Write(src)
		return 0
	}
	if err := os.WriteFile(cmd.outPath, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
