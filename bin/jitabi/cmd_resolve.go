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
	"github.com/openrepublic/go-jitabi/ir"
	"github.com/openrepublic/go-jitabi/resolver"
)

// cmdResolve validates an ABI and prints its resolved type graph, without
// generating any Go source. Useful for diagnosing a malformed schema.
type cmdResolve struct{}

func (*cmdResolve) help() *commandHelp {
	return &commandHelp{
		usage:   "resolve ABI_JSON",
		summary: "Resolve an ABI and print its type graph",
	}
}

func (*cmdResolve) flags(flags *pflag.FlagSet) {}

func (cmd *cmdResolve) run(ctx context.Context, argv []string) int {
	if len(argv) < 1 {
		fmt.Fprintln(os.Stderr, "usage: jitabi resolve ABI_JSON")
		return 1
	}

	abiData, err := os.ReadFile(argv[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	view, err := abi.DecodeJSON(abiData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		return 1
	}

	graph, err := resolver.Resolve(view)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		return 1
	}

	for _, name := range graph.Order {
		decl := graph.Types[name]
		switch decl.Kind {
		case ir.KindStruct:
			fmt.Printf("struct %s (%d fields)\n", name, len(decl.AllFields()))
		case ir.KindVariant:
			fmt.Printf("variant %s (%d cases)\n", name, len(decl.Cases))
		case ir.KindAlias:
			fmt.Printf("alias %s\n", name)
		}
	}
	return 0
}
