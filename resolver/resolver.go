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

// Package resolver lowers an abi.View into the resolved ir.Graph the
// emitter consumes: every type-expression string is turned into a
// TypeRef pointing at a concrete primitive, struct, variant, or
// (transparently) another alias's eventual target.
package resolver

import (
	"github.com/openrepublic/go-jitabi/abi"
	"github.com/openrepublic/go-jitabi/errs"
	"github.com/openrepublic/go-jitabi/ir"
)

// color tracks DFS state for alias/base cycle detection.
type color int

const (
	white color = iota
	grey
	black
)

type resolver struct {
	graph       *ir.Graph
	aliasExpr   map[string]string // alias name -> target type expression, builtin + user
	structDefs  map[string]abi.Struct
	variantDefs map[string]abi.Variant

	aliasColor map[string]color
	baseColor  map[string]color
}

// Resolve lowers view into a read-only ir.Graph, or returns the first
// schema error encountered.
func Resolve(view abi.View) (*ir.Graph, error) {
	r := &resolver{
		graph:       ir.NewGraph(),
		aliasExpr:   make(map[string]string),
		structDefs:  make(map[string]abi.Struct),
		variantDefs: make(map[string]abi.Variant),
		aliasColor:  make(map[string]color),
		baseColor:   make(map[string]color),
	}
	return r.run(view)
}

func (r *resolver) run(view abi.View) (*ir.Graph, error) {
	for _, name := range abi.Primitives {
		r.graph.Add(&ir.TypeDecl{Name: name, Kind: ir.KindPrimitive})
	}
	r.graph.Add(&ir.TypeDecl{Name: "raw", Kind: ir.KindPrimitive})

	for _, a := range abi.BuiltinAliases() {
		r.aliasExpr[a.Name] = a.Type
	}
	for _, a := range view.Aliases() {
		r.aliasExpr[a.Name] = a.Type
	}

	for _, s := range abi.BuiltinStructs() {
		r.structDefs[s.Name] = s
	}
	for _, s := range view.Structs() {
		r.structDefs[s.Name] = s
	}
	for _, e := range view.Variants() {
		r.variantDefs[e.Name] = e
	}

	for name := range r.structDefs {
		r.graph.Add(&ir.TypeDecl{Name: name, Kind: ir.KindStruct})
	}
	for name := range r.variantDefs {
		if len(r.variantDefs[name].Types) == 0 {
			return nil, errs.New(errs.PhaseResolve, errs.KindEmptyVariant).
				Path(name).Build()
		}
		r.graph.Add(&ir.TypeDecl{Name: name, Kind: ir.KindVariant})
	}

	for name := range r.aliasExpr {
		if _, err := r.resolveAlias(name); err != nil {
			return nil, err
		}
	}

	for name, def := range r.structDefs {
		if err := r.resolveStruct(name, def); err != nil {
			return nil, err
		}
	}

	for name, def := range r.variantDefs {
		decl, _ := r.graph.Lookup(name)
		for _, caseExpr := range def.Types {
			ref, err := r.resolveTypeExpr(caseExpr)
			if err != nil {
				return nil, errs.New(errs.PhaseResolve, errs.KindUnresolvedCase).
					Path(name).Cause(err).Build()
			}
			decl.Cases = append(decl.Cases, ref)
		}
	}

	return r.graph, nil
}

// resolveAlias resolves a single alias by name, memoizing the result onto
// the alias's TypeDecl node in the graph and detecting cycles via
// grey/black coloring.
func (r *resolver) resolveAlias(name string) (*ir.TypeDecl, error) {
	if decl, ok := r.graph.Lookup(name); ok && decl.Kind == ir.KindAlias {
		return decl, nil
	}
	switch r.aliasColor[name] {
	case black:
		decl, _ := r.graph.Lookup(name)
		return decl, nil
	case grey:
		return nil, errs.New(errs.PhaseResolve, errs.KindCyclicAlias).
			Path(name).Detail("alias cycle detected").Build()
	}
	r.aliasColor[name] = grey

	target, ok := r.aliasExpr[name]
	if !ok {
		return nil, errs.New(errs.PhaseResolve, errs.KindUnknownType).
			Path(name).Build()
	}

	ref, err := r.resolveTypeExpr(target)
	if err != nil {
		return nil, errs.New(errs.PhaseResolve, errs.KindUnknownType).
			Path(name).Cause(err).Build()
	}

	decl := &ir.TypeDecl{Name: name, Kind: ir.KindAlias, AliasTarget: ref}
	r.graph.Add(decl)
	r.aliasColor[name] = black
	return decl, nil
}

// resolveTypeExpr peels modifiers from expr and resolves the remaining
// stem against primitives, structs, variants and aliases.
func (r *resolver) resolveTypeExpr(expr string) (ir.TypeRef, error) {
	stem, mods, err := splitModifiers(expr)
	if err != nil {
		return ir.TypeRef{}, err
	}

	if n, ok := parseRawLen(stem); ok {
		decl, _ := r.graph.Lookup("raw")
		return ir.TypeRef{Base: decl, Modifiers: mods, RawLen: n}, nil
	}

	if decl, ok := r.graph.Lookup(stem); ok {
		switch decl.Kind {
		case ir.KindPrimitive, ir.KindStruct, ir.KindVariant:
			return ir.TypeRef{Base: decl, Modifiers: mods}, nil
		}
	}

	if _, ok := r.aliasExpr[stem]; ok {
		aliasDecl, err := r.resolveAlias(stem)
		if err != nil {
			return ir.TypeRef{}, err
		}
		// aliases are transparent: splice the alias's own modifier chain
		// and base in after the use site's modifiers.
		combined := append(append([]ir.Modifier{}, mods...), aliasDecl.AliasTarget.Modifiers...)
		return ir.TypeRef{
			Base:      aliasDecl.AliasTarget.Base,
			Modifiers: combined,
			RawLen:    aliasDecl.AliasTarget.RawLen,
		}, nil
	}

	return ir.TypeRef{}, errs.New(errs.PhaseResolve, errs.KindUnknownType).
		Detail("unknown type %q", stem).Build()
}

func (r *resolver) resolveStruct(name string, def abi.Struct) error {
	decl, _ := r.graph.Lookup(name)
	if decl.Fields != nil || decl.Base != nil {
		return nil // already resolved (revisited via base chain)
	}

	if def.Base != "" {
		base, err := r.resolveBase(def.Base)
		if err != nil {
			return err
		}
		decl.Base = base
	}

	for _, f := range def.Fields {
		ref, err := r.resolveTypeExpr(f.Type)
		if err != nil {
			return errs.New(errs.PhaseResolve, errs.KindUnknownType).
				Path(name).Path(f.Name).Cause(err).Build()
		}
		decl.Fields = append(decl.Fields, ir.FieldDecl{Name: f.Name, Type: ref})
	}

	return checkExtensionTail(name, decl.Fields)
}

func (r *resolver) resolveBase(name string) (*ir.TypeDecl, error) {
	switch r.baseColor[name] {
	case black:
		decl, _ := r.graph.Lookup(name)
		return decl, nil
	case grey:
		return nil, errs.New(errs.PhaseResolve, errs.KindCyclicBase).
			Path(name).Detail("struct base cycle detected").Build()
	}
	r.baseColor[name] = grey

	def, ok := r.structDefs[name]
	if !ok {
		return nil, errs.New(errs.PhaseResolve, errs.KindUnknownType).
			Detail("base struct %q not found", name).Build()
	}
	if err := r.resolveStruct(name, def); err != nil {
		return nil, err
	}
	r.baseColor[name] = black
	decl, _ := r.graph.Lookup(name)
	return decl, nil
}

// checkExtensionTail enforces that only the trailing contiguous run of a
// struct's declared fields may carry an outermost extension modifier.
func checkExtensionTail(structName string, fields []ir.FieldDecl) error {
	seenExtension := false
	for _, f := range fields {
		isExt := len(f.Type.Modifiers) > 0 && f.Type.Modifiers[0] == ir.ModExtension
		if seenExtension && !isExt {
			return errs.New(errs.PhaseResolve, errs.KindExtensionTail).
				Path(structName).Path(f.Name).
				Detail("non-extension field follows an extension field").Build()
		}
		if isExt {
			seenExtension = true
		}
	}
	return nil
}
