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

package abi

import "encoding/json"

// jsonDef mirrors the on-wire shape of an Antelope ABI JSON document
// closely enough to decode it into a View. It performs no semantic
// validation: unknown or malformed type expressions are rejected later,
// by the resolver, not here.
type jsonDef struct {
	Version  string          `json:"version"`
	Types    []jsonAlias     `json:"types"`
	Structs  []jsonStruct    `json:"structs"`
	Variants []jsonVariant   `json:"variants"`
	Actions  []jsonAction    `json:"actions"`
	Tables   []jsonTable     `json:"tables"`
}

type jsonAlias struct {
	NewTypeName string `json:"new_type_name"`
	Type        string `json:"type"`
}

type jsonField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type jsonStruct struct {
	Name   string      `json:"name"`
	Base   string      `json:"base"`
	Fields []jsonField `json:"fields"`
}

type jsonVariant struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

type jsonAction struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	RicardianContract string `json:"ricardian_contract"`
}

type jsonTable struct {
	Name      string   `json:"name"`
	IndexType string   `json:"index_type"`
	KeyNames  []string `json:"key_names"`
	KeyTypes  []string `json:"key_types"`
	Type      string   `json:"type"`
}

// DecodeJSON parses an Antelope ABI JSON document into a StaticView.
func DecodeJSON(data []byte) (*StaticView, error) {
	var def jsonDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}

	v := &StaticView{}

	for _, s := range def.Structs {
		fields := make([]Field, len(s.Fields))
		for i, f := range s.Fields {
			fields[i] = Field{Name: f.Name, Type: f.Type}
		}
		v.StructList = append(v.StructList, Struct{
			Name:   s.Name,
			Base:   s.Base,
			Fields: fields,
		})
	}

	for _, a := range def.Types {
		v.AliasList = append(v.AliasList, Alias{Name: a.NewTypeName, Type: a.Type})
	}

	for _, e := range def.Variants {
		types := make([]string, len(e.Types))
		copy(types, e.Types)
		v.VariantList = append(v.VariantList, Variant{Name: e.Name, Types: types})
	}

	for _, a := range def.Actions {
		v.ActionList = append(v.ActionList, Action{
			Name:              a.Name,
			Type:              a.Type,
			RicardianContract: a.RicardianContract,
		})
	}

	for _, t := range def.Tables {
		v.TableList = append(v.TableList, Table{
			Name:      t.Name,
			KeyNames:  t.KeyNames,
			KeyTypes:  t.KeyTypes,
			IndexType: t.IndexType,
			Type:      t.Type,
		})
	}

	return v, nil
}
