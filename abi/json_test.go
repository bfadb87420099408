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

package abi_test

import (
	"testing"

	"github.com/openrepublic/go-jitabi/abi"
	"github.com/openrepublic/go-jitabi/internal/testutil"
)

const sampleABI = `{
	"version": "eosio::abi/1.1",
	"types": [
		{"new_type_name": "account_id", "type": "uint64"}
	],
	"structs": [
		{"name": "transfer", "base": "", "fields": [
			{"name": "from", "type": "account_id"},
			{"name": "to", "type": "account_id"},
			{"name": "quantity", "type": "asset"},
			{"name": "memo", "type": "string"}
		]}
	],
	"variants": [
		{"name": "any_value", "types": ["uint32", "string"]}
	],
	"actions": [
		{"name": "transfer", "type": "transfer", "ricardian_contract": ""}
	],
	"tables": [
		{"name": "accounts", "index_type": "i64", "key_names": ["id"], "key_types": ["uint64"], "type": "transfer"}
	]
}`

func TestDecodeJSONStructs(t *testing.T) {
	view, err := abi.DecodeJSON([]byte(sampleABI))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 1, len(view.Structs()))

	s := view.Structs()[0]
	testutil.ExpectEq(t, "transfer", s.Name)
	testutil.ExpectEq(t, 4, len(s.Fields))
	testutil.ExpectEq(t, "account_id", s.Fields[0].Type)
}

func TestDecodeJSONAliasesVariantsActionsTables(t *testing.T) {
	view, err := abi.DecodeJSON([]byte(sampleABI))
	testutil.AssertNoError(t, err)

	testutil.ExpectEq(t, 1, len(view.Aliases()))
	testutil.ExpectEq(t, "account_id", view.Aliases()[0].Name)

	testutil.ExpectEq(t, 1, len(view.Variants()))
	testutil.ExpectSliceEq(t, []string{"uint32", "string"}, view.Variants()[0].Types)

	testutil.ExpectEq(t, 1, len(view.Actions()))
	testutil.ExpectEq(t, "transfer", view.Actions()[0].Type)

	testutil.ExpectEq(t, 1, len(view.Tables()))
	testutil.ExpectEq(t, "i64", view.Tables()[0].IndexType)
}

func TestDecodeJSONMalformedFails(t *testing.T) {
	_, err := abi.DecodeJSON([]byte(`{not json`))
	testutil.AssertError(t, err)
}

func TestDecodeJSONEmptyDocument(t *testing.T) {
	view, err := abi.DecodeJSON([]byte(`{}`))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 0, len(view.Structs()))
}

func TestBuiltinAliasesCoverWellKnownNames(t *testing.T) {
	names := map[string]string{}
	for _, a := range abi.BuiltinAliases() {
		names[a.Name] = a.Type
	}
	testutil.ExpectEq(t, "uint64", names["name"])
	testutil.ExpectEq(t, "raw(32)", names["checksum256"])
	testutil.ExpectEq(t, "raw(34)", names["public_key"])
}

func TestBuiltinStructsIncludeAsset(t *testing.T) {
	found := false
	for _, s := range abi.BuiltinStructs() {
		if s.Name == "asset" {
			found = true
			testutil.ExpectEq(t, 2, len(s.Fields))
		}
	}
	testutil.ExpectTrue(t, found)
}

func TestIsPrimitive(t *testing.T) {
	testutil.ExpectTrue(t, abi.IsPrimitive("uint32"))
	testutil.ExpectTrue(t, abi.IsPrimitive("string"))
	testutil.ExpectFalse(t, abi.IsPrimitive("asset"))
}

func TestIsValidRawSize(t *testing.T) {
	testutil.ExpectTrue(t, abi.IsValidRawSize(32))
	testutil.ExpectFalse(t, abi.IsValidRawSize(17))
}
