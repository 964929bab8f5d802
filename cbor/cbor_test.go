// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gowasmmock/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encodeTestDefinition struct {
	CborHex string
	Object  any
}

var encodeTests = []encodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{1, 2, 3},
	},
	// Map keys are sorted regardless of insertion order
	{
		CborHex: "a2616102616201",
		Object:  map[string]int{"b": 1, "a": 2},
	},
	// Struct fields fall back to json tags
	{
		CborHex: "a1676164647265737365616c696365",
		Object: struct {
			Address string `json:"address"`
		}{Address: "alice"},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		cborData, err := cbor.Encode(test.Object)
		if err != nil {
			t.Fatalf("failed to encode object to CBOR: %s", err)
		}
		cborHex := hex.EncodeToString(cborData)
		if cborHex != test.CborHex {
			t.Fatalf(
				"object did not encode to expected CBOR\n  got: %s\n  wanted: %s",
				cborHex,
				test.CborHex,
			)
		}
	}
}

type balanceQuery struct {
	Address string `json:"address"`
}

func TestDecodeStrictRejectsUnknownField(t *testing.T) {
	// {"address": "alice", "denom": "uluna"}
	data, err := cbor.Encode(map[string]string{
		"address": "alice",
		"denom":   "uluna",
	})
	require.NoError(t, err)
	var dest balanceQuery
	err = cbor.DecodeStrict(data, &dest)
	assert.Error(t, err)
}

func TestDecodeStrictRejectsTrailingData(t *testing.T) {
	data, err := cbor.Encode(balanceQuery{Address: "alice"})
	require.NoError(t, err)
	data = append(data, 0x01)
	var dest balanceQuery
	err = cbor.DecodeStrict(data, &dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing data")
}

func TestDecodeStrict(t *testing.T) {
	data, err := cbor.Encode(balanceQuery{Address: "alice"})
	require.NoError(t, err)
	var dest balanceQuery
	require.NoError(t, cbor.DecodeStrict(data, &dest))
	assert.Equal(t, "alice", dest.Address)
}
