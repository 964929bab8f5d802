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

package query_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/blinklabs-io/gowasmmock/codec"
	"github.com/blinklabs-io/gowasmmock/query"
	"github.com/blinklabs-io/gowasmmock/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classifyTestDefinition struct {
	name    string
	request string
	query   query.Query
}

var classifyTests = []classifyTestDefinition{
	{
		name:    "bank balance",
		request: `{"bank":{"balance":{"address":"reward","denom":"uusd"}}}`,
		query:   query.BalanceOf{Account: "reward", Denom: "uusd"},
	},
	{
		name:    "bank all balances",
		request: `{"bank":{"all_balances":{"address":"reward"}}}`,
		query:   query.AllBalances{Account: "reward"},
	},
	{
		name:    "wasm raw",
		request: `{"wasm":{"raw":{"contract_addr":"hub","key":"AAZjb25maWc="}}}`,
		query: query.RawRead{
			Contract: "hub",
			Key:      append([]byte{0x00, 0x06}, []byte("config")...),
		},
	},
	{
		name:    "wasm smart",
		request: `{"wasm":{"smart":{"contract_addr":"token","msg":"eyJ0b2tlbl9pbmZvIjp7fX0="}}}`,
		query: query.SmartCall{
			Contract: "token",
			Msg:      []byte(`{"token_info":{}}`),
		},
	},
}

func TestClassify(t *testing.T) {
	for _, test := range classifyTests {
		t.Run(test.name, func(t *testing.T) {
			q, err := query.Classify(codec.JSON(), []byte(test.request))
			require.NoError(t, err)
			assert.Equal(t, test.query, q)
		})
	}
}

func TestClassifyDelegated(t *testing.T) {
	requests := map[string]string{
		"bank":    `{"bank":{"supply":{"denom":"uluna"}}}`,
		"staking": `{"staking":{"bonded_denom":{}}}`,
		"wasm":    `{"wasm":{"contract_info":{"contract_addr":"hub"}}}`,
		"custom":  `{"custom":{"oracle":{"price":"uluna"}}}`,
		"ibc":     `{"ibc":{"port_id":{}}}`,
	}
	for kind, request := range requests {
		q, err := query.Classify(codec.JSON(), []byte(request))
		require.NoError(t, err, kind)
		delegated, ok := q.(query.Delegated)
		require.True(t, ok, "%s: got %T", kind, q)
		assert.Equal(t, kind, delegated.Kind())
	}
}

func TestClassifyMalformed(t *testing.T) {
	requests := [][]byte{
		nil,
		[]byte("garbage"),
		{0xde, 0xad, 0xbe, 0xef},
		[]byte(`{}`),
		[]byte(`{"bank":{}}`),
		[]byte(`{"bank":{"balance":{"address":"a","denom":"b"}},"wasm":{"raw":{"contract_addr":"c","key":""}}}`),
		[]byte(`{"bank":{"balance":{"address":"a","denom":"b"},"all_balances":{"address":"a"}}}`),
		[]byte(`{"bank":{"balance":{"address":"a","denom":"b","extra":true}}}`),
		[]byte(`{"oracle":{}}`),
	}
	for _, request := range requests {
		_, err := query.Classify(codec.JSON(), request)
		require.Error(t, err, string(request))
		var malformed *query.MalformedRequestError
		require.True(t, errors.As(err, &malformed), string(request))
		assert.Equal(t, request, malformed.Request)
		assert.True(t, errors.Is(err, query.ErrMalformedRequest))
	}
}

func TestClassifyCBOR(t *testing.T) {
	c := codec.CBOR()
	req := types.QueryRequest{
		Wasm: &types.WasmQuery{
			Raw: &types.RawQuery{
				ContractAddr: "token",
				Key:          query.BalanceKey([]byte("alice")),
			},
		},
	}
	data, err := c.Encode(req)
	require.NoError(t, err)
	q, err := query.Classify(c, data)
	require.NoError(t, err)
	assert.Equal(
		t,
		query.RawRead{Contract: "token", Key: query.BalanceKey([]byte("alice"))},
		q,
	)
	// JSON bytes are not a valid CBOR request
	_, err = query.Classify(c, []byte(`{"bank":{"all_balances":{"address":"reward"}}}`))
	assert.ErrorIs(t, err, query.ErrMalformedRequest)
}

func TestClassifyTokenQuery(t *testing.T) {
	c := codec.JSON()
	tq, err := query.ClassifyTokenQuery(c, []byte(`{"token_info":{}}`))
	require.NoError(t, err)
	assert.Equal(t, query.TokenInfo{}, tq)
	tq, err = query.ClassifyTokenQuery(c, []byte(`{"balance":{"address":"carol"}}`))
	require.NoError(t, err)
	assert.Equal(t, query.TokenBalance{Address: "carol"}, tq)
}

func TestClassifyTokenQueryFatal(t *testing.T) {
	for _, msg := range []string{
		`{"minter":{}}`,
		`{"allowance":{"owner":"alice","spender":"bob"}}`,
		`{"all_accounts":{"limit":10}}`,
	} {
		_, err := query.ClassifyTokenQuery(codec.JSON(), []byte(msg))
		require.Error(t, err, msg)
		var fatal *query.FatalError
		assert.True(t, errors.As(err, &fatal), msg)
		assert.ErrorIs(t, err, query.ErrFatal)
	}
}

func TestClassifyTokenQueryMalformed(t *testing.T) {
	for _, msg := range []string{
		``,
		`{"burn":{"amount":"1"}}`,
		`{"token_info":{},"minter":{}}`,
		`[]`,
	} {
		_, err := query.ClassifyTokenQuery(codec.JSON(), []byte(msg))
		assert.ErrorIs(t, err, query.ErrMalformedRequest, msg)
	}
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "0006636f6e666967", hex.EncodeToString(query.ConfigKey()))
	assert.Equal(
		t,
		"000762616c616e6365616c696365",
		hex.EncodeToString(query.BalanceKey([]byte("alice"))),
	)
	// The shared prefix must not be aliased by generated keys
	key := query.BalanceKey([]byte("x"))
	key[0] = 0xff
	assert.Equal(t, byte(0x00), query.BalanceKeyPrefix[0])
}
