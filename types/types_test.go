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

package types_test

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/blinklabs-io/gowasmmock/cbor"
	"github.com/blinklabs-io/gowasmmock/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2^128 - 1
const maxUint128 = "340282366920938463463374607431768211455"

func TestParseUint128(t *testing.T) {
	testDefs := []struct {
		input       string
		expectError bool
	}{
		{input: "0"},
		{input: "1000"},
		{input: maxUint128},
		{input: "340282366920938463463374607431768211456", expectError: true},
		{input: "", expectError: true},
		{input: "-1", expectError: true},
		{input: "+1", expectError: true},
		{input: "1.5", expectError: true},
		{input: "12uluna", expectError: true},
	}
	for _, testDef := range testDefs {
		v, err := types.ParseUint128(testDef.input)
		if testDef.expectError {
			assert.Error(t, err, testDef.input)
			continue
		}
		require.NoError(t, err, testDef.input)
		assert.Equal(t, testDef.input, v.String())
	}
}

func TestUint128Add(t *testing.T) {
	sum, err := types.NewUint128(100).Add(types.NewUint128(300))
	require.NoError(t, err)
	assert.Equal(t, "400", sum.String())
	assert.Equal(t, 0, sum.Cmp(types.NewUint128(400)))
	_, err = types.MustParseUint128(maxUint128).Add(types.NewUint128(1))
	assert.ErrorIs(t, err, types.ErrUint128Overflow)
	assert.True(t, types.ZeroUint128().IsZero())
}

func TestUint128JSON(t *testing.T) {
	data, err := json.Marshal(types.TokenBalanceResponse{Balance: types.NewUint128(2000)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance":"2000"}`, string(data))
	var resp types.TokenBalanceResponse
	require.NoError(t, json.Unmarshal([]byte(`{"balance":"`+maxUint128+`"}`), &resp))
	assert.Equal(t, maxUint128, resp.Balance.String())
	// Amounts must be strings
	assert.Error(t, json.Unmarshal([]byte(`{"balance":2000}`), &resp))
}

func TestUint128CBOR(t *testing.T) {
	data, err := cbor.Encode(types.NewUint128(100))
	require.NoError(t, err)
	// Text string "100"
	assert.Equal(t, "63313030", hex.EncodeToString(data))
	var v types.Uint128
	_, err = cbor.Decode(data, &v)
	require.NoError(t, err)
	assert.Equal(t, types.NewUint128(100), v)
}

func TestParseCoin(t *testing.T) {
	coin, err := types.ParseCoin("500uluna")
	require.NoError(t, err)
	assert.Equal(t, types.NewCoin(500, "uluna"), coin)
	assert.Equal(t, "500uluna", coin.String())
	for _, bad := range []string{"uluna", "500", "500 uluna", "-5uluna", "5u"} {
		_, err := types.ParseCoin(bad)
		assert.Error(t, err, bad)
	}
}

func TestCoinJSON(t *testing.T) {
	data, err := json.Marshal(types.NewCoin(1000, "uluna"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"denom":"uluna","amount":"1000"}`, string(data))
}

func TestQueryRequestKind(t *testing.T) {
	var req types.QueryRequest
	assert.Equal(t, "", req.Kind())
	require.NoError(t, json.Unmarshal([]byte(`{"staking":{"bonded_denom":{}}}`), &req))
	assert.Equal(t, "staking", req.Kind())
	require.NotNil(t, req.Staking.BondedDenom)
}

func TestTokenQueryKind(t *testing.T) {
	var q types.TokenQuery
	require.NoError(t, json.Unmarshal([]byte(`{"token_info":{}}`), &q))
	assert.Equal(t, "token_info", q.Kind())
	q = types.TokenQuery{}
	require.NoError(t, json.Unmarshal([]byte(`{"minter":{}}`), &q))
	assert.Equal(t, "minter", q.Kind())
}

func TestTokenInfoJSON(t *testing.T) {
	info := types.TokenInfo{
		Name:        "bluna",
		Symbol:      "BLUNA",
		Decimals:    6,
		TotalSupply: types.NewUint128(400),
		Mint:        &types.MinterData{Minter: "hub"},
	}
	data, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(
		t,
		`{"name":"bluna","symbol":"BLUNA","decimals":6,"total_supply":"400","mint":{"minter":"hub","cap":null}}`,
		string(data),
	)
}

func TestValidatorJSON(t *testing.T) {
	v := types.Validator{
		Address:       "validator",
		Commission:    decimal.RequireFromString("0.05"),
		MaxCommission: decimal.RequireFromString("0.1"),
		MaxChangeRate: decimal.RequireFromString("0.01"),
	}
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"commission":"0.05"`), string(data))
	var out types.Validator
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, v.Commission.Equal(out.Commission))
}
