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

package result_test

import (
	"errors"
	"math"
	"testing"

	"github.com/blinklabs-io/gowasmmock/codec"
	"github.com/blinklabs-io/gowasmmock/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSON(t *testing.T) {
	res := result.Encode(codec.JSON(), map[string]string{"denom": "uluna"})
	require.True(t, res.IsOk())
	data, err := codec.JSON().Encode(res)
	require.NoError(t, err)
	// {"denom":"uluna"} in base64
	assert.JSONEq(t, `{"ok":{"ok":"eyJkZW5vbSI6InVsdW5hIn0="}}`, string(data))
}

func TestEncodeFailure(t *testing.T) {
	res := result.Encode(codec.JSON(), math.Inf(1))
	require.NotNil(t, res.Err)
	require.NotNil(t, res.Err.InvalidResponse)
	assert.False(t, res.IsOk())
}

func TestContractErr(t *testing.T) {
	res := result.ContractErr("balance not found")
	data, err := codec.JSON().Encode(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":{"error":"balance not found"}}`, string(data))
	_, err = res.Unwrap()
	var contractErr *result.ContractError
	require.True(t, errors.As(err, &contractErr))
	assert.Equal(t, "balance not found", contractErr.Msg)
}

func TestInvalidRequestErr(t *testing.T) {
	res := result.InvalidRequestErr("Parsing query request: EOF", []byte("abc"))
	data, err := codec.JSON().Encode(res)
	require.NoError(t, err)
	assert.JSONEq(
		t,
		`{"error":{"invalid_request":{"error":"Parsing query request: EOF","request":"YWJj"}}}`,
		string(data),
	)
	_, err = res.Unwrap()
	var sysErr *result.SystemError
	require.True(t, errors.As(err, &sysErr))
	require.NotNil(t, sysErr.InvalidRequest)
	assert.Equal(t, []byte("abc"), sysErr.InvalidRequest.Request)
	assert.Contains(t, sysErr.Error(), "Cannot parse request")
}

func TestSystemErrorMessages(t *testing.T) {
	testDefs := []struct {
		err      result.SystemError
		expected string
	}{
		{
			err:      result.SystemError{NoSuchContract: &result.NoSuchContract{Addr: "token"}},
			expected: "No such contract: token",
		},
		{
			err:      result.SystemError{NoSuchCode: &result.NoSuchCode{CodeID: 7}},
			expected: "No such code: 7",
		},
		{
			err:      result.SystemError{UnsupportedRequest: &result.UnsupportedRequest{Kind: "custom"}},
			expected: "Unsupported query type: custom",
		},
		{
			err:      result.SystemError{Unknown: &result.Unknown{}},
			expected: "Unknown system error",
		},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.expected, testDef.err.Error())
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON(), codec.CBOR()} {
		t.Run(c.Name(), func(t *testing.T) {
			for _, res := range []result.SystemResult{
				result.Encode(c, "payload"),
				result.ContractErr("no balance info exists for the contract token"),
				result.InvalidRequestErr("bad", []byte{0x01, 0x02}),
				result.UnsupportedRequestErr("ibc"),
			} {
				data, err := c.Encode(res)
				require.NoError(t, err)
				var out result.SystemResult
				require.NoError(t, c.Decode(data, &out))
				assert.Equal(t, res, out)
			}
		})
	}
}

func TestUnwrapInto(t *testing.T) {
	c := codec.CBOR()
	res := result.Encode(c, map[string]string{"denom": "uluna"})
	var out map[string]string
	require.NoError(t, res.UnwrapInto(c, &out))
	assert.Equal(t, "uluna", out["denom"])
	_, err := result.SystemResult{}.Unwrap()
	assert.ErrorIs(t, err, result.ErrEmptyResult)
}
