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

package codec_test

import (
	"testing"

	"github.com/blinklabs-io/gowasmmock/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Address string `json:"address"`
	Denom   string `json:"denom,omitempty"`
	Key     []byte `json:"key"`
}

func TestCodecs(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON(), codec.CBOR()} {
		t.Run(c.Name(), func(t *testing.T) {
			in := sample{Address: "alice", Key: []byte{0x00, 0x07}}
			data, err := c.Encode(in)
			require.NoError(t, err)
			var out sample
			require.NoError(t, c.Decode(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestCodecRejectsUnknownFields(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON(), codec.CBOR()} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Encode(map[string]string{"address": "alice", "owner": "bob"})
			require.NoError(t, err)
			var out sample
			assert.Error(t, c.Decode(data, &out))
		})
	}
}

func TestCodecRejectsGarbage(t *testing.T) {
	garbage := [][]byte{
		nil,
		[]byte("not a query"),
		{0xff, 0x00, 0x13},
	}
	for _, c := range []codec.Codec{codec.JSON(), codec.CBOR()} {
		for _, data := range garbage {
			var out sample
			assert.Error(t, c.Decode(data, &out), "%s: %x", c.Name(), data)
		}
	}
}

func TestJSONRejectsTrailingData(t *testing.T) {
	testDefs := []struct {
		name string
		data string
	}{
		{name: "second value", data: `{"address":"alice"} {"address":"bob"}`},
		{name: "stray braces", data: `{"address":"alice"}}}`},
		{name: "stray brackets", data: `{"address":"alice"}]]]`},
		{name: "brace then bracket", data: `{"address":"alice"}}]`},
		{name: "trailing garbage", data: `{"address":"alice"}x`},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			var out sample
			err := codec.JSON().Decode([]byte(testDef.data), &out)
			require.Error(t, err)
		})
	}
}

func TestJSONAllowsTrailingWhitespace(t *testing.T) {
	var out sample
	require.NoError(t, codec.JSON().Decode([]byte("{\"address\":\"alice\"} \n\t"), &out))
	assert.Equal(t, "alice", out.Address)
}

func TestJSONRejectsInvalidUTF8(t *testing.T) {
	data := append([]byte(`{"address":"al`), 0xff, 0xfe)
	data = append(data, []byte(`ice"}`)...)
	var out sample
	err := codec.JSON().Decode(data, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestByName(t *testing.T) {
	c, err := codec.ByName("cbor")
	require.NoError(t, err)
	assert.Equal(t, "cbor", c.Name())
	c, err = codec.ByName("")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())
	_, err = codec.ByName("protobuf")
	assert.Error(t, err)
}
