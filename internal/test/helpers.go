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

package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gowasmmock/codec"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// MustEncode encodes a value with the given codec and panics on failure, which makes it usable inline
func MustEncode(c codec.Codec, v any) []byte {
	data, err := c.Encode(v)
	if err != nil {
		panic(fmt.Sprintf("error encoding %T with %s: %s", v, c.Name(), err))
	}
	return data
}

// Codecs returns every codec, for tests that must behave identically under each of them
func Codecs() []codec.Codec {
	return []codec.Codec{codec.JSON(), codec.CBOR()}
}
