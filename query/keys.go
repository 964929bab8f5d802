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

package query

import (
	"bytes"
	"encoding/binary"
	"math"
)

var (
	ConfigKeyPrefix  = LengthPrefixed([]byte("config"))
	BalanceKeyPrefix = LengthPrefixed([]byte("balance"))
)

// LengthPrefixed returns the namespace prefixed with its length as a
// big-endian uint16, the storage key layout used by contract singletons and
// buckets
func LengthPrefixed(namespace []byte) []byte {
	if len(namespace) > math.MaxUint16 {
		panic("namespace too long for length prefix")
	}
	ret := make([]byte, 2, 2+len(namespace))
	binary.BigEndian.PutUint16(ret, uint16(len(namespace)))
	return append(ret, namespace...)
}

// BalanceKey returns the storage key holding the token balance of a canonical address
func BalanceKey(canonical []byte) []byte {
	ret := bytes.Clone(BalanceKeyPrefix)
	return append(ret, canonical...)
}

// ConfigKey returns the storage key holding the contract configuration
func ConfigKey() []byte {
	return bytes.Clone(ConfigKeyPrefix)
}
