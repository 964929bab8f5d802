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

// Package types holds the wire shapes of simulated chain queries and their
// responses. All types carry json tags only, which both codecs honor.
package types

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blinklabs-io/gowasmmock/cbor"
	"github.com/holiman/uint256"
)

const uint128Bits = 128

var (
	_ cbor.Marshaler   = Uint128{}
	_ cbor.Unmarshaler = (*Uint128)(nil)
)

var ErrUint128Overflow = errors.New("uint128 overflow")

// Uint128 is an unsigned 128-bit amount. It is encoded as a decimal string.
type Uint128 struct {
	v uint256.Int
}

func NewUint128(v uint64) Uint128 {
	var ret Uint128
	ret.v.SetUint64(v)
	return ret
}

// ZeroUint128 returns the zero amount
func ZeroUint128() Uint128 {
	return Uint128{}
}

// ParseUint128 parses a base-10 string into a Uint128
func ParseUint128(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, errors.New("empty uint128 string")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Uint128{}, fmt.Errorf("invalid uint128 string: %q", s)
		}
	}
	tmp, err := uint256.FromDecimal(s)
	if err != nil {
		return Uint128{}, fmt.Errorf("invalid uint128 string %q: %w", s, err)
	}
	if tmp.BitLen() > uint128Bits {
		return Uint128{}, fmt.Errorf("%w: %s", ErrUint128Overflow, s)
	}
	return Uint128{v: *tmp}, nil
}

// MustParseUint128 is like ParseUint128 but panics on error. It is intended for fixtures
func MustParseUint128(s string) Uint128 {
	ret, err := ParseUint128(s)
	if err != nil {
		panic(err)
	}
	return ret
}

func (u Uint128) String() string {
	return u.v.Dec()
}

func (u Uint128) IsZero() bool {
	return u.v.IsZero()
}

func (u Uint128) Cmp(other Uint128) int {
	return u.v.Cmp(&other.v)
}

// Add returns the checked sum of two amounts
func (u Uint128) Add(other Uint128) (Uint128, error) {
	var ret Uint128
	ret.v.Add(&u.v, &other.v)
	if ret.v.BitLen() > uint128Bits {
		return Uint128{}, fmt.Errorf("%w: %s + %s", ErrUint128Overflow, u, other)
	}
	return ret, nil
}

func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *Uint128) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	parsed, err := ParseUint128(tmp)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func (u Uint128) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(u.String())
}

func (u *Uint128) UnmarshalCBOR(data []byte) error {
	var tmp string
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	parsed, err := ParseUint128(tmp)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
