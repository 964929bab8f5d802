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

package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

// DerivedAddressLength is the size of addresses produced by Bech32Resolver.Derive
const DerivedAddressLength = 20

// Bech32Resolver resolves bech32 account addresses with a fixed human-readable prefix
type Bech32Resolver struct {
	Prefix string
}

func NewBech32Resolver(prefix string) Bech32Resolver {
	return Bech32Resolver{Prefix: prefix}
}

func (b Bech32Resolver) Canonicalize(human string) ([]byte, error) {
	hrp, data, err := bech32.DecodeToBase256(human)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if hrp != b.Prefix {
		return nil, InvalidAddressError{
			Reason: fmt.Sprintf("wrong prefix: expected %s, got %s", b.Prefix, hrp),
		}
	}
	if len(data) == 0 {
		return nil, InvalidAddressError{Reason: "empty address payload"}
	}
	return data, nil
}

func (b Bech32Resolver) Humanize(canonical []byte) (string, error) {
	if len(canonical) == 0 {
		return "", InvalidAddressError{Reason: "empty canonical address"}
	}
	ret, err := bech32.EncodeFromBase256(b.Prefix, canonical)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return ret, nil
}

// Derive returns a deterministic address for the given label, suitable for
// seeding fixtures with well-formed account identifiers
func (b Bech32Resolver) Derive(label string) (string, error) {
	sum := blake2b.Sum256([]byte(label))
	return b.Humanize(sum[:DerivedAddressLength])
}
