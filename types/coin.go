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

package types

import (
	"fmt"
	"regexp"
)

var coinRegexp = regexp.MustCompile(`^([0-9]+)([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)

type Coin struct {
	Denom  string  `json:"denom"`
	Amount Uint128 `json:"amount"`
}

func NewCoin(amount uint64, denom string) Coin {
	return Coin{
		Denom:  denom,
		Amount: NewUint128(amount),
	}
}

// ParseCoin parses a coin in "<amount><denom>" notation, such as "500uluna"
func ParseCoin(s string) (Coin, error) {
	matches := coinRegexp.FindStringSubmatch(s)
	if matches == nil {
		return Coin{}, fmt.Errorf("invalid coin: %q", s)
	}
	amount, err := ParseUint128(matches[1])
	if err != nil {
		return Coin{}, fmt.Errorf("invalid coin %q: %w", s, err)
	}
	return Coin{Denom: matches[2], Amount: amount}, nil
}

func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}
