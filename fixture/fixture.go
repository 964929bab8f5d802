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

// Package fixture holds the seeded state a simulator answers queries from.
// Every table is immutable once built; configuration replaces a table
// wholesale rather than merging into it.
package fixture

import (
	"fmt"

	"github.com/blinklabs-io/gowasmmock/types"
)

// NativeBalance seeds the single tracked native coin of an account
type NativeBalance struct {
	Account string
	Coin    types.Coin
}

// NativeBalances maps an account to its one tracked native coin
type NativeBalances struct {
	balances map[string]types.Coin
}

func NewNativeBalances(entries []NativeBalance) NativeBalances {
	ret := NativeBalances{
		balances: make(map[string]types.Coin, len(entries)),
	}
	for _, entry := range entries {
		ret.balances[entry.Account] = entry.Coin
	}
	return ret
}

func (n NativeBalances) Get(account string) (types.Coin, bool) {
	coin, ok := n.balances[account]
	return coin, ok
}

func (n NativeBalances) Len() int {
	return len(n.balances)
}

// Holding is one holder's balance of a token
type Holding struct {
	Address string
	Amount  types.Uint128
}

// TokenContract seeds the complete holder table of one token contract
type TokenContract struct {
	Contract string
	Holders  []Holding
}

// TokenBalances maps a token contract to its holder balances
type TokenBalances struct {
	balances map[string]map[string]types.Uint128
}

// NewTokenBalances builds the token table. Repeated holders within a contract
// and repeated contracts both resolve to the last entry.
func NewTokenBalances(contracts []TokenContract) TokenBalances {
	ret := TokenBalances{
		balances: make(map[string]map[string]types.Uint128, len(contracts)),
	}
	for _, contract := range contracts {
		holders := make(map[string]types.Uint128, len(contract.Holders))
		for _, holding := range contract.Holders {
			holders[holding.Address] = holding.Amount
		}
		ret.balances[contract.Contract] = holders
	}
	return ret
}

func (t TokenBalances) HasContract(contract string) bool {
	_, ok := t.balances[contract]
	return ok
}

// Balance returns the holder's amount and whether the contract and the holder
// are known
func (t TokenBalances) Balance(
	contract string,
	holder string,
) (types.Uint128, bool, bool) {
	holders, ok := t.balances[contract]
	if !ok {
		return types.Uint128{}, false, false
	}
	amount, ok := holders[holder]
	return amount, true, ok
}

// TotalSupply returns the sum of all holder balances of a contract
func (t TokenBalances) TotalSupply(contract string) (types.Uint128, bool, error) {
	holders, ok := t.balances[contract]
	if !ok {
		return types.Uint128{}, false, nil
	}
	total := types.ZeroUint128()
	for holder, amount := range holders {
		var err error
		total, err = total.Add(amount)
		if err != nil {
			return types.Uint128{}, true, fmt.Errorf(
				"total supply of %s at holder %s: %w",
				contract,
				holder,
				err,
			)
		}
	}
	return total, true, nil
}

func (t TokenBalances) Len() int {
	return len(t.balances)
}
