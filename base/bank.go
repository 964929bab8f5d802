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

package base

import (
	"fmt"
	"slices"

	"github.com/blinklabs-io/gowasmmock/result"
	"github.com/blinklabs-io/gowasmmock/types"
)

type bankState struct {
	balances map[string][]types.Coin
}

func newBankState(seed []AccountCoins) bankState {
	ret := bankState{
		balances: make(map[string][]types.Coin, len(seed)),
	}
	for _, account := range seed {
		ret.balances[account.Address] = slices.Clone(account.Coins)
	}
	return ret
}

func (b bankState) balance(addr string, denom string) types.Coin {
	for _, coin := range b.balances[addr] {
		if coin.Denom == denom {
			return coin
		}
	}
	// Every account implicitly holds zero of every denom
	return types.Coin{Denom: denom, Amount: types.ZeroUint128()}
}

func (b bankState) supply(denom string) (types.Coin, error) {
	total := types.ZeroUint128()
	for addr, coins := range b.balances {
		for _, coin := range coins {
			if coin.Denom != denom {
				continue
			}
			var err error
			total, err = total.Add(coin.Amount)
			if err != nil {
				return types.Coin{}, fmt.Errorf("supply of %s at %s: %w", denom, addr, err)
			}
		}
	}
	return types.Coin{Denom: denom, Amount: total}, nil
}

func (q *Querier) handleBank(bank *types.BankQuery) result.SystemResult {
	switch {
	case bank.Balance != nil:
		return result.Encode(q.codec, types.BalanceResponse{
			Amount: q.bank.balance(bank.Balance.Address, bank.Balance.Denom),
		})
	case bank.AllBalances != nil:
		coins := slices.Clone(q.bank.balances[bank.AllBalances.Address])
		if coins == nil {
			coins = []types.Coin{}
		}
		return result.Encode(q.codec, types.AllBalanceResponse{Amount: coins})
	case bank.Supply != nil:
		coin, err := q.bank.supply(bank.Supply.Denom)
		if err != nil {
			return result.ContractErr(err.Error())
		}
		return result.Encode(q.codec, types.SupplyResponse{Amount: coin})
	case bank.DenomMetadata != nil, bank.AllDenomMetadata != nil:
		return result.UnsupportedRequestErr("bank/denom_metadata")
	}
	return result.UnsupportedRequestErr("bank")
}
