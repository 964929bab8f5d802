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

// Package base implements the generic query handler that answers the query
// kinds a simulator does not specialize: bank supply and metadata, staking,
// and contract lookups.
package base

import (
	"slices"

	"github.com/blinklabs-io/gowasmmock/codec"
	"github.com/blinklabs-io/gowasmmock/result"
	"github.com/blinklabs-io/gowasmmock/types"
)

// AccountCoins seeds the native balances of one account
type AccountCoins struct {
	Address string
	Coins   []types.Coin
}

// WasmHandlerFunc answers wasm queries. The default reports every contract as missing
type WasmHandlerFunc func(*types.WasmQuery) result.SystemResult

// CustomHandlerFunc answers custom queries. The default reports them as unsupported
type CustomHandlerFunc func(types.OpaqueQuery) result.SystemResult

// Querier answers generic queries from in-memory bank and staking state
type Querier struct {
	codec   codec.Codec
	bank    bankState
	staking stakingState
	wasm    WasmHandlerFunc
	custom  CustomHandlerFunc
}

// New returns a Querier with the given native balances
func New(c codec.Codec, balances ...AccountCoins) *Querier {
	if c == nil {
		c = codec.JSON()
	}
	q := &Querier{
		codec: c,
		bank:  newBankState(balances),
	}
	q.wasm = q.defaultWasmHandler
	q.custom = defaultCustomHandler
	return q
}

// HandleQuery answers a decoded request
func (q *Querier) HandleQuery(req *types.QueryRequest) result.SystemResult {
	switch {
	case req == nil:
		return result.InvalidRequestErr("empty query request", nil)
	case req.Bank != nil:
		return q.handleBank(req.Bank)
	case req.Staking != nil:
		return q.handleStaking(req.Staking)
	case req.Wasm != nil:
		return q.wasm(req.Wasm)
	case req.Custom != nil:
		return q.custom(*req.Custom)
	}
	return result.UnsupportedRequestErr(req.Kind())
}

// UpdateBalance replaces the native balances of an account and returns the previous ones
func (q *Querier) UpdateBalance(addr string, coins []types.Coin) []types.Coin {
	prev := q.bank.balances[addr]
	q.bank.balances[addr] = slices.Clone(coins)
	return prev
}

// UpdateStaking replaces the staking state
func (q *Querier) UpdateStaking(
	denom string,
	validators []types.Validator,
	delegations []types.FullDelegation,
) {
	q.staking = stakingState{
		denom:       denom,
		validators:  slices.Clone(validators),
		delegations: slices.Clone(delegations),
	}
}

// UpdateWasm replaces the wasm query handler
func (q *Querier) UpdateWasm(handler WasmHandlerFunc) {
	if handler == nil {
		handler = q.defaultWasmHandler
	}
	q.wasm = handler
}

// UpdateCustom replaces the custom query handler
func (q *Querier) UpdateCustom(handler CustomHandlerFunc) {
	if handler == nil {
		handler = defaultCustomHandler
	}
	q.custom = handler
}

func (q *Querier) defaultWasmHandler(w *types.WasmQuery) result.SystemResult {
	switch {
	case w.Smart != nil:
		return noSuchContract(w.Smart.ContractAddr)
	case w.Raw != nil:
		return noSuchContract(w.Raw.ContractAddr)
	case w.ContractInfo != nil:
		return noSuchContract(w.ContractInfo.ContractAddr)
	case w.CodeInfo != nil:
		return result.SystemErr(result.SystemError{
			NoSuchCode: &result.NoSuchCode{CodeID: w.CodeInfo.CodeID},
		})
	}
	return result.UnsupportedRequestErr("wasm")
}

func defaultCustomHandler(types.OpaqueQuery) result.SystemResult {
	return result.UnsupportedRequestErr("custom")
}

func noSuchContract(addr string) result.SystemResult {
	return result.SystemErr(result.SystemError{
		NoSuchContract: &result.NoSuchContract{Addr: addr},
	})
}
