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

package wasmmock

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/blinklabs-io/gowasmmock/query"
	"github.com/blinklabs-io/gowasmmock/result"
	"github.com/blinklabs-io/gowasmmock/types"
)

const delegatedRoute = "delegated"

type routeHandlerFunc func(*Simulator, query.Query) (result.SystemResult, error)

type route struct {
	name   string
	match  func(query.Query) bool
	handle routeHandlerFunc
}

// routes is walked in order and the first match answers the query
var routes = []route{
	{
		name:   "raw-config",
		match:  matchRawKeyPrefix(query.ConfigKeyPrefix),
		handle: (*Simulator).handleRawConfig,
	},
	{
		name:   "raw-balance",
		match:  matchRawKeyPrefix(query.BalanceKeyPrefix),
		handle: (*Simulator).handleRawBalance,
	},
	{
		name:   "raw-other",
		match:  matchType[query.RawRead],
		handle: (*Simulator).handleRawOther,
	},
	{
		name:   "bank-balance",
		match:  matchType[query.BalanceOf],
		handle: (*Simulator).handleBalance,
	},
	{
		name:   "bank-all-balances",
		match:  matchType[query.AllBalances],
		handle: (*Simulator).handleAllBalances,
	},
	{
		name:   "wasm-smart",
		match:  matchType[query.SmartCall],
		handle: (*Simulator).handleSmartCall,
	},
	{
		name:   delegatedRoute,
		match:  matchType[query.Delegated],
		handle: (*Simulator).handleDelegated,
	},
}

func matchType[T query.Query](q query.Query) bool {
	_, ok := q.(T)
	return ok
}

func matchRawKeyPrefix(prefix []byte) func(query.Query) bool {
	return func(q query.Query) bool {
		raw, ok := q.(query.RawRead)
		return ok && bytes.HasPrefix(raw.Key, prefix)
	}
}

func (s *Simulator) handle(raw []byte) (result.SystemResult, error) {
	q, err := query.Classify(s.codec, raw)
	if err != nil {
		return s.finish("classify", "", result.SystemResult{}, err)
	}
	return s.dispatch(q)
}

func (s *Simulator) dispatch(q query.Query) (result.SystemResult, error) {
	for _, r := range routes {
		if !r.match(q) {
			continue
		}
		res, err := r.handle(s, q)
		return s.finish(r.name, q.Kind(), res, err)
	}
	return s.finish(
		"",
		fmt.Sprintf("%T", q),
		result.SystemResult{},
		&query.FatalError{Reason: fmt.Sprintf("no route for query variant %T", q)},
	)
}

// finish records the outcome of a query and turns envelope-level failures
// into envelopes
func (s *Simulator) finish(
	routeName string,
	kind string,
	res result.SystemResult,
	err error,
) (result.SystemResult, error) {
	if routeName == delegatedRoute && err == nil {
		s.metrics.RecordDelegated()
	} else {
		s.metrics.RecordResult(err)
	}
	var malformedErr *query.MalformedRequestError
	var noFixtureErr *query.NoFixtureError
	switch {
	case err == nil:
		s.logger.Debug(
			"answered query",
			"route", routeName,
			"kind", kind,
			"ok", res.IsOk(),
		)
		return res, nil
	case errors.As(err, &malformedErr):
		s.logger.Debug(
			"rejected malformed query",
			"route", routeName,
			"error", malformedErr.Err,
		)
		return result.InvalidRequestErr(malformedErr.Error(), malformedErr.Request), nil
	case errors.As(err, &noFixtureErr):
		s.logger.Debug(
			"no fixture for query",
			"route", routeName,
			"kind", kind,
			"error", noFixtureErr.Msg,
		)
		return result.ContractErr(noFixtureErr.Msg), nil
	}
	s.logger.Warn(
		"refusing query",
		"route", routeName,
		"kind", kind,
		"error", err,
	)
	return result.SystemResult{}, err
}

func (s *Simulator) handleRawConfig(query.Query) (result.SystemResult, error) {
	return result.Encode(s.codec, s.contractConfig()), nil
}

func (s *Simulator) handleRawBalance(q query.Query) (result.SystemResult, error) {
	raw := q.(query.RawRead)
	if !s.tokenBalances.HasContract(raw.Contract) {
		return result.SystemResult{}, noBalanceInfo(raw.Contract)
	}
	holder, err := s.resolver.Humanize(raw.Key[len(query.BalanceKeyPrefix):])
	if err != nil {
		return result.SystemResult{}, &query.MalformedRequestError{Err: err, Request: raw.Key}
	}
	amount, _, ok := s.tokenBalances.Balance(raw.Contract, holder)
	if !ok {
		return result.SystemResult{}, &query.NoFixtureError{Msg: "balance not found"}
	}
	return result.Encode(s.codec, amount), nil
}

func (s *Simulator) handleRawOther(q query.Query) (result.SystemResult, error) {
	raw := q.(query.RawRead)
	return result.SystemResult{}, &query.UnimplementedError{
		Kind: fmt.Sprintf("raw read of key %x on %s", raw.Key, raw.Contract),
	}
}

func (s *Simulator) handleBalance(q query.Query) (result.SystemResult, error) {
	balance := q.(query.BalanceOf)
	for _, rule := range s.balanceRules {
		if rule.Account != balance.Account || rule.Denom != balance.Denom {
			continue
		}
		if rule.Amount != nil {
			return result.Encode(s.codec, types.BalanceResponse{
				Amount: types.Coin{Denom: balance.Denom, Amount: *rule.Amount},
			}), nil
		}
		coin, ok := s.nativeBalances.Get(balance.Account)
		if !ok {
			return result.SystemResult{}, &query.NoFixtureError{Msg: "balance not found"}
		}
		return result.Encode(s.codec, types.BalanceResponse{Amount: coin}), nil
	}
	coin, ok := s.nativeBalances.Get(balance.Account)
	if !ok || coin.Denom != balance.Denom {
		return result.SystemResult{}, &query.NoFixtureError{Msg: "balance not found"}
	}
	return result.Encode(s.codec, types.BalanceResponse{Amount: coin}), nil
}

func (s *Simulator) handleAllBalances(q query.Query) (result.SystemResult, error) {
	all := q.(query.AllBalances)
	for _, rule := range s.allBalancesRules {
		if rule.Account != all.Account {
			continue
		}
		coins := slices.Clone(rule.Coins)
		if coins == nil {
			coins = []types.Coin{}
		}
		return result.Encode(s.codec, types.AllBalanceResponse{Amount: coins}), nil
	}
	return result.SystemResult{}, &query.UnimplementedError{
		Kind: "all balances of " + all.Account,
	}
}

func (s *Simulator) handleSmartCall(q query.Query) (result.SystemResult, error) {
	call := q.(query.SmartCall)
	tq, err := query.ClassifyTokenQuery(s.codec, call.Msg)
	if err != nil {
		return result.SystemResult{}, err
	}
	switch tq := tq.(type) {
	case query.TokenInfo:
		total, ok, err := s.tokenBalances.TotalSupply(call.Contract)
		if !ok {
			return result.SystemResult{}, noBalanceInfo(call.Contract)
		}
		if err != nil {
			return result.SystemResult{}, &query.FatalError{Reason: err.Error()}
		}
		info := types.TokenInfo{
			Name:        s.tokenInfo.Name,
			Symbol:      s.tokenInfo.Symbol,
			Decimals:    s.tokenInfo.Decimals,
			TotalSupply: total,
		}
		if s.tokenInfo.Minter != "" {
			info.Mint = &types.MinterData{
				Minter: s.tokenInfo.Minter,
				Cap:    s.tokenInfo.Cap,
			}
		}
		return result.Encode(s.codec, info), nil
	case query.TokenBalance:
		amount, contractKnown, holderKnown := s.tokenBalances.Balance(call.Contract, tq.Address)
		if !contractKnown {
			return result.SystemResult{}, noBalanceInfo(call.Contract)
		}
		if !holderKnown {
			// Every account implicitly holds zero of every token
			amount = types.ZeroUint128()
		}
		return result.Encode(s.codec, types.TokenBalanceResponse{Balance: amount}), nil
	}
	return result.SystemResult{}, &query.FatalError{
		Reason: fmt.Sprintf("no handler for token query variant %T", tq),
	}
}

func (s *Simulator) handleDelegated(q query.Query) (result.SystemResult, error) {
	delegated := q.(query.Delegated)
	return s.base.HandleQuery(delegated.Request), nil
}

func noBalanceInfo(contract string) error {
	return &query.NoFixtureError{
		Msg: "no balance info exists for the contract " + contract,
	}
}
