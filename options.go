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
	"log/slog"

	"github.com/blinklabs-io/gowasmmock/address"
	"github.com/blinklabs-io/gowasmmock/codec"
	"github.com/blinklabs-io/gowasmmock/types"
)

const (
	// MockContractAddr is the address of the contract under test
	MockContractAddr = "cosmos2contract"

	// RewardAddr is the reserved rewards account answered by the default rules
	RewardAddr = "reward"
)

// SimulatorOptionFunc is a type that represents functions that modify the Simulator config
type SimulatorOptionFunc func(*Simulator)

// BalanceRule answers a native balance query for an exact account and denom
// before the native balance table is consulted. A nil Amount answers from the
// native balance table entry of the account.
type BalanceRule struct {
	Account string
	Denom   string
	Amount  *types.Uint128
}

// AllBalancesRule answers an all-balances query for an exact account
type AllBalancesRule struct {
	Account string
	Coins   []types.Coin
}

// TokenMetadata is the fixed part of the token info response. The total
// supply is always derived from the token balance table.
type TokenMetadata struct {
	Name     string
	Symbol   string
	Decimals uint8
	Minter   string
	Cap      *types.Uint128
}

// DefaultTokenMetadata returns the token metadata used when none is configured
func DefaultTokenMetadata() TokenMetadata {
	return TokenMetadata{
		Name:     "bluna",
		Symbol:   "BLUNA",
		Decimals: 6,
		Minter:   "hub",
	}
}

// DefaultBalanceRules returns the balance rules used when none are configured
func DefaultBalanceRules(contractAddr string) []BalanceRule {
	rewardAmount := types.NewUint128(2000)
	return []BalanceRule{
		{Account: RewardAddr, Denom: "uusd", Amount: &rewardAmount},
		{Account: contractAddr, Denom: "uluna"},
	}
}

// DefaultAllBalancesRules returns the all-balances rules used when none are configured
func DefaultAllBalancesRules(contractAddr string) []AllBalancesRule {
	return []AllBalancesRule{
		{Account: RewardAddr, Coins: []types.Coin{types.NewCoin(1000, "uluna")}},
		{Account: contractAddr, Coins: []types.Coin{types.NewCoin(1000, "uluna")}},
	}
}

// WithLogger specifies the logger. The default is slog.Default()
func WithLogger(logger *slog.Logger) SimulatorOptionFunc {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// WithCodec specifies the codec used for requests, responses and stored values. The default is JSON
func WithCodec(c codec.Codec) SimulatorOptionFunc {
	return func(s *Simulator) {
		s.codec = c
	}
}

// WithAddressResolver specifies how canonical addresses in storage keys are
// humanized. The default is address.NewMockResolver()
func WithAddressResolver(resolver address.Resolver) SimulatorOptionFunc {
	return func(s *Simulator) {
		s.resolver = resolver
	}
}

// WithBaseHandler specifies the handler for queries the simulator does not
// answer itself. If none is provided, a base.Querier holding the contract
// balance is created
func WithBaseHandler(handler BaseHandler) SimulatorOptionFunc {
	return func(s *Simulator) {
		s.base = handler
	}
}

// WithContractAddr specifies the address of the contract under test. The default is MockContractAddr
func WithContractAddr(addr string) SimulatorOptionFunc {
	return func(s *Simulator) {
		s.contractAddr = addr
	}
}

// WithBalanceRules replaces the default balance rules
func WithBalanceRules(rules ...BalanceRule) SimulatorOptionFunc {
	return func(s *Simulator) {
		s.balanceRules = append([]BalanceRule{}, rules...)
	}
}

// WithAllBalancesRules replaces the default all-balances rules
func WithAllBalancesRules(rules ...AllBalancesRule) SimulatorOptionFunc {
	return func(s *Simulator) {
		s.allBalancesRules = append([]AllBalancesRule{}, rules...)
	}
}

// WithTokenInfo specifies the token metadata returned by token info queries
func WithTokenInfo(metadata TokenMetadata) SimulatorOptionFunc {
	return func(s *Simulator) {
		s.tokenInfo = &metadata
	}
}
