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

// Package wasmmock simulates the query side of a CosmWasm chain for contract
// tests. A Simulator takes serialized query requests, classifies them, and
// answers them from seeded fixture tables, delegating everything it does not
// specialize to a base handler.
package wasmmock

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/gowasmmock/address"
	"github.com/blinklabs-io/gowasmmock/base"
	"github.com/blinklabs-io/gowasmmock/codec"
	"github.com/blinklabs-io/gowasmmock/fixture"
	"github.com/blinklabs-io/gowasmmock/result"
	"github.com/blinklabs-io/gowasmmock/types"
	"github.com/jinzhu/copier"
)

// ErrStakingUnsupported is returned by SetStakingInfo when the base handler
// cannot hold staking state
var ErrStakingUnsupported = errors.New("base handler does not support staking fixtures")

// BaseHandler answers the decoded requests the simulator does not specialize
type BaseHandler interface {
	HandleQuery(*types.QueryRequest) result.SystemResult
}

// StakingUpdater is implemented by base handlers that hold staking fixtures
type StakingUpdater interface {
	UpdateStaking(denom string, validators []types.Validator, delegations []types.FullDelegation)
}

// Simulator answers serialized query requests from fixture state
type Simulator struct {
	logger           *slog.Logger
	codec            codec.Codec
	resolver         address.Resolver
	base             BaseHandler
	contractAddr     string
	balanceRules     []BalanceRule
	allBalancesRules []AllBalancesRule
	tokenInfo        *TokenMetadata
	nativeBalances   fixture.NativeBalances
	tokenBalances    fixture.TokenBalances
	config           *types.Config
	metrics          Metrics
}

// New returns a Simulator whose base handler holds contractBalance for the
// contract under test. All fixture tables start empty.
func New(contractBalance []types.Coin, opts ...SimulatorOptionFunc) *Simulator {
	s := &Simulator{
		contractAddr:   MockContractAddr,
		nativeBalances: fixture.NewNativeBalances(nil),
		tokenBalances:  fixture.NewTokenBalances(nil),
	}
	// Apply provided options functions
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "wasmmock")
	if s.codec == nil {
		s.codec = codec.JSON()
	}
	if s.resolver == nil {
		s.resolver = address.NewMockResolver()
	}
	if s.balanceRules == nil {
		s.balanceRules = DefaultBalanceRules(s.contractAddr)
	}
	if s.allBalancesRules == nil {
		s.allBalancesRules = DefaultAllBalancesRules(s.contractAddr)
	}
	if s.tokenInfo == nil {
		metadata := DefaultTokenMetadata()
		s.tokenInfo = &metadata
	}
	if s.base == nil {
		s.base = base.New(
			s.codec,
			base.AccountCoins{Address: s.contractAddr, Coins: contractBalance},
		)
	}
	return s
}

// SetNativeBalances replaces the native balance table
func (s *Simulator) SetNativeBalances(balances []fixture.NativeBalance) {
	s.nativeBalances = fixture.NewNativeBalances(balances)
}

// SetTokenBalances replaces the token balance table
func (s *Simulator) SetTokenBalances(balances []fixture.TokenContract) {
	s.tokenBalances = fixture.NewTokenBalances(balances)
}

// SetStakingInfo replaces the staking fixtures of the base handler
func (s *Simulator) SetStakingInfo(
	denom string,
	validators []types.Validator,
	delegations []types.FullDelegation,
) error {
	updater, ok := s.base.(StakingUpdater)
	if !ok {
		return fmt.Errorf("%w: %T", ErrStakingUnsupported, s.base)
	}
	updater.UpdateStaking(denom, validators, delegations)
	return nil
}

// SetContractConfig replaces the config returned for raw reads of the config key
func (s *Simulator) SetContractConfig(cfg types.Config) error {
	var stored types.Config
	if err := copier.CopyWithOption(&stored, &cfg, copier.Option{DeepCopy: true, IgnoreEmpty: true}); err != nil {
		return fmt.Errorf("copy contract config: %w", err)
	}
	s.config = &stored
	return nil
}

// ContractConfig returns a copy of the config returned for raw reads of the config key
func (s *Simulator) ContractConfig() (types.Config, error) {
	var ret types.Config
	if err := copier.CopyWithOption(&ret, s.contractConfig(), copier.Option{DeepCopy: true, IgnoreEmpty: true}); err != nil {
		return types.Config{}, fmt.Errorf("copy contract config: %w", err)
	}
	return ret, nil
}

// LoadFixtures replaces the fixture tables with the contents of a fixture
// file. Sections missing from the file leave the matching table untouched.
func (s *Simulator) LoadFixtures(f *fixture.File) error {
	if f == nil {
		return nil
	}
	native, err := f.NativeBalanceFixtures()
	if err != nil {
		return err
	}
	tokens, err := f.TokenBalanceFixtures()
	if err != nil {
		return err
	}
	var cfg *types.Config
	if f.Config != nil {
		resolved, err := f.Config.Resolve(s.resolver)
		if err != nil {
			s.logger.Warn(
				"failed to canonicalize fixture config",
				"error", err,
			)
			return err
		}
		cfg = &resolved
	}
	if f.NativeBalances != nil {
		s.SetNativeBalances(native)
	}
	if f.TokenBalances != nil {
		s.SetTokenBalances(tokens)
	}
	if cfg != nil {
		return s.SetContractConfig(*cfg)
	}
	return nil
}

// Handle classifies and answers a serialized query request. Malformed
// requests and missing fixtures are reported inside the returned envelope.
// The error is only set for queries the simulator refuses to answer, as an
// *query.UnimplementedError or *query.FatalError.
func (s *Simulator) Handle(raw []byte) (result.SystemResult, error) {
	return s.handle(raw)
}

// RawQuery answers a serialized query request like Handle, but panics with
// the error instead of returning it. It matches the querier interface
// contracts are compiled against, where such a query must abort the test.
func (s *Simulator) RawQuery(raw []byte) result.SystemResult {
	res, err := s.handle(raw)
	if err != nil {
		panic(err)
	}
	return res
}

// HandleBytes answers a serialized query request with a serialized envelope
func (s *Simulator) HandleBytes(raw []byte) ([]byte, error) {
	res, err := s.handle(raw)
	if err != nil {
		return nil, err
	}
	return s.codec.Encode(res)
}

// Query encodes the request, answers it, and decodes a successful payload
// into out. Envelope failures are returned as *result.SystemError or
// *result.ContractError.
func (s *Simulator) Query(req types.QueryRequest, out any) error {
	raw, err := s.codec.Encode(req)
	if err != nil {
		return fmt.Errorf("encode query request: %w", err)
	}
	res, err := s.handle(raw)
	if err != nil {
		return err
	}
	if out == nil {
		_, err := res.Unwrap()
		return err
	}
	return res.UnwrapInto(s.codec, out)
}

// Stats returns a snapshot of the query outcome counters
func (s *Simulator) Stats() QueryStats {
	return s.metrics.Stats()
}

// ResetStats zeroes the query outcome counters
func (s *Simulator) ResetStats() {
	s.metrics.Reset()
}

// Codec returns the codec used for requests, responses and stored values
func (s *Simulator) Codec() codec.Codec {
	return s.codec
}

func (s *Simulator) contractConfig() *types.Config {
	if s.config != nil {
		return s.config
	}
	ret := types.Config{}
	token, err := s.resolver.Canonicalize("token")
	if err != nil {
		s.logger.Warn(
			"failed to canonicalize default token contract",
			"error", err,
		)
	} else {
		ret.TokenContract = token
	}
	return &ret
}
