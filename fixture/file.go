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

package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/blinklabs-io/gowasmmock/address"
	"github.com/blinklabs-io/gowasmmock/types"
	"gopkg.in/yaml.v3"
)

// File is a fixture set loaded from YAML. Amounts and coins are written as
// strings ("100", "500uluna") and config addresses in human form.
type File struct {
	NativeBalances []NativeBalanceEntry `yaml:"native_balances"`
	TokenBalances  []TokenContractEntry `yaml:"token_balances"`
	Config         *ConfigEntry         `yaml:"config"`
}

type NativeBalanceEntry struct {
	Account string `yaml:"account"`
	Coin    string `yaml:"coin"`
}

type TokenContractEntry struct {
	Contract string         `yaml:"contract"`
	Holders  []HoldingEntry `yaml:"holders"`
}

type HoldingEntry struct {
	Address string `yaml:"address"`
	Amount  string `yaml:"amount"`
}

// ConfigEntry describes the contract config. An empty address means none.
type ConfigEntry struct {
	TokenContractRegistered bool   `yaml:"token_contract_registered"`
	TokenContract           string `yaml:"token_contract"`
	ProtocolFeeCollector    string `yaml:"protocol_fee_collector"`
	RewardsContract         string `yaml:"rewards_contract"`
}

// ParseFile parses a YAML fixture file. Unknown keys are rejected.
func ParseFile(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	ret := &File{}
	if err := dec.Decode(ret); err != nil {
		if errors.Is(err, io.EOF) {
			return ret, nil
		}
		return nil, fmt.Errorf("parse fixture file: %w", err)
	}
	return ret, nil
}

// LoadFile reads and parses a YAML fixture file from disk
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFile(data)
}

// NativeBalanceFixtures converts the native balance section
func (f *File) NativeBalanceFixtures() ([]NativeBalance, error) {
	ret := make([]NativeBalance, 0, len(f.NativeBalances))
	for _, entry := range f.NativeBalances {
		coin, err := types.ParseCoin(entry.Coin)
		if err != nil {
			return nil, fmt.Errorf("native balance of %s: %w", entry.Account, err)
		}
		ret = append(ret, NativeBalance{Account: entry.Account, Coin: coin})
	}
	return ret, nil
}

// TokenBalanceFixtures converts the token balance section
func (f *File) TokenBalanceFixtures() ([]TokenContract, error) {
	ret := make([]TokenContract, 0, len(f.TokenBalances))
	for _, entry := range f.TokenBalances {
		contract := TokenContract{
			Contract: entry.Contract,
			Holders:  make([]Holding, 0, len(entry.Holders)),
		}
		for _, holding := range entry.Holders {
			amount, err := types.ParseUint128(holding.Amount)
			if err != nil {
				return nil, fmt.Errorf(
					"token balance of %s in %s: %w",
					holding.Address,
					entry.Contract,
					err,
				)
			}
			contract.Holders = append(
				contract.Holders,
				Holding{Address: holding.Address, Amount: amount},
			)
		}
		ret = append(ret, contract)
	}
	return ret, nil
}

// Resolve converts the config section into its stored form, canonicalizing
// every address with the given resolver
func (c *ConfigEntry) Resolve(r address.Resolver) (types.Config, error) {
	ret := types.Config{
		TokenContractRegistered: c.TokenContractRegistered,
	}
	fields := []struct {
		name  string
		human string
		dest  *types.CanonicalAddr
	}{
		{"token_contract", c.TokenContract, &ret.TokenContract},
		{"protocol_fee_collector", c.ProtocolFeeCollector, &ret.ProtocolFeeCollector},
		{"rewards_contract", c.RewardsContract, &ret.RewardsContract},
	}
	for _, field := range fields {
		if field.human == "" {
			continue
		}
		canonical, err := r.Canonicalize(field.human)
		if err != nil {
			return types.Config{}, fmt.Errorf("config %s: %w", field.name, err)
		}
		*field.dest = canonical
	}
	return ret, nil
}
