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
	"github.com/shopspring/decimal"
)

// BalanceResponse is the expected response to BalanceQuery
type BalanceResponse struct {
	Amount Coin `json:"amount"`
}

// AllBalanceResponse is the expected response to AllBalancesQuery
type AllBalanceResponse struct {
	Amount []Coin `json:"amount"`
}

// SupplyResponse is the expected response to SupplyQuery
type SupplyResponse struct {
	Amount Coin `json:"amount"`
}

type BondedDenomResponse struct {
	Denom string `json:"denom"`
}

type Validator struct {
	Address       string          `json:"address"`
	Commission    decimal.Decimal `json:"commission"`
	MaxCommission decimal.Decimal `json:"max_commission"`
	MaxChangeRate decimal.Decimal `json:"max_change_rate"`
}

type AllValidatorsResponse struct {
	Validators []Validator `json:"validators"`
}

type ValidatorResponse struct {
	Validator *Validator `json:"validator"`
}

// Delegation is the summary returned by AllDelegationsQuery
type Delegation struct {
	Delegator string `json:"delegator"`
	Validator string `json:"validator"`
	Amount    Coin   `json:"amount"`
}

// FullDelegation is the detailed delegation returned by DelegationQuery
type FullDelegation struct {
	Delegator          string `json:"delegator"`
	Validator          string `json:"validator"`
	Amount             Coin   `json:"amount"`
	CanRedelegate      Coin   `json:"can_redelegate"`
	AccumulatedRewards []Coin `json:"accumulated_rewards"`
}

// Summary drops the redelegation and reward details
func (d FullDelegation) Summary() Delegation {
	return Delegation{
		Delegator: d.Delegator,
		Validator: d.Validator,
		Amount:    d.Amount,
	}
}

type AllDelegationsResponse struct {
	Delegations []Delegation `json:"delegations"`
}

type DelegationResponse struct {
	Delegation *FullDelegation `json:"delegation"`
}
