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

// QueryRequest is the externally-tagged request envelope. Exactly one field
// must be set.
type QueryRequest struct {
	Bank         *BankQuery     `json:"bank,omitempty"`
	Custom       *OpaqueQuery   `json:"custom,omitempty"`
	Staking      *StakingQuery  `json:"staking,omitempty"`
	Distribution *OpaqueQuery   `json:"distribution,omitempty"`
	Stargate     *StargateQuery `json:"stargate,omitempty"`
	Ibc          *OpaqueQuery   `json:"ibc,omitempty"`
	Wasm         *WasmQuery     `json:"wasm,omitempty"`
	Grpc         *GrpcQuery     `json:"grpc,omitempty"`
}

// OpaqueQuery carries request kinds this package does not model field by field
type OpaqueQuery map[string]any

type BankQuery struct {
	Supply           *SupplyQuery           `json:"supply,omitempty"`
	Balance          *BalanceQuery          `json:"balance,omitempty"`
	AllBalances      *AllBalancesQuery      `json:"all_balances,omitempty"`
	DenomMetadata    *DenomMetadataQuery    `json:"denom_metadata,omitempty"`
	AllDenomMetadata *AllDenomMetadataQuery `json:"all_denom_metadata,omitempty"`
}

type SupplyQuery struct {
	Denom string `json:"denom"`
}

type BalanceQuery struct {
	Address string `json:"address"`
	Denom   string `json:"denom"`
}

type AllBalancesQuery struct {
	Address string `json:"address"`
}

type DenomMetadataQuery struct {
	Denom string `json:"denom"`
}

type AllDenomMetadataQuery struct {
	Pagination *PageRequest `json:"pagination,omitempty"`
}

// Simplified version of the cosmos-sdk PageRequest type
type PageRequest struct {
	Key     []byte `json:"key"`
	Limit   uint32 `json:"limit"`
	Reverse bool   `json:"reverse"`
}

type StakingQuery struct {
	BondedDenom    *BondedDenomQuery    `json:"bonded_denom,omitempty"`
	AllDelegations *AllDelegationsQuery `json:"all_delegations,omitempty"`
	Delegation     *DelegationQuery     `json:"delegation,omitempty"`
	AllValidators  *AllValidatorsQuery  `json:"all_validators,omitempty"`
	Validator      *ValidatorQuery      `json:"validator,omitempty"`
}

type BondedDenomQuery struct{}

type AllDelegationsQuery struct {
	Delegator string `json:"delegator"`
}

type DelegationQuery struct {
	Delegator string `json:"delegator"`
	Validator string `json:"validator"`
}

type AllValidatorsQuery struct{}

type ValidatorQuery struct {
	Address string `json:"address"`
}

type WasmQuery struct {
	Smart        *SmartQuery        `json:"smart,omitempty"`
	Raw          *RawQuery          `json:"raw,omitempty"`
	ContractInfo *ContractInfoQuery `json:"contract_info,omitempty"`
	CodeInfo     *CodeInfoQuery     `json:"code_info,omitempty"`
}

// SmartQuery response is raw bytes ([]byte)
type SmartQuery struct {
	ContractAddr string `json:"contract_addr"`
	Msg          []byte `json:"msg"`
}

// RawQuery response is raw bytes ([]byte)
type RawQuery struct {
	ContractAddr string `json:"contract_addr"`
	Key          []byte `json:"key"`
}

type ContractInfoQuery struct {
	ContractAddr string `json:"contract_addr"`
}

type CodeInfoQuery struct {
	CodeID uint64 `json:"code_id"`
}

type StargateQuery struct {
	Path string `json:"path"`
	Data []byte `json:"data"`
}

type GrpcQuery struct {
	Path string `json:"path"`
	Data []byte `json:"data"`
}

// Kind returns the name of the top-level variant that is set, or an empty
// string when none is
func (q *QueryRequest) Kind() string {
	switch {
	case q == nil:
		return ""
	case q.Bank != nil:
		return "bank"
	case q.Custom != nil:
		return "custom"
	case q.Staking != nil:
		return "staking"
	case q.Distribution != nil:
		return "distribution"
	case q.Stargate != nil:
		return "stargate"
	case q.Ibc != nil:
		return "ibc"
	case q.Wasm != nil:
		return "wasm"
	case q.Grpc != nil:
		return "grpc"
	}
	return ""
}
