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

// TokenQuery is the CW20 smart query union. Every CW20 query shape is
// modeled so that a well-formed but unsupported query can be told apart from
// an undecodable payload.
type TokenQuery struct {
	Balance              *TokenBalanceQuery         `json:"balance,omitempty"`
	TokenInfo            *TokenInfoQuery            `json:"token_info,omitempty"`
	Minter               *MinterQuery               `json:"minter,omitempty"`
	Allowance            *AllowanceQuery            `json:"allowance,omitempty"`
	AllAllowances        *AllAllowancesQuery        `json:"all_allowances,omitempty"`
	AllSpenderAllowances *AllSpenderAllowancesQuery `json:"all_spender_allowances,omitempty"`
	AllAccounts          *AllAccountsQuery          `json:"all_accounts,omitempty"`
	MarketingInfo        *MarketingInfoQuery        `json:"marketing_info,omitempty"`
	DownloadLogo         *DownloadLogoQuery         `json:"download_logo,omitempty"`
}

type TokenBalanceQuery struct {
	Address string `json:"address"`
}

type TokenInfoQuery struct{}

type MinterQuery struct{}

type AllowanceQuery struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
}

type AllAllowancesQuery struct {
	Owner      string  `json:"owner"`
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type AllSpenderAllowancesQuery struct {
	Spender    string  `json:"spender"`
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type AllAccountsQuery struct {
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type MarketingInfoQuery struct{}

type DownloadLogoQuery struct{}

// Kind returns the name of the variant that is set, or an empty string
func (q *TokenQuery) Kind() string {
	switch {
	case q == nil:
		return ""
	case q.Balance != nil:
		return "balance"
	case q.TokenInfo != nil:
		return "token_info"
	case q.Minter != nil:
		return "minter"
	case q.Allowance != nil:
		return "allowance"
	case q.AllAllowances != nil:
		return "all_allowances"
	case q.AllSpenderAllowances != nil:
		return "all_spender_allowances"
	case q.AllAccounts != nil:
		return "all_accounts"
	case q.MarketingInfo != nil:
		return "marketing_info"
	case q.DownloadLogo != nil:
		return "download_logo"
	}
	return ""
}

// TokenBalanceResponse is the CW20 balance response
type TokenBalanceResponse struct {
	Balance Uint128 `json:"balance"`
}

type MinterData struct {
	Minter string   `json:"minter"`
	Cap    *Uint128 `json:"cap"`
}

// TokenInfo is the CW20 token metadata record, including the minter
type TokenInfo struct {
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
	Decimals    uint8       `json:"decimals"`
	TotalSupply Uint128     `json:"total_supply"`
	Mint        *MinterData `json:"mint"`
}
