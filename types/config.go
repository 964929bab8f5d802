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

// CanonicalAddr is the binary form of an account address. A nil value means
// no address.
type CanonicalAddr []byte

// Config is the hub contract configuration stored under the "config" key
type Config struct {
	TokenContractRegistered bool          `json:"token_contract_registered"`
	TokenContract           CanonicalAddr `json:"token_contract"`
	ProtocolFeeCollector    CanonicalAddr `json:"protocol_fee_collector"`
	RewardsContract         CanonicalAddr `json:"rewards_contract"`
}
