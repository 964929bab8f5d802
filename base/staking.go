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
	"github.com/blinklabs-io/gowasmmock/result"
	"github.com/blinklabs-io/gowasmmock/types"
)

type stakingState struct {
	denom       string
	validators  []types.Validator
	delegations []types.FullDelegation
}

func (q *Querier) handleStaking(staking *types.StakingQuery) result.SystemResult {
	s := q.staking
	switch {
	case staking.BondedDenom != nil:
		return result.Encode(q.codec, types.BondedDenomResponse{Denom: s.denom})
	case staking.AllValidators != nil:
		validators := s.validators
		if validators == nil {
			validators = []types.Validator{}
		}
		return result.Encode(q.codec, types.AllValidatorsResponse{Validators: validators})
	case staking.Validator != nil:
		resp := types.ValidatorResponse{}
		for i := range s.validators {
			if s.validators[i].Address == staking.Validator.Address {
				validator := s.validators[i]
				resp.Validator = &validator
				break
			}
		}
		return result.Encode(q.codec, resp)
	case staking.AllDelegations != nil:
		delegations := []types.Delegation{}
		for _, d := range s.delegations {
			if d.Delegator == staking.AllDelegations.Delegator {
				delegations = append(delegations, d.Summary())
			}
		}
		return result.Encode(q.codec, types.AllDelegationsResponse{Delegations: delegations})
	case staking.Delegation != nil:
		resp := types.DelegationResponse{}
		for i := range s.delegations {
			d := s.delegations[i]
			if d.Delegator == staking.Delegation.Delegator &&
				d.Validator == staking.Delegation.Validator {
				resp.Delegation = &d
				break
			}
		}
		return result.Encode(q.codec, resp)
	}
	return result.UnsupportedRequestErr("staking")
}
