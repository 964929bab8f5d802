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

// Package query decodes opaque request bytes into the closed set of query
// variants the simulator dispatches on.
package query

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/blinklabs-io/gowasmmock/codec"
	"github.com/blinklabs-io/gowasmmock/types"
)

// Query is implemented only by the variants in this package
type Query interface {
	isQuery()
	Kind() string
}

// RawRead reads a storage slot of a contract directly
type RawRead struct {
	Contract string
	Key      []byte
}

// SmartCall sends an encoded query message to a contract
type SmartCall struct {
	Contract string
	Msg      []byte
}

// BalanceOf is a native balance query for a single denomination
type BalanceOf struct {
	Account string
	Denom   string
}

// AllBalances is a native balance query for every denomination of an account
type AllBalances struct {
	Account string
}

// Delegated is any well-formed request that is answered by the base handler
type Delegated struct {
	Request *types.QueryRequest
}

func (RawRead) isQuery()     {}
func (SmartCall) isQuery()   {}
func (BalanceOf) isQuery()   {}
func (AllBalances) isQuery() {}
func (Delegated) isQuery()   {}

func (RawRead) Kind() string     { return "wasm/raw" }
func (SmartCall) Kind() string   { return "wasm/smart" }
func (BalanceOf) Kind() string   { return "bank/balance" }
func (AllBalances) Kind() string { return "bank/all_balances" }

func (d Delegated) Kind() string {
	return d.Request.Kind()
}

// Classify decodes the request envelope and returns the query variant it
// holds. Any decode or shape failure is reported as a *MalformedRequestError
// carrying the original bytes.
func Classify(c codec.Codec, raw []byte) (Query, error) {
	var req types.QueryRequest
	if err := c.Decode(raw, &req); err != nil {
		return nil, &MalformedRequestError{Err: err, Request: raw}
	}
	ret, err := ClassifyRequest(&req)
	if err != nil {
		return nil, &MalformedRequestError{Err: err, Request: raw}
	}
	return ret, nil
}

// ClassifyRequest returns the query variant held by an already decoded request
func ClassifyRequest(req *types.QueryRequest) (Query, error) {
	if err := exactlyOne("query request", req); err != nil {
		return nil, err
	}
	switch {
	case req.Bank != nil:
		if err := exactlyOne("bank query", req.Bank); err != nil {
			return nil, err
		}
		switch {
		case req.Bank.Balance != nil:
			return BalanceOf{
				Account: req.Bank.Balance.Address,
				Denom:   req.Bank.Balance.Denom,
			}, nil
		case req.Bank.AllBalances != nil:
			return AllBalances{Account: req.Bank.AllBalances.Address}, nil
		}
	case req.Wasm != nil:
		if err := exactlyOne("wasm query", req.Wasm); err != nil {
			return nil, err
		}
		switch {
		case req.Wasm.Raw != nil:
			return RawRead{
				Contract: req.Wasm.Raw.ContractAddr,
				Key:      req.Wasm.Raw.Key,
			}, nil
		case req.Wasm.Smart != nil:
			return SmartCall{
				Contract: req.Wasm.Smart.ContractAddr,
				Msg:      req.Wasm.Smart.Msg,
			}, nil
		}
	case req.Staking != nil:
		if err := exactlyOne("staking query", req.Staking); err != nil {
			return nil, err
		}
	}
	return Delegated{Request: req}, nil
}

// TokenQuery is implemented only by the token query variants in this package
type TokenQuery interface {
	isTokenQuery()
}

type TokenInfo struct{}

type TokenBalance struct {
	Address string
}

func (TokenInfo) isTokenQuery()    {}
func (TokenBalance) isTokenQuery() {}

// ClassifyTokenQuery decodes the payload of a smart call as a CW20 query.
// Undecodable payloads are malformed; decodable CW20 queries other than
// token_info and balance are fatal.
func ClassifyTokenQuery(c codec.Codec, msg []byte) (TokenQuery, error) {
	var tq types.TokenQuery
	if err := c.Decode(msg, &tq); err != nil {
		return nil, &MalformedRequestError{Err: err, Request: msg}
	}
	if err := exactlyOne("token query", &tq); err != nil {
		return nil, &MalformedRequestError{Err: err, Request: msg}
	}
	switch {
	case tq.TokenInfo != nil:
		return TokenInfo{}, nil
	case tq.Balance != nil:
		return TokenBalance{Address: tq.Balance.Address}, nil
	}
	return nil, &FatalError{
		Reason: fmt.Sprintf("unsupported token query: %s", tq.Kind()),
	}
}

// exactlyOne checks that exactly one nil-able field of the pointed-to union
// struct is set
func exactlyOne(name string, union any) error {
	v := reflect.ValueOf(union)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return errors.New(name + ": not a union struct")
	}
	v = v.Elem()
	count := 0
	for i := range v.NumField() {
		switch v.Field(i).Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
			if !v.Field(i).IsNil() {
				count++
			}
		}
	}
	if count != 1 {
		return fmt.Errorf(
			"%s: expected exactly one variant, found %d",
			name,
			count,
		)
	}
	return nil
}
