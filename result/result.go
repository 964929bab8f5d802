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

// Package result implements the two-layer response envelope. The outer
// SystemResult reports whether the request itself could be served; the inner
// ContractResult reports whether the served request had an answer.
package result

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gowasmmock/codec"
)

// ErrEmptyResult is returned when unwrapping an envelope with no layer set
var ErrEmptyResult = errors.New("empty result envelope")

type SystemResult struct {
	Ok  *ContractResult `json:"ok,omitempty"`
	Err *SystemError    `json:"error,omitempty"`
}

type ContractResult struct {
	Ok  []byte  `json:"ok,omitempty"`
	Err *string `json:"error,omitempty"`
}

// ContractError is the inner-layer failure returned by Unwrap
type ContractError struct {
	Msg string
}

func (e *ContractError) Error() string {
	return e.Msg
}

// Encode wraps the encoded value into a successful envelope. A value that
// cannot be encoded yields an invalid_response system error.
func Encode(c codec.Codec, v any) SystemResult {
	data, err := c.Encode(v)
	if err != nil {
		return SystemErr(SystemError{
			InvalidResponse: &InvalidResponse{
				Error: fmt.Sprintf("encoding response: %s", err),
			},
		})
	}
	return Ok(data)
}

// Ok wraps already-encoded bytes into a successful envelope
func Ok(data []byte) SystemResult {
	if data == nil {
		data = []byte{}
	}
	return SystemResult{
		Ok: &ContractResult{Ok: data},
	}
}

// ContractErr builds an envelope whose transport layer succeeded but whose
// application layer failed
func ContractErr(msg string) SystemResult {
	return SystemResult{
		Ok: &ContractResult{Err: &msg},
	}
}

// SystemErr builds an envelope whose transport layer failed
func SystemErr(e SystemError) SystemResult {
	return SystemResult{Err: &e}
}

// InvalidRequestErr builds the envelope for a request that could not be parsed
func InvalidRequestErr(msg string, request []byte) SystemResult {
	return SystemErr(SystemError{
		InvalidRequest: &InvalidRequest{
			Error:   msg,
			Request: request,
		},
	})
}

// UnsupportedRequestErr builds the envelope for a request kind nothing handles
func UnsupportedRequestErr(kind string) SystemResult {
	return SystemErr(SystemError{
		UnsupportedRequest: &UnsupportedRequest{Kind: kind},
	})
}

func (r SystemResult) IsOk() bool {
	return r.Err == nil && r.Ok != nil && r.Ok.Err == nil
}

// Unwrap returns the payload of a fully successful envelope. Outer failures
// are returned as *SystemError and inner failures as *ContractError.
func (r SystemResult) Unwrap() ([]byte, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Ok == nil {
		return nil, ErrEmptyResult
	}
	if r.Ok.Err != nil {
		return nil, &ContractError{Msg: *r.Ok.Err}
	}
	return r.Ok.Ok, nil
}

// UnwrapInto unwraps the envelope and decodes the payload into dest
func (r SystemResult) UnwrapInto(c codec.Codec, dest any) error {
	data, err := r.Unwrap()
	if err != nil {
		return err
	}
	if err := c.Decode(data, dest); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
