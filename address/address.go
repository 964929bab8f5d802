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

// Package address provides the address-resolution collaborator: conversion
// between human-readable account identifiers and their canonical byte form.
package address

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Resolver converts between human and canonical addresses. Humanize must fail
// on input that is not a valid canonical address.
type Resolver interface {
	Canonicalize(human string) ([]byte, error)
	Humanize(canonical []byte) (string, error)
}

const (
	// DefaultCanonicalLength is the fixed canonical address length used by MockResolver
	DefaultCanonicalLength = 54

	mockMinHumanLength = 3
)

var ErrInvalidAddress = errors.New("invalid address")

// InvalidAddressError describes why an address could not be resolved
type InvalidAddressError struct {
	Reason string
}

func (e InvalidAddressError) Error() string {
	return "invalid address: " + e.Reason
}

func (InvalidAddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}

// MockResolver mirrors the mock API of the contract test harness: a canonical
// address is the lower-case human address right-padded with zero bytes to a
// fixed length.
type MockResolver struct {
	CanonicalLength int
}

// NewMockResolver returns a MockResolver using DefaultCanonicalLength
func NewMockResolver() MockResolver {
	return MockResolver{CanonicalLength: DefaultCanonicalLength}
}

func (m MockResolver) length() int {
	if m.CanonicalLength <= 0 {
		return DefaultCanonicalLength
	}
	return m.CanonicalLength
}

func (m MockResolver) Canonicalize(human string) ([]byte, error) {
	if len(human) < mockMinHumanLength {
		return nil, InvalidAddressError{Reason: "human address too short"}
	}
	if len(human) > m.length() {
		return nil, InvalidAddressError{Reason: "human address too long"}
	}
	if strings.ToLower(human) != human {
		return nil, InvalidAddressError{Reason: "address not normalized"}
	}
	ret := make([]byte, m.length())
	copy(ret, human)
	return ret, nil
}

func (m MockResolver) Humanize(canonical []byte) (string, error) {
	if len(canonical) != m.length() {
		return "", InvalidAddressError{
			Reason: fmt.Sprintf(
				"canonical address length not correct: expected %d, got %d",
				m.length(),
				len(canonical),
			),
		}
	}
	end := len(canonical)
	for end > 0 && canonical[end-1] == 0 {
		end--
	}
	trimmed := canonical[:end]
	if len(trimmed) < mockMinHumanLength {
		return "", InvalidAddressError{Reason: "human address too short"}
	}
	if !utf8.Valid(trimmed) {
		return "", InvalidAddressError{Reason: "canonical address is not valid UTF-8"}
	}
	return string(trimmed), nil
}
