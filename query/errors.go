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

package query

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRequest = errors.New("malformed request")
	ErrNoFixture        = errors.New("no fixture")
	ErrUnimplemented    = errors.New("unimplemented query")
	ErrFatal            = errors.New("fatal query condition")
)

// MalformedRequestError indicates request bytes, an embedded payload, or an
// embedded address that could not be decoded
type MalformedRequestError struct {
	Err     error
	Request []byte
}

func (e *MalformedRequestError) Error() string {
	return fmt.Sprintf("Parsing query request: %s", e.Err)
}

func (e *MalformedRequestError) Unwrap() error { return e.Err }

func (*MalformedRequestError) Is(target error) bool {
	return target == ErrMalformedRequest
}

// NoFixtureError indicates a well-formed query for state that was never seeded
type NoFixtureError struct {
	Msg string
}

func (e *NoFixtureError) Error() string {
	return e.Msg
}

func (*NoFixtureError) Is(target error) bool {
	return target == ErrNoFixture
}

// UnimplementedError indicates a well-formed query the simulator deliberately
// does not answer
type UnimplementedError struct {
	Kind string
}

func (e *UnimplementedError) Error() string {
	return "unimplemented query: " + e.Kind
}

func (*UnimplementedError) Is(target error) bool {
	return target == ErrUnimplemented
}

// FatalError indicates a query shape that must never reach the simulator
type FatalError struct {
	Reason string
}

func (e *FatalError) Error() string {
	return "fatal: " + e.Reason
}

func (*FatalError) Is(target error) bool {
	return target == ErrFatal
}
