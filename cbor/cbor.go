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

// Package cbor wraps github.com/fxamacker/cbor/v2 with the encode and decode
// modes used for simulated query traffic.
//
// Struct fields without a cbor tag fall back to their json tag, so the same
// wire types serve both the JSON and the CBOR codec.
package cbor

import (
	_cbor "github.com/fxamacker/cbor/v2"
)

// Marshaler is implemented by types with a custom CBOR encoding
type Marshaler = _cbor.Marshaler

// Unmarshaler is implemented by types with a custom CBOR decoding
type Unmarshaler = _cbor.Unmarshaler
