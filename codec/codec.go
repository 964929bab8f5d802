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

// Package codec provides the serialization collaborator used to move query
// requests and responses across the simulated contract boundary.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/blinklabs-io/gowasmmock/cbor"
)

// Codec encodes and decodes arbitrary values to and from bytes. Decode must
// fail on any shape mismatch, including unknown fields and trailing data.
type Codec interface {
	Name() string
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type jsonCodec struct{}

// JSON returns the codec for the CosmWasm JSON wire format
func JSON() Codec {
	return jsonCodec{}
}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode rejects invalid UTF-8, which encoding/json would otherwise replace
// with U+FFFD, and anything other than whitespace after the first value
func (jsonCodec) Decode(data []byte, v any) error {
	if !utf8.Valid(data) {
		return errors.New("invalid UTF-8 in JSON input")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return errors.New("unexpected trailing data")
	}
	return nil
}

type cborCodec struct{}

// CBOR returns a codec using deterministic CBOR. Wire types carry only json
// tags, which the CBOR library honors, so the document shapes are identical
// to the JSON codec's.
func CBOR() Codec {
	return cborCodec{}
}

func (cborCodec) Name() string { return "cbor" }

func (cborCodec) Encode(v any) ([]byte, error) {
	return cbor.Encode(v)
}

func (cborCodec) Decode(data []byte, v any) error {
	return cbor.DecodeStrict(data, v)
}

// ByName returns the codec registered under the given name
func ByName(name string) (Codec, error) {
	switch name {
	case "json", "":
		return JSON(), nil
	case "cbor":
		return CBOR(), nil
	default:
		return nil, fmt.Errorf("unknown codec: %s", name)
	}
}
