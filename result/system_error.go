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

package result

import (
	"fmt"
)

// SystemError is the transport-level failure union. Exactly one field is set.
type SystemError struct {
	InvalidRequest     *InvalidRequest     `json:"invalid_request,omitempty"`
	InvalidResponse    *InvalidResponse    `json:"invalid_response,omitempty"`
	NoSuchContract     *NoSuchContract     `json:"no_such_contract,omitempty"`
	NoSuchCode         *NoSuchCode         `json:"no_such_code,omitempty"`
	Unknown            *Unknown            `json:"unknown,omitempty"`
	UnsupportedRequest *UnsupportedRequest `json:"unsupported_request,omitempty"`
}

type InvalidRequest struct {
	Error   string `json:"error"`
	Request []byte `json:"request"`
}

type InvalidResponse struct {
	Error    string `json:"error"`
	Response []byte `json:"response"`
}

type NoSuchContract struct {
	Addr string `json:"addr"`
}

type NoSuchCode struct {
	CodeID uint64 `json:"code_id"`
}

type Unknown struct{}

type UnsupportedRequest struct {
	Kind string `json:"kind"`
}

func (e *SystemError) Error() string {
	switch {
	case e.InvalidRequest != nil:
		return fmt.Sprintf(
			"Cannot parse request: %s in: %s",
			e.InvalidRequest.Error,
			string(e.InvalidRequest.Request),
		)
	case e.InvalidResponse != nil:
		return fmt.Sprintf(
			"Cannot parse response: %s in: %s",
			e.InvalidResponse.Error,
			string(e.InvalidResponse.Response),
		)
	case e.NoSuchContract != nil:
		return "No such contract: " + e.NoSuchContract.Addr
	case e.NoSuchCode != nil:
		return fmt.Sprintf("No such code: %d", e.NoSuchCode.CodeID)
	case e.Unknown != nil:
		return "Unknown system error"
	case e.UnsupportedRequest != nil:
		return "Unsupported query type: " + e.UnsupportedRequest.Kind
	}
	return "empty system error"
}
