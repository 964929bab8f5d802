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

package wasmmock

import (
	"errors"
	"sync/atomic"

	"github.com/blinklabs-io/gowasmmock/query"
)

// Metrics tracks the outcome of every query handled by a Simulator.
// Uses atomic counters so a snapshot may be taken from any goroutine.
type Metrics struct {
	answered      atomic.Uint64
	delegated     atomic.Uint64
	malformed     atomic.Uint64
	noFixture     atomic.Uint64
	unimplemented atomic.Uint64
	fatal         atomic.Uint64
}

// QueryStats is a point-in-time snapshot of Metrics
type QueryStats struct {
	Answered      uint64
	Delegated     uint64
	Malformed     uint64
	NoFixture     uint64
	Unimplemented uint64
	Fatal         uint64
}

// Total returns the number of queries handled
func (s QueryStats) Total() uint64 {
	return s.Answered + s.Delegated + s.Malformed + s.NoFixture + s.Unimplemented + s.Fatal
}

// RecordDelegated increments the delegated counter
func (m *Metrics) RecordDelegated() {
	m.delegated.Add(1)
}

// RecordResult records the outcome of a query answered by the simulator itself
func (m *Metrics) RecordResult(err error) {
	switch {
	case err == nil:
		m.answered.Add(1)
	case errors.Is(err, query.ErrMalformedRequest):
		m.malformed.Add(1)
	case errors.Is(err, query.ErrNoFixture):
		m.noFixture.Add(1)
	case errors.Is(err, query.ErrUnimplemented):
		m.unimplemented.Add(1)
	default:
		m.fatal.Add(1)
	}
}

// Stats returns a snapshot of the current metrics
func (m *Metrics) Stats() QueryStats {
	return QueryStats{
		Answered:      m.answered.Load(),
		Delegated:     m.delegated.Load(),
		Malformed:     m.malformed.Load(),
		NoFixture:     m.noFixture.Load(),
		Unimplemented: m.unimplemented.Load(),
		Fatal:         m.fatal.Load(),
	}
}

// Reset zeroes all counters
func (m *Metrics) Reset() {
	m.answered.Store(0)
	m.delegated.Store(0)
	m.malformed.Store(0)
	m.noFixture.Store(0)
	m.unimplemented.Store(0)
	m.fatal.Store(0)
}
