// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import "encoding/json"

// Envelope is the per-invocation record the CLI emits. Exactly one of
// Data and Error is populated for completed calls; both stay empty when
// the invocation failed below the result level (transport or decode
// failures, reported via Outcome).
type Envelope struct {
	Service    string          `json:"service"`
	CallID     string          `json:"call_id"`
	Outcome    string          `json:"outcome"`
	OK         bool            `json:"ok"`
	StatusCode int             `json:"status_code,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      json.RawMessage `json:"error,omitempty"`
	Duration   string          `json:"duration"`
}

// Writer defines the interface for writing call envelopes. The
// abstraction allows different output formats (NDJSON, human-readable)
// to be swapped without changing the command logic.
type Writer interface {
	// Write writes a single envelope to the output.
	// The envelope should be immediately flushed to avoid memory accumulation.
	Write(env *Envelope) error

	// Close closes the underlying writer and releases any resources.
	// This should be called when all writing is complete.
	Close() error
}
