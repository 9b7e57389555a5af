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

// Package trace records per-invocation audit information for service
// calls: what was called, when, how long it took and how it ended. The
// records provide an audit trail for troubleshooting and let the CLI emit
// a session summary after a run.
package trace

import (
	"time"
)

// Outcome classifies how an invocation ended.
type Outcome string

// Invocation outcomes.
const (
	// OutcomeOK means the service answered with a success-range status
	// and a decodable body.
	OutcomeOK Outcome = "ok"

	// OutcomeServiceError means the service answered with an error-range
	// status and a decodable body. This is a completed call, not a failure.
	OutcomeServiceError Outcome = "service_error"

	// OutcomeDecodeError means the response body was not valid JSON.
	OutcomeDecodeError Outcome = "decode_error"

	// OutcomeTransportError means the request failed below HTTP.
	OutcomeTransportError Outcome = "transport_error"
)

// CallRecord captures the audit information of one invocation.
type CallRecord struct {
	CallID      string    `json:"call_id"`
	Service     string    `json:"service"`
	Method      string    `json:"method"`
	URL         string    `json:"url"`
	Outcome     Outcome   `json:"outcome"`
	StatusCode  int       `json:"status_code,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	Duration    string    `json:"duration"`
}

// Summary aggregates the records of one CLI session. It is emitted as
// JSON so external tools can analyze call history.
type Summary struct {
	ToolVersion string       `json:"tool_version"`
	SessionID   string       `json:"session_id"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt time.Time    `json:"completed_at"`
	Totals      Totals       `json:"totals"`
	Calls       []CallRecord `json:"calls"`
}

// Totals counts invocations by outcome class.
type Totals struct {
	Calls     int `json:"calls"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}
