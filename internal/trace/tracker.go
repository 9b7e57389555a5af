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

package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Tracker collects call records over one session. Create one tracker per
// CLI run, open a Call per invocation and complete it with the observed
// outcome. Safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	sessionID string
	startTime time.Time
	records   []CallRecord
}

// New creates a tracker with a fresh session ID.
func New() *Tracker {
	return &Tracker{
		sessionID: uuid.NewString(),
		startTime: time.Now(),
	}
}

// SessionID returns the tracker's session ID.
func (t *Tracker) SessionID() string {
	return t.sessionID
}

// Call is one in-flight invocation being tracked.
type Call struct {
	tracker *Tracker
	record  CallRecord
}

// Begin opens a call record for an invocation about to start.
func (t *Tracker) Begin(service, method, url string) *Call {
	return &Call{
		tracker: t,
		record: CallRecord{
			CallID:    uuid.NewString(),
			Service:   service,
			Method:    method,
			URL:       url,
			StartedAt: time.Now(),
		},
	}
}

// Complete finalizes the call with its outcome and HTTP status (zero when
// the status is unknown, e.g. on transport failures) and appends it to the
// tracker. It returns the finished record.
func (c *Call) Complete(outcome Outcome, statusCode int) CallRecord {
	c.record.Outcome = outcome
	c.record.StatusCode = statusCode
	c.record.CompletedAt = time.Now()
	c.record.Duration = c.record.CompletedAt.Sub(c.record.StartedAt).String()

	c.tracker.mu.Lock()
	c.tracker.records = append(c.tracker.records, c.record)
	c.tracker.mu.Unlock()

	return c.record
}

// Summary builds the session summary over all completed calls.
func (t *Tracker) Summary(toolVersion string) *Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	totals := Totals{Calls: len(t.records)}
	for _, rec := range t.records {
		if rec.Outcome == OutcomeOK {
			totals.Succeeded++
		} else {
			totals.Failed++
		}
	}

	calls := make([]CallRecord, len(t.records))
	copy(calls, t.records)

	return &Summary{
		ToolVersion: toolVersion,
		SessionID:   t.sessionID,
		StartedAt:   t.startTime,
		CompletedAt: time.Now(),
		Totals:      totals,
		Calls:       calls,
	}
}

// WriteSummary writes the session summary as indented JSON.
func (t *Tracker) WriteSummary(w io.Writer, toolVersion string) error {
	data, err := json.MarshalIndent(t.Summary(toolVersion), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal trace summary: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write trace summary: %w", err)
	}
	return nil
}
