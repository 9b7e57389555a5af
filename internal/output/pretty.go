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

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// PrettyWriter renders envelopes for humans: a colored status line per
// call followed by the indented payload.
type PrettyWriter struct {
	mu  sync.Mutex
	out io.Writer

	okColor   *color.Color
	failColor *color.Color
}

// NewPrettyWriter creates a human-readable writer.
func NewPrettyWriter(w io.Writer) *PrettyWriter {
	return &PrettyWriter{
		out:       w,
		okColor:   color.New(color.FgGreen),
		failColor: color.New(color.FgRed),
	}
}

// Write renders a single envelope.
func (w *PrettyWriter) Write(env *Envelope) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var payload json.RawMessage
	if env.OK {
		if _, err := w.okColor.Fprintf(w.out, "ok %s", env.Service); err != nil {
			return fmt.Errorf("failed to write status line: %w", err)
		}
		payload = env.Data
	} else {
		if _, err := w.failColor.Fprintf(w.out, "%s %s", env.Outcome, env.Service); err != nil {
			return fmt.Errorf("failed to write status line: %w", err)
		}
		payload = env.Error
	}

	if env.StatusCode != 0 {
		fmt.Fprintf(w.out, " (status %d)", env.StatusCode)
	}
	fmt.Fprintf(w.out, " %s\n", env.Duration)

	if len(payload) > 0 {
		var indented bytes.Buffer
		if err := json.Indent(&indented, payload, "", "  "); err != nil {
			// Raw payload is already known-valid JSON; fall back anyway.
			indented.Write(payload)
		}
		if _, err := fmt.Fprintf(w.out, "%s\n", indented.String()); err != nil {
			return fmt.Errorf("failed to write payload: %w", err)
		}
	}

	return nil
}

// Close implements Writer. Nothing to release.
func (w *PrettyWriter) Close() error {
	return nil
}
