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

package neterror

import (
	"errors"
	"fmt"
)

// ActionableError pairs an underlying error with a suggested user action.
// The CLI prints the action after the error itself so scripts keep the
// original message while humans get guidance.
type ActionableError struct {
	Err    error
	Action string
}

// Error implements the error interface.
func (e *ActionableError) Error() string {
	return fmt.Sprintf("%v\n%s", e.Err, e.Action)
}

// Unwrap returns the underlying error.
func (e *ActionableError) Unwrap() error {
	return e.Err
}

// WithUserAction wraps err with a suggested user action.
func WithUserAction(err error, action string) error {
	return &ActionableError{Err: err, Action: action}
}

// UserAction extracts the suggested action from an error chain, if any.
func UserAction(err error) (string, bool) {
	var actionable *ActionableError
	if errors.As(err, &actionable) {
		return actionable.Action, true
	}
	return "", false
}
