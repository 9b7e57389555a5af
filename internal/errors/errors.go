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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrServiceNotFound indicates the named service is not defined in the
	// configuration. Maps to exit code 2.
	ErrServiceNotFound = errors.New("service not found in configuration")

	// ErrInvalidDescriptor indicates the service descriptor failed validation.
	// Maps to exit code 2.
	ErrInvalidDescriptor = errors.New("invalid service descriptor")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrDecodeFailure indicates the service answered with a body that is
	// not valid JSON. Maps to exit code 4.
	ErrDecodeFailure = errors.New("response body is not valid JSON")
)
