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

package svccall

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Errors surfaced by the descriptor-derived transport.
var (
	// ErrRedirectDenied is returned (wrapped in a *url.Error) when the
	// service answers with a redirect and the descriptor's redirect
	// policy is RedirectError.
	ErrRedirectDenied = errors.New("redirect denied by service descriptor")

	// ErrCrossOrigin is returned (wrapped in a *url.Error) when a
	// redirect would leave the descriptor's origin and the descriptor's
	// mode is ModeSameOrigin.
	ErrCrossOrigin = errors.New("request left the descriptor origin")
)

// maxBodySnippet bounds how much of an undecodable body a DecodeError
// carries.
const maxBodySnippet = 512

// DecodeError reports a response body that could not be decoded as JSON.
// It is returned for success and error statuses alike: an invocation that
// completes at the HTTP layer but produces an unparseable body never
// yields a Result. The service's state keeps its prior Data and Err values
// in this case; only Pending is cleared.
type DecodeError struct {
	// StatusCode is the HTTP status of the undecodable response.
	StatusCode int

	// Body holds up to maxBodySnippet bytes of the raw response body,
	// for diagnostics.
	Body string

	// Err is the underlying JSON decoding error.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response body (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying JSON decoding error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// newDecodeError builds a DecodeError carrying a bounded, valid-UTF-8
// snippet of the raw body.
func newDecodeError(statusCode int, raw []byte, cause error) *DecodeError {
	snippet := raw
	if len(snippet) > maxBodySnippet {
		snippet = snippet[:maxBodySnippet]
		// Trim a rune cut in half at the snippet boundary.
		for i := 0; i < utf8.UTFMax-1 && len(snippet) > 0 && !utf8.Valid(snippet); i++ {
			snippet = snippet[:len(snippet)-1]
		}
	}
	return &DecodeError{
		StatusCode: statusCode,
		Body:       string(snippet),
		Err:        cause,
	}
}
