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
	"fmt"
	"net/url"
)

// Method is the HTTP method a service descriptor is allowed to use.
type Method string

// Supported HTTP methods.
const (
	MethodDelete  Method = "DELETE"
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
)

// Credentials controls whether ambient credentials (cookies and the
// Authorization header) accompany outgoing requests.
type Credentials string

// Supported credential policies.
const (
	// CredentialsInclude always sends cookies and the Authorization header,
	// including across redirects to other origins.
	CredentialsInclude Credentials = "include"

	// CredentialsOmit strips cookies and the Authorization header from
	// every outgoing request.
	CredentialsOmit Credentials = "omit"

	// CredentialsSameOrigin sends credentials only while the request stays
	// on the descriptor's origin. This is the default.
	CredentialsSameOrigin Credentials = "same-origin"
)

// Mode constrains which origins a request may reach.
type Mode string

// Supported request modes. Only ModeSameOrigin carries client-side
// enforcement: the others exist so descriptors written for browser-backed
// deployments validate cleanly.
const (
	ModeCORS       Mode = "cors"
	ModeNavigate   Mode = "navigate"
	ModeNoCORS     Mode = "no-cors"
	ModeSameOrigin Mode = "same-origin"
)

// Redirect selects how HTTP 3xx responses are handled.
type Redirect string

// Supported redirect policies.
const (
	// RedirectError fails the request when the service answers with a
	// redirect.
	RedirectError Redirect = "error"

	// RedirectFollow follows redirects transparently. This is the default.
	RedirectFollow Redirect = "follow"

	// RedirectManual surfaces the 3xx response itself instead of
	// following it.
	RedirectManual Redirect = "manual"
)

// ContentTypeJSON is the payload media type every service call speaks.
// Outgoing Content-Type and Accept headers are forced to this value no
// matter what the descriptor's Headers say.
const ContentTypeJSON = "application/json"

// Descriptor is the immutable configuration of one JSON service endpoint.
// Create it once, validate it once, and share it freely; nothing in this
// package mutates a descriptor after construction.
type Descriptor struct {
	// URL is the absolute endpoint URL. Required.
	URL string

	// Method is the HTTP method to use. Defaults to GET.
	Method Method

	// Credentials is the credential policy. Defaults to same-origin.
	Credentials Credentials

	// Keepalive keeps the underlying connection pooled for reuse across
	// invocations. When false (the default) the connection is closed
	// after each call.
	Keepalive bool

	// Mode is the origin policy. Defaults to cors.
	Mode Mode

	// Redirect is the redirect policy. Defaults to follow.
	Redirect Redirect

	// Headers are additional request headers. Content-Type and Accept are
	// overridden with ContentTypeJSON regardless of what is listed here.
	Headers map[string]string

	// MaxResponseBytes bounds the response body size. Zero means
	// unlimited. Responses exceeding the bound fail the invocation
	// before any decoding is attempted.
	MaxResponseBytes int64
}

// Validate checks that the descriptor's URL is an absolute HTTP(S) URL and
// that every enum field holds either its zero value or a supported value.
func (d Descriptor) Validate() error {
	if d.URL == "" {
		return fmt.Errorf("descriptor: url is required")
	}
	u, err := url.Parse(d.URL)
	if err != nil {
		return fmt.Errorf("descriptor: invalid url %q: %w", d.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("descriptor: url %q must use http or https", d.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("descriptor: url %q has no host", d.URL)
	}

	switch d.Method {
	case "", MethodDelete, MethodGet, MethodHead, MethodOptions, MethodPost, MethodPut:
	default:
		return fmt.Errorf("descriptor: unsupported method %q", d.Method)
	}

	switch d.Credentials {
	case "", CredentialsInclude, CredentialsOmit, CredentialsSameOrigin:
	default:
		return fmt.Errorf("descriptor: unsupported credentials policy %q", d.Credentials)
	}

	switch d.Mode {
	case "", ModeCORS, ModeNavigate, ModeNoCORS, ModeSameOrigin:
	default:
		return fmt.Errorf("descriptor: unsupported mode %q", d.Mode)
	}

	switch d.Redirect {
	case "", RedirectError, RedirectFollow, RedirectManual:
	default:
		return fmt.Errorf("descriptor: unsupported redirect policy %q", d.Redirect)
	}

	if d.MaxResponseBytes < 0 {
		return fmt.Errorf("descriptor: max response bytes must not be negative")
	}

	return nil
}

// method returns the effective HTTP method.
func (d Descriptor) method() Method {
	if d.Method == "" {
		return MethodGet
	}
	return d.Method
}

// credentials returns the effective credential policy.
func (d Descriptor) credentials() Credentials {
	if d.Credentials == "" {
		return CredentialsSameOrigin
	}
	return d.Credentials
}

// mode returns the effective origin policy.
func (d Descriptor) mode() Mode {
	if d.Mode == "" {
		return ModeCORS
	}
	return d.Mode
}

// redirect returns the effective redirect policy.
func (d Descriptor) redirect() Redirect {
	if d.Redirect == "" {
		return RedirectFollow
	}
	return d.Redirect
}
