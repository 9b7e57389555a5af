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
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/sirseerhq/sirseer-svccall/pkg/version"
)

// newHTTPClient builds the *http.Client implied by a descriptor: redirect
// policy, keepalive behavior, credential handling, and a User-Agent header
// identifying this library. The descriptor must already be validated.
func newHTTPClient(desc Descriptor) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DisableKeepAlives:   !desc.Keepalive,
		ForceAttemptHTTP2:   true,
	}

	client := &http.Client{
		Transport: &credentialTransport{
			base:    transport,
			policy:  desc.credentials(),
			origin:  originOf(desc.URL),
			headers: desc.Headers,
		},
		CheckRedirect: redirectPolicy(desc),
	}

	// Cookies are ambient credentials; a jar only exists when the policy
	// allows sending them at all.
	if desc.credentials() != CredentialsOmit {
		if jar, err := cookiejar.New(nil); err == nil {
			client.Jar = jar
		}
	}

	return client
}

// redirectPolicy maps the descriptor's redirect and mode settings onto a
// CheckRedirect function. A nil return means the default follow behavior.
func redirectPolicy(desc Descriptor) func(req *http.Request, via []*http.Request) error {
	switch desc.redirect() {
	case RedirectError:
		return func(req *http.Request, via []*http.Request) error {
			return ErrRedirectDenied
		}
	case RedirectManual:
		return func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	default:
		if desc.mode() == ModeSameOrigin {
			origin := originOf(desc.URL)
			return func(req *http.Request, via []*http.Request) error {
				if originOf(req.URL.String()) != origin {
					return fmt.Errorf("redirect to %s: %w", req.URL, ErrCrossOrigin)
				}
				return nil
			}
		}
		return nil
	}
}

// credentialTransport applies the descriptor's headers and credential
// policy to each outgoing request and stamps the library User-Agent. It
// wraps the base transport the way an auth transport would, so callers
// never manage headers per request. Headers already set on the request
// win over descriptor headers; the credential policy wins over both.
type credentialTransport struct {
	base    http.RoundTripper
	policy  Credentials
	origin  string
	headers map[string]string
}

// RoundTrip implements http.RoundTripper.
func (t *credentialTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for name, value := range t.headers {
		if req.Header.Get(name) == "" {
			req.Header.Set(name, value)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", fmt.Sprintf("svccall/%s", version.Version))
	}

	switch t.policy {
	case CredentialsOmit:
		req.Header.Del("Authorization")
		req.Header.Del("Cookie")
	case CredentialsSameOrigin:
		if originOf(req.URL.String()) != t.origin {
			req.Header.Del("Authorization")
			req.Header.Del("Cookie")
		}
	}

	return t.base.RoundTrip(req)
}

// originOf reduces a URL to its scheme://host origin. Malformed URLs
// reduce to the empty string, which never matches a real origin.
func originOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
