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
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"strings"
)

// Inspector classifies transport-level errors so callers can choose
// appropriate messaging without string-matching at every call site.
type Inspector interface {
	// IsTimeout returns true if the error represents a timed-out operation.
	IsTimeout(err error) bool

	// IsDNSError returns true if the error represents a name resolution failure.
	IsDNSError(err error) bool

	// IsTLSError returns true if the error represents a TLS handshake or
	// certificate failure.
	IsTLSError(err error) bool

	// IsNetworkError returns true if the error represents any network
	// connectivity failure, including the cases above.
	IsNetworkError(err error) bool
}

// TransportErrorInspector implements Inspector by walking the error chain
// with errors.As, falling back to string inspection for errors that reach
// us flattened into text.
type TransportErrorInspector struct{}

// NewInspector creates a new TransportErrorInspector.
func NewInspector() Inspector {
	return &TransportErrorInspector{}
}

// IsTimeout checks for timeouts reported through the net.Error contract.
func (i *TransportErrorInspector) IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// IsDNSError checks for name resolution failures.
func (i *TransportErrorInspector) IsDNSError(err error) bool {
	if err == nil {
		return false
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "temporary failure in name resolution")
}

// IsTLSError checks for TLS handshake and certificate failures.
func (i *TransportErrorInspector) IsTLSError(err error) bool {
	if err == nil {
		return false
	}
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return true
	}
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return true
	}
	var unknownAuthErr x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthErr) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "certificate")
}

// IsNetworkError checks for any network connectivity failure.
func (i *TransportErrorInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	if i.IsTimeout(err) || i.IsDNSError(err) || i.IsTLSError(err) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "broken pipe")
}
