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

// Package testutil provides common test helpers for sirseer-svccall
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// MockServer provides common mock service configurations for testing
type MockServer struct {
	*httptest.Server

	requestCount int32

	mu          sync.Mutex
	lastHeaders http.Header
	lastBody    []byte
}

// RequestCount returns how many requests the server has handled.
func (s *MockServer) RequestCount() int {
	return int(atomic.LoadInt32(&s.requestCount))
}

// LastHeaders returns the headers of the most recent request.
func (s *MockServer) LastHeaders() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastHeaders
}

// LastBody returns the body of the most recent request.
func (s *MockServer) LastBody() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastBody
}

// NewJSONServer creates a mock service that always answers with the given
// status code and JSON-encoded body, recording request headers and bodies
// for later assertions.
func NewJSONServer(t *testing.T, statusCode int, body any) *MockServer {
	t.Helper()
	mock := &MockServer{}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.record(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(mock.Close)

	return mock
}

// NewMalformedServer creates a mock service that answers with the given
// status code and a body that is not valid JSON.
func NewMalformedServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()
	mock := &MockServer{}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.record(r)
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(mock.Close)

	return mock
}

// NewSlowServer creates a mock service that sleeps before answering
// successfully, for exercising caller-side timeouts.
func NewSlowServer(t *testing.T, delay time.Duration, body any) *MockServer {
	t.Helper()
	mock := &MockServer{}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.record(r)
		time.Sleep(delay)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(mock.Close)

	return mock
}

// NewRedirectServer creates a mock service whose first URL answers with a
// redirect to /target, which answers 200 with the given body.
func NewRedirectServer(t *testing.T, redirectStatus int, body any) *MockServer {
	t.Helper()
	mock := &MockServer{}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.record(r)
		if r.URL.Path != "/target" {
			http.Redirect(w, r, "/target", redirectStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(mock.Close)

	return mock
}

// record captures request details for later assertions.
func (s *MockServer) record(r *http.Request) {
	atomic.AddInt32(&s.requestCount, 1)

	var body []byte
	if r.Body != nil {
		body, _ = io.ReadAll(r.Body)
	}

	s.mu.Lock()
	s.lastHeaders = r.Header.Clone()
	s.lastBody = body
	s.mu.Unlock()
}
