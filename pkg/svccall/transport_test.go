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
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// redirectingServer answers "/" with a 302 to /target and /target with a
// JSON success body.
func redirectingServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/target" {
			http.Redirect(w, r, "/target", http.StatusFound)
			return
		}
		jsonHandler(http.StatusOK, successBody{Msg: "redirected"})(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRedirectFollow(t *testing.T) {
	server := redirectingServer(t)
	svc := newTestService(t, Descriptor{URL: server.URL})

	res, err := svc.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !res.OK || res.Data.Msg != "redirected" {
		t.Errorf("expected the redirect target's payload, got %+v", res)
	}
}

func TestRedirectError(t *testing.T) {
	server := redirectingServer(t)
	svc := newTestService(t, Descriptor{URL: server.URL, Redirect: RedirectError})

	_, err := svc.Execute(context.Background(), nil)
	if err == nil {
		t.Fatal("expected an error under the error redirect policy")
	}
	if !errors.Is(err, ErrRedirectDenied) {
		t.Errorf("expected ErrRedirectDenied in the chain, got: %v", err)
	}
	if svc.StateSnapshot().Pending {
		t.Error("pending must be cleared")
	}
}

func TestRedirectManual(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/target")
		w.Header().Set("Content-Type", ContentTypeJSON)
		w.WriteHeader(http.StatusFound)
		_ = json.NewEncoder(w).Encode(errorBody{ErrorMsg: "moved"})
	}))
	defer server.Close()

	svc := newTestService(t, Descriptor{URL: server.URL, Redirect: RedirectManual})

	res, err := svc.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	// The 302 itself is the response: a non-success status, classified as
	// a service error.
	if res.OK {
		t.Fatal("a surfaced redirect response must classify as non-OK")
	}
	if res.Err.ErrorMsg != "moved" {
		t.Errorf("unexpected error payload: %+v", res.Err)
	}
}

func TestSameOriginModeBlocksCrossOriginRedirect(t *testing.T) {
	other := httptest.NewServer(jsonHandler(http.StatusOK, successBody{Msg: "other origin"}))
	defer other.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, other.URL, http.StatusFound)
	}))
	defer server.Close()

	svc := newTestService(t, Descriptor{URL: server.URL, Mode: ModeSameOrigin})

	_, err := svc.Execute(context.Background(), nil)
	if err == nil {
		t.Fatal("expected the cross-origin redirect to be blocked")
	}
	if !errors.Is(err, ErrCrossOrigin) {
		t.Errorf("expected ErrCrossOrigin in the chain, got: %v", err)
	}
}

func TestCredentialPolicies(t *testing.T) {
	tests := []struct {
		name     string
		policy   Credentials
		wantAuth bool
	}{
		{"include keeps authorization", CredentialsInclude, true},
		{"same-origin keeps authorization on own origin", CredentialsSameOrigin, true},
		{"omit strips authorization", CredentialsOmit, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				mu   sync.Mutex
				auth string
			)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				mu.Lock()
				auth = r.Header.Get("Authorization")
				mu.Unlock()
				jsonHandler(http.StatusOK, successBody{Msg: "success!"})(w, r)
			}))
			defer server.Close()

			svc := newTestService(t, Descriptor{
				URL:         server.URL,
				Credentials: tt.policy,
				Headers:     map[string]string{"Authorization": "Bearer token"},
			})

			if _, err := svc.Execute(context.Background(), nil); err != nil {
				t.Fatalf("Execute failed: %v", err)
			}

			mu.Lock()
			defer mu.Unlock()
			if tt.wantAuth && auth != "Bearer token" {
				t.Errorf("Authorization = %q, want the bearer token", auth)
			}
			if !tt.wantAuth && auth != "" {
				t.Errorf("Authorization = %q, want it stripped", auth)
			}
		})
	}
}

func TestOriginOf(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"https url", "https://api.example.com/v1/whoami", "https://api.example.com"},
		{"with port", "http://localhost:8080/health", "http://localhost:8080"},
		{"relative", "/v1/whoami", ""},
		{"garbage", "://", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := originOf(tt.url); got != tt.want {
				t.Errorf("originOf(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
